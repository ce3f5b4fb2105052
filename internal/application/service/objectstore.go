package service

import (
	"context"
)

// ObjectStore abstracts the cloud blob medium used to mirror content
// documents. Objects live under a caller-chosen prefix; Latest resolves the
// newest object under a prefix so a write can simply add a uniquely named
// object and purge its predecessors.
type ObjectStore interface {
	// Put stores data under publicID and returns the object URL.
	Put(ctx context.Context, publicID string, data []byte) (string, error)

	// Latest fetches the body of the newest object under prefix. The
	// boolean is false when no object exists under the prefix.
	Latest(ctx context.Context, prefix string) ([]byte, bool, error)

	// Purge deletes every object under prefix.
	Purge(ctx context.Context, prefix string) error
}
