package service

import (
	"context"

	"github.com/vedag812/netfolio-api/internal/domain/contact"
)

type Mailer interface {
	Send(ctx context.Context, msg contact.Message) error
}
