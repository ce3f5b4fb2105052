package persistence

import (
	"github.com/vedag812/netfolio-api/internal/application/service"
	"github.com/vedag812/netfolio-api/internal/config"
	"github.com/vedag812/netfolio-api/internal/domain/content"
	"github.com/vedag812/netfolio-api/pkg/logger"
)

// NewContentStore selects the content store backend once at startup instead
// of branching per request. "auto" picks the blob-first cascade only when
// Cloudinary credentials are present and the deployment is cloud-hosted;
// local development keeps the plain file store.
func NewContentStore(cfg config.Config, objects service.ObjectStore, log logger.Logger) content.Store {
	fileStore := NewFileStore(cfg.Storage.DataDir, log)

	switch cfg.Storage.Driver {
	case "file":
		return fileStore
	case "cloudinary":
		if objects == nil {
			log.Warn("storage driver is cloudinary but no object store is configured, using file store")
			return fileStore
		}
		return NewBlobStore(objects, fileStore, log)
	default: // auto
		if objects != nil && cfg.Storage.CloudDeployment {
			return NewBlobStore(objects, fileStore, log)
		}
		return fileStore
	}
}
