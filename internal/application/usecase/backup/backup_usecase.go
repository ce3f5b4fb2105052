package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vedag812/netfolio-api/adapters/event"
	"github.com/vedag812/netfolio-api/internal/application/service"
	"github.com/vedag812/netfolio-api/internal/domain/content"
	"github.com/vedag812/netfolio-api/pkg/logger"
)

const backupFolder = "backups/content"

// BackupUseCase snapshots the document named by a content event into the
// object store. The live blobs under portfolio/ are purged on every write,
// so these timestamped snapshots are the only history kept.
type BackupUseCase struct {
	store   content.Store
	objects service.ObjectStore
	logger  logger.Logger
}

func NewBackupUseCase(store content.Store, objects service.ObjectStore, log logger.Logger) *BackupUseCase {
	return &BackupUseCase{store: store, objects: objects, logger: log}
}

func (uc *BackupUseCase) Execute(ctx context.Context, payload event.ContentEventPayload) error {
	var (
		name string
		doc  any
	)

	switch payload.EventType {
	case event.ContentEventProjectsUpdated:
		name = "projects"
		doc = uc.store.ReadProjects(ctx)
	case event.ContentEventMediaUpdated:
		name = "media"
		doc = uc.store.ReadMediaConfig(ctx)
	default:
		uc.logger.Warn("ignoring unknown content event", zap.String("event_type", payload.EventType))
		return nil
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal %s snapshot: %w", name, err)
	}

	timestamp := time.Now().UTC().Format("2006-01-02_15-04-05")
	publicID := fmt.Sprintf("%s/%s-%s.json", backupFolder, name, timestamp)

	url, err := uc.objects.Put(ctx, publicID, data)
	if err != nil {
		return fmt.Errorf("failed to upload %s snapshot: %w", name, err)
	}

	uc.logger.Info("content snapshot uploaded",
		zap.String("public_id", publicID),
		zap.String("url", url),
		zap.String("event_id", payload.EventID.String()),
	)
	return nil
}
