package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vedag812/netfolio-api/internal/application/service"
	"github.com/vedag812/netfolio-api/internal/domain/content"
	"github.com/vedag812/netfolio-api/pkg/logger"
)

const projectsBlobPrefix = "portfolio/projects"

// BlobStore serves the projects document from a cloud object store, falling
// back to the local file store when the blob medium is missing or failing.
// The cascade exists because cloud deployments run on an ephemeral, often
// read-only filesystem where the object store is the only durable medium.
//
// Media configuration stays on the file store either way: its writes are
// best-effort by contract.
type BlobStore struct {
	objects  service.ObjectStore
	fallback *FileStore
	logger   logger.Logger

	now func() time.Time
}

func NewBlobStore(objects service.ObjectStore, fallback *FileStore, log logger.Logger) *BlobStore {
	return &BlobStore{
		objects:  objects,
		fallback: fallback,
		logger:   log,
		now:      time.Now,
	}
}

func (s *BlobStore) ReadProjects(ctx context.Context) content.ProjectsDocument {
	data, found, err := s.objects.Latest(ctx, projectsBlobPrefix)
	if err != nil {
		s.logger.Warn("failed to read projects blob, falling back to local file", zap.Error(err))
		return s.fallback.ReadProjects(ctx)
	}
	if !found {
		return s.fallback.ReadProjects(ctx)
	}

	var doc content.ProjectsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("projects blob is malformed, falling back to local file", zap.Error(err))
		return s.fallback.ReadProjects(ctx)
	}
	if doc.Projects == nil {
		doc.Projects = []content.ProjectRecord{}
	}
	return doc
}

// WriteProjects replaces every blob under the projects prefix with a single
// uniquely named successor. The timestamp suffix keeps names monotonic so
// Latest always resolves the newest write.
func (s *BlobStore) WriteProjects(ctx context.Context, doc content.ProjectsDocument) (string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}

	if err := s.objects.Purge(ctx, projectsBlobPrefix); err != nil {
		// Stale blobs are tolerable; Latest picks the newest name anyway.
		s.logger.Warn("failed to purge old project blobs", zap.Error(err))
	}

	publicID := fmt.Sprintf("%s-%d.json", projectsBlobPrefix, s.now().UnixMilli())
	if _, err := s.objects.Put(ctx, publicID, data); err != nil {
		s.logger.Error("blob write failed, attempting local file fallback", err)
		if _, fileErr := s.fallback.WriteProjects(ctx, doc); fileErr != nil {
			return "", fmt.Errorf("blob write failed (%w) and file fallback failed (%v)", err, fileErr)
		}
		return content.MediumLocalFile, nil
	}

	return content.MediumCloudinary, nil
}

func (s *BlobStore) ReadMediaConfig(ctx context.Context) content.MediaConfig {
	return s.fallback.ReadMediaConfig(ctx)
}

func (s *BlobStore) WriteMediaConfig(ctx context.Context, cfg content.MediaConfig) {
	s.fallback.WriteMediaConfig(ctx, cfg)
}
