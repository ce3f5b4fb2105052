package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/vedag812/netfolio-api/internal/domain/content"
	"github.com/vedag812/netfolio-api/pkg/logger"
)

const (
	projectsFileName = "projects.json"
	mediaFileName    = "media.json"
)

// FileStore persists both content documents as pretty-printed JSON files
// under a data directory. This is the development backend and the fallback
// medium in cloud deployments.
type FileStore struct {
	dataDir string
	logger  logger.Logger
}

func NewFileStore(dataDir string, log logger.Logger) *FileStore {
	return &FileStore{dataDir: dataDir, logger: log}
}

func (s *FileStore) projectsPath() string {
	return filepath.Join(s.dataDir, projectsFileName)
}

func (s *FileStore) mediaPath() string {
	return filepath.Join(s.dataDir, mediaFileName)
}

func (s *FileStore) ReadProjects(ctx context.Context) content.ProjectsDocument {
	empty := content.ProjectsDocument{Projects: []content.ProjectRecord{}}

	data, err := os.ReadFile(s.projectsPath())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("failed to read projects file", zap.String("path", s.projectsPath()), zap.Error(err))
		}
		return empty
	}

	var doc content.ProjectsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("projects file is malformed, serving empty document", zap.Error(err))
		return empty
	}
	if doc.Projects == nil {
		doc.Projects = []content.ProjectRecord{}
	}
	return doc
}

func (s *FileStore) WriteProjects(ctx context.Context, doc content.ProjectsDocument) (string, error) {
	if err := s.writeJSON(s.projectsPath(), doc); err != nil {
		return "", err
	}
	return content.MediumLocalFile, nil
}

func (s *FileStore) ReadMediaConfig(ctx context.Context) content.MediaConfig {
	data, err := os.ReadFile(s.mediaPath())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("failed to read media file", zap.String("path", s.mediaPath()), zap.Error(err))
		}
		return s.seedDefaults(ctx)
	}

	cfg, err := content.ParseMediaConfig(data)
	if err != nil {
		s.logger.Warn("media file did not match expected shape, falling back to defaults", zap.Error(err))
		return s.seedDefaults(ctx)
	}
	return cfg
}

// seedDefaults returns the compiled-in configuration and best-effort writes
// it back so subsequent reads find a valid file. The write-back failing is
// fine: the production filesystem may be read-only.
func (s *FileStore) seedDefaults(ctx context.Context) content.MediaConfig {
	cfg := content.DefaultMediaConfig()
	if err := s.writeJSON(s.mediaPath(), cfg); err != nil {
		s.logger.Debug("could not seed default media file", zap.Error(err))
	}
	return cfg
}

func (s *FileStore) WriteMediaConfig(ctx context.Context, cfg content.MediaConfig) {
	if err := s.writeJSON(s.mediaPath(), cfg); err != nil {
		s.logger.Warn("failed to write media config (filesystem may be read-only)", zap.Error(err))
	}
}

func (s *FileStore) writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
