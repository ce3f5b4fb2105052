package content

import (
	"context"

	"go.uber.org/zap"

	"github.com/vedag812/netfolio-api/adapters/event"
	"github.com/vedag812/netfolio-api/internal/domain/content"
	"github.com/vedag812/netfolio-api/pkg/apperror"
	"github.com/vedag812/netfolio-api/pkg/logger"
)

type ReplaceProjectsUseCase struct {
	store       content.Store
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

// NewReplaceProjectsUseCase accepts a nil kafka client; change events are
// an optional bolt-on.
func NewReplaceProjectsUseCase(store content.Store, kClient *event.KafkaProducerClient, log logger.Logger) *ReplaceProjectsUseCase {
	return &ReplaceProjectsUseCase{store: store, kafkaClient: kClient, logger: log}
}

type ReplaceProjectsOutput struct {
	ProjectCount int
	Storage      string
}

// Execute replaces the whole projects document. There is no merge and no
// concurrency token: two racing admins overwrite each other and the last
// completed write wins.
func (uc *ReplaceProjectsUseCase) Execute(ctx context.Context, doc content.ProjectsDocument) (*ReplaceProjectsOutput, error) {
	if doc.Projects == nil {
		doc.Projects = []content.ProjectRecord{}
	}

	medium, err := uc.store.WriteProjects(ctx, doc)
	if err != nil {
		return nil, apperror.NewInternal("failed to persist projects document", err)
	}

	uc.logger.Info("projects document replaced",
		zap.Int("project_count", len(doc.Projects)),
		zap.String("storage", medium),
	)

	if uc.kafkaClient != nil {
		go func() {
			err := uc.kafkaClient.PublishContentEvent(context.Background(), event.ContentEventPayload{
				EventType: event.ContentEventProjectsUpdated,
				Storage:   medium,
			})
			if err != nil {
				uc.logger.Error("failed to publish projects.updated event", err)
			}
		}()
	}

	return &ReplaceProjectsOutput{ProjectCount: len(doc.Projects), Storage: medium}, nil
}
