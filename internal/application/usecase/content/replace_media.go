package content

import (
	"context"
	"errors"

	"github.com/vedag812/netfolio-api/adapters/event"
	"github.com/vedag812/netfolio-api/internal/domain/content"
	"github.com/vedag812/netfolio-api/pkg/apperror"
	"github.com/vedag812/netfolio-api/pkg/logger"
)

type ReplaceMediaConfigUseCase struct {
	store       content.Store
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewReplaceMediaConfigUseCase(store content.Store, kClient *event.KafkaProducerClient, log logger.Logger) *ReplaceMediaConfigUseCase {
	return &ReplaceMediaConfigUseCase{store: store, kafkaClient: kClient, logger: log}
}

// Execute validates the raw payload and replaces the media configuration.
// A payload that fails validation is rejected whole, never partially
// merged.
func (uc *ReplaceMediaConfigUseCase) Execute(ctx context.Context, payload []byte) error {
	cfg, err := content.ParseMediaConfig(payload)
	if err != nil {
		if errors.Is(err, content.ErrInvalidMediaConfig) {
			return apperror.NewInvalidInput("payload does not match expected schema", err)
		}
		return apperror.NewInvalidInput("invalid JSON payload", err)
	}

	uc.store.WriteMediaConfig(ctx, cfg)

	uc.logger.Info("media config replaced")

	if uc.kafkaClient != nil {
		go func() {
			err := uc.kafkaClient.PublishContentEvent(context.Background(), event.ContentEventPayload{
				EventType: event.ContentEventMediaUpdated,
			})
			if err != nil {
				uc.logger.Error("failed to publish media.updated event", err)
			}
		}()
	}

	return nil
}
