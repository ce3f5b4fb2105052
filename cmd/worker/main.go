package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/vedag812/netfolio-api/adapters/event"
	"github.com/vedag812/netfolio-api/adapters/media_storage"
	"github.com/vedag812/netfolio-api/adapters/persistence"
	backupUC "github.com/vedag812/netfolio-api/internal/application/usecase/backup"
	"github.com/vedag812/netfolio-api/internal/config"
	"github.com/vedag812/netfolio-api/pkg/logger"
)

// The worker consumes content change events and uploads timestamped
// snapshots of the affected document to the object store.
func main() {
	fmt.Println("Starting Netfolio Backup Worker...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	if len(cfg.Kafka.Brokers) == 0 {
		appLogger.Fatal("worker requires Kafka brokers to be configured", nil)
	}

	objects, err := media_storage.NewCloudinaryAdapter(cfg)
	if err != nil {
		appLogger.Fatal("worker requires Cloudinary for snapshot storage", err)
	}

	store := persistence.NewContentStore(cfg, objects, appLogger)
	backupUseCase := backupUC.NewBackupUseCase(store, objects, appLogger)

	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicContentEvents,
		GroupID:  "content-backup-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicContentEvents)

	ctx := context.Background()
	for {
		msg, err := consumer.ReadMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to read message from Kafka: %v", err)
			continue
		}

		var payload event.ContentEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Printf("ERROR: Failed to unmarshal event: %v. Skipping.", err)
			continue
		}

		log.Printf("Processing event: [%s] id=%s", payload.EventType, payload.EventID)

		if err := backupUseCase.Execute(ctx, payload); err != nil {
			log.Printf("ERROR: Failed to back up after event %s: %v", payload.EventID, err)
		}
	}
}
