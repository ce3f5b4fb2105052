package main

import (
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/vedag812/netfolio-api/adapters/event"
	"github.com/vedag812/netfolio-api/adapters/feeds"
	httpAdapter "github.com/vedag812/netfolio-api/adapters/http"
	"github.com/vedag812/netfolio-api/adapters/mail"
	"github.com/vedag812/netfolio-api/adapters/media_storage"
	"github.com/vedag812/netfolio-api/adapters/persistence"
	"github.com/vedag812/netfolio-api/internal/application/service"
	contactUC "github.com/vedag812/netfolio-api/internal/application/usecase/contact"
	contentUC "github.com/vedag812/netfolio-api/internal/application/usecase/content"
	feedUC "github.com/vedag812/netfolio-api/internal/application/usecase/feed"
	"github.com/vedag812/netfolio-api/internal/config"
	"github.com/vedag812/netfolio-api/pkg/logger"
)

func main() {
	fmt.Println("Start Netfolio API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	// Object storage (optional): the durable medium on cloud hosts.
	var objects service.ObjectStore
	if cfg.BlobConfigured() {
		objects, err = media_storage.NewCloudinaryAdapter(cfg)
		if err != nil {
			appLogger.Fatal("cannot initialize Cloudinary", err)
		}
		appLogger.Info("connect Cloudinary successfully")
	} else {
		appLogger.Info("no Cloudinary credentials, content stays on the local filesystem")
	}

	// Content store selected once at startup.
	store := persistence.NewContentStore(cfg, objects, appLogger)

	// Redis (optional): feed cache and contact rate limiting.
	var cache service.Cache
	var limiter service.RateLimiter
	if cfg.Redis.Addr != "" {
		redisClient, err := persistence.NewRedisClient(cfg)
		if err != nil {
			appLogger.Fatal("cannot connect Redis", err)
		}
		defer redisClient.Close()
		appLogger.Info("connect Redis successfully")

		cache = persistence.NewRedisCache(redisClient)
		limiter = persistence.NewRedisRateLimiter(redisClient, 5, time.Hour)
	}

	// Kafka (optional): content change events for the backup worker.
	var kafkaClient *event.KafkaProducerClient
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err = event.NewKafkaProducerClient(cfg)
		if err != nil {
			appLogger.Fatal("cannot init Kafka", err)
		}
		defer kafkaClient.Close()
		appLogger.Info("initialize Kafka producer successfully")
	}

	// Use Cases
	getProjectsUseCase := contentUC.NewGetProjectsUseCase(store)
	replaceProjectsUseCase := contentUC.NewReplaceProjectsUseCase(store, kafkaClient, appLogger)
	getMediaUseCase := contentUC.NewGetMediaConfigUseCase(store)
	replaceMediaUseCase := contentUC.NewReplaceMediaConfigUseCase(store, kafkaClient, appLogger)

	githubUseCase := feedUC.NewGetGitHubProjectsUseCase(
		feeds.NewGitHubFetcher(cfg.Feeds.GitHubUsername), cache, cfg.Feeds.CacheTTL, appLogger)
	huggingFaceUseCase := feedUC.NewGetHuggingFaceProjectsUseCase(
		feeds.NewHuggingFaceFetcher(cfg.Feeds.HuggingFaceUsername), cache, cfg.Feeds.CacheTTL, appLogger)

	// HTTP Handlers
	contentHandler := httpAdapter.NewContentHandler(
		getProjectsUseCase,
		replaceProjectsUseCase,
		getMediaUseCase,
		replaceMediaUseCase,
		appLogger,
	)
	feedHandler := httpAdapter.NewFeedHandler(githubUseCase, huggingFaceUseCase)

	var contactHandler *httpAdapter.ContactHandler
	if mailer, err := mail.NewSMTPSender(cfg); err != nil {
		appLogger.Warn("contact form disabled", zap.Error(err))
	} else {
		submitContactUseCase := contactUC.NewSubmitContactUseCase(mailer, limiter, appLogger)
		contactHandler = httpAdapter.NewContactHandler(submitContactUseCase)
	}

	router := httpAdapter.NewRouter(httpAdapter.RouterDeps{
		Content:    contentHandler,
		Feeds:      feedHandler,
		Contact:    contactHandler,
		AdminToken: cfg.Admin.Token,
		Logger:     appLogger,
	})

	appLogger.Info("server running", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}
