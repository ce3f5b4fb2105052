package contact

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vedag812/netfolio-api/internal/application/service"
	"github.com/vedag812/netfolio-api/internal/domain/contact"
	"github.com/vedag812/netfolio-api/pkg/apperror"
	"github.com/vedag812/netfolio-api/pkg/logger"
)

type SubmitContactUseCase struct {
	mailer  service.Mailer
	limiter service.RateLimiter
	logger  logger.Logger

	// hashingSalt keeps raw client addresses out of the rate-limit keys.
	hashingSalt string
}

// NewSubmitContactUseCase accepts a nil limiter; rate limiting is skipped
// when no redis is configured.
func NewSubmitContactUseCase(mailer service.Mailer, limiter service.RateLimiter, log logger.Logger) *SubmitContactUseCase {
	return &SubmitContactUseCase{
		mailer:      mailer,
		limiter:     limiter,
		logger:      log,
		hashingSalt: generateSalt(),
	}
}

func generateSalt() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "contact-fallback-salt"
	}
	return hex.EncodeToString(b)
}

type SubmitContactInput struct {
	Name     string
	Email    string
	Message  string
	ClientIP string
}

func (uc *SubmitContactUseCase) Execute(ctx context.Context, input SubmitContactInput) error {
	msg := contact.Message{
		ID:         uuid.New(),
		Name:       input.Name,
		Email:      input.Email,
		Body:       input.Message,
		ReceivedAt: time.Now().UTC(),
	}
	if err := msg.Validate(); err != nil {
		return apperror.NewInvalidInput("contact form validation failed", err)
	}

	if uc.limiter != nil {
		allowed, err := uc.limiter.Allow(ctx, "contact:"+uc.hashClientIP(input.ClientIP))
		if err != nil {
			// A broken limiter should not take the contact form down.
			uc.logger.Warn("contact rate limiter unavailable, allowing request", zap.Error(err))
		} else if !allowed {
			return apperror.NewRateLimited("too many contact submissions from this client")
		}
	}

	if err := uc.mailer.Send(ctx, msg); err != nil {
		return apperror.NewUpstream("failed to deliver contact mail", err)
	}

	uc.logger.Info("contact message delivered", zap.String("message_id", msg.ID.String()))
	return nil
}

// hashClientIP hashes with a per-process salt, truncated for key brevity.
func (uc *SubmitContactUseCase) hashClientIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + uc.hashingSalt))
	return hex.EncodeToString(sum[:])[:16]
}
