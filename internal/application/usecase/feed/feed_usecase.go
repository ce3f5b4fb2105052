package feed

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/vedag812/netfolio-api/internal/application/service"
	"github.com/vedag812/netfolio-api/internal/domain/feed"
	"github.com/vedag812/netfolio-api/pkg/logger"
)

const (
	cacheKeyGitHub      = "feeds:github-projects"
	cacheKeyHuggingFace = "feeds:huggingface-projects"
)

// GetGitHubProjectsUseCase serves the GitHub showcase, keeping a
// bounded-TTL cached copy so the upstream API is hit at most once per TTL.
// Upstream failure after a cache miss degrades to an empty list, the same
// soft policy the content reads follow.
type GetGitHubProjectsUseCase struct {
	fetcher feed.GitHubFetcher
	cache   service.Cache
	ttl     time.Duration
	logger  logger.Logger
}

func NewGetGitHubProjectsUseCase(fetcher feed.GitHubFetcher, cache service.Cache, ttl time.Duration, log logger.Logger) *GetGitHubProjectsUseCase {
	return &GetGitHubProjectsUseCase{fetcher: fetcher, cache: cache, ttl: ttl, logger: log}
}

func (uc *GetGitHubProjectsUseCase) Execute(ctx context.Context) []feed.GitHubProject {
	var projects []feed.GitHubProject
	if hitCache(ctx, uc.cache, cacheKeyGitHub, &projects, uc.logger) {
		return projects
	}

	projects, err := uc.fetcher.FetchProjects(ctx)
	if err != nil {
		uc.logger.Warn("GitHub feed unavailable, serving empty list", zap.Error(err))
		return []feed.GitHubProject{}
	}

	fillCache(ctx, uc.cache, cacheKeyGitHub, projects, uc.ttl, uc.logger)
	return projects
}

type GetHuggingFaceProjectsUseCase struct {
	fetcher feed.HuggingFaceFetcher
	cache   service.Cache
	ttl     time.Duration
	logger  logger.Logger
}

func NewGetHuggingFaceProjectsUseCase(fetcher feed.HuggingFaceFetcher, cache service.Cache, ttl time.Duration, log logger.Logger) *GetHuggingFaceProjectsUseCase {
	return &GetHuggingFaceProjectsUseCase{fetcher: fetcher, cache: cache, ttl: ttl, logger: log}
}

func (uc *GetHuggingFaceProjectsUseCase) Execute(ctx context.Context) []feed.HuggingFaceProject {
	var projects []feed.HuggingFaceProject
	if hitCache(ctx, uc.cache, cacheKeyHuggingFace, &projects, uc.logger) {
		return projects
	}

	projects, err := uc.fetcher.FetchProjects(ctx)
	if err != nil {
		uc.logger.Warn("Hugging Face feed unavailable, serving empty list", zap.Error(err))
		return []feed.HuggingFaceProject{}
	}

	fillCache(ctx, uc.cache, cacheKeyHuggingFace, projects, uc.ttl, uc.logger)
	return projects
}

// hitCache decodes a cached feed entry into out. A nil cache, a miss, or a
// corrupt entry all read as a miss.
func hitCache(ctx context.Context, cache service.Cache, key string, out any, log logger.Logger) bool {
	if cache == nil {
		return false
	}
	raw, found, err := cache.Get(ctx, key)
	if err != nil {
		log.Warn("feed cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		log.Warn("feed cache entry is corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func fillCache(ctx context.Context, cache service.Cache, key string, v any, ttl time.Duration, log logger.Logger) {
	if cache == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := cache.Set(ctx, key, string(raw), ttl); err != nil {
		log.Warn("feed cache write failed", zap.String("key", key), zap.Error(err))
	}
}
