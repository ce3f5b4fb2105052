package feed

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedag812/netfolio-api/internal/domain/feed"
	"github.com/vedag812/netfolio-api/pkg/logger"
)

type fakeGitHubFetcher struct {
	projects []feed.GitHubProject
	err      error
	calls    int
}

func (f *fakeGitHubFetcher) FetchProjects(ctx context.Context) ([]feed.GitHubProject, error) {
	f.calls++
	return f.projects, f.err
}

type fakeCache struct {
	entries map[string]string
	getErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]string{}}
}

func (c *fakeCache) Get(ctx context.Context, key string) (string, bool, error) {
	if c.getErr != nil {
		return "", false, c.getErr
	}
	val, ok := c.entries[key]
	return val, ok, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	c.entries[key] = value
	return nil
}

func sampleGitHubProjects() []feed.GitHubProject {
	return []feed.GitHubProject{
		{ID: 1, Name: "netfolio", Description: "portfolio", Stars: 12, Topics: []string{"go"}},
	}
}

func TestGetGitHubProjects_CacheMissFetchesAndFills(t *testing.T) {
	fetcher := &fakeGitHubFetcher{projects: sampleGitHubProjects()}
	cache := newFakeCache()
	uc := NewGetGitHubProjectsUseCase(fetcher, cache, time.Hour, logger.NewNop())

	got := uc.Execute(context.Background())
	assert.Equal(t, sampleGitHubProjects(), got)
	assert.Equal(t, 1, fetcher.calls)

	cached, ok := cache.entries[cacheKeyGitHub]
	require.True(t, ok, "response should be cached")
	var stored []feed.GitHubProject
	require.NoError(t, json.Unmarshal([]byte(cached), &stored))
	assert.Equal(t, sampleGitHubProjects(), stored)
}

func TestGetGitHubProjects_CacheHitSkipsUpstream(t *testing.T) {
	fetcher := &fakeGitHubFetcher{projects: sampleGitHubProjects()}
	cache := newFakeCache()
	uc := NewGetGitHubProjectsUseCase(fetcher, cache, time.Hour, logger.NewNop())

	uc.Execute(context.Background())
	uc.Execute(context.Background())

	assert.Equal(t, 1, fetcher.calls, "second call must be served from cache")
}

func TestGetGitHubProjects_UpstreamFailureDegradesToEmpty(t *testing.T) {
	fetcher := &fakeGitHubFetcher{err: errors.New("rate limited")}
	uc := NewGetGitHubProjectsUseCase(fetcher, newFakeCache(), time.Hour, logger.NewNop())

	got := uc.Execute(context.Background())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetGitHubProjects_BrokenCacheFallsThrough(t *testing.T) {
	fetcher := &fakeGitHubFetcher{projects: sampleGitHubProjects()}
	cache := newFakeCache()
	cache.getErr = errors.New("redis down")
	uc := NewGetGitHubProjectsUseCase(fetcher, cache, time.Hour, logger.NewNop())

	got := uc.Execute(context.Background())
	assert.Equal(t, sampleGitHubProjects(), got)
	assert.Equal(t, 1, fetcher.calls)
}

func TestGetGitHubProjects_CorruptCacheEntryRefetches(t *testing.T) {
	fetcher := &fakeGitHubFetcher{projects: sampleGitHubProjects()}
	cache := newFakeCache()
	cache.entries[cacheKeyGitHub] = "{corrupt"
	uc := NewGetGitHubProjectsUseCase(fetcher, cache, time.Hour, logger.NewNop())

	got := uc.Execute(context.Background())
	assert.Equal(t, sampleGitHubProjects(), got)
	assert.Equal(t, 1, fetcher.calls)
}

func TestGetGitHubProjects_NilCacheAlwaysFetches(t *testing.T) {
	fetcher := &fakeGitHubFetcher{projects: sampleGitHubProjects()}
	uc := NewGetGitHubProjectsUseCase(fetcher, nil, time.Hour, logger.NewNop())

	uc.Execute(context.Background())
	uc.Execute(context.Background())
	assert.Equal(t, 2, fetcher.calls)
}

type fakeHuggingFaceFetcher struct {
	projects []feed.HuggingFaceProject
	err      error
}

func (f *fakeHuggingFaceFetcher) FetchProjects(ctx context.Context) ([]feed.HuggingFaceProject, error) {
	return f.projects, f.err
}

func TestGetHuggingFaceProjects(t *testing.T) {
	spaces := []feed.HuggingFaceProject{{ID: "u/space", Name: "space", Likes: 3, Source: "huggingface", Tags: []string{}}}
	cache := newFakeCache()
	uc := NewGetHuggingFaceProjectsUseCase(&fakeHuggingFaceFetcher{projects: spaces}, cache, time.Hour, logger.NewNop())

	assert.Equal(t, spaces, uc.Execute(context.Background()))
	_, ok := cache.entries[cacheKeyHuggingFace]
	assert.True(t, ok)

	failing := NewGetHuggingFaceProjectsUseCase(&fakeHuggingFaceFetcher{err: errors.New("down")}, nil, time.Hour, logger.NewNop())
	assert.Empty(t, failing.Execute(context.Background()))
}
