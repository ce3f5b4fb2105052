package feed

import "context"

// GitHubProject is a curated repository entry for the showcase carousel.
type GitHubProject struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Language    string   `json:"language"`
	Stars       int      `json:"stars"`
	Topics      []string `json:"topics"`
}

// HuggingFaceProject is a published Space entry.
type HuggingFaceProject struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	DemoURL     string   `json:"demoUrl,omitempty"`
	Likes       int      `json:"likes"`
	Tags        []string `json:"tags"`
	Source      string   `json:"source"`
}

// GitHubFetcher retrieves the curated repository list from the upstream API.
type GitHubFetcher interface {
	FetchProjects(ctx context.Context) ([]GitHubProject, error)
}

// HuggingFaceFetcher retrieves the published Spaces list.
type HuggingFaceFetcher interface {
	FetchProjects(ctx context.Context) ([]HuggingFaceProject, error)
}
