package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/vedag812/netfolio-api/internal/domain/feed"
)

const githubAPIURL = "https://api.github.com"

// maxShowcaseProjects caps the carousel length on the site.
const maxShowcaseProjects = 6

type githubFetcher struct {
	username string
	http     *http.Client
}

func NewGitHubFetcher(username string) feed.GitHubFetcher {
	return &githubFetcher{
		username: username,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

type githubRepo struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	HTMLURL     string   `json:"html_url"`
	Language    string   `json:"language"`
	Stars       int      `json:"stargazers_count"`
	Topics      []string `json:"topics"`
	Fork        bool     `json:"fork"`
}

// FetchProjects returns the owner's most recently updated repositories,
// skipping forks and repos without a description, capped for the showcase.
func (f *githubFetcher) FetchProjects(ctx context.Context) ([]feed.GitHubProject, error) {
	url := fmt.Sprintf("%s/users/%s/repos?sort=updated&per_page=100&type=owner", githubAPIURL, f.username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch GitHub repos: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	var repos []githubRepo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, fmt.Errorf("cannot decode GitHub response: %w", err)
	}

	projects := make([]feed.GitHubProject, 0, maxShowcaseProjects)
	for _, repo := range repos {
		if repo.Fork || repo.Description == "" {
			continue
		}
		topics := repo.Topics
		if topics == nil {
			topics = []string{}
		}
		projects = append(projects, feed.GitHubProject{
			ID:          repo.ID,
			Name:        repo.Name,
			Description: repo.Description,
			URL:         repo.HTMLURL,
			Language:    repo.Language,
			Stars:       repo.Stars,
			Topics:      topics,
		})
		if len(projects) == maxShowcaseProjects {
			break
		}
	}

	return projects, nil
}
