package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/vedag812/netfolio-api/internal/domain/feed"
)

const huggingFaceAPIURL = "https://huggingface.co/api"

type huggingFaceFetcher struct {
	username string
	http     *http.Client
}

func NewHuggingFaceFetcher(username string) feed.HuggingFaceFetcher {
	return &huggingFaceFetcher{
		username: username,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

type huggingFaceSpace struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Likes       int      `json:"likes"`
	Tags        []string `json:"tags"`
}

func (f *huggingFaceFetcher) FetchProjects(ctx context.Context) ([]feed.HuggingFaceProject, error) {
	url := fmt.Sprintf("%s/spaces?author=%s&limit=50", huggingFaceAPIURL, f.username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Hugging Face spaces: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Hugging Face API returned status %d", resp.StatusCode)
	}

	var spaces []huggingFaceSpace
	if err := json.NewDecoder(resp.Body).Decode(&spaces); err != nil {
		return nil, fmt.Errorf("cannot decode Hugging Face response: %w", err)
	}

	projects := make([]feed.HuggingFaceProject, 0, len(spaces))
	for _, space := range spaces {
		name := space.Name
		if name == "" {
			name = space.ID
		}
		spaceURL := fmt.Sprintf("https://huggingface.co/spaces/%s/%s", f.username, name)
		tags := space.Tags
		if tags == nil {
			tags = []string{}
		}
		projects = append(projects, feed.HuggingFaceProject{
			ID:          space.ID,
			Name:        name,
			Description: space.Description,
			URL:         spaceURL,
			DemoURL:     spaceURL,
			Likes:       space.Likes,
			Tags:        tags,
			Source:      "huggingface",
		})
	}

	return projects, nil
}
