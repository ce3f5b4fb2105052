// Package contentclient is the Go client for the portfolio content API: an
// Editor mirroring the admin dashboard's local-state-then-save flow, and a
// Poller giving viewers near-real-time propagation of admin edits.
package contentclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/vedag812/netfolio-api/internal/domain/content"
)

// ErrSessionExpired reports that the server rejected the cached admin
// token; the caller must obtain a fresh token before saving again.
var ErrSessionExpired = errors.New("admin session expired, token rejected")

// ErrNoToken reports a save attempt with no token loaded.
var ErrNoToken = errors.New("no admin token set")

// Editor holds a full editable copy of both content documents. Every
// mutation touches only local state; nothing reaches the server until an
// explicit SaveProjects/SaveMedia, which submits the whole document. A
// failed save leaves local state untouched.
//
// The editor models a single operator at a keyboard and is not safe for
// concurrent use.
type Editor struct {
	baseURL string
	token   string
	http    *http.Client

	Projects []content.ProjectRecord
	Media    content.MediaConfig

	loaded bool
	newID  func() string
}

// SaveResult reports a successful projects save, including which medium
// held the write.
type SaveResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	ProjectCount int    `json:"projectCount"`
	Storage      string `json:"storage"`
}

func NewEditor(baseURL, token string) *Editor {
	return &Editor{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
		// Time-based ids, matching what the dashboard has always written.
		newID: func() string { return strconv.FormatInt(time.Now().UnixMilli(), 10) },
	}
}

func (e *Editor) Authenticated() bool { return e.token != "" }

func (e *Editor) SetToken(token string) { e.token = token }

// Load fetches both documents once. Mutations and saves operate on this
// local copy from here on.
func (e *Editor) Load(ctx context.Context) error {
	var doc content.ProjectsDocument
	if err := e.getJSON(ctx, "/api/projects", &doc); err != nil {
		return fmt.Errorf("load projects: %w", err)
	}

	var media content.MediaConfig
	if err := e.getJSON(ctx, "/api/media", &media); err != nil {
		return fmt.Errorf("load media config: %w", err)
	}

	if doc.Projects == nil {
		doc.Projects = []content.ProjectRecord{}
	}
	e.Projects = doc.Projects
	e.Media = media
	e.loaded = true
	return nil
}

// AddProject inserts a fresh project at the front (most-recent-first, the
// dashboard's insert position) and returns a pointer so the caller can
// open it for editing immediately.
func (e *Editor) AddProject() *content.ProjectRecord {
	record := content.ProjectRecord{
		ID:           e.newID(),
		Title:        "New Project",
		Description:  "Project description",
		Image:        "https://images.unsplash.com/photo-1555066931-4365d14bab8c?w=500",
		Technologies: []string{},
		Featured:     false,
		Visible:      true,
		Category:     "Web Development",
	}
	e.Projects = append([]content.ProjectRecord{record}, e.Projects...)
	return &e.Projects[0]
}

// UpdateProject replaces the record with a matching id.
func (e *Editor) UpdateProject(record content.ProjectRecord) bool {
	for i := range e.Projects {
		if e.Projects[i].ID == record.ID {
			e.Projects[i] = record
			return true
		}
	}
	return false
}

// RemoveProject deletes from local state only. Confirmation is the
// caller's responsibility; the dashboard always asks before calling this.
func (e *Editor) RemoveProject(id string) bool {
	for i := range e.Projects {
		if e.Projects[i].ID == id {
			e.Projects = append(e.Projects[:i], e.Projects[i+1:]...)
			return true
		}
	}
	return false
}

func (e *Editor) ToggleFeatured(id string) bool {
	for i := range e.Projects {
		if e.Projects[i].ID == id {
			e.Projects[i].Featured = !e.Projects[i].Featured
			return true
		}
	}
	return false
}

func (e *Editor) ToggleVisible(id string) bool {
	for i := range e.Projects {
		if e.Projects[i].ID == id {
			e.Projects[i].Visible = !e.Projects[i].Visible
			return true
		}
	}
	return false
}

func (e *Editor) SetProfileImage(url string) {
	e.Media.ProfileImage = url
}

func (e *Editor) SetProfileAvatar(profile content.ProfileKey, url string) {
	p := e.Media.Profiles[profile]
	p.Image = url
	e.ensureProfiles()
	e.Media.Profiles[profile] = p
}

func (e *Editor) SetBackgroundGif(profile content.ProfileKey, url string) {
	p := e.Media.Profiles[profile]
	p.BackgroundGif = url
	e.ensureProfiles()
	e.Media.Profiles[profile] = p
}

func (e *Editor) SetSectionBackground(profile content.ProfileKey, section content.SectionKey, url string) {
	e.ensureProfiles()
	p := e.Media.Profiles[profile]
	if p.Backgrounds == nil {
		p.Backgrounds = map[content.SectionKey]string{}
	}
	p.Backgrounds[section] = url
	e.Media.Profiles[profile] = p
}

func (e *Editor) ensureProfiles() {
	if e.Media.Profiles == nil {
		e.Media.Profiles = map[content.ProfileKey]content.ProfileConfig{}
	}
}

// SaveProjects submits the whole projects document. On 401 the cached
// token is cleared and ErrSessionExpired returned so the caller forces
// re-authentication; local edits survive every failure mode.
func (e *Editor) SaveProjects(ctx context.Context) (*SaveResult, error) {
	if e.token == "" {
		return nil, ErrNoToken
	}

	body, err := json.Marshal(content.ProjectsDocument{Projects: e.Projects})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/api/projects", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.token)

	resp, err := e.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		e.token = ""
		return nil, ErrSessionExpired
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("save projects failed with status %d", resp.StatusCode)
	}

	var result SaveResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SaveMedia submits the whole media configuration, authenticating with the
// x-admin-token header the media endpoint prefers.
func (e *Editor) SaveMedia(ctx context.Context) error {
	if e.token == "" {
		return ErrNoToken
	}

	body, err := json.Marshal(e.Media)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, e.baseURL+"/api/media", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-admin-token", e.token)

	resp, err := e.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		e.token = ""
		return ErrSessionExpired
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("save media failed with status %d", resp.StatusCode)
	}
	return nil
}

func (e *Editor) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := e.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s returned status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
