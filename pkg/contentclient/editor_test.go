package contentclient

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/vedag812/netfolio-api/adapters/http"
	"github.com/vedag812/netfolio-api/adapters/persistence"
	contentUC "github.com/vedag812/netfolio-api/internal/application/usecase/content"
	"github.com/vedag812/netfolio-api/internal/domain/content"
	"github.com/vedag812/netfolio-api/pkg/logger"
)

const editorTestToken = "editor-token"

func newTestServer(t *testing.T) (*httptest.Server, content.Store) {
	t.Helper()
	appLogger := logger.NewNop()
	store := persistence.NewFileStore(t.TempDir(), appLogger)

	handler := httpAdapter.NewContentHandler(
		contentUC.NewGetProjectsUseCase(store),
		contentUC.NewReplaceProjectsUseCase(store, nil, appLogger),
		contentUC.NewGetMediaConfigUseCase(store),
		contentUC.NewReplaceMediaConfigUseCase(store, nil, appLogger),
		appLogger,
	)

	gin.SetMode(gin.TestMode)
	router := httpAdapter.NewRouter(httpAdapter.RouterDeps{
		Content:    handler,
		AdminToken: editorTestToken,
		Logger:     appLogger,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, store
}

func TestEditor_LoadFreshDeployment(t *testing.T) {
	server, _ := newTestServer(t)
	editor := NewEditor(server.URL, editorTestToken)

	require.NoError(t, editor.Load(context.Background()))
	assert.Empty(t, editor.Projects)
	assert.Equal(t, content.DefaultMediaConfig(), editor.Media)
}

func TestEditor_LocalMutationsDoNotPersist(t *testing.T) {
	server, store := newTestServer(t)
	editor := NewEditor(server.URL, editorTestToken)
	ctx := context.Background()
	require.NoError(t, editor.Load(ctx))

	record := editor.AddProject()
	record.Title = "Edited locally"
	editor.SetProfileImage("/local-only.jpg")

	// Nothing reached the server yet.
	assert.Empty(t, store.ReadProjects(ctx).Projects)
	assert.Equal(t, content.DefaultMediaConfig(), store.ReadMediaConfig(ctx))
}

func TestEditor_AddProjectPrependsAndOpensForEditing(t *testing.T) {
	server, _ := newTestServer(t)
	editor := NewEditor(server.URL, editorTestToken)
	require.NoError(t, editor.Load(context.Background()))

	ids := map[string]bool{}
	first := editor.AddProject()
	ids[first.ID] = true
	second := editor.AddProject()
	ids[second.ID] = true

	assert.Len(t, ids, 2, "each added project gets a fresh id")
	assert.Equal(t, second.ID, editor.Projects[0].ID, "newest project sits first")
	assert.True(t, editor.Projects[0].Visible)
	assert.False(t, editor.Projects[0].Featured)
}

func TestEditor_SaveProjectsRoundTrip(t *testing.T) {
	server, store := newTestServer(t)
	editor := NewEditor(server.URL, editorTestToken)
	ctx := context.Background()
	require.NoError(t, editor.Load(ctx))

	record := editor.AddProject()
	record.Title = "Shipped"
	editor.ToggleFeatured(record.ID)

	result, err := editor.SaveProjects(ctx)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.ProjectCount)
	assert.Equal(t, content.MediumLocalFile, result.Storage)

	persisted := store.ReadProjects(ctx)
	require.Len(t, persisted.Projects, 1)
	assert.Equal(t, "Shipped", persisted.Projects[0].Title)
	assert.True(t, persisted.Projects[0].Featured)
}

func TestEditor_RemoveAndToggle(t *testing.T) {
	server, _ := newTestServer(t)
	editor := NewEditor(server.URL, editorTestToken)
	require.NoError(t, editor.Load(context.Background()))

	record := editor.AddProject()
	id := record.ID

	assert.True(t, editor.ToggleVisible(id))
	assert.False(t, editor.Projects[0].Visible)

	assert.True(t, editor.RemoveProject(id))
	assert.Empty(t, editor.Projects)
	assert.False(t, editor.RemoveProject(id), "second delete finds nothing")
	assert.False(t, editor.ToggleVisible(id))
}

func TestEditor_SaveWith401ClearsTokenAndKeepsState(t *testing.T) {
	server, store := newTestServer(t)
	editor := NewEditor(server.URL, "stale-token")
	ctx := context.Background()
	require.NoError(t, editor.Load(ctx))

	record := editor.AddProject()
	record.Title = "Unsaved work"

	_, err := editor.SaveProjects(ctx)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.False(t, editor.Authenticated(), "401 clears the cached token")

	// Local edits survive the failed save; the server saw nothing.
	require.Len(t, editor.Projects, 1)
	assert.Equal(t, "Unsaved work", editor.Projects[0].Title)
	assert.Empty(t, store.ReadProjects(ctx).Projects)

	// Re-authenticating lets the same state save.
	editor.SetToken(editorTestToken)
	_, err = editor.SaveProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, store.ReadProjects(ctx).Projects, 1)
}

func TestEditor_SaveMedia(t *testing.T) {
	server, store := newTestServer(t)
	editor := NewEditor(server.URL, editorTestToken)
	ctx := context.Background()
	require.NoError(t, editor.Load(ctx))

	editor.SetProfileImage("/fresh.jpg")
	editor.SetSectionBackground(content.ProfileStudent, content.SectionSkills, "/skills-bg.png")
	editor.SetBackgroundGif(content.ProfileExplorer, "/explorer.gif")

	require.NoError(t, editor.SaveMedia(ctx))

	persisted := store.ReadMediaConfig(ctx)
	assert.Equal(t, "/fresh.jpg", persisted.ProfileImage)
	assert.Equal(t, "/skills-bg.png", persisted.Profiles[content.ProfileStudent].Backgrounds[content.SectionSkills])
	assert.Equal(t, "/explorer.gif", persisted.Profiles[content.ProfileExplorer].BackgroundGif)
}

func TestEditor_SaveMediaWith401ClearsToken(t *testing.T) {
	server, _ := newTestServer(t)
	editor := NewEditor(server.URL, "stale-token")
	ctx := context.Background()
	require.NoError(t, editor.Load(ctx))

	err := editor.SaveMedia(ctx)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.False(t, editor.Authenticated())
}

func TestEditor_SaveWithoutToken(t *testing.T) {
	server, _ := newTestServer(t)
	editor := NewEditor(server.URL, "")

	_, err := editor.SaveProjects(context.Background())
	assert.ErrorIs(t, err, ErrNoToken)
	assert.ErrorIs(t, editor.SaveMedia(context.Background()), ErrNoToken)
}
