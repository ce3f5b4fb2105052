package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	contentUC "github.com/vedag812/netfolio-api/internal/application/usecase/content"
	"github.com/vedag812/netfolio-api/adapters/persistence"
	"github.com/vedag812/netfolio-api/internal/domain/content"
	"github.com/vedag812/netfolio-api/pkg/logger"
)

const testAdminToken = "test-admin-token"

type ContentAPITestSuite struct {
	suite.Suite
	Router *gin.Engine
	Store  content.Store
}

func (s *ContentAPITestSuite) SetupTest() {
	appLogger := logger.NewNop()
	store := persistence.NewFileStore(s.T().TempDir(), appLogger)

	handler := NewContentHandler(
		contentUC.NewGetProjectsUseCase(store),
		contentUC.NewReplaceProjectsUseCase(store, nil, appLogger),
		contentUC.NewGetMediaConfigUseCase(store),
		contentUC.NewReplaceMediaConfigUseCase(store, nil, appLogger),
		appLogger,
	)

	gin.SetMode(gin.TestMode)
	s.Router = NewRouter(RouterDeps{
		Content:    handler,
		AdminToken: testAdminToken,
		Logger:     appLogger,
	})
	s.Store = store
}

func TestContentAPI(t *testing.T) {
	suite.Run(t, new(ContentAPITestSuite))
}

func (s *ContentAPITestSuite) do(method, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func sampleDocument() content.ProjectsDocument {
	return content.ProjectsDocument{Projects: []content.ProjectRecord{
		{
			ID:           "1700000000000",
			Title:        "Netfolio",
			Description:  "Netflix-style portfolio site",
			Image:        "https://example.com/shot.png",
			Technologies: []string{"Go", "Gin"},
			GitHub:       "https://github.com/vedag812/netfolio",
			Demo:         "https://netfolio.example.com",
			Featured:     true,
			Visible:      true,
			Category:     "Web Development",
		},
		{ID: "1700000000001", Title: "Second", Technologies: []string{}, Visible: true},
	}}
}

func (s *ContentAPITestSuite) Test_GetProjects_FreshDeployment() {
	rr := s.do(http.MethodGet, "/api/projects", nil, nil)

	assert.Equal(s.T(), http.StatusOK, rr.Code)
	assert.Equal(s.T(), "no-store", rr.Header().Get("Cache-Control"))

	var doc content.ProjectsDocument
	require.NoError(s.T(), json.Unmarshal(rr.Body.Bytes(), &doc))
	assert.NotNil(s.T(), doc.Projects)
	assert.Empty(s.T(), doc.Projects)
}

func (s *ContentAPITestSuite) Test_Projects_RoundTrip() {
	doc := sampleDocument()
	body, _ := json.Marshal(doc)

	rr := s.do(http.MethodPost, "/api/projects", body, bearer(testAdminToken))
	require.Equal(s.T(), http.StatusOK, rr.Code)

	var saved map[string]any
	require.NoError(s.T(), json.Unmarshal(rr.Body.Bytes(), &saved))
	assert.Equal(s.T(), true, saved["success"])
	assert.Equal(s.T(), float64(2), saved["projectCount"])
	assert.Equal(s.T(), content.MediumLocalFile, saved["storage"])

	get := s.do(http.MethodGet, "/api/projects", nil, nil)
	require.Equal(s.T(), http.StatusOK, get.Code)

	var got content.ProjectsDocument
	require.NoError(s.T(), json.Unmarshal(get.Body.Bytes(), &got))
	assert.Equal(s.T(), doc, got)
}

func (s *ContentAPITestSuite) Test_Projects_BareArrayAccepted() {
	body, _ := json.Marshal(sampleDocument().Projects)

	rr := s.do(http.MethodPost, "/api/projects", body, bearer(testAdminToken))
	require.Equal(s.T(), http.StatusOK, rr.Code)

	var got content.ProjectsDocument
	get := s.do(http.MethodGet, "/api/projects", nil, nil)
	require.NoError(s.T(), json.Unmarshal(get.Body.Bytes(), &got))
	assert.Len(s.T(), got.Projects, 2)
}

func (s *ContentAPITestSuite) Test_Projects_DoublePostIdempotent() {
	body, _ := json.Marshal(sampleDocument())

	require.Equal(s.T(), http.StatusOK, s.do(http.MethodPost, "/api/projects", body, bearer(testAdminToken)).Code)
	once := s.do(http.MethodGet, "/api/projects", nil, nil).Body.String()

	require.Equal(s.T(), http.StatusOK, s.do(http.MethodPost, "/api/projects", body, bearer(testAdminToken)).Code)
	twice := s.do(http.MethodGet, "/api/projects", nil, nil).Body.String()

	assert.JSONEq(s.T(), once, twice)
}

func (s *ContentAPITestSuite) Test_Projects_WrongTokenLeavesStoreUnchanged() {
	seeded, _ := json.Marshal(sampleDocument())
	require.Equal(s.T(), http.StatusOK, s.do(http.MethodPost, "/api/projects", seeded, bearer(testAdminToken)).Code)

	intruder, _ := json.Marshal(content.ProjectsDocument{Projects: []content.ProjectRecord{{ID: "evil"}}})

	rr := s.do(http.MethodPost, "/api/projects", intruder, bearer("wrong"))
	assert.Equal(s.T(), http.StatusUnauthorized, rr.Code)
	assert.JSONEq(s.T(), `{"error":"Unauthorized"}`, rr.Body.String())

	rr = s.do(http.MethodPost, "/api/projects", intruder, nil)
	assert.Equal(s.T(), http.StatusUnauthorized, rr.Code)

	var got content.ProjectsDocument
	get := s.do(http.MethodGet, "/api/projects", nil, nil)
	require.NoError(s.T(), json.Unmarshal(get.Body.Bytes(), &got))
	assert.Equal(s.T(), sampleDocument(), got)
}

func (s *ContentAPITestSuite) Test_Projects_MalformedBody() {
	rr := s.do(http.MethodPost, "/api/projects", []byte("{not json"), bearer(testAdminToken))
	assert.Equal(s.T(), http.StatusBadRequest, rr.Code)
}

func (s *ContentAPITestSuite) Test_GetMedia_DefaultsAndNoStore() {
	rr := s.do(http.MethodGet, "/api/media", nil, nil)

	assert.Equal(s.T(), http.StatusOK, rr.Code)
	assert.Equal(s.T(), "no-store", rr.Header().Get("Cache-Control"))

	var cfg content.MediaConfig
	require.NoError(s.T(), json.Unmarshal(rr.Body.Bytes(), &cfg))
	assert.Equal(s.T(), content.DefaultMediaConfig(), cfg)
}

func (s *ContentAPITestSuite) Test_Media_RoundTrip() {
	cfg := content.DefaultMediaConfig()
	cfg.ProfileImage = "/updated-profile.jpg"
	body, _ := json.Marshal(cfg)

	rr := s.do(http.MethodPut, "/api/media", body, map[string]string{adminTokenHeader: testAdminToken})
	require.Equal(s.T(), http.StatusOK, rr.Code)
	assert.JSONEq(s.T(), `{"success":true}`, rr.Body.String())

	get := s.do(http.MethodGet, "/api/media", nil, nil)
	var got content.MediaConfig
	require.NoError(s.T(), json.Unmarshal(get.Body.Bytes(), &got))
	assert.Equal(s.T(), cfg, got)
}

func (s *ContentAPITestSuite) Test_Media_BearerHeaderAlsoAccepted() {
	body, _ := json.Marshal(content.DefaultMediaConfig())
	rr := s.do(http.MethodPut, "/api/media", body, bearer(testAdminToken))
	assert.Equal(s.T(), http.StatusOK, rr.Code)
}

func (s *ContentAPITestSuite) Test_Media_EmptyObjectRejected() {
	rr := s.do(http.MethodPut, "/api/media", []byte("{}"), map[string]string{adminTokenHeader: testAdminToken})
	assert.Equal(s.T(), http.StatusBadRequest, rr.Code)
}

func (s *ContentAPITestSuite) Test_Media_MissingSectionKeyLeavesStoreUnchanged() {
	raw, _ := json.Marshal(content.DefaultMediaConfig())
	var payload map[string]any
	require.NoError(s.T(), json.Unmarshal(raw, &payload))
	backgrounds := payload["profiles"].(map[string]any)["student"].(map[string]any)["backgrounds"].(map[string]any)
	delete(backgrounds, "skills")
	body, _ := json.Marshal(payload)

	rr := s.do(http.MethodPut, "/api/media", body, map[string]string{adminTokenHeader: testAdminToken})
	assert.Equal(s.T(), http.StatusBadRequest, rr.Code)

	get := s.do(http.MethodGet, "/api/media", nil, nil)
	var got content.MediaConfig
	require.NoError(s.T(), json.Unmarshal(get.Body.Bytes(), &got))
	assert.Equal(s.T(), content.DefaultMediaConfig(), got)
}

func (s *ContentAPITestSuite) Test_Media_InvalidJSONRejected() {
	rr := s.do(http.MethodPut, "/api/media", []byte("not json at all"), map[string]string{adminTokenHeader: testAdminToken})
	assert.Equal(s.T(), http.StatusBadRequest, rr.Code)
}

func (s *ContentAPITestSuite) Test_Media_BadTokenRejected() {
	body, _ := json.Marshal(content.DefaultMediaConfig())
	rr := s.do(http.MethodPut, "/api/media", body, map[string]string{adminTokenHeader: "wrong"})
	assert.Equal(s.T(), http.StatusUnauthorized, rr.Code)
}

func (s *ContentAPITestSuite) Test_Health() {
	rr := s.do(http.MethodGet, "/api/health", nil, nil)
	assert.Equal(s.T(), http.StatusOK, rr.Code)
	assert.JSONEq(s.T(), `{"status":"UP"}`, rr.Body.String())
}
