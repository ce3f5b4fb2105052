package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	contentUC "github.com/vedag812/netfolio-api/internal/application/usecase/content"
	"github.com/vedag812/netfolio-api/pkg/apperror"
	"github.com/vedag812/netfolio-api/pkg/logger"
)

type ContentHandler struct {
	getProjectsUseCase     *contentUC.GetProjectsUseCase
	replaceProjectsUseCase *contentUC.ReplaceProjectsUseCase
	getMediaUseCase        *contentUC.GetMediaConfigUseCase
	replaceMediaUseCase    *contentUC.ReplaceMediaConfigUseCase
	logger                 logger.Logger
}

func NewContentHandler(
	getProjectsUC *contentUC.GetProjectsUseCase,
	replaceProjectsUC *contentUC.ReplaceProjectsUseCase,
	getMediaUC *contentUC.GetMediaConfigUseCase,
	replaceMediaUC *contentUC.ReplaceMediaConfigUseCase,
	log logger.Logger,
) *ContentHandler {
	return &ContentHandler{
		getProjectsUseCase:     getProjectsUC,
		replaceProjectsUseCase: replaceProjectsUC,
		getMediaUseCase:        getMediaUC,
		replaceMediaUseCase:    replaceMediaUC,
		logger:                 log,
	}
}

// GetProjects always answers 200; read failures degrade to an empty list
// inside the store. Served no-store so the admin poller and fresh tabs
// never see a stale cached copy.
func (h *ContentHandler) GetProjects(c *gin.Context) {
	doc := h.getProjectsUseCase.Execute(c.Request.Context())
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, doc)
}

func (h *ContentHandler) ReplaceProjects(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Error(apperror.NewInvalidInput("cannot read request body", err))
		return
	}

	doc, err := decodeProjectsPayload(body)
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid projects payload", err))
		return
	}

	output, err := h.replaceProjectsUseCase.Execute(c.Request.Context(), doc)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Projects updated successfully",
		"projectCount": output.ProjectCount,
		"storage":      output.Storage,
	})
}

func (h *ContentHandler) GetMediaConfig(c *gin.Context) {
	cfg := h.getMediaUseCase.Execute(c.Request.Context())
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, cfg)
}

func (h *ContentHandler) ReplaceMediaConfig(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Error(apperror.NewInvalidInput("cannot read request body", err))
		return
	}

	if err := h.replaceMediaUseCase.Execute(c.Request.Context(), body); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
