package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	feedUC "github.com/vedag812/netfolio-api/internal/application/usecase/feed"
)

type FeedHandler struct {
	githubUseCase      *feedUC.GetGitHubProjectsUseCase
	huggingFaceUseCase *feedUC.GetHuggingFaceProjectsUseCase
}

func NewFeedHandler(githubUC *feedUC.GetGitHubProjectsUseCase, hfUC *feedUC.GetHuggingFaceProjectsUseCase) *FeedHandler {
	return &FeedHandler{githubUseCase: githubUC, huggingFaceUseCase: hfUC}
}

func (h *FeedHandler) GetGitHubProjects(c *gin.Context) {
	c.JSON(http.StatusOK, h.githubUseCase.Execute(c.Request.Context()))
}

func (h *FeedHandler) GetHuggingFaceProjects(c *gin.Context) {
	c.JSON(http.StatusOK, h.huggingFaceUseCase.Execute(c.Request.Context()))
}
