package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vedag812/netfolio-api/pkg/logger"
)

// RouterDeps carries the wired handlers; the feed and contact handlers are
// optional and their routes are simply absent when nil.
type RouterDeps struct {
	Content    *ContentHandler
	Feeds      *FeedHandler
	Contact    *ContactHandler
	AdminToken string
	Logger     logger.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ErrorMiddleware(deps.Logger))

	adminGuard := AdminAuthMiddleware(deps.AdminToken, deps.Logger)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		api.GET("/projects", deps.Content.GetProjects)
		api.POST("/projects", adminGuard, deps.Content.ReplaceProjects)

		api.GET("/media", deps.Content.GetMediaConfig)
		api.PUT("/media", adminGuard, deps.Content.ReplaceMediaConfig)

		if deps.Feeds != nil {
			api.GET("/github-projects", deps.Feeds.GetGitHubProjects)
			api.GET("/huggingface-projects", deps.Feeds.GetHuggingFaceProjects)
		}

		if deps.Contact != nil {
			api.POST("/contact", deps.Contact.SubmitContact)
		}
	}

	return router
}
