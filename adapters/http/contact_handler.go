package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contactUC "github.com/vedag812/netfolio-api/internal/application/usecase/contact"
	"github.com/vedag812/netfolio-api/pkg/apperror"
)

type ContactHandler struct {
	submitUseCase *contactUC.SubmitContactUseCase
}

func NewContactHandler(submitUC *contactUC.SubmitContactUseCase) *ContactHandler {
	return &ContactHandler{submitUseCase: submitUC}
}

func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid contact form data", err))
		return
	}

	input := contactUC.SubmitContactInput{
		Name:     req.Name,
		Email:    req.Email,
		Message:  req.Message,
		ClientIP: c.ClientIP(),
	}

	if err := h.submitUseCase.Execute(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Email sent successfully"})
}
