package http

import (
	"encoding/json"
	"fmt"

	"github.com/vedag812/netfolio-api/internal/domain/content"
)

// ContactRequest is the contact-form submission body.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// decodeProjectsPayload accepts both shapes the admin dashboard has sent
// over time: the canonical `{"projects": [...]}` document and a bare
// top-level array.
func decodeProjectsPayload(data []byte) (content.ProjectsDocument, error) {
	var doc content.ProjectsDocument
	if err := json.Unmarshal(data, &doc); err == nil {
		if doc.Projects == nil {
			doc.Projects = []content.ProjectRecord{}
		}
		return doc, nil
	}

	var bare []content.ProjectRecord
	if err := json.Unmarshal(data, &bare); err == nil {
		return content.ProjectsDocument{Projects: bare}, nil
	}

	return content.ProjectsDocument{}, fmt.Errorf("body is neither a projects document nor a project array")
}
