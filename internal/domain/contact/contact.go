package contact

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Message is one contact-form submission.
type Message struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Body       string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}

var (
	ErrMissingName    = errors.New("name is required")
	ErrMissingEmail   = errors.New("email is required")
	ErrMissingMessage = errors.New("message is required")
)

func (m *Message) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(m.Email) == "" || !strings.Contains(m.Email, "@") {
		return ErrMissingEmail
	}
	if strings.TrimSpace(m.Body) == "" {
		return ErrMissingMessage
	}
	return nil
}
