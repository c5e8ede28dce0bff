package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/blog-app/blog-api/internal/core/domain"
)

// ContactService acknowledges contact-form messages. Nothing is persisted or
// forwarded.
type ContactService struct {
	log zerolog.Logger
}

func NewContactService(log zerolog.Logger) *ContactService {
	return &ContactService{log: log}
}

func (s *ContactService) Submit(_ context.Context, msg domain.ContactMessage) error {
	if blank(msg.Name) || blank(msg.Email) || blank(msg.Message) {
		return fmt.Errorf("%w: name, email and message are required", domain.ErrValidation)
	}

	s.log.Info().
		Str("name", msg.Name).
		Str("email", msg.Email).
		Int("length", len(msg.Message)).
		Msg("contact message received")
	return nil
}
