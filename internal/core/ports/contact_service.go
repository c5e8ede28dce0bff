package ports

import (
	"context"

	"github.com/blog-app/blog-api/internal/core/domain"
)

// ContactService accepts contact-form messages.
type ContactService interface {
	Submit(ctx context.Context, msg domain.ContactMessage) error
}
