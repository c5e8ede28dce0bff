package ports

import (
	"context"

	"github.com/blog-app/blog-api/internal/core/domain"
)

// UserRepository defines the interface for credential persistence.
type UserRepository interface {
	// Create inserts the user and fills in its ID. Returns
	// domain.ErrDuplicateEmail when the email is already taken.
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
