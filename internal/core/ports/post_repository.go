package ports

import (
	"context"
	"time"

	"github.com/blog-app/blog-api/internal/core/domain"
)

// PostRepository defines persistence operations for posts.
// Lookups by an unknown or malformed id return domain.ErrPostNotFound.
type PostRepository interface {
	Create(ctx context.Context, p *domain.Post) error
	// List returns every post, newest first.
	List(ctx context.Context) ([]*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	UpdateContent(ctx context.Context, id, title, description string, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}
