package ports

import (
	"context"

	"github.com/blog-app/blog-api/internal/core/domain"
)

// CreatePostInput carries the fields of a new post. File is the inline image
// payload (data URL).
type CreatePostInput struct {
	Title       string
	Description string
	File        string
}

// UpdatePostInput carries the editable fields of a post.
type UpdatePostInput struct {
	Title       string
	Description string
}

// CreatePostResult is returned by the service after creating a post.
type CreatePostResult struct {
	ID       string
	ImageRef string
}

// PostService defines use-case operations for posts. Mutations take the
// caller's identity explicitly and enforce ownership.
type PostService interface {
	Create(ctx context.Context, identity domain.Identity, input CreatePostInput) (*CreatePostResult, error)
	List(ctx context.Context) ([]*domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	Update(ctx context.Context, identity domain.Identity, id string, input UpdatePostInput) error
	Delete(ctx context.Context, identity domain.Identity, id string) error
}
