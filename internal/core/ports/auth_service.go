package ports

import (
	"context"

	"github.com/blog-app/blog-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	Verify(ctx context.Context, token string) (*domain.Identity, error)
}
