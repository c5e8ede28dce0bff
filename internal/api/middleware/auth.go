package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/blog-app/blog-api/internal/api/session"
	"github.com/blog-app/blog-api/internal/core/domain"
)

const identityKey = "identity"

// TokenVerifier resolves a session token to the identity it carries.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*domain.Identity, error)
}

// Auth reads the session cookie, verifies it and injects the identity into
// the context. An invalid cookie is cleared before the error is returned.
func Auth(verifier TokenVerifier, cookies session.Cookies) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := verifier.Verify(c.Request().Context(), session.Read(c))
			if err != nil {
				cookies.Clear(c)
				return err
			}

			c.Set(identityKey, *identity)
			return next(c)
		}
	}
}

// IdentityFrom returns the identity injected by Auth.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(identityKey).(domain.Identity)
	return identity, ok && identity.Email != ""
}
