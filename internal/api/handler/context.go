package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/blog-app/blog-api/internal/api/middleware"
	"github.com/blog-app/blog-api/internal/core/domain"
)

// ctxIdentity returns the identity injected by the Auth middleware. A
// handler mounted without the middleware fails closed with ErrMissingToken.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return domain.Identity{}, domain.ErrMissingToken
	}
	return identity, nil
}
