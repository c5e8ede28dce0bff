package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/blog-app/blog-api/internal/core/domain"
	"github.com/blog-app/blog-api/internal/core/ports"
)

var (
	alice = domain.Identity{Email: "alice@example.com", Username: "alice"}
	bob   = domain.Identity{Email: "bob@example.com", Username: "bob"}
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Binder = NewBinder()
	e.Validator = NewValidator()
	return e
}

// newContext builds a request context; a non-nil identity simulates the Auth
// middleware having run.
func newContext(e *echo.Echo, method, target, body string, identity *domain.Identity) (echo.Context, *httptest.ResponseRecorder) {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		c.Set("identity", *identity)
	}
	return c, rec
}

// ---------------------------------------------------------------------------
// Service stubs
// ---------------------------------------------------------------------------

type stubAuthService struct {
	registerFn func(ctx context.Context, username, email, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (*domain.Session, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	return s.registerFn(ctx, username, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Verify(context.Context, string) (*domain.Identity, error) {
	return nil, domain.ErrInvalidToken
}

type stubPostService struct {
	createFn func(ctx context.Context, identity domain.Identity, in ports.CreatePostInput) (*ports.CreatePostResult, error)
	listFn   func(ctx context.Context) ([]*domain.Post, error)
	getFn    func(ctx context.Context, id string) (*domain.Post, error)
	updateFn func(ctx context.Context, identity domain.Identity, id string, in ports.UpdatePostInput) error
	deleteFn func(ctx context.Context, identity domain.Identity, id string) error
}

func (s *stubPostService) Create(ctx context.Context, identity domain.Identity, in ports.CreatePostInput) (*ports.CreatePostResult, error) {
	return s.createFn(ctx, identity, in)
}

func (s *stubPostService) List(ctx context.Context) ([]*domain.Post, error) {
	return s.listFn(ctx)
}

func (s *stubPostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.getFn(ctx, id)
}

func (s *stubPostService) Update(ctx context.Context, identity domain.Identity, id string, in ports.UpdatePostInput) error {
	return s.updateFn(ctx, identity, id, in)
}

func (s *stubPostService) Delete(ctx context.Context, identity domain.Identity, id string) error {
	return s.deleteFn(ctx, identity, id)
}

type stubContactService struct {
	submitFn func(ctx context.Context, msg domain.ContactMessage) error
}

func (s *stubContactService) Submit(ctx context.Context, msg domain.ContactMessage) error {
	return s.submitFn(ctx, msg)
}
