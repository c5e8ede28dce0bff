package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/blog-app/blog-api/internal/api/session"
	"github.com/blog-app/blog-api/internal/core/domain"
)

var testCookies = session.NewCookies(false, time.Hour)

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, username, email, password string) (*domain.User, error) {
			if username != "alice" || email != "alice@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s %s", username, email, password)
			}
			return &domain.User{ID: "u1", Username: username, Email: email}, nil
		},
	}
	handler := NewAuthHandler(stub, testCookies)

	c, rec := newContext(e, http.MethodPost, "/register", `{"username":"alice","email":"alice@example.com","password":"secret"}`, nil)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var msg string
	if err := json.Unmarshal(rec.Body.Bytes(), &msg); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if msg != "User registered successfully" {
		t.Fatalf("unexpected body %q", msg)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(context.Context, string, string, string) (*domain.User, error) {
			return nil, domain.ErrDuplicateEmail
		},
	}
	handler := NewAuthHandler(stub, testCookies)

	c, _ := newContext(e, http.MethodPost, "/register", `{"username":"bob","email":"bob@example.com","password":"pw"}`, nil)
	if err := handler.Register(c); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthHandler_Register_Invalid(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(context.Context, string, string, string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, testCookies)

	cases := map[string]string{
		"missing password": `{"username":"bob","email":"bob@example.com"}`,
		"bad email":        `{"username":"bob","email":"not-an-email","password":"pw"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := newContext(e, http.MethodPost, "/register", body, nil)
			if err := handler.Register(c); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := newEcho()
	handler := NewAuthHandler(&stubAuthService{}, testCookies)

	c, _ := newContext(e, http.MethodPost, "/register", "not-json", nil)
	err := handler.Register(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Login_SetsCookie(t *testing.T) {
	e := newEcho()
	expires := time.Now().Add(time.Hour)
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (*domain.Session, error) {
			if email != "alice@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.Session{Token: "token123", Identity: alice, ExpiresAt: expires}, nil
		},
	}
	handler := NewAuthHandler(stub, testCookies)

	c, rec := newContext(e, http.MethodPost, "/login", `{"email":"alice@example.com","password":"secret"}`, nil)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var msg string
	if err := json.Unmarshal(rec.Body.Bytes(), &msg); err != nil || msg != "success" {
		t.Fatalf("unexpected body %q (%v)", rec.Body.String(), err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "token" || cookies[0].Value != "token123" || !cookies[0].HttpOnly {
		t.Fatalf("unexpected cookies: %+v", cookies)
	}
}

func TestAuthHandler_Login_Failures(t *testing.T) {
	for _, want := range []error{domain.ErrUserNotFound, domain.ErrInvalidCredentials} {
		t.Run(want.Error(), func(t *testing.T) {
			e := newEcho()
			stub := &stubAuthService{
				loginFn: func(context.Context, string, string) (*domain.Session, error) {
					return nil, want
				},
			}
			handler := NewAuthHandler(stub, testCookies)

			c, rec := newContext(e, http.MethodPost, "/login", `{"email":"alice@example.com","password":"bad"}`, nil)
			if err := handler.Login(c); !errors.Is(err, want) {
				t.Fatalf("expected %v, got %v", want, err)
			}
			if len(rec.Result().Cookies()) != 0 {
				t.Fatalf("failed login must not set a cookie")
			}
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := newEcho()
	handler := NewAuthHandler(&stubAuthService{}, testCookies)

	c, rec := newContext(e, http.MethodGet, "/logout", "", nil)
	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected cleared cookie, got %+v", cookies)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := newEcho()
	handler := NewAuthHandler(&stubAuthService{}, testCookies)

	c, rec := newContext(e, http.MethodGet, "/", "", &alice)
	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp identityResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Email != alice.Email || resp.Username != alice.Username {
		t.Fatalf("unexpected identity: %+v", resp)
	}

	c, _ = newContext(e, http.MethodGet, "/", "", nil)
	if err := handler.Me(c); !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken without a session, got %v", err)
	}
}
