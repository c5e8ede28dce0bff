package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/blog-app/blog-api/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := r.users[user.Email]; exists {
		return domain.ErrDuplicateEmail
	}
	user.ID = "id-" + user.Email
	r.users[user.Email] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func newAuthSvc(repo *stubUserRepo) *AuthService {
	svc := NewAuthService(repo, "secret", time.Hour, zerolog.Nop())
	svc.bcryptCost = bcrypt.MinCost
	return svc
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo)

	user, err := svc.Register(context.Background(), "alice", " Alice@X.com ", "pw")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected ID to be assigned")
	}
	if user.Email != "alice@x.com" {
		t.Fatalf("expected normalised email, got %q", user.Email)
	}
	if user.PasswordHash == "pw" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_DefaultCost(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour, zerolog.Nop())
	if svc.bcryptCost != 10 {
		t.Fatalf("expected bcrypt cost 10, got %d", svc.bcryptCost)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo())

	cases := []struct{ username, email, password string }{
		{"", "a@x.com", "pw"},
		{"alice", "  ", "pw"},
		{"alice", "a@x.com", ""},
	}
	for _, tc := range cases {
		if _, err := svc.Register(context.Background(), tc.username, tc.email, tc.password); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected ErrValidation for %+v, got %v", tc, err)
		}
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "bob", "bob@x.com", "pass"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bobby", "bob@x.com", "pass2"); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "carol", "carol@x.com", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	session, err := svc.Login(context.Background(), "carol@x.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if session.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if session.Identity.Username != "carol" || session.Identity.Email != "carol@x.com" {
		t.Fatalf("unexpected identity: %+v", session.Identity)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(session.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["email"] != "carol@x.com" || claims["username"] != "carol" {
		t.Fatalf("unexpected claims: %v", claims)
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("expected exp claim")
	}
	if _, ok := claims["iat"]; !ok {
		t.Fatalf("expected iat claim")
	}

	identity, err := svc.Verify(context.Background(), session.Token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if *identity != session.Identity {
		t.Fatalf("verify returned %+v, want %+v", identity, session.Identity)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo())

	_, _ = svc.Register(context.Background(), "dave", "dave@x.com", "goodpass")
	for _, pw := range []string{"badpass", "goodpass ", "GOODPASS"} {
		session, err := svc.Login(context.Background(), "dave@x.com", pw)
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials for %q, got %v", pw, err)
		}
		if session != nil {
			t.Fatalf("expected no session on failed login")
		}
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo())

	if _, err := svc.Login(context.Background(), "ghost@x.com", "pass"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Verify_Expired(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo())
	_, _ = svc.Register(context.Background(), "erin", "erin@x.com", "pw")

	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }
	session, err := svc.Login(context.Background(), "erin@x.com", "pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	svc.now = func() time.Time { return issued.Add(30 * time.Minute) }
	if _, err := svc.Verify(context.Background(), session.Token); err != nil {
		t.Fatalf("expected token to be valid before expiry, got %v", err)
	}

	svc.now = func() time.Time { return issued.Add(time.Hour + time.Second) }
	if _, err := svc.Verify(context.Background(), session.Token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken after expiry, got %v", err)
	}
}

func TestAuthService_Verify_Rejects(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo())

	if _, err := svc.Verify(context.Background(), ""); !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
	if _, err := svc.Verify(context.Background(), "not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for garbage, got %v", err)
	}

	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	other, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "mallory@x.com", "exp": exp.Unix(),
	}).SignedString([]byte("other-secret"))
	if _, err := svc.Verify(context.Background(), other); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign signature, got %v", err)
	}

	noExp, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "mallory@x.com",
	}).SignedString([]byte("secret"))
	if _, err := svc.Verify(context.Background(), noExp); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken without exp, got %v", err)
	}

	wrongAlg, _ := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"email": "mallory@x.com", "exp": exp.Unix(),
	}).SignedString([]byte("secret"))
	if _, err := svc.Verify(context.Background(), wrongAlg); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for HS512, got %v", err)
	}
}
