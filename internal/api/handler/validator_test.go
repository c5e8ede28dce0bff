package handler

import (
	"errors"
	"strings"
	"testing"

	"github.com/blog-app/blog-api/internal/core/domain"
)

func TestValidator_Messages(t *testing.T) {
	v := NewValidator()

	cases := []struct {
		name string
		in   any
		want string
	}{
		{
			name: "all missing",
			in:   &registerRequest{},
			want: "validation failed: username is required; email is required; password is required",
		},
		{
			name: "bad email",
			in:   &loginRequest{Email: "nope", Password: "pw"},
			want: "validation failed: email must be a valid email",
		},
		{
			name: "title too long",
			in:   &updatePostRequest{Title: strings.Repeat("t", 201), Description: "d"},
			want: "validation failed: title must be at most 200 characters",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(tc.in)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if err.Error() != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, err.Error())
			}
		})
	}

	if err := v.Validate(&contactRequest{Name: "a", Email: "a@b.co", Message: "m"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
