package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/blog-app/blog-api/internal/core/domain"
)

func TestContactService_Submit(t *testing.T) {
	var buf bytes.Buffer
	svc := NewContactService(zerolog.New(&buf))

	err := svc.Submit(context.Background(), domain.ContactMessage{Name: "Ann", Email: "ann@x.com", Message: "hello there"})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "contact message received") {
		t.Fatalf("expected receipt to be logged, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "hello there") {
		t.Fatalf("message body must not be logged")
	}
}

func TestContactService_Submit_Validation(t *testing.T) {
	svc := NewContactService(zerolog.Nop())

	cases := []domain.ContactMessage{
		{Email: "ann@x.com", Message: "hi"},
		{Name: "Ann", Message: "hi"},
		{Name: "Ann", Email: "ann@x.com", Message: "   "},
	}
	for _, msg := range cases {
		if err := svc.Submit(context.Background(), msg); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("expected ErrValidation for %+v, got %v", msg, err)
		}
	}
}
