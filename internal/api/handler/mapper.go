package handler

import (
	"github.com/blog-app/blog-api/internal/core/domain"
)

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		ImageRef:    p.ImageRef,
		AuthorEmail: p.AuthorEmail,
		CreatedAt:   p.CreatedAt.UTC(),
		UpdatedAt:   p.UpdatedAt.UTC(),
	}
}

// toPostResponses never returns nil so an empty list encodes as [].
func toPostResponses(posts []*domain.Post) []postResponse {
	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p))
	}
	return out
}
