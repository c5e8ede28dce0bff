package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/blog-app/blog-api/internal/core/domain"
	"github.com/blog-app/blog-api/internal/core/ports"
)

type PostService struct {
	repo   ports.PostRepository
	images ports.ImageStore
	logger zerolog.Logger
	now    func() time.Time
}

func NewPostService(repo ports.PostRepository, images ports.ImageStore, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, images: images, logger: logger, now: time.Now}
}

// Create stores the image first and then the post record. If the record
// cannot be written the image is removed again.
func (s *PostService) Create(ctx context.Context, identity domain.Identity, input ports.CreatePostInput) (*ports.CreatePostResult, error) {
	if identity.Email == "" {
		return nil, domain.ErrMissingToken
	}
	if blank(input.Title) || blank(input.Description) || blank(input.File) {
		return nil, fmt.Errorf("%w: missing required fields (title, description, or image data)", domain.ErrValidation)
	}

	ref, err := s.images.Store(ctx, input.File)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	post := &domain.Post{
		Title:       input.Title,
		Description: input.Description,
		ImageRef:    ref,
		AuthorEmail: identity.Email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		s.logger.Error().Err(err).Str("author", identity.Email).Msg("failed to create post")
		if rmErr := s.images.Remove(context.WithoutCancel(ctx), ref); rmErr != nil {
			s.logger.Error().Err(rmErr).Str("image_ref", ref).Msg("failed to remove orphaned image")
		}
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.logger.Info().Str("post_id", post.ID).Str("author", identity.Email).Str("image_ref", ref).Msg("post created")

	return &ports.CreatePostResult{ID: post.ID, ImageRef: ref}, nil
}

func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PostService) Update(ctx context.Context, identity domain.Identity, id string, input ports.UpdatePostInput) error {
	if blank(input.Title) || blank(input.Description) {
		return fmt.Errorf("%w: title and description are required", domain.ErrValidation)
	}

	post, err := s.ownedPost(ctx, identity, id)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateContent(ctx, post.ID, input.Title, input.Description, s.now().UTC()); err != nil {
		return err
	}

	s.logger.Info().Str("post_id", post.ID).Str("author", identity.Email).Msg("post updated")
	return nil
}

// Delete removes the post's image best-effort and then the record itself.
func (s *PostService) Delete(ctx context.Context, identity domain.Identity, id string) error {
	post, err := s.ownedPost(ctx, identity, id)
	if err != nil {
		return err
	}

	if err := s.images.Remove(ctx, post.ImageRef); err != nil {
		s.logger.Warn().Err(err).Str("post_id", post.ID).Str("image_ref", post.ImageRef).Msg("failed to remove post image")
	}

	if err := s.repo.Delete(ctx, post.ID); err != nil {
		return err
	}

	s.logger.Info().Str("post_id", post.ID).Str("author", identity.Email).Msg("post deleted")
	return nil
}

// ownedPost loads the post and checks that identity is its author.
func (s *PostService) ownedPost(ctx context.Context, identity domain.Identity, id string) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !post.OwnedBy(identity) {
		s.logger.Warn().Str("post_id", post.ID).Str("caller", identity.Email).Msg("ownership check failed")
		return nil, domain.ErrForbidden
	}
	return post, nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
