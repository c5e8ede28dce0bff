package imagestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/blog-app/blog-api/internal/core/domain"
)

const imagesDir = "Images"

// LocalStore writes images below <root>/Images and references them as
// <publicPrefix>/Images/<name>, the path the router serves statically.
type LocalStore struct {
	dir       string
	refPrefix string
	log       zerolog.Logger
	now       func() time.Time
}

// NewLocalStore creates the image directory if needed.
func NewLocalStore(root, publicPrefix string, log zerolog.Logger) (*LocalStore, error) {
	dir := filepath.Join(root, imagesDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}

	return &LocalStore{
		dir:       dir,
		refPrefix: path.Join("/", publicPrefix, imagesDir) + "/",
		log:       log,
		now:       time.Now,
	}, nil
}

func (s *LocalStore) Store(_ context.Context, payload string) (string, error) {
	img, err := ParseDataURL(payload)
	if err != nil {
		return "", err
	}

	name := fileName(s.now(), img.Extension)
	target := filepath.Join(s.dir, name)
	if filepath.Dir(target) != s.dir {
		return "", fmt.Errorf("%w: bad image name %q", domain.ErrInvalidImageFormat, name)
	}
	if err := os.WriteFile(target, img.Data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}

	s.log.Debug().Str("path", target).Int("bytes", len(img.Data)).Msg("image saved")
	return s.refPrefix + name, nil
}

// Remove deletes a locally managed image. Absolute URLs and references
// outside the managed prefix are left alone.
func (s *LocalStore) Remove(_ context.Context, ref string) error {
	if ref == "" || isAbsoluteURL(ref) || !strings.HasPrefix(ref, s.refPrefix) {
		s.log.Debug().Str("image_ref", ref).Msg("image not locally managed, skipping removal")
		return nil
	}

	name := filepath.Base(strings.TrimPrefix(ref, s.refPrefix))
	if name == "." || name == string(filepath.Separator) {
		return nil
	}

	target := filepath.Join(s.dir, name)
	if err := os.Remove(target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("remove image: %w", err)
	}

	s.log.Debug().Str("path", target).Msg("image removed")
	return nil
}
