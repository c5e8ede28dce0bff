package metrics

import (
	"context"

	"github.com/blog-app/blog-api/internal/core/ports"
)

type instrumentedImageStore struct {
	next ports.ImageStore
}

// InstrumentImageStore counts every Store and Remove call on next. A rising
// remove error count means orphaned images are piling up.
func InstrumentImageStore(next ports.ImageStore) ports.ImageStore {
	return &instrumentedImageStore{next: next}
}

func (s *instrumentedImageStore) Store(ctx context.Context, payload string) (string, error) {
	ref, err := s.next.Store(ctx, payload)
	ImageStoreOpsTotal.WithLabelValues("store", result(err)).Inc()
	return ref, err
}

func (s *instrumentedImageStore) Remove(ctx context.Context, ref string) error {
	err := s.next.Remove(ctx, ref)
	ImageStoreOpsTotal.WithLabelValues("remove", result(err)).Inc()
	return err
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
