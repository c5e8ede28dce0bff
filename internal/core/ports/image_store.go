package ports

import "context"

// ImageStore persists inline image payloads and hands back a reference the
// serving layer can resolve.
type ImageStore interface {
	// Store decodes a data URL payload and writes it. Returns
	// domain.ErrInvalidImageFormat when the payload cannot be decoded; nothing
	// is written in that case.
	Store(ctx context.Context, payload string) (string, error)
	// Remove deletes a previously stored image. References the store does not
	// manage are ignored and a missing object is not an error.
	Remove(ctx context.Context, ref string) error
}
