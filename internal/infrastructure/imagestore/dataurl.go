// Package imagestore decodes inline image payloads and persists them to local
// disk or an S3-compatible bucket.
package imagestore

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/blog-app/blog-api/internal/core/domain"
)

var (
	dataURLPattern   = regexp.MustCompile(`(?i)^data:image/([a-z0-9.+-]+);base64,(.+)$`)
	extensionPattern = regexp.MustCompile(`^[a-z0-9]+$`)
)

// Image is a decoded inline image payload.
type Image struct {
	MimeType  string
	Extension string
	Data      []byte
}

// ParseDataURL decodes a payload of the form data:<mime>;base64,<data>. Any
// structural problem is reported as domain.ErrInvalidImageFormat.
func ParseDataURL(payload string) (*Image, error) {
	m := dataURLPattern.FindStringSubmatch(strings.TrimSpace(payload))
	if m == nil {
		return nil, domain.ErrInvalidImageFormat
	}

	subtype := strings.ToLower(m[1])
	mimeType := "image/" + subtype

	data, err := decodeBase64(m[2])
	if err != nil || len(data) == 0 {
		return nil, fmt.Errorf("%w: payload is not valid base64", domain.ErrInvalidImageFormat)
	}

	return &Image{MimeType: mimeType, Extension: extension(subtype), Data: data}, nil
}

// decodeBase64 accepts both padded and unpadded standard encoding.
func decodeBase64(s string) ([]byte, error) {
	if strings.HasSuffix(s, "=") {
		return base64.StdEncoding.DecodeString(s)
	}
	return base64.RawStdEncoding.DecodeString(s)
}

// extension derives a file extension from a media subtype ("svg+xml" gives
// "svg"). Anything that is not plain alphanumerics becomes "bin".
func extension(subtype string) string {
	ext, _, _ := strings.Cut(subtype, "+")
	if !extensionPattern.MatchString(ext) {
		return "bin"
	}
	return ext
}

// fileName returns a collision-resistant name: image_<unix_millis>_<uuid>.<ext>.
func fileName(now time.Time, ext string) string {
	return fmt.Sprintf("image_%d_%s.%s", now.UnixMilli(), uuid.NewString(), ext)
}

// isAbsoluteURL reports whether ref carries a scheme, i.e. points somewhere
// other than this server's public path.
func isAbsoluteURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "//")
}
