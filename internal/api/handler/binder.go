package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// errInvalidPayload is returned for any body that is not a single JSON
// object matching the request struct.
var errInvalidPayload = echo.NewHTTPError(http.StatusBadRequest, "invalid payload")

// strictBinder decodes JSON request bodies and rejects unknown fields.
type strictBinder struct{}

// NewBinder returns the echo.Binder used by the API.
func NewBinder() echo.Binder {
	return &strictBinder{}
}

func (b *strictBinder) Bind(i any, c echo.Context) error {
	req := c.Request()
	if req.ContentLength == 0 {
		return nil
	}

	ctype := req.Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(ctype, echo.MIMEApplicationJSON) {
		return echo.ErrUnsupportedMediaType
	}

	dec := json.NewDecoder(req.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(i); err != nil {
		// body limit middleware reports oversized bodies through the reader
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errInvalidPayload
	}
	if dec.More() {
		return errInvalidPayload
	}
	return nil
}
