package domain

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidImageFormat = errors.New("invalid image data format, expected a data URL (data:image/<type>;base64,<data>)")

	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect password")

	ErrMissingToken = errors.New("the token is missing")
	ErrInvalidToken = errors.New("the token is invalid or expired")

	ErrPostNotFound = errors.New("post not found")
	ErrForbidden    = errors.New("you are not authorized to modify this post")
)
