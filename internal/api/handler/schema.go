package handler

import "time"

// --- Request types ---

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// createPostRequest carries the image inline as a data URL in File.
type createPostRequest struct {
	Title       string `json:"title"       validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	File        string `json:"file"        validate:"required"`
}

type updatePostRequest struct {
	Title       string `json:"title"       validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
}

type contactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// --- Response types ---

type createPostResponse struct {
	Message   string `json:"message"`
	ID        string `json:"id"`
	ImagePath string `json:"image_path"`
}

type postResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageRef    string    `json:"image_ref"`
	AuthorEmail string    `json:"author_email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type identityResponse struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// errorResponse documents the error envelope for swag.
type errorResponse struct {
	Error string `json:"error"`
}
