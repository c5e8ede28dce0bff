package domain

import "time"

// User models a registered blog author.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the authenticated caller resolved from a session token.
type Identity struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Session is the result of a successful login.
type Session struct {
	Token     string
	Identity  Identity
	ExpiresAt time.Time
}
