package domain

import "time"

// Post is a single blog entry. AuthorEmail is fixed at creation and decides
// who may edit or delete the post.
type Post struct {
	ID          string
	Title       string
	Description string
	ImageRef    string
	AuthorEmail string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnedBy reports whether identity is the author of the post.
func (p *Post) OwnedBy(identity Identity) bool {
	return identity.Email != "" && p.AuthorEmail == identity.Email
}

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}
