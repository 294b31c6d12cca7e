package models

import "time"

type Post struct {
	ID          string    `json:"id"`
	AuthorID    *string   `json:"-"`
	Author      *Author   `json:"author"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Content     string    `json:"content"`
	Excerpt     string    `json:"excerpt"`
	IsPublished bool      `json:"is_published"`
	URL         string    `json:"url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Detail-only fields, populated by the service for GET /posts/{id}.
	Comments     []Comment `json:"comments,omitempty"`
	CommentCount int       `json:"comment_count"`
}

// PublicURL is the combined slug-id path for a post.
func (p Post) PublicURL() string {
	return "/posts/" + p.Slug + "-" + p.ID + "/"
}

type PostPatch struct {
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	Excerpt     *string `json:"excerpt"`
	IsPublished *bool   `json:"is_published"`
}
