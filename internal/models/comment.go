package models

import "time"

type Comment struct {
	ID         string    `json:"id"`
	PostID     string    `json:"post"`
	AuthorID   *string   `json:"-"`
	Author     *Author   `json:"author"`
	Body       string    `json:"body"`
	IsApproved bool      `json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CommentPatch struct {
	Body       *string `json:"body"`
	IsApproved *bool   `json:"is_approved"`
}
