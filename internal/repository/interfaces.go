package repository

import (
	"context"

	"github.com/atopal/blog-backend/internal/models"
)

type Users interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, u models.User) error
	Delete(ctx context.Context, id string) error
}

type Posts interface {
	Create(ctx context.Context, p models.Post) (models.Post, error)
	GetByID(ctx context.Context, id string) (models.Post, error)
	// List returns newest-first; publishedOnly hides drafts.
	List(ctx context.Context, publishedOnly bool) ([]models.Post, error)
	Update(ctx context.Context, p models.Post) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	// CountApproved is the public comment_count aggregate.
	CountApproved(ctx context.Context, postID string) (int, error)
}

type Comments interface {
	Create(ctx context.Context, c models.Comment) (models.Comment, error)
	GetByID(ctx context.Context, id string) (models.Comment, error)
	ListByPost(ctx context.Context, postID string, approvedOnly bool) ([]models.Comment, error)
	Update(ctx context.Context, c models.Comment) error
	Delete(ctx context.Context, id string) error
}
