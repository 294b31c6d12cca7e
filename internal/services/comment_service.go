package services

import (
	"context"

	"github.com/atopal/blog-backend/internal/api/validate"
	"github.com/atopal/blog-backend/internal/authz"
	"github.com/atopal/blog-backend/internal/metrics"
	"github.com/atopal/blog-backend/internal/models"
	repo "github.com/atopal/blog-backend/internal/repository"
)

type CommentService struct {
	comments repo.Comments
	posts    repo.Posts
}

func NewCommentService(comments repo.Comments, posts repo.Posts) *CommentService {
	return &CommentService{comments: comments, posts: posts}
}

// Create ignores any payload-supplied author or approval state: the
// author is the caller and every comment starts unapproved.
func (s *CommentService) Create(ctx context.Context, caller authz.Caller, postID, body string) (models.Comment, error) {
	if err := authz.CanCreateComment(caller); err != nil {
		return models.Comment{}, err
	}
	exists, err := s.posts.Exists(ctx, postID)
	if err != nil {
		return models.Comment{}, err
	}
	if !exists {
		return models.Comment{}, validate.Errs{{Field: "post", Msg: "cannot comment on a non-existent post"}}
	}

	authorID := caller.ID
	c := models.Comment{
		PostID:     postID,
		AuthorID:   &authorID,
		Body:       body,
		IsApproved: false,
	}
	created, err := s.comments.Create(ctx, c)
	if err != nil {
		return models.Comment{}, err
	}
	metrics.CommentsCreated.Inc()
	return created, nil
}

// fetch loads the comment and runs the author-or-staff gate. The
// authentication check comes first so anonymous callers always see 401,
// never a 404 that would confirm or deny existence.
func (s *CommentService) fetch(ctx context.Context, caller authz.Caller, id string) (models.Comment, error) {
	if err := authz.CanCreateComment(caller); err != nil {
		return models.Comment{}, err
	}
	c, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return models.Comment{}, err
	}
	if err := authz.CanAccessComment(caller, c); err != nil {
		return models.Comment{}, err
	}
	return c, nil
}

func (s *CommentService) Get(ctx context.Context, caller authz.Caller, id string) (models.Comment, error) {
	return s.fetch(ctx, caller, id)
}

// Update applies the patch after FilterCommentPatch has stripped the
// fields the caller may not touch. A non-staff is_approved write is
// silently dropped while the rest of the patch goes through.
func (s *CommentService) Update(ctx context.Context, caller authz.Caller, id string, patch models.CommentPatch) (models.Comment, error) {
	c, err := s.fetch(ctx, caller, id)
	if err != nil {
		return models.Comment{}, err
	}
	patch = authz.FilterCommentPatch(caller, patch)
	if patch.Body != nil {
		c.Body = *patch.Body
	}
	if patch.IsApproved != nil {
		c.IsApproved = *patch.IsApproved
	}
	if err := s.comments.Update(ctx, c); err != nil {
		return models.Comment{}, err
	}
	return c, nil
}

func (s *CommentService) Delete(ctx context.Context, caller authz.Caller, id string) error {
	if _, err := s.fetch(ctx, caller, id); err != nil {
		return err
	}
	return s.comments.Delete(ctx, id)
}
