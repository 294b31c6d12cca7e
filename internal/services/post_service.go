package services

import (
	"context"

	"github.com/atopal/blog-backend/internal/authz"
	"github.com/atopal/blog-backend/internal/metrics"
	"github.com/atopal/blog-backend/internal/models"
	repo "github.com/atopal/blog-backend/internal/repository"
	"github.com/atopal/blog-backend/internal/slug"
)

type PostService struct {
	posts    repo.Posts
	comments repo.Comments
}

func NewPostService(posts repo.Posts, comments repo.Comments) *PostService {
	return &PostService{posts: posts, comments: comments}
}

// List returns every post for staff and published posts for everyone else.
func (s *PostService) List(ctx context.Context, caller authz.Caller) ([]models.Post, error) {
	posts, err := s.posts.List(ctx, !caller.Staff)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].URL = posts[i].PublicURL()
	}
	return posts, nil
}

// Get returns the post detail with nested comments and the approved-only
// comment_count. Unpublished posts are indistinguishable from missing
// ones for non-staff callers.
func (s *PostService) Get(ctx context.Context, caller authz.Caller, id string) (models.Post, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return models.Post{}, err
	}
	if err := authz.CanReadPost(caller, p); err != nil {
		return models.Post{}, err
	}

	comments, err := s.comments.ListByPost(ctx, p.ID, !caller.Staff)
	if err != nil {
		return models.Post{}, err
	}
	count, err := s.posts.CountApproved(ctx, p.ID)
	if err != nil {
		return models.Post{}, err
	}
	p.Comments = comments
	p.CommentCount = count
	p.URL = p.PublicURL()
	return p, nil
}

func (s *PostService) Create(ctx context.Context, caller authz.Caller, title, content, excerpt string, isPublished bool) (models.Post, error) {
	if err := authz.CanWritePost(caller); err != nil {
		return models.Post{}, err
	}
	authorID := caller.ID
	p := models.Post{
		AuthorID:    &authorID,
		Title:       title,
		Slug:        slug.Make(title),
		Content:     content,
		Excerpt:     excerpt,
		IsPublished: isPublished,
	}
	created, err := s.posts.Create(ctx, p)
	if err != nil {
		return models.Post{}, asFieldError(err)
	}
	metrics.PostsCreated.Inc()
	created.URL = created.PublicURL()
	return created, nil
}

func (s *PostService) Update(ctx context.Context, caller authz.Caller, id string, patch models.PostPatch) (models.Post, error) {
	if err := authz.CanWritePost(caller); err != nil {
		return models.Post{}, err
	}
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return models.Post{}, err
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Excerpt != nil {
		p.Excerpt = *patch.Excerpt
	}
	if patch.IsPublished != nil {
		p.IsPublished = *patch.IsPublished
	}
	// Recomputed on every save, changed title or not.
	p.Slug = slug.Make(p.Title)

	if err := s.posts.Update(ctx, p); err != nil {
		return models.Post{}, asFieldError(err)
	}
	p.URL = p.PublicURL()
	return p, nil
}

// Delete removes the post; its comments cascade with it.
func (s *PostService) Delete(ctx context.Context, caller authz.Caller, id string) error {
	if err := authz.CanWritePost(caller); err != nil {
		return err
	}
	return s.posts.Delete(ctx, id)
}
