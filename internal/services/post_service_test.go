package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/atopal/blog-backend/internal/api/validate"
	"github.com/atopal/blog-backend/internal/authz"
	"github.com/atopal/blog-backend/internal/models"
	repo "github.com/atopal/blog-backend/internal/repository"
	"github.com/atopal/blog-backend/internal/repository/mocks"
)

var (
	staffCaller  = authz.Caller{ID: "admin", Staff: true, Authenticated: true}
	readerCaller = authz.Caller{ID: "reader", Authenticated: true}
)

func TestPostListVisibility(t *testing.T) {
	posts := &mocks.Posts{}
	svc := NewPostService(posts, &mocks.Comments{})

	posts.On("List", mock.Anything, true).Return([]models.Post{{ID: "p1", Slug: "one", IsPublished: true}}, nil)
	posts.On("List", mock.Anything, false).Return([]models.Post{
		{ID: "p1", Slug: "one", IsPublished: true},
		{ID: "p2", Slug: "two"},
	}, nil)

	public, err := svc.List(context.Background(), authz.Anonymous)
	require.NoError(t, err)
	assert.Len(t, public, 1)
	assert.Equal(t, "/posts/one-p1/", public[0].URL)

	all, err := svc.List(context.Background(), staffCaller)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPostGetHidesDraftsFromNonStaff(t *testing.T) {
	posts := &mocks.Posts{}
	svc := NewPostService(posts, &mocks.Comments{})

	posts.On("GetByID", mock.Anything, "p2").Return(models.Post{ID: "p2", IsPublished: false}, nil)

	var d *authz.Denial
	_, err := svc.Get(context.Background(), readerCaller, "p2")
	require.ErrorAs(t, err, &d)
	assert.Equal(t, authz.ReasonHidden, d.Reason)

	_, err = svc.Get(context.Background(), authz.Anonymous, "p2")
	require.ErrorAs(t, err, &d)
	assert.Equal(t, authz.ReasonHidden, d.Reason)
}

func TestPostGetDetailForStaff(t *testing.T) {
	posts := &mocks.Posts{}
	comments := &mocks.Comments{}
	svc := NewPostService(posts, comments)

	posts.On("GetByID", mock.Anything, "p2").Return(models.Post{ID: "p2", Slug: "draft", IsPublished: false}, nil)
	// Staff see every comment; the public count stays approved-only.
	comments.On("ListByPost", mock.Anything, "p2", false).Return([]models.Comment{
		{ID: "c1", IsApproved: true},
		{ID: "c2", IsApproved: false},
	}, nil)
	posts.On("CountApproved", mock.Anything, "p2").Return(1, nil)

	p, err := svc.Get(context.Background(), staffCaller, "p2")
	require.NoError(t, err)
	assert.Len(t, p.Comments, 2)
	assert.Equal(t, 1, p.CommentCount)
}

func TestPostGetApprovedOnlyForPublic(t *testing.T) {
	posts := &mocks.Posts{}
	comments := &mocks.Comments{}
	svc := NewPostService(posts, comments)

	posts.On("GetByID", mock.Anything, "p1").Return(models.Post{ID: "p1", Slug: "one", IsPublished: true}, nil)
	comments.On("ListByPost", mock.Anything, "p1", true).Return([]models.Comment{{ID: "c1", IsApproved: true}}, nil)
	posts.On("CountApproved", mock.Anything, "p1").Return(1, nil)

	p, err := svc.Get(context.Background(), authz.Anonymous, "p1")
	require.NoError(t, err)
	assert.Len(t, p.Comments, 1)
	assert.Equal(t, 1, p.CommentCount)
}

func TestPostCreateStaffOnly(t *testing.T) {
	posts := &mocks.Posts{}
	svc := NewPostService(posts, &mocks.Comments{})

	var d *authz.Denial
	_, err := svc.Create(context.Background(), authz.Anonymous, "T", "c", "", false)
	require.ErrorAs(t, err, &d)
	assert.Equal(t, authz.ReasonUnauthenticated, d.Reason)

	_, err = svc.Create(context.Background(), readerCaller, "T", "c", "", false)
	require.ErrorAs(t, err, &d)
	assert.Equal(t, authz.ReasonForbidden, d.Reason)

	posts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPostCreateSetsAuthorAndSlug(t *testing.T) {
	posts := &mocks.Posts{}
	svc := NewPostService(posts, &mocks.Comments{})

	posts.On("Create", mock.Anything, mock.MatchedBy(func(p models.Post) bool {
		return p.Slug == "hello-world" && p.AuthorID != nil && *p.AuthorID == "admin"
	})).Return(models.Post{ID: "p1", Slug: "hello-world"}, nil)

	p, err := svc.Create(context.Background(), staffCaller, "Hello, World!", "content", "", true)
	require.NoError(t, err)
	assert.Equal(t, "/posts/hello-world-p1/", p.URL)
	posts.AssertExpectations(t)
}

func TestPostCreateDuplicateTitle(t *testing.T) {
	posts := &mocks.Posts{}
	svc := NewPostService(posts, &mocks.Comments{})

	posts.On("Create", mock.Anything, mock.Anything).
		Return(models.Post{}, &repo.DuplicateError{Field: "title"})

	_, err := svc.Create(context.Background(), staffCaller, "Taken", "c", "", false)
	var verrs validate.Errs
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.Fields(), "title")
}

func TestPostUpdateRegeneratesSlug(t *testing.T) {
	existing := models.Post{ID: "p1", Title: "Old Title", Slug: "stale-slug", Content: "c", IsPublished: false}

	t.Run("title change", func(t *testing.T) {
		posts := &mocks.Posts{}
		svc := NewPostService(posts, &mocks.Comments{})
		posts.On("GetByID", mock.Anything, "p1").Return(existing, nil)
		posts.On("Update", mock.Anything, mock.MatchedBy(func(p models.Post) bool {
			return p.Title == "New Title!" && p.Slug == "new-title"
		})).Return(nil)

		title := "New Title!"
		p, err := svc.Update(context.Background(), staffCaller, "p1", models.PostPatch{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "new-title", p.Slug)
	})

	t.Run("slug recomputed even when title untouched", func(t *testing.T) {
		posts := &mocks.Posts{}
		svc := NewPostService(posts, &mocks.Comments{})
		posts.On("GetByID", mock.Anything, "p1").Return(existing, nil)
		posts.On("Update", mock.Anything, mock.MatchedBy(func(p models.Post) bool {
			return p.Slug == "old-title"
		})).Return(nil)

		published := true
		p, err := svc.Update(context.Background(), staffCaller, "p1", models.PostPatch{IsPublished: &published})
		require.NoError(t, err)
		assert.Equal(t, "old-title", p.Slug)
		assert.True(t, p.IsPublished)
	})
}

func TestPostDeleteStaffOnly(t *testing.T) {
	posts := &mocks.Posts{}
	svc := NewPostService(posts, &mocks.Comments{})

	var d *authz.Denial
	err := svc.Delete(context.Background(), readerCaller, "p1")
	require.ErrorAs(t, err, &d)
	assert.Equal(t, authz.ReasonForbidden, d.Reason)

	posts.On("Delete", mock.Anything, "p1").Return(nil)
	require.NoError(t, svc.Delete(context.Background(), staffCaller, "p1"))
}
