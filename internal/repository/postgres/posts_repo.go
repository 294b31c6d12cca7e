package postgres

import (
	"context"
	"strings"

	"github.com/atopal/blog-backend/internal/models"
	repo "github.com/atopal/blog-backend/internal/repository"
	"github.com/google/uuid"
)

type postsRepo struct{ db DB }

func NewPosts(db DB) repo.Posts { return &postsRepo{db: db} }

const postSelect = `
	SELECT p.id, p.author_id, p.title, p.slug, p.content, p.excerpt,
	       p.is_published, p.created_at, p.updated_at,
	       u.email, u.first_name, u.last_name
	FROM posts p
	LEFT JOIN users u ON u.id = p.author_id`

func scanPost(row interface{ Scan(...any) error }) (models.Post, error) {
	var (
		p                  models.Post
		email, first, last *string
	)
	err := row.Scan(&p.ID, &p.AuthorID, &p.Title, &p.Slug, &p.Content, &p.Excerpt,
		&p.IsPublished, &p.CreatedAt, &p.UpdatedAt, &email, &first, &last)
	if err != nil {
		return models.Post{}, translateErr(err)
	}
	if p.AuthorID != nil && email != nil {
		u := models.User{ID: *p.AuthorID, Email: *email}
		if first != nil {
			u.FirstName = *first
		}
		if last != nil {
			u.LastName = *last
		}
		a := u.AuthorRef()
		p.Author = &a
	}
	return p, nil
}

func (r *postsRepo) Create(ctx context.Context, p models.Post) (models.Post, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO posts(id, author_id, title, slug, content, excerpt, is_published)
		 VALUES($1,$2,$3,$4,$5,$6,$7)`,
		p.ID, p.AuthorID, p.Title, p.Slug, p.Content, p.Excerpt, p.IsPublished,
	)
	if err != nil {
		return models.Post{}, translateErr(err)
	}
	return r.GetByID(ctx, p.ID)
}

func (r *postsRepo) GetByID(ctx context.Context, id string) (models.Post, error) {
	return scanPost(r.db.QueryRow(ctx, postSelect+` WHERE p.id=$1`, id))
}

func (r *postsRepo) List(ctx context.Context, publishedOnly bool) ([]models.Post, error) {
	q := postSelect
	if publishedOnly {
		q += ` WHERE p.is_published`
	}
	q += ` ORDER BY p.created_at DESC`

	rows, err := r.db.Query(ctx, strings.TrimSpace(q))
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	var out []models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *postsRepo) Update(ctx context.Context, p models.Post) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE posts SET title=$2, slug=$3, content=$4, excerpt=$5, is_published=$6, updated_at=now()
		 WHERE id=$1`,
		p.ID, p.Title, p.Slug, p.Content, p.Excerpt, p.IsPublished,
	)
	if err != nil {
		return translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *postsRepo) Delete(ctx context.Context, id string) error {
	// Comments go with the post via ON DELETE CASCADE.
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id=$1`, id)
	if err != nil {
		return translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *postsRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM posts WHERE id=$1)`, id).Scan(&exists)
	return exists, translateErr(err)
}

func (r *postsRepo) CountApproved(ctx context.Context, postID string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM comments WHERE post_id=$1 AND is_approved`, postID,
	).Scan(&n)
	return n, translateErr(err)
}
