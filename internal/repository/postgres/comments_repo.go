package postgres

import (
	"context"

	"github.com/atopal/blog-backend/internal/models"
	repo "github.com/atopal/blog-backend/internal/repository"
	"github.com/google/uuid"
)

type commentsRepo struct{ db DB }

func NewComments(db DB) repo.Comments { return &commentsRepo{db: db} }

const commentSelect = `
	SELECT c.id, c.post_id, c.author_id, c.body, c.is_approved, c.created_at, c.updated_at,
	       u.email, u.first_name, u.last_name
	FROM comments c
	LEFT JOIN users u ON u.id = c.author_id`

func scanComment(row interface{ Scan(...any) error }) (models.Comment, error) {
	var (
		c                  models.Comment
		email, first, last *string
	)
	err := row.Scan(&c.ID, &c.PostID, &c.AuthorID, &c.Body, &c.IsApproved,
		&c.CreatedAt, &c.UpdatedAt, &email, &first, &last)
	if err != nil {
		return models.Comment{}, translateErr(err)
	}
	if c.AuthorID != nil && email != nil {
		u := models.User{ID: *c.AuthorID, Email: *email}
		if first != nil {
			u.FirstName = *first
		}
		if last != nil {
			u.LastName = *last
		}
		a := u.AuthorRef()
		c.Author = &a
	}
	return c, nil
}

func (r *commentsRepo) Create(ctx context.Context, c models.Comment) (models.Comment, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO comments(id, post_id, author_id, body, is_approved)
		 VALUES($1,$2,$3,$4,$5)`,
		c.ID, c.PostID, c.AuthorID, c.Body, c.IsApproved,
	)
	if err != nil {
		return models.Comment{}, translateErr(err)
	}
	return r.GetByID(ctx, c.ID)
}

func (r *commentsRepo) GetByID(ctx context.Context, id string) (models.Comment, error) {
	return scanComment(r.db.QueryRow(ctx, commentSelect+` WHERE c.id=$1`, id))
}

func (r *commentsRepo) ListByPost(ctx context.Context, postID string, approvedOnly bool) ([]models.Comment, error) {
	q := commentSelect + ` WHERE c.post_id=$1`
	if approvedOnly {
		q += ` AND c.is_approved`
	}
	q += ` ORDER BY c.created_at`

	rows, err := r.db.Query(ctx, q, postID)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	var out []models.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *commentsRepo) Update(ctx context.Context, c models.Comment) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE comments SET body=$2, is_approved=$3, updated_at=now() WHERE id=$1`,
		c.ID, c.Body, c.IsApproved,
	)
	if err != nil {
		return translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *commentsRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id=$1`, id)
	if err != nil {
		return translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}
