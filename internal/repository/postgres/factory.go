package postgres

import (
	"context"
	"errors"

	repo "github.com/atopal/blog-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the slice of pgxpool.Pool the repos need. pgxmock implements it
// too, which is what the repo tests run against.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repositories struct {
	Users    repo.Users
	Posts    repo.Posts
	Comments repo.Comments
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:    &usersRepo{pool},
		Posts:    &postsRepo{pool},
		Comments: &commentsRepo{pool},
	}
}

const uniqueViolation = "23505"

// translateErr maps pgx errors onto the repository error types so the
// services never see driver details.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repo.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		switch pgErr.ConstraintName {
		case "users_email_key":
			return &repo.DuplicateError{Field: "email"}
		case "posts_title_key":
			return &repo.DuplicateError{Field: "title"}
		}
		return &repo.DuplicateError{Field: pgErr.ConstraintName}
	}
	return err
}
