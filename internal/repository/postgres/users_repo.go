package postgres

import (
	"context"

	"github.com/atopal/blog-backend/internal/models"
	repo "github.com/atopal/blog-backend/internal/repository"
	"github.com/google/uuid"
)

type usersRepo struct{ db DB }

func NewUsers(db DB) repo.Users { return &usersRepo{db: db} }

const userCols = `id, email, password_hash, first_name, last_name, is_staff, is_active, created_at`

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.IsStaff, &u.IsActive, &u.CreatedAt)
	return u, translateErr(err)
}

func (r *usersRepo) Create(ctx context.Context, u models.User) (models.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO users(id, email, password_hash, first_name, last_name, is_staff, is_active)
		 VALUES($1,$2,$3,$4,$5,$6,$7)
		 RETURNING `+userCols,
		u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.IsStaff, u.IsActive,
	)
	return scanUser(row)
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	return scanUser(r.db.QueryRow(ctx, `SELECT `+userCols+` FROM users WHERE id=$1`, id))
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return scanUser(r.db.QueryRow(ctx, `SELECT `+userCols+` FROM users WHERE email=$1`, email))
}

func (r *usersRepo) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userCols+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *usersRepo) Update(ctx context.Context, u models.User) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET email=$2, first_name=$3, last_name=$4, is_staff=$5, is_active=$6 WHERE id=$1`,
		u.ID, u.Email, u.FirstName, u.LastName, u.IsStaff, u.IsActive,
	)
	if err != nil {
		return translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *usersRepo) Delete(ctx context.Context, id string) error {
	// Posts and comments survive; their author_id is nulled by the FK.
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}
