package services

import (
	"context"
	"errors"

	"github.com/atopal/blog-backend/internal/auth"
	"github.com/atopal/blog-backend/internal/authz"
	"github.com/atopal/blog-backend/internal/config"
	"github.com/atopal/blog-backend/internal/metrics"
	"github.com/atopal/blog-backend/internal/models"
	repo "github.com/atopal/blog-backend/internal/repository"
)

// ErrInvalidCredentials covers bad email, bad password and disabled
// accounts alike so login failures are indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

type UserService struct {
	users repo.Users
	tm    *auth.TokenManager
	cfg   config.Config
}

func NewUserService(users repo.Users, tm *auth.TokenManager, cfg config.Config) *UserService {
	return &UserService{users: users, tm: tm, cfg: cfg}
}

// Register is open to anyone and always creates a non-staff, active
// account, whatever the payload claims.
func (s *UserService) Register(ctx context.Context, email, password, firstName, lastName string) (models.User, error) {
	hash, err := auth.HashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		return models.User{}, err
	}
	u := models.User{
		Email:        models.NormalizeEmail(email),
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		IsStaff:      false,
		IsActive:     true,
	}
	created, err := s.users.Create(ctx, u)
	if err != nil {
		return models.User{}, asFieldError(err)
	}
	return created, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (models.User, string, string, error) {
	u, err := s.users.GetByEmail(ctx, models.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return models.User{}, "", "", ErrInvalidCredentials
		}
		return models.User{}, "", "", err
	}
	if !u.IsActive || auth.VerifyPassword(password, u.PasswordHash) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return models.User{}, "", "", ErrInvalidCredentials
	}
	access, refresh, _, err := s.tm.GeneratePair(u.ID, u.IsStaff)
	if err != nil {
		return models.User{}, "", "", err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return u, access, refresh, nil
}

// Refresh rotates a valid refresh token into a fresh pair. The account
// is re-read so a deactivated or deleted user cannot keep minting tokens.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := s.tm.ParseRefresh(refreshToken)
	if err != nil {
		return "", "", ErrInvalidCredentials
	}
	u, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil || !u.IsActive {
		return "", "", ErrInvalidCredentials
	}
	access, refresh, _, err := s.tm.GeneratePair(u.ID, u.IsStaff)
	return access, refresh, err
}

func (s *UserService) List(ctx context.Context, caller authz.Caller) ([]models.User, error) {
	if err := authz.CanManageUsers(caller); err != nil {
		return nil, err
	}
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, caller authz.Caller, id string) (models.User, error) {
	if err := authz.CanManageUsers(caller); err != nil {
		return models.User{}, err
	}
	return s.users.GetByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, caller authz.Caller, id string, patch models.UserPatch) (models.User, error) {
	if err := authz.CanManageUsers(caller); err != nil {
		return models.User{}, err
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	if patch.Email != nil {
		u.Email = models.NormalizeEmail(*patch.Email)
	}
	if patch.FirstName != nil {
		u.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		u.LastName = *patch.LastName
	}
	if patch.IsStaff != nil {
		u.IsStaff = *patch.IsStaff
	}
	if patch.IsActive != nil {
		u.IsActive = *patch.IsActive
	}
	if err := s.users.Update(ctx, u); err != nil {
		return models.User{}, asFieldError(err)
	}
	return u, nil
}

// Delete removes the account. Posts and comments authored by it survive
// with a nulled author reference.
func (s *UserService) Delete(ctx context.Context, caller authz.Caller, id string) error {
	if err := authz.CanManageUsers(caller); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}
