package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/atopal/blog-backend/internal/api/validate"
	"github.com/atopal/blog-backend/internal/auth"
	"github.com/atopal/blog-backend/internal/authz"
	"github.com/atopal/blog-backend/internal/config"
	"github.com/atopal/blog-backend/internal/models"
	repo "github.com/atopal/blog-backend/internal/repository"
	"github.com/atopal/blog-backend/internal/repository/mocks"
)

func testTM() *auth.TokenManager {
	return auth.NewTokenManager("a-secret", "r-secret", "blog-test", time.Minute, time.Hour)
}

// bcrypt min cost keeps the suite fast
func testCfg() config.Config { return config.Config{BcryptCost: 4} }

func newUserService(users *mocks.Users) *UserService {
	return NewUserService(users, testTM(), testCfg())
}

func TestRegisterAlwaysCreatesNonStaffActive(t *testing.T) {
	users := &mocks.Users{}
	svc := newUserService(users)

	users.On("Create", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		return !u.IsStaff && u.IsActive &&
			u.Email == "alice@example.com" &&
			u.PasswordHash != "" && u.PasswordHash != "hunter2secret"
	})).Return(models.User{ID: "u1", Email: "alice@example.com", IsActive: true}, nil)

	u, err := svc.Register(context.Background(), "  Alice@Example.COM ", "hunter2secret", "Alice", "Smith")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	users.AssertExpectations(t)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := &mocks.Users{}
	svc := newUserService(users)

	users.On("Create", mock.Anything, mock.Anything).
		Return(models.User{}, &repo.DuplicateError{Field: "email"})

	_, err := svc.Register(context.Background(), "alice@example.com", "hunter2secret", "", "")
	var verrs validate.Errs
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.Fields(), "email")
}

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("hunter2secret", 4)
	require.NoError(t, err)
	account := models.User{ID: "u1", Email: "alice@example.com", PasswordHash: hash, IsStaff: true, IsActive: true}

	t.Run("valid credentials issue a pair with the staff flag", func(t *testing.T) {
		users := &mocks.Users{}
		svc := newUserService(users)
		users.On("GetByEmail", mock.Anything, "alice@example.com").Return(account, nil)

		u, access, refresh, err := svc.Login(context.Background(), "Alice@Example.com", "hunter2secret")
		require.NoError(t, err)
		assert.Equal(t, "u1", u.ID)
		assert.NotEmpty(t, refresh)

		claims, err := testTM().ParseAccess(access)
		require.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID)
		assert.True(t, claims.Staff)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := &mocks.Users{}
		svc := newUserService(users)
		users.On("GetByEmail", mock.Anything, "alice@example.com").Return(account, nil)

		_, _, _, err := svc.Login(context.Background(), "alice@example.com", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		users := &mocks.Users{}
		svc := newUserService(users)
		users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(models.User{}, repo.ErrNotFound)

		_, _, _, err := svc.Login(context.Background(), "ghost@example.com", "hunter2secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		disabled := account
		disabled.IsActive = false
		users := &mocks.Users{}
		svc := newUserService(users)
		users.On("GetByEmail", mock.Anything, "alice@example.com").Return(disabled, nil)

		_, _, _, err := svc.Login(context.Background(), "alice@example.com", "hunter2secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestRefreshRejectsDeactivatedUser(t *testing.T) {
	users := &mocks.Users{}
	svc := newUserService(users)

	_, refresh, _, err := testTM().GeneratePair("u1", false)
	require.NoError(t, err)

	users.On("GetByID", mock.Anything, "u1").
		Return(models.User{ID: "u1", IsActive: false}, nil)

	_, _, err = svc.Refresh(context.Background(), refresh)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserDirectoryIsStaffOnly(t *testing.T) {
	users := &mocks.Users{}
	svc := newUserService(users)
	anon := authz.Anonymous
	nonStaff := authz.Caller{ID: "u2", Authenticated: true}

	var d *authz.Denial

	_, err := svc.List(context.Background(), anon)
	require.ErrorAs(t, err, &d)
	assert.Equal(t, authz.ReasonUnauthenticated, d.Reason)

	_, err = svc.List(context.Background(), nonStaff)
	require.ErrorAs(t, err, &d)
	assert.Equal(t, authz.ReasonForbidden, d.Reason)

	err = svc.Delete(context.Background(), nonStaff, "u1")
	require.ErrorAs(t, err, &d)
	assert.Equal(t, authz.ReasonForbidden, d.Reason)

	users.AssertNotCalled(t, "List", mock.Anything)
	users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUpdateNormalizesEmail(t *testing.T) {
	users := &mocks.Users{}
	svc := newUserService(users)
	staff := authz.Caller{ID: "admin", Staff: true, Authenticated: true}

	users.On("GetByID", mock.Anything, "u1").
		Return(models.User{ID: "u1", Email: "old@example.com", IsActive: true}, nil)
	users.On("Update", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		return u.Email == "new@example.com"
	})).Return(nil)

	email := "NEW@Example.com"
	u, err := svc.Update(context.Background(), staff, "u1", models.UserPatch{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", u.Email)
	users.AssertExpectations(t)
}
