// Package mocks holds testify mocks for the repository interfaces,
// shared by the service and router tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/atopal/blog-backend/internal/models"
)

type Users struct{ mock.Mock }

func (m *Users) Create(ctx context.Context, u models.User) (models.User, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *Users) GetByID(ctx context.Context, id string) (models.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *Users) GetByEmail(ctx context.Context, email string) (models.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *Users) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *Users) Update(ctx context.Context, u models.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *Users) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type Posts struct{ mock.Mock }

func (m *Posts) Create(ctx context.Context, p models.Post) (models.Post, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(models.Post), args.Error(1)
}

func (m *Posts) GetByID(ctx context.Context, id string) (models.Post, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Post), args.Error(1)
}

func (m *Posts) List(ctx context.Context, publishedOnly bool) ([]models.Post, error) {
	args := m.Called(ctx, publishedOnly)
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *Posts) Update(ctx context.Context, p models.Post) error {
	return m.Called(ctx, p).Error(0)
}

func (m *Posts) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *Posts) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *Posts) CountApproved(ctx context.Context, postID string) (int, error) {
	args := m.Called(ctx, postID)
	return args.Int(0), args.Error(1)
}

type Comments struct{ mock.Mock }

func (m *Comments) Create(ctx context.Context, c models.Comment) (models.Comment, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(models.Comment), args.Error(1)
}

func (m *Comments) GetByID(ctx context.Context, id string) (models.Comment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Comment), args.Error(1)
}

func (m *Comments) ListByPost(ctx context.Context, postID string, approvedOnly bool) ([]models.Comment, error) {
	args := m.Called(ctx, postID, approvedOnly)
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *Comments) Update(ctx context.Context, c models.Comment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *Comments) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
