package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/okvr/osuauth/internal/repository"
)

// mockRepository is a mock implementation of repository.Repository.
type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) UpsertUsers(ctx context.Context, users []repository.User) error {
	args := m.Called(ctx, users)
	return args.Error(0)
}

func (m *mockRepository) CreateSession(ctx context.Context, session repository.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}
