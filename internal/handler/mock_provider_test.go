package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/okvr/osuauth/pkg/oauth"
)

// mockProvider is a mock implementation of the oauth.Provider interface.
type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) Name() string {
	return "osu"
}

func (m *mockProvider) GetAuthURL(ctx context.Context) string {
	args := m.Called(ctx)
	return args.String(0)
}

func (m *mockProvider) TokenFromCode(ctx context.Context, code string) (oauth.TokenPair, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(oauth.TokenPair), args.Error(1)
}

func (m *mockProvider) MeAndFriends(ctx context.Context, tokens oauth.TokenPair) (oauth.User, []oauth.User, error) {
	args := m.Called(ctx, tokens)

	var friends []oauth.User
	if v := args.Get(1); v != nil {
		friends = v.([]oauth.User)
	}

	return args.Get(0).(oauth.User), friends, args.Error(2)
}
