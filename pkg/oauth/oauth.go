package oauth

import (
	"context"
)

// Provider represents an OAuth provider.
type Provider interface {
	// Name provides the name of the provider.
	Name() string

	// GetAuthURL returns the URL to the auth page of the provider.
	GetAuthURL(ctx context.Context) string

	// TokenFromCode exchanges the authorization code for the provider's tokens.
	TokenFromCode(ctx context.Context, code string) (TokenPair, error)

	// MeAndFriends fetches the authenticated user and their friend list.
	MeAndFriends(ctx context.Context, tokens TokenPair) (User, []User, error)
}

// TokenPair holds the tokens returned by the provider's token endpoint.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// User is the schema of a user returned by the provider's API.
// The authenticated user and their friends share this shape.
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	CountryCode string `json:"country_code"`
	AvatarURL   string `json:"avatar_url"`

	Cover struct {
		URL string `json:"url"`
	} `json:"cover"`

	Statistics struct {
		// GlobalRank is null for inactive or unranked players.
		GlobalRank *int64 `json:"global_rank"`
	} `json:"statistics"`
}

// GlobalRank returns the user's global rank, treating an absent rank as 0.
func (u User) GlobalRank() int64 {
	if u.Statistics.GlobalRank == nil {
		return 0
	}
	return *u.Statistics.GlobalRank
}
