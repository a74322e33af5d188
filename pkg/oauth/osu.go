package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Osu implements the Provider interface for osu!.
//
// Read the documentation here: https://osu.ppy.sh/docs/index.html#authentication
type Osu struct {
	conf       OsuConfig
	httpClient *http.Client
}

// OsuConfig holds everything the Osu provider needs to talk to osu!.
type OsuConfig struct {
	// ClientID of your application.
	ClientID string
	// ClientSecret for your application.
	ClientSecret string
	// AuthURL is the URL of osu!'s consent page.
	AuthURL string
	// TokenEndpoint exchanges the authorization code with the token pair.
	TokenEndpoint string
	// APIBaseURL is the base URL of osu!'s API, example: https://osu.ppy.sh/api/v2
	APIBaseURL string
	// Scopes for the request, example: "identify friends.read"
	Scopes string
	// RedirectURI is where osu! sends the user after consent.
	// The token endpoint verifies it against the one registered with the application.
	RedirectURI string
	// Timeout bounds every outbound call. A slow provider must not stall the caller forever.
	Timeout time.Duration
}

// NewOsu instantiates a new Osu provider instance.
func NewOsu(conf OsuConfig) *Osu {
	if conf.Timeout == 0 {
		conf.Timeout = 10 * time.Second
	}
	return &Osu{conf: conf, httpClient: &http.Client{Timeout: conf.Timeout}}
}

func (o *Osu) Name() string {
	return "osu"
}

func (o *Osu) GetAuthURL(ctx context.Context) string {
	q := url.Values{}
	q.Set("client_id", o.conf.ClientID)
	q.Set("redirect_uri", o.conf.RedirectURI)
	q.Set("response_type", "code")
	q.Set("scope", o.conf.Scopes)

	return o.conf.AuthURL + "?" + q.Encode()
}

func (o *Osu) TokenFromCode(ctx context.Context, code string) (TokenPair, error) {
	// The token endpoint expects a form-encoded body.
	form := url.Values{}
	form.Set("client_id", o.conf.ClientID)
	form.Set("client_secret", o.conf.ClientSecret)
	form.Set("code", code)
	form.Set("grant_type", "authorization_code")
	form.Set("redirect_uri", o.conf.RedirectURI)

	// Form the HTTP request.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.conf.TokenEndpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return TokenPair{}, fmt.Errorf("error in http.NewRequestWithContext call: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// Execute request.
	res, err := o.httpClient.Do(req)
	if err != nil {
		return TokenPair{}, fmt.Errorf("error in httpClient.Do call: %w", err)
	}
	// Close response body upon return.
	defer func() { _ = res.Body.Close() }()

	// Check if the request failed.
	if !is2xx(res.StatusCode) {
		// Decode response body only for logging.
		resBody, err := io.ReadAll(res.Body)
		if err != nil {
			resBody = []byte("error in io.ReadAll call: " + err.Error())
		}
		slog.ErrorContext(ctx, "token exchange failed", "code", res.StatusCode, "body", string(resBody))
		return TokenPair{}, fmt.Errorf("token endpoint returned status code: %d", res.StatusCode)
	}

	// Decode the success response.
	var tokens TokenPair
	if err := json.NewDecoder(res.Body).Decode(&tokens); err != nil {
		return TokenPair{}, fmt.Errorf("error in json Decode call: %w", err)
	}

	return tokens, nil
}

func (o *Osu) MeAndFriends(ctx context.Context, tokens TokenPair) (User, []User, error) {
	var me User
	if err := o.getJSON(ctx, o.conf.APIBaseURL+"/me", tokens.AccessToken, &me); err != nil {
		return User{}, nil, fmt.Errorf("failed to fetch current user: %w", err)
	}

	var friends []User
	if err := o.getJSON(ctx, o.conf.APIBaseURL+"/friends", tokens.AccessToken, &friends); err != nil {
		return User{}, nil, fmt.Errorf("failed to fetch friend list: %w", err)
	}

	return me, friends, nil
}

// getJSON executes an authenticated GET call against the provider's API and decodes the JSON response.
func (o *Osu) getJSON(ctx context.Context, endpoint, accessToken string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("error in http.NewRequestWithContext call: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	res, err := o.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error in httpClient.Do call: %w", err)
	}
	// Close response body upon return.
	defer func() { _ = res.Body.Close() }()

	if !is2xx(res.StatusCode) {
		slog.ErrorContext(ctx, "provider API call failed", "endpoint", endpoint, "code", res.StatusCode)
		return fmt.Errorf("endpoint returned status code: %d", res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(target); err != nil {
		return fmt.Errorf("error in json Decode call: %w", err)
	}

	return nil
}

// is2xx returns true if the given status code is in the 2xx range.
//
// Ideally, this function would come from a utility package, but it doesn't because the oauth
// package must not depend on other local packages.
func is2xx(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
