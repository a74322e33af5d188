package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/okvr/osuauth/internal/repository"
	"github.com/okvr/osuauth/internal/utils/errutils"
	"github.com/okvr/osuauth/internal/utils/httputils"
	"github.com/okvr/osuauth/internal/utils/miscutils"
	"github.com/okvr/osuauth/pkg/oauth"
)

// sessionCookieName is the name of the cookie that holds the session string.
const sessionCookieName = "osu_session"

// sessionIDByteCount is the entropy of a session string. The string doubles as the
// session cookie value, so it must be long enough to resist guessing.
const sessionIDByteCount = 32

const (
	msgCodeRequired = "Code is required!"
	msgUpsertFailed = "Can't add users!"
)

// Authorize handles the provider's OAuth callback.
//
// It exchanges the authorization code for tokens, fetches the authenticated user and
// their friends, persists all of them, creates a session and redirects the browser.
// Nothing is written before all provider calls succeed, and no response is emitted
// before all writes succeed.
func (h *Handler) Authorize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// The code is single-use and issued by the provider after user consent.
	// Without it there is nothing to do, so no downstream call is made.
	code := r.URL.Query().Get("code")
	if code == "" {
		slog.ErrorContext(ctx, "callback request has no code parameter")
		httputils.Write(w, http.StatusBadRequest, nil, msgCodeRequired)
		return
	}

	// Convert the code sent by the provider to the token pair.
	tokens, err := h.provider.TokenFromCode(ctx, code)
	if err != nil {
		slog.ErrorContext(ctx, "error in TokenFromCode call", "error", err)
		httputils.WriteErr(w, errutils.BadGateway().WithReasonErr(err))
		return
	}

	// Fetch the authenticated user and their friend list.
	me, friends, err := h.provider.MeAndFriends(ctx, tokens)
	if err != nil {
		slog.ErrorContext(ctx, "error in MeAndFriends call", "error", err)
		httputils.WriteErr(w, errutils.BadGateway().WithReasonErr(err))
		return
	}

	// Friend IDs are computed before self joins the persistence batch,
	// so the session never lists the user as their own friend.
	friendIDs := make([]int64, 0, len(friends))
	for _, friend := range friends {
		friendIDs = append(friendIDs, friend.ID)
	}

	// The batch holds every friend plus the authenticated user.
	users := make([]repository.User, 0, len(friends)+1)
	for _, u := range friends {
		users = append(users, toUserRecord(u))
	}
	users = append(users, toUserRecord(me))

	if err := h.repo.UpsertUsers(ctx, users); err != nil {
		slog.ErrorContext(ctx, "error in UpsertUsers call", "error", err)
		httputils.Write(w, http.StatusInternalServerError, nil, msgUpsertFailed)
		return
	}

	// The session string doubles as the cookie value, so it comes from a CSPRNG.
	sessionID, err := miscutils.RandomString(sessionIDByteCount)
	if err != nil {
		slog.ErrorContext(ctx, "error in RandomString call", "error", err)
		httputils.WriteErr(w, errutils.InternalServerError())
		return
	}

	session := repository.Session{
		ID:           sessionID,
		UserID:       me.ID,
		FriendIDs:    friendIDs,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}

	if err := h.repo.CreateSession(ctx, session); err != nil {
		slog.ErrorContext(ctx, "error in CreateSession call", "error", err)
		httputils.WriteErr(w, errutils.InternalServerError())
		return
	}

	// Set the cookie.
	http.SetCookie(w, &http.Cookie{
		Name:  sessionCookieName,
		Value: sessionID,
		Path:  "/",
		// Use secure mode when the application is running over HTTPS.
		Secure:   strings.HasPrefix(h.config.Application.BaseURL, "https://"),
		HttpOnly: true,
		// Lax, not Strict: the browser arrives here from the provider's domain.
		SameSite: http.SameSiteLaxMode,
	})

	// Returning raw tokens in the redirect URL leaks them through browser history.
	// Kept as is because the client application reads them from there.
	redirectURL := fmt.Sprintf("%s?access_token=%s&refresh_token=%s",
		h.config.OAuthOsu.PostLoginRedirectURI,
		url.QueryEscape(tokens.AccessToken),
		url.QueryEscape(tokens.RefreshToken),
	)

	headers := map[string]string{"Location": redirectURL}
	httputils.Write(w, http.StatusMovedPermanently, headers, nil)
}

// toUserRecord converts a provider user to its database row.
func toUserRecord(u oauth.User) repository.User {
	return repository.User{
		ID:          u.ID,
		Username:    u.Username,
		GlobalRank:  u.GlobalRank(),
		CountryCode: u.CountryCode,
		AvatarURL:   u.AvatarURL,
		CoverURL:    u.Cover.URL,
	}
}
