package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// User represents a single user in the database.
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	GlobalRank  int64  `json:"global_rank"`
	CountryCode string `json:"country_code"`
	AvatarURL   string `json:"avatar_url"`
	CoverURL    string `json:"cover_url"`
}

// Session represents a single session in the database.
type Session struct {
	ID           string  `json:"id"`
	UserID       int64   `json:"user_id"`
	FriendIDs    []int64 `json:"friend_ids"`
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
}

// Repository encapsulates all operations available on the database.
type Repository interface {
	// UpsertUsers persists the given users in a single batched insert.
	// Users that already exist are skipped, never overwritten, so the call is idempotent.
	UpsertUsers(ctx context.Context, users []User) error

	// CreateSession persists the given session record.
	CreateSession(ctx context.Context, session Session) error
}

// repository implements Repository.
type repository struct {
	database *sql.DB
}

// NewRepository returns a new implementation of Repository.
func NewRepository(database *sql.DB) Repository {
	return &repository{database: database}
}

func (r *repository) UpsertUsers(ctx context.Context, users []User) error {
	if len(users) == 0 {
		return nil
	}

	// Form and execute query.
	query, args := upsertUsersQuery(users)
	result, err := r.database.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error in query execution: %w", err)
	}

	// Rows already present are skipped by the conflict clause, so this can be less than len(users).
	af, _ := result.RowsAffected()
	slog.InfoContext(ctx, "users upserted successfully", "batch-size", len(users), "rows-affected", af)
	return nil
}

func (r *repository) CreateSession(ctx context.Context, session Session) error {
	// Form and execute query.
	query, args := insertSessionQuery(session)
	if _, err := r.database.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("error in query execution: %w", err)
	}

	slog.InfoContext(ctx, "session created successfully", "user-id", session.UserID)
	return nil
}
