package repository

import (
	"fmt"
	"strings"
)

// userColumnCount is the number of parameterized columns per user row.
const userColumnCount = 6

// upsertUsersQuery builds one parameterized insert covering every given user,
// with one placeholder group per row. Conflicting rows are skipped silently.
func upsertUsersQuery(users []User) (string, []any) {
	groups := make([]string, 0, len(users))
	args := make([]any, 0, len(users)*userColumnCount)

	for i, u := range users {
		base := i * userColumnCount
		groups = append(groups, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6))
		args = append(args, u.ID, u.Username, u.GlobalRank, u.CountryCode, u.AvatarURL, u.CoverURL)
	}

	query := `INSERT INTO users (id, username, global_rank, country_code, avatar_url, cover_url) VALUES ` +
		strings.Join(groups, ", ") + ` ON CONFLICT (id) DO NOTHING`

	return query, args
}

func insertSessionQuery(s Session) (string, []any) {
	return `INSERT INTO sessions (id, user_id, friend_ids, access_token, refresh_token)
VALUES ($1, $2, $3, $4, $5)`, []any{s.ID, s.UserID, s.FriendIDs, s.AccessToken, s.RefreshToken}
}
