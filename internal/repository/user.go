package repository

import (
	"context"
	"fmt"

	"bewear/internal/domain"
)

// GetUserBySessionToken resolves an unexpired session token to its user.
// Sessions and users are written by the external auth provider; this and
// the expiry sweep below are the only paths the storefront needs.
func (q *Queries) GetUserBySessionToken(ctx context.Context, token string) (domain.User, error) {
	query := `
		SELECT u.id, u.email, u.name, u.created_at
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.token = $1 AND s.expires_at > now()`

	var u domain.User
	err := q.db.QueryRow(ctx, query, token).Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt)
	return u, err
}

// DeleteExpiredSessions removes sessions past their expiry and reports how
// many were swept.
func (q *Queries) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	tag, err := q.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= now()`)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
