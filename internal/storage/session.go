package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/plumline/claimdesk/internal/common"
	"github.com/plumline/claimdesk/internal/model"
	"github.com/plumline/claimdesk/internal/service"
)

// SaveUser persists the current user so the next run starts logged in.
func (s *SQLiteStorage) SaveUser(ctx context.Context, user model.User) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if user.Name == "" {
		return fmt.Errorf("user requires a name")
	}

	blob, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO saved_session (id, user_json, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET user_json = excluded.user_json, updated_at = excluded.updated_at`,
		string(blob), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// LoadUser returns the persisted user, or common.ErrNoSavedSession when
// nobody is logged in.
func (s *SQLiteStorage) LoadUser(ctx context.Context) (*model.User, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var blob string
	err := s.db.QueryRowContext(ctx, `SELECT user_json FROM saved_session WHERE id = 1`).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNoSavedSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var user model.User
	if err := json.Unmarshal([]byte(blob), &user); err != nil {
		return nil, fmt.Errorf("failed to decode saved session: %w", err)
	}
	return &user, nil
}

// ClearUser removes the persisted session on logout.
func (s *SQLiteStorage) ClearUser(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM saved_session WHERE id = 1`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Ensure SQLiteStorage implements the SessionStore interface.
var _ service.SessionStore = (*SQLiteStorage)(nil)
