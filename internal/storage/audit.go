package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/plumline/claimdesk/internal/service"
)

// AppendOverride records one override action. Rows are append-only; the
// trail is the reviewer's local record even when the backend write failed.
func (s *SQLiteStorage) AppendOverride(ctx context.Context, rec service.OverrideRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if rec.Actor == "" {
		return fmt.Errorf("override record requires an actor")
	}

	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO override_audit
			(claim_id, actor, previous_status, new_status, previous_amount, new_amount, synced, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ClaimID, rec.Actor, rec.PreviousStatus, rec.NewStatus,
		rec.PreviousAmount, rec.NewAmount, rec.Synced, createdAt)
	if err != nil {
		return fmt.Errorf("failed to append override record: %w", err)
	}
	return nil
}

// OverridesForClaim returns the audit trail for one claim, oldest first.
func (s *SQLiteStorage) OverridesForClaim(ctx context.Context, claimID int64) ([]service.OverrideRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, claim_id, actor, previous_status, new_status,
		       previous_amount, new_amount, synced, created_at
		FROM override_audit
		WHERE claim_id = ?
		ORDER BY id ASC`, claimID)
	if err != nil {
		return nil, fmt.Errorf("failed to query override records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanOverrides(rows)
}

// RecentOverrides returns the newest override records across all claims.
func (s *SQLiteStorage) RecentOverrides(ctx context.Context, limit int) ([]service.OverrideRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, claim_id, actor, previous_status, new_status,
		       previous_amount, new_amount, synced, created_at
		FROM override_audit
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query override records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanOverrides(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanOverrides(rows rowScanner) ([]service.OverrideRecord, error) {
	var records []service.OverrideRecord
	for rows.Next() {
		var rec service.OverrideRecord
		if err := rows.Scan(&rec.ID, &rec.ClaimID, &rec.Actor,
			&rec.PreviousStatus, &rec.NewStatus,
			&rec.PreviousAmount, &rec.NewAmount,
			&rec.Synced, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan override record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate override records: %w", err)
	}
	return records, nil
}

// Ensure SQLiteStorage implements the AuditLog interface.
var _ service.AuditLog = (*SQLiteStorage)(nil)
