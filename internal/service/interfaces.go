// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/plumline/claimdesk/internal/model"
)

// Gateway is the contract with the remote adjudication backend. The server
// owns parsing, extraction, adjudication and durable persistence; this
// client only consumes the results.
type Gateway interface {
	// UploadClaim posts claim documents for adjudication and returns the
	// decided claim view.
	UploadClaim(ctx context.Context, files []string, memberID string) (*model.ClaimView, error)

	// FetchPending returns the claims awaiting manual review, in server
	// order.
	FetchPending(ctx context.Context) ([]model.QueueEntry, error)

	// PatchDecision persists a manual override for an existing claim.
	PatchDecision(ctx context.Context, claimID int64, patch DecisionPatch) error
}

// DecisionPatch is the payload for persisting an override.
type DecisionPatch struct {
	Status          string   `json:"status"`
	ApprovedAmount  float64  `json:"approved_amount"`
	DecisionReasons []string `json:"decision_reasons"`
}

// OverrideRecord is one row of the local override audit trail.
type OverrideRecord struct {
	CreatedAt      time.Time
	Actor          string
	PreviousStatus string
	NewStatus      string
	ClaimID        int64
	PreviousAmount float64
	NewAmount      float64
	Synced         bool
	ID             int64
}

// AuditLog records override actions locally so a reviewer can account for
// decisions even when the backend write failed.
type AuditLog interface {
	AppendOverride(ctx context.Context, rec OverrideRecord) error
	OverridesForClaim(ctx context.Context, claimID int64) ([]OverrideRecord, error)
	RecentOverrides(ctx context.Context, limit int) ([]OverrideRecord, error)
}

// SessionStore persists the current-user blob between runs.
type SessionStore interface {
	SaveUser(ctx context.Context, user model.User) error
	LoadUser(ctx context.Context) (*model.User, error)
	ClearUser(ctx context.Context) error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
