// Package common provides shared utilities and types used across the application.
package common

import (
	"context"
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Claim lifecycle errors.
	ErrNoClaimID           = errors.New("claim has no server-side id")
	ErrUnsupportedDecision = errors.New("unsupported override decision")
	ErrNoFilesSelected     = errors.New("no files selected")
	ErrUploadInFlight      = errors.New("an upload is already in progress")
	ErrAdminOnly           = errors.New("administrator role required")
	ErrInvalidTransition   = errors.New("invalid session transition")

	// Gateway errors.
	ErrGatewayConnection = errors.New("backend connection failed")
	ErrSyncFailed        = errors.New("decision updated locally, but failed to save to server")

	// Storage errors.
	ErrNotFound       = errors.New("not found")
	ErrNoSavedSession = errors.New("no saved session")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// Message extracts the human-readable message from an error, preferring
// the UserError wrapper when present.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage
	}
	return err.Error()
}

// IsRetryable determines if an error should trigger a retry.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrGatewayConnection) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var retryableErr *RetryableError
	if errors.As(err, &retryableErr) {
		return retryableErr.Retryable
	}

	return false
}
