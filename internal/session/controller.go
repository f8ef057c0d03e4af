// Package session implements the state machine that governs the claim
// dashboard: selecting and uploading documents, viewing a decision,
// browsing the review queue, and overriding outcomes.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/plumline/claimdesk/internal/common"
	"github.com/plumline/claimdesk/internal/model"
	"github.com/plumline/claimdesk/internal/queue"
	"github.com/plumline/claimdesk/internal/reconcile"
	"github.com/plumline/claimdesk/internal/service"
)

// State identifies which mode the session is in.
type State int

const (
	// StateEmpty means no files are selected and no result is shown.
	StateEmpty State = iota
	// StateUploading means an upload request is in flight.
	StateUploading
	// StateViewingResult means a decision is on screen, either freshly
	// uploaded or reconstructed from the queue.
	StateViewingResult
	// StateBrowsingQueue means the admin review queue is on screen.
	StateBrowsingQueue
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "EMPTY"
	case StateUploading:
		return "UPLOADING"
	case StateViewingResult:
		return "VIEWING_RESULT"
	case StateBrowsingQueue:
		return "BROWSING_QUEUE"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Config holds the controller's collaborators and settings.
type Config struct {
	Gateway   service.Gateway
	Audit     service.AuditLog
	User      model.User
	AssetBase string
}

// Controller owns the session state machine. It decides the legality of
// every transition, drives the gateway, and keeps exactly one of the
// active claim view or the queue live at a time. All methods are intended
// for a single logical thread; the UI disables triggering controls while a
// request is outstanding.
//
// No transition panics past the controller boundary: invalid ones return
// errors and leave the state unchanged.
type Controller struct {
	gateway   service.Gateway
	audit     service.AuditLog
	queue     *queue.Store
	user      model.User
	assetBase string

	state         State
	selectedFiles []string
	view          *model.ClaimView
	lastError     string
	warning       string
}

// NewController creates a session controller in the EMPTY state.
func NewController(cfg Config) *Controller {
	return &Controller{
		gateway:   cfg.Gateway,
		audit:     cfg.Audit,
		user:      cfg.User,
		assetBase: cfg.AssetBase,
		queue:     queue.NewStore(),
		state:     StateEmpty,
	}
}

// State returns the current session state.
func (c *Controller) State() State {
	return c.state
}

// View returns the claim view on screen, or nil outside VIEWING_RESULT.
func (c *Controller) View() *model.ClaimView {
	return c.view
}

// Queue returns the queue store. Live only while browsing.
func (c *Controller) Queue() *queue.Store {
	return c.queue
}

// SelectedFiles returns the locally attached file paths.
func (c *Controller) SelectedFiles() []string {
	return c.selectedFiles
}

// LastError returns the message from the most recent failed transition.
func (c *Controller) LastError() string {
	return c.lastError
}

// Warning returns the non-fatal warning from the most recent transition,
// such as a failed override sync.
func (c *Controller) Warning() string {
	return c.warning
}

// User returns the identity driving this session.
func (c *Controller) User() model.User {
	return c.user
}

// WithUser returns a fresh controller driven by the given user, keeping
// the same collaborators. Identity changes start a new session rather than
// mutating one mid-flight.
func (c *Controller) WithUser(user model.User) *Controller {
	return NewController(Config{
		Gateway:   c.gateway,
		Audit:     c.audit,
		User:      user,
		AssetBase: c.assetBase,
	})
}

// SelectFiles attaches files to the session without any network call.
// Re-selecting clears any prior result and error.
func (c *Controller) SelectFiles(paths []string) error {
	if c.state == StateUploading {
		return common.ErrUploadInFlight
	}
	c.selectedFiles = append([]string(nil), paths...)
	c.view = nil
	c.lastError = ""
	c.warning = ""
	c.state = StateEmpty
	return nil
}

// Upload posts the selected files for adjudication. On success the session
// moves to VIEWING_RESULT; on failure it returns to EMPTY with the error
// message attached and the selected files retained so the user can retry
// without re-selecting.
func (c *Controller) Upload(ctx context.Context) error {
	if c.state == StateUploading {
		return common.ErrUploadInFlight
	}
	if c.state == StateBrowsingQueue {
		return fmt.Errorf("%w: cannot upload while browsing the queue", common.ErrInvalidTransition)
	}
	if len(c.selectedFiles) == 0 {
		return common.ErrNoFilesSelected
	}

	c.state = StateUploading
	c.lastError = ""
	c.warning = ""

	view, err := c.gateway.UploadClaim(ctx, c.selectedFiles, c.user.MemberID)
	if err != nil {
		c.state = StateEmpty
		c.lastError = common.Message(err)
		slog.Warn("Claim upload failed", "error", err, "files", len(c.selectedFiles))
		return err
	}

	c.view = view
	c.state = StateViewingResult
	slog.Info("Claim adjudicated",
		"decision", view.Decision.Kind,
		"approved_amount", view.Decision.ApprovedAmount,
		"files", len(view.FilesProcessed))
	return nil
}

// OpenQueue fetches the pending-review claims and enters BROWSING_QUEUE.
// Admin only. The transition happens even when the fetch fails: the queue
// is shown empty with the error message attached rather than blocking the
// reviewer.
func (c *Controller) OpenQueue(ctx context.Context) error {
	if !c.user.IsAdmin() {
		return common.ErrAdminOnly
	}
	if c.state == StateUploading {
		return common.ErrUploadInFlight
	}

	c.lastError = ""
	c.warning = ""
	c.view = nil
	c.state = StateBrowsingQueue

	entries, err := c.gateway.FetchPending(ctx)
	if err != nil {
		c.queue.Load(nil)
		c.lastError = common.Message(err)
		slog.Warn("Pending queue fetch failed", "error", err)
		return nil
	}

	c.queue.Load(entries)
	slog.Info("Pending queue loaded", "entries", len(entries))
	return nil
}

// Review reconstructs a full claim view from a queue entry and shows it.
// Locally selected files are discarded. The entry stays in the queue; only
// a finalized decision removes it.
func (c *Controller) Review(entry model.QueueEntry) error {
	if c.state != StateBrowsingQueue {
		return fmt.Errorf("%w: review requires the queue to be open", common.ErrInvalidTransition)
	}

	view := reconcile.Reconstruct(entry, c.assetBase)
	c.view = &view
	c.selectedFiles = nil
	c.lastError = ""
	c.warning = ""
	c.state = StateViewingResult
	return nil
}

// Reset clears files, preview, result and error, returning to EMPTY.
func (c *Controller) Reset() error {
	if c.state == StateUploading {
		return common.ErrUploadInFlight
	}
	c.selectedFiles = nil
	c.view = nil
	c.lastError = ""
	c.warning = ""
	c.state = StateEmpty
	return nil
}

// Override replaces the displayed decision with a manual one. Two phases:
// the local view is committed first (optimistic, before any network I/O),
// then the gateway patch runs. On a failed patch the local decision is
// kept, not rolled back: the reviewer's intent survives in the UI and a
// warning reports that persistence failed.
func (c *Controller) Override(ctx context.Context, kind model.DecisionKind) error {
	if c.state != StateViewingResult || c.view == nil {
		return fmt.Errorf("%w: no claim is being viewed", common.ErrInvalidTransition)
	}
	if !c.user.IsAdmin() {
		return common.ErrAdminOnly
	}
	if c.view.ClaimID == nil {
		return common.NewUserError(
			"Unsupported Operation: this claim has not been saved yet",
			common.ErrNoClaimID)
	}
	if c.view.Decision.Kind == kind {
		// Redundant overrides would stack duplicate reasons and waste a
		// network round trip; refuse up front.
		return fmt.Errorf("%w: claim is already %s", common.ErrInvalidTransition, kind)
	}

	previous := *c.view
	next, err := reconcile.ApplyOverride(previous, kind, c.user.Name)
	if err != nil {
		return err
	}

	// Phase 1: local commit. The display updates before the network call
	// is issued.
	c.view = &next
	c.warning = ""
	c.lastError = ""

	claimID := *next.ClaimID
	patch := service.DecisionPatch{
		Status:          string(next.Decision.Kind),
		ApprovedAmount:  next.Decision.ApprovedAmount,
		DecisionReasons: next.Decision.Reasons,
	}

	// Phase 2: best-effort sync.
	syncErr := c.gateway.PatchDecision(ctx, claimID, patch)
	if syncErr == nil {
		c.queue.RemoveIfPresent(claimID)
		slog.Info("Override persisted",
			"claim_id", claimID,
			"decision", kind,
			"actor", c.user.Name)
	} else {
		c.warning = fmt.Sprintf("%s: %s", common.ErrSyncFailed, common.Message(syncErr))
		slog.Warn("Override sync failed, keeping local decision",
			"claim_id", claimID,
			"decision", kind,
			"error", syncErr)
	}

	c.recordOverride(ctx, previous, next, syncErr == nil)
	return nil
}

// QuickResolve drops a queue entry locally without contacting the remote
// store. This is deliberate triage behavior, distinct from the full
// override path; the durable decision is expected to happen elsewhere.
func (c *Controller) QuickResolve(id int64) error {
	if c.state != StateBrowsingQueue {
		return fmt.Errorf("%w: quick resolve requires the queue to be open", common.ErrInvalidTransition)
	}
	c.queue.QuickResolve(id)
	return nil
}

func (c *Controller) recordOverride(ctx context.Context, previous, next model.ClaimView, synced bool) {
	if c.audit == nil || next.ClaimID == nil {
		return
	}
	rec := service.OverrideRecord{
		ClaimID:        *next.ClaimID,
		Actor:          c.user.Name,
		PreviousStatus: string(previous.Decision.Kind),
		NewStatus:      string(next.Decision.Kind),
		PreviousAmount: previous.Decision.ApprovedAmount,
		NewAmount:      next.Decision.ApprovedAmount,
		Synced:         synced,
		CreatedAt:      time.Now().UTC(),
	}
	if err := c.audit.AppendOverride(ctx, rec); err != nil && !errors.Is(err, context.Canceled) {
		slog.Warn("Failed to record override audit entry", "claim_id", rec.ClaimID, "error", err)
	}
}
