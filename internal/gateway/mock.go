package gateway

import (
	"context"

	"github.com/plumline/claimdesk/internal/model"
	"github.com/plumline/claimdesk/internal/service"
)

// MockGateway is a mock implementation of service.Gateway for testing.
type MockGateway struct {
	// Functions that can be set by tests to control behavior
	UploadClaimFn   func(ctx context.Context, files []string, memberID string) (*model.ClaimView, error)
	FetchPendingFn  func(ctx context.Context) ([]model.QueueEntry, error)
	PatchDecisionFn func(ctx context.Context, claimID int64, patch service.DecisionPatch) error

	// Call tracking
	UploadClaimCalls   []UploadClaimCall
	FetchPendingCalls  int
	PatchDecisionCalls []PatchDecisionCall
}

// UploadClaimCall records the parameters of an UploadClaim call.
type UploadClaimCall struct {
	Files    []string
	MemberID string
}

// PatchDecisionCall records the parameters of a PatchDecision call.
type PatchDecisionCall struct {
	Patch   service.DecisionPatch
	ClaimID int64
}

// NewMockGateway creates a new mock gateway.
func NewMockGateway() *MockGateway {
	return &MockGateway{
		UploadClaimCalls:   []UploadClaimCall{},
		PatchDecisionCalls: []PatchDecisionCall{},
	}
}

// UploadClaim implements service.Gateway.UploadClaim.
func (m *MockGateway) UploadClaim(ctx context.Context, files []string, memberID string) (*model.ClaimView, error) {
	m.UploadClaimCalls = append(m.UploadClaimCalls, UploadClaimCall{
		Files:    append([]string(nil), files...),
		MemberID: memberID,
	})

	if m.UploadClaimFn != nil {
		return m.UploadClaimFn(ctx, files, memberID)
	}

	// Default behavior: empty adjudicated view
	return &model.ClaimView{Status: "ok"}, nil
}

// FetchPending implements service.Gateway.FetchPending.
func (m *MockGateway) FetchPending(ctx context.Context) ([]model.QueueEntry, error) {
	m.FetchPendingCalls++

	if m.FetchPendingFn != nil {
		return m.FetchPendingFn(ctx)
	}

	return []model.QueueEntry{}, nil
}

// PatchDecision implements service.Gateway.PatchDecision.
func (m *MockGateway) PatchDecision(ctx context.Context, claimID int64, patch service.DecisionPatch) error {
	m.PatchDecisionCalls = append(m.PatchDecisionCalls, PatchDecisionCall{
		ClaimID: claimID,
		Patch:   patch,
	})

	if m.PatchDecisionFn != nil {
		return m.PatchDecisionFn(ctx, claimID, patch)
	}

	return nil
}

// TotalCalls returns the number of gateway invocations of any kind.
func (m *MockGateway) TotalCalls() int {
	return len(m.UploadClaimCalls) + m.FetchPendingCalls + len(m.PatchDecisionCalls)
}

// Reset clears all call tracking.
func (m *MockGateway) Reset() {
	m.UploadClaimCalls = []UploadClaimCall{}
	m.FetchPendingCalls = 0
	m.PatchDecisionCalls = []PatchDecisionCall{}
}

// Ensure MockGateway implements the Gateway interface.
var _ service.Gateway = (*MockGateway)(nil)
