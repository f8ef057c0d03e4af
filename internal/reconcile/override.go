package reconcile

import (
	"fmt"
	"strings"

	"github.com/plumline/claimdesk/internal/common"
	"github.com/plumline/claimdesk/internal/model"
)

// ApplyOverride merges a manual override into an existing claim view and
// returns the resulting view. It is pure: no I/O, and the input view is
// left untouched. The caller owns the optimistic display of the result and
// the subsequent synchronization with the remote store.
//
// Overriding to APPROVED pays out the full claimed total (0 when the total
// is unknown); overriding to REJECTED pays 0. The override reason is
// prepended so it renders first, and the summary is replaced outright.
func ApplyOverride(cur model.ClaimView, kind model.DecisionKind, actor string) (model.ClaimView, error) {
	if cur.ClaimID == nil {
		return model.ClaimView{}, common.NewUserError(
			"Unsupported Operation: this claim has not been saved yet",
			common.ErrNoClaimID)
	}

	switch kind {
	case model.DecisionApproved, model.DecisionRejected:
	default:
		return model.ClaimView{}, fmt.Errorf("%w: %s", common.ErrUnsupportedDecision, kind)
	}

	out := cur.Clone()
	out.Decision.Kind = kind

	if kind == model.DecisionApproved {
		out.Decision.ApprovedAmount = cur.Extracted.DisplayTotal()
	} else {
		out.Decision.ApprovedAmount = 0
	}

	reasons := make([]string, 0, len(out.Decision.Reasons)+1)
	reasons = append(reasons, OverrideReason(actor))
	reasons = append(reasons, out.Decision.Reasons...)
	out.Decision.Reasons = reasons

	out.Decision.SummaryText = fmt.Sprintf("Decision manually set to %s by %s.", kind, actor)

	return out, nil
}

const overridePrefix = "Manual Override by "

// OverrideReason formats the administrative reason entry recorded for a
// manual override.
func OverrideReason(actor string) string {
	return overridePrefix + actor
}

// IsOverrideReason reports whether a reason entry records an
// administrative override, so the UI can tag it distinctly.
func IsOverrideReason(reason string) bool {
	return strings.HasPrefix(reason, overridePrefix)
}
