// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color (plum).
	PrimaryColor = lipgloss.Color("#C026D3")
	// ApprovedColor marks approved decisions.
	ApprovedColor = lipgloss.Color("#22C55E") // Green
	// RejectedColor marks rejected decisions.
	RejectedColor = lipgloss.Color("#EF4444") // Red
	// PartialColor marks partial approvals.
	PartialColor = lipgloss.Color("#3B82F6") // Blue
	// ReviewColor marks claims awaiting manual review.
	ReviewColor = lipgloss.Color("#F59E0B") // Amber
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// ApprovedStyle formats approved badges and amounts.
	ApprovedStyle = lipgloss.NewStyle().
			Foreground(ApprovedColor).
			Bold(true)

	// RejectedStyle formats rejected badges.
	RejectedStyle = lipgloss.NewStyle().
			Foreground(RejectedColor).
			Bold(true)

	// PartialStyle formats partial-approval badges.
	PartialStyle = lipgloss.NewStyle().
			Foreground(PartialColor).
			Bold(true)

	// ReviewStyle formats manual-review badges and warnings.
	ReviewStyle = lipgloss.NewStyle().
			Foreground(ReviewColor).
			Bold(true)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(RejectedColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ReviewColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// DeductionStyle formats deduction rows of the breakdown ledger.
	DeductionStyle = lipgloss.NewStyle().
			Foreground(RejectedColor)

	// FinalRowStyle formats the bottom-line total of the ledger.
	FinalRowStyle = lipgloss.NewStyle().
			Bold(true)

	// AdminTagStyle marks administrative override reasons.
	AdminTagStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)
)

// Icons.
const (
	ApprovedIcon = "✓"
	RejectedIcon = "✗"
	ReviewIcon   = "⚠"
	InfoIcon     = "ℹ"
	ClaimIcon    = "🧾"
)

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(RejectedIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(ReviewIcon + " " + message)
}

// FormatTitle formats a title with the claim icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(ClaimIcon + " " + title)
}

// RenderBox renders content in a styled box with a title.
func RenderBox(title, content string) string {
	boxTitle := TitleStyle.
		UnsetMargins().
		Render(title)

	boxContent := lipgloss.JoinVertical(
		lipgloss.Left,
		boxTitle,
		"",
		content,
	)

	return BoxStyle.Render(boxContent)
}
