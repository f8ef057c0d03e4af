package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plumline/claimdesk/internal/cli"
	"github.com/plumline/claimdesk/internal/model"
)

func overrideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "override <claim-id>",
		Short: "Manually override a queued claim's decision (admin)",
		Long: `Replace the automated decision for a claim with a manual one. The new
decision is shown immediately and then saved to the server; if saving
fails the local decision stands and a warning is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: runOverride,
	}

	cmd.Flags().StringP("decision", "d", "", "New decision: approved or rejected (required)")
	_ = cmd.MarkFlagRequired("decision")

	return cmd
}

func runOverride(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid claim id %q: %w", args[0], err)
	}

	decisionFlag, _ := cmd.Flags().GetString("decision")
	var kind model.DecisionKind
	switch strings.ToLower(decisionFlag) {
	case "approved", "approve":
		kind = model.DecisionApproved
	case "rejected", "reject":
		kind = model.DecisionRejected
	default:
		return fmt.Errorf("decision must be 'approved' or 'rejected', got %q", decisionFlag)
	}

	d, err := setup(ctx, true)
	if err != nil {
		return err
	}
	defer d.close()

	if err := d.controller.OpenQueue(ctx); err != nil {
		return err
	}

	entry := d.controller.Queue().Find(id)
	if entry == nil {
		return fmt.Errorf("claim #%d is not in the review queue", id)
	}
	if err := d.controller.Review(*entry); err != nil {
		return err
	}

	if err := d.controller.Override(ctx, kind); err != nil {
		return err
	}

	fmt.Println(cli.RenderClaim(*d.controller.View()))
	if warning := d.controller.Warning(); warning != "" {
		fmt.Println(cli.FormatWarning(warning))
	}
	return nil
}
