package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plumline/claimdesk/internal/cli"
	"github.com/plumline/claimdesk/internal/service"
)

func auditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit [claim-id]",
		Short: "Show the local override audit trail",
		Long: `List override actions recorded on this machine, including ones whose
server sync failed. With a claim id, shows only that claim's trail.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAudit,
	}

	cmd.Flags().Int("limit", 20, "Maximum records to show")
	return cmd
}

func runAudit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	d, err := setup(ctx, true)
	if err != nil {
		return err
	}
	defer d.close()

	limit, _ := cmd.Flags().GetInt("limit")

	records, err := fetchAudit(cmd, args, d, limit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No overrides recorded."))
		return nil
	}

	for _, rec := range records {
		syncNote := cli.ApprovedStyle.Render("synced")
		if !rec.Synced {
			syncNote = cli.WarningStyle.Render("local only")
		}
		fmt.Printf("%s  #%-6d %s → %s  ₹%.2f → ₹%.2f  by %s  [%s]\n",
			rec.CreatedAt.Format("2006-01-02 15:04"),
			rec.ClaimID,
			rec.PreviousStatus, rec.NewStatus,
			rec.PreviousAmount, rec.NewAmount,
			rec.Actor, syncNote)
	}
	return nil
}

func fetchAudit(cmd *cobra.Command, args []string, d *deps, limit int) ([]service.OverrideRecord, error) {
	ctx := cmd.Context()
	if len(args) == 1 {
		var claimID int64
		if _, err := fmt.Sscanf(args[0], "%d", &claimID); err != nil {
			return nil, fmt.Errorf("invalid claim id %q: %w", args[0], err)
		}
		return d.store.OverridesForClaim(ctx, claimID)
	}
	return d.store.RecentOverrides(ctx, limit)
}
