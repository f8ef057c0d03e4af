package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/plumline/claimdesk/internal/cli"
)

func queueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Browse the manual-review queue (admin)",
		RunE:  runQueueList,
	}

	cmd.AddCommand(queueResolveCmd())
	return cmd
}

func runQueueList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	d, err := setup(ctx, true)
	if err != nil {
		return err
	}
	defer d.close()

	if err := d.controller.OpenQueue(ctx); err != nil {
		return err
	}

	if msg := d.controller.LastError(); msg != "" {
		fmt.Println(cli.FormatWarning("Queue fetch failed: " + msg))
	}

	fmt.Println(cli.FormatTitle("Claims awaiting review"))
	fmt.Println(cli.RenderQueue(d.controller.Queue().Entries()))
	return nil
}

func queueResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <claim-id>",
		Short: "Drop a claim from the local queue without saving a decision",
		Long: `Remove a claim from the in-memory review queue. This is local triage
only: no decision is persisted to the server. Use 'claimdesk override'
for a durable decision.`,
		Args: cobra.ExactArgs(1),
		RunE: runQueueResolve,
	}
}

func runQueueResolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid claim id %q: %w", args[0], err)
	}

	d, err := setup(ctx, true)
	if err != nil {
		return err
	}
	defer d.close()

	if err := d.controller.OpenQueue(ctx); err != nil {
		return err
	}
	if err := d.controller.QuickResolve(id); err != nil {
		return err
	}

	fmt.Println(cli.FormatWarning(fmt.Sprintf(
		"Claim #%d dropped from the local queue; no decision was saved to the server.", id)))
	fmt.Println(cli.RenderQueue(d.controller.Queue().Entries()))
	return nil
}
