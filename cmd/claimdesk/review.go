package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/plumline/claimdesk/internal/cli"
)

func reviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "review <claim-id>",
		Short: "Reconstruct and view a queued claim (admin)",
		Args:  cobra.ExactArgs(1),
		RunE:  runReview,
	}
}

func runReview(cmd *cobra.Command, args []string) error {
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

	entry := d.controller.Queue().Find(id)
	if entry == nil {
		return fmt.Errorf("claim #%d is not in the review queue", id)
	}

	if err := d.controller.Review(*entry); err != nil {
		return err
	}

	fmt.Println(cli.RenderClaim(*d.controller.View()))
	return nil
}
