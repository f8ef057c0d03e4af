package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/plumline/claimdesk/internal/cli"
)

func uploadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload <file>...",
		Short: "Upload claim documents for adjudication",
		Long: `Upload one or more bill, prescription or lab-report files and render
the adjudication decision. The member id defaults to the logged-in user.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runUpload,
	}

	cmd.Flags().String("member-id", "", "Override the member id attached to the claim")
	_ = viper.BindPFlag("upload.member_id", cmd.Flags().Lookup("member-id"))

	return cmd
}

func runUpload(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	d, err := setup(ctx, true)
	if err != nil {
		return err
	}
	defer d.close()

	if memberID := viper.GetString("upload.member_id"); memberID != "" {
		d.user.MemberID = memberID
		// Rewire so the controller carries the explicit member id.
		d.controller = d.controller.WithUser(d.user)
	}

	if err := d.controller.SelectFiles(args); err != nil {
		return err
	}

	done := make(chan struct{})
	var uploadErr error
	go func() {
		defer close(done)
		uploadErr = d.controller.Upload(ctx)
	}()
	cli.Spinner("Processing claim...", done)

	if uploadErr != nil {
		fmt.Println(cli.FormatError(d.controller.LastError()))
		fmt.Println(cli.SubtleStyle.Render("The selected files are still attached; re-run to retry."))
		return uploadErr
	}

	view := d.controller.View()
	fmt.Println(cli.RenderClaim(*view))
	return nil
}
