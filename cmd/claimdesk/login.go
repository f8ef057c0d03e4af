package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plumline/claimdesk/internal/model"
)

func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Save the current user for subsequent commands",
		RunE:  runLogin,
	}

	cmd.Flags().String("name", "", "Display name (required)")
	cmd.Flags().String("role", string(model.RoleMember), "Role: admin or member")
	cmd.Flags().String("member-id", "", "Policy member id")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runLogin(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	name, _ := cmd.Flags().GetString("name")
	roleFlag, _ := cmd.Flags().GetString("role")
	memberID, _ := cmd.Flags().GetString("member-id")

	var role model.Role
	switch roleFlag {
	case string(model.RoleAdmin):
		role = model.RoleAdmin
	case string(model.RoleMember):
		role = model.RoleMember
	default:
		return fmt.Errorf("role must be 'admin' or 'member', got %q", roleFlag)
	}

	d, err := setup(ctx, false)
	if err != nil {
		return err
	}
	defer d.close()

	user := model.User{Name: name, Role: role, MemberID: memberID}
	if err := d.store.SaveUser(ctx, user); err != nil {
		return err
	}

	fmt.Printf("Logged in as %s (%s)\n", user.Name, user.Role)
	return nil
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the saved user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			d, err := setup(ctx, false)
			if err != nil {
				return err
			}
			defer d.close()

			if err := d.store.ClearUser(ctx); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}
