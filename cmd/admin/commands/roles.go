package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"academyhub.app/server/internal/model"
	"academyhub.app/server/internal/service"
)

func rolesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Grant or revoke platform roles",
	}

	cmd.AddCommand(
		roleChangeCmd("grant", "Grant a role to a user", service.ProfileService.GrantRole),
		roleChangeCmd("revoke", "Revoke a role from a user", service.ProfileService.RevokeRole),
	)
	return cmd
}

type roleChange func(s service.ProfileService, ctx context.Context, userID int64, role model.Role) (*model.User, error)

func roleChangeCmd(use, short string, apply roleChange) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <user-id> <role>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}
			role := model.Role(args[1])
			if !role.Valid() {
				return fmt.Errorf("unknown role %q (want one of %v)", args[1], model.AllRoles)
			}

			services, err := current.services(cmd.Context(), false)
			if err != nil {
				return err
			}

			user, err := apply(services.Profiles(), cmd.Context(), userID, role)
			if err != nil {
				return err
			}

			fmt.Printf("%s (%d) roles: %v\n", user.Email, user.ID, user.Roles)
			return nil
		},
	}
}
