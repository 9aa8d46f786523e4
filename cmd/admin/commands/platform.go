package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"academyhub.app/server/internal/service"
)

func platformCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "platform",
		Short: "Platform settings tooling",
	}
	cmd.AddCommand(platformTokenCmd())
	return cmd
}

func platformTokenCmd() *cobra.Command {
	var (
		subject string
		role    string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the platform settings API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ttl == 0 {
				ttl = current.cfg.Platform.TokenTTL
			}

			services, err := current.services(cmd.Context(), false)
			if err != nil {
				return err
			}

			token, err := services.Platform().IssueToken(subject, role, ttl)
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "sub", "", "who the token is for, recorded on each change")
	cmd.Flags().StringVar(&role, "role", service.PlatformRoleServiceRole, "super_admin or service_role")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default PLATFORM_TOKEN_TTL)")
	_ = cmd.MarkFlagRequired("sub")
	return cmd
}
