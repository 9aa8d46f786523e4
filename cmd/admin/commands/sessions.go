package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func sessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Session housekeeping",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "prune",
		Short: "Delete expired sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := current.stores().Sessions().DeleteExpired(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("deleted %d expired sessions\n", n)
			return nil
		},
	})
	return cmd
}
