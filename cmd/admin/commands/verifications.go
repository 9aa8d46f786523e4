package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"academyhub.app/server/internal/model"
)

func verificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verifications",
		Short: "Review business verification requests",
	}
	cmd.AddCommand(verificationsListCmd(), verificationsApproveCmd(), verificationsRejectCmd())
	return cmd
}

func verificationsListCmd() *cobra.Command {
	var (
		status string
		limit  int32
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List verification requests by status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := model.VerificationStatus(status)
			if !st.Valid() {
				return fmt.Errorf("unknown status %q", status)
			}

			services, err := current.services(cmd.Context(), false)
			if err != nil {
				return err
			}

			list, err := services.Verifications().List(cmd.Context(), st, limit, 0)
			if err != nil {
				return err
			}
			return printJSON(list)
		},
	}

	cmd.Flags().StringVar(&status, "status", string(model.VerificationStatusPending), "pending, approved or rejected")
	cmd.Flags().Int32Var(&limit, "limit", 50, "maximum rows")
	return cmd
}

func verificationsApproveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approve <verification-id>",
		Short: "Approve a request, grant academy_admin and email the applicant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			services, err := current.services(cmd.Context(), true)
			if err != nil {
				return err
			}

			v, err := services.Verifications().Approve(cmd.Context(), nil, id)
			if err != nil {
				return err
			}
			return printJSON(v)
		},
	}
}

func verificationsRejectCmd() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "reject <verification-id>",
		Short: "Reject a request and email the applicant the reason",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			services, err := current.services(cmd.Context(), true)
			if err != nil {
				return err
			}

			v, err := services.Verifications().Reject(cmd.Context(), nil, id, reason)
			if err != nil {
				return err
			}
			return printJSON(v)
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "shown to the applicant")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
