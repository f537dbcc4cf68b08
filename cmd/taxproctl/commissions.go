package main

import (
	"fmt"
	"os"

	"taxpro-backend/internal/database/models"

	"github.com/spf13/cobra"
)

func commissionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commissions",
		Short: "Work with referral commissions",
	}

	var (
		out    string
		status string
	)

	export := &cobra.Command{
		Use:   "export",
		Short: "Write commissions to an xlsx spreadsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseCommissionStatus(status)
			if err != nil {
				return err
			}

			rt, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			data, err := rt.services.Commissions.Export(cmd.Context(), filter)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", out, len(data))
			return nil
		},
	}

	export.Flags().StringVarP(&out, "out", "o", "commissions.xlsx", "Output file")
	export.Flags().StringVar(&status, "status", "", "Only export commissions with this status (pending, approved, paid, void)")

	cmd.AddCommand(export)
	return cmd
}

func parseCommissionStatus(raw string) (models.CommissionStatus, error) {
	if raw == "" {
		return "", nil
	}
	status := models.CommissionStatus(raw)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown commission status %q", raw)
	}
	return status, nil
}
