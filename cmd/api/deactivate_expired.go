package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanosig/arcano/backend/internal/services"
)

var deactivateExpiredCmd = &cobra.Command{
	Use:   "deactivate-expired",
	Short: "Deactivate operations whose end date has passed",
	Long: `Runs the operation expiry job once. The server runs the same job every
hour; this command is meant for cron hosts without a
long-running API process.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := bootstrap()
		if err != nil {
			return err
		}

		n, err := services.NewOperationService(db).DeactivateExpired(cmd.Context())
		if err != nil {
			return fmt.Errorf("deactivate expired operations: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d operation(s) deactivated\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deactivateExpiredCmd)
}
