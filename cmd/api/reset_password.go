package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/arcanosig/arcano/backend/internal/services"
)

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password <email> <new-password>",
	Short: "Set a user's password and unlock the account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := bootstrap()
		if err != nil {
			return err
		}

		err = services.NewUserService(db).ResetPassword(args[0], args[1])
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %s not found", args[0])
		}
		if err != nil {
			return fmt.Errorf("reset password: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Password updated successfully for user %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetPasswordCmd)
}
