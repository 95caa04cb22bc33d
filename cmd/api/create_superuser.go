package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanosig/arcano/backend/internal/services"
)

var createSuperuserCmd = &cobra.Command{
	Use:   "create-superuser",
	Short: "Create an active superuser with every access flag",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		email, _ := flags.GetString("email")
		password, _ := flags.GetString("password")
		name, _ := flags.GetString("name")
		cpf, _ := flags.GetString("cpf")

		if email == "" || password == "" || cpf == "" {
			return errors.New("--email, --password and --cpf are required")
		}

		_, db, err := bootstrap()
		if err != nil {
			return err
		}

		u, err := services.NewUserService(db).CreateSuperuser(email, password, name, cpf)
		if err != nil {
			return fmt.Errorf("create superuser: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Superuser %s created (id %d)\n", u.Email, u.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createSuperuserCmd)

	createSuperuserCmd.Flags().String("email", "", "login email")
	createSuperuserCmd.Flags().String("password", "", "initial password")
	createSuperuserCmd.Flags().String("name", "ADMINISTRADOR", "full name")
	createSuperuserCmd.Flags().String("cpf", "", "CPF, digits or formatted")
}
