package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arcanosig/arcano/backend/internal/logger"
	"github.com/arcanosig/arcano/backend/internal/server"
	"github.com/arcanosig/arcano/backend/internal/services"
	"github.com/arcanosig/arcano/backend/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Starts the HTTP API together with the mail queue and the maintenance
scheduler. SIGINT or SIGTERM triggers a graceful shutdown.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := bootstrap()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		storage, err := services.NewStorage(ctx, cfg.Storage)
		if err != nil {
			return fmt.Errorf("init storage: %w", err)
		}

		srv, err := server.New(db, cfg, storage)
		if err != nil {
			return err
		}

		logger.Log().WithField("version", version.Full()).Infof("starting ARCANO on :%s", cfg.HTTPPort)
		return srv.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
