package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/gorm"

	"github.com/arcanosig/arcano/backend/internal/config"
	"github.com/arcanosig/arcano/backend/internal/database"
	"github.com/arcanosig/arcano/backend/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "arcano",
	Short: "ARCANO backend server and administration commands",
	Long: `Runs the ARCANO HTTP API. Without a subcommand the server is started.

Configuration is read from ARCANO_* environment variables, an optional .env
file and the YAML file named by ARCANO_CONFIG_FILE.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap loads configuration, configures logging to stdout and a rotated
// file under the data directory, then opens and migrates the database.
func bootstrap() (config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, fmt.Errorf("load config: %w", err)
	}

	out := io.Writer(os.Stdout)
	logDir := filepath.Join(cfg.DataDir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err == nil {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   filepath.Join(logDir, "arcano.log"),
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}
	logger.Init(cfg.Debug, out)

	db, err := database.Open(cfg.Database)
	if err != nil {
		return cfg, nil, fmt.Errorf("connect database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return cfg, nil, err
	}
	return cfg, db, nil
}
