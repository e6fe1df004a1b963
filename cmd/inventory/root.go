package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"trailers/inventory/internal/app"
	"trailers/inventory/internal/config"
	"trailers/inventory/internal/logging"
)

var (
	configPath string
	logLevel   string

	application *app.App
)

var rootCmd = &cobra.Command{
	Use:           "inventory",
	Short:         "Inspect the trailers inventory",
	Long:          `Validates, exports and checks the display assets of the authored trailers inventory tree.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}

		if err := logging.Setup(cfg.Log); err != nil {
			return err
		}
		log.Debug("Configuration loaded successfully")

		application, err = app.New(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	err := rootCmd.Execute()
	if closeErr := closeApplication(); closeErr != nil {
		log.Warn(closeErr)
	}
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func closeApplication() error {
	if application == nil {
		return nil
	}
	err := application.Close()
	application = nil
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log.level (debug, info, warn, error)")
}
