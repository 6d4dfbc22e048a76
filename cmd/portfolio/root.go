package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-portfolio/internal/config"
	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/pkg/renderers/tui"
)

// app carries the state shared by every subcommand once the persistent
// pre-run has loaded configuration and built the logger.
type app struct {
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger

	// driver replaces the survey prompts of the contact command.
	driver tui.PromptDriver
}

func newRootCmd(opts ...func(*app)) *cobra.Command {
	a := &app{}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	root := &cobra.Command{
		Use:   "portfolio",
		Short: "Portfolio site with a validated contact form",
		Long: `portfolio serves a personal portfolio page and its contact endpoint.

The same validation rules back the HTML form, the JSON endpoint and the
interactive terminal client.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log, a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.cfg = cfg
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(newServeCmd(a))
	root.AddCommand(newContactCmd(a))
	root.AddCommand(newOpenAPICmd(a))
	return root
}
