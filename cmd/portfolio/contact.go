package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-portfolio/pkg/form"
	"github.com/goliatone/go-portfolio/pkg/renderers/tui"
)

func newContactCmd(a *app) *cobra.Command {
	var endpoint string

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Fill in the contact form from the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if endpoint == "" {
				endpoint = a.cfg.Client.Endpoint
			}
			submitter, err := form.NewHTTPSubmitter(endpoint, form.WithTimeout(a.cfg.Client.Timeout))
			if err != nil {
				return err
			}

			ctrl := form.New(submitter,
				form.WithDismissAfter(a.cfg.Client.DismissAfter),
				form.WithOnChange(func(s form.Snapshot) {
					a.logger.Debug("contact form state", zap.String("status", string(s.Status)))
				}),
			)
			defer ctrl.Close()

			renderer, err := tui.New(
				tui.WithPromptDriver(a.driver),
				tui.WithOutput(cmd.OutOrStdout()),
			)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			a.logger.Debug("contact client started", zap.String("endpoint", submitter.Endpoint()))
			return renderer.Run(ctx, ctrl)
		},
	}
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "Contact endpoint URL (overrides client.endpoint)")
	return cmd
}
