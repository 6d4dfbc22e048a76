package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-portfolio/components/contact"
)

func newOpenAPICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "openapi",
		Short: "Print the contact endpoint OpenAPI document as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := contact.DocumentFor(cmd.Context(), a.cfg.Contact.RoutePath)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("encode openapi document: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}
