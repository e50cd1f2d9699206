package main

import (
	"fmt"
	"path/filepath"

	"github.com/harrisonrobin/cronograma/pkg/auth"
	"github.com/spf13/cobra"
)

func newAuthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Autoriza el acceso de solo lectura a Google Sheets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flow, err := a.flow(cmd)
			if err != nil {
				return fmt.Errorf("could not find path to configuration file: %w", err)
			}
			if err := flow.Reset(); err != nil {
				return err
			}
			if _, err := flow.Client(cmd.Context(), auth.Scopes); err != nil {
				return fmt.Errorf("authentication failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Autorización correcta. Token guardado en %s\n",
				filepath.Join(flow.Dir, auth.TokenFile))
			return nil
		},
	}
}
