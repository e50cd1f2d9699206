package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/harrisonrobin/cronograma/pkg/model"
	"github.com/harrisonrobin/cronograma/pkg/term"
	"github.com/spf13/cobra"
)

func newOptionsCmd(a *app) *cobra.Command {
	var (
		year   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "options",
		Short: "Lista los valores disponibles para los filtros",
	}

	selectedYear := func() (int, error) {
		sel, err := model.ParseSelection(year, "", "", "")
		return sel.Year, err
	}

	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Años y tareas del cronograma",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			y, err := selectedYear()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			s, err := a.openSession(ctx, cmd)
			if err != nil {
				return err
			}
			defer s.close()

			opts, loadErr := s.dash.ScheduleOptions(ctx, y)
			if loadErr != nil {
				fmt.Fprint(cmd.ErrOrStderr(), term.Error("el cronograma", loadErr))
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, opts)
			}
			fmt.Fprint(out, term.Options("Año", opts.Years))
			fmt.Fprint(out, term.Options("Tarea", opts.Tasks))
			return nil
		},
	}

	resourcesCmd := &cobra.Command{
		Use:   "resources",
		Short: "Años, meses y recursos de la estimación",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			y, err := selectedYear()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			s, err := a.openSession(ctx, cmd)
			if err != nil {
				return err
			}
			defer s.close()

			opts, loadErr := s.dash.ResourceOptions(ctx, y)
			if loadErr != nil {
				fmt.Fprint(cmd.ErrOrStderr(), term.Error("los recursos", loadErr))
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, opts)
			}
			fmt.Fprint(out, term.Options("Año", opts.Years))
			fmt.Fprint(out, term.Options("Mes", opts.Months))
			fmt.Fprint(out, term.Options("Recurso", opts.Persons))
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&year, "year", model.AllLabel, "year used for the task and month lists")
	pf.BoolVar(&asJSON, "json", false, "print the options as JSON")
	cmd.AddCommand(scheduleCmd, resourcesCmd)
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
