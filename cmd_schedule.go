package main

import (
	"encoding/json"
	"fmt"

	"github.com/harrisonrobin/cronograma/pkg/chart"
	"github.com/harrisonrobin/cronograma/pkg/model"
	"github.com/harrisonrobin/cronograma/pkg/term"
	"github.com/spf13/cobra"
)

func newScheduleCmd(a *app) *cobra.Command {
	var (
		year, task string
		export     bool
		asJSON     bool
		width      int
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Muestra la línea del tiempo de tareas nivel 1",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := model.ParseSelection(year, task, "", "")
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			s, err := a.openSession(ctx, cmd)
			if err != nil {
				return err
			}
			defer s.close()

			view, loadErr := s.dash.Schedule(ctx, sel)
			if loadErr != nil {
				fmt.Fprint(cmd.ErrOrStderr(), term.Error("el cronograma", loadErr))
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(view); err != nil {
					return err
				}
			} else {
				fmt.Fprint(out, term.Schedule(chart.TitleGantt, view, width))
			}

			if export {
				path, err := chart.Export(s.cfg.ExportDir, s.cfg.ExportFile, chart.Gantt(view))
				if err != nil {
					return fmt.Errorf("export failed: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Imagen exportada: %s\n", path)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&year, "year", model.AllLabel, "year to show, or Todos")
	f.StringVar(&task, "task", model.AllLabel, "level 1 task to drill into, or Todos")
	f.BoolVar(&export, "export", false, "write the timeline as PNG")
	f.BoolVar(&asJSON, "json", false, "print the view as JSON")
	f.IntVar(&width, "width", 60, "columns used for the timeline")
	return cmd
}
