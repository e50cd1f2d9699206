package main

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/harrisonrobin/cronograma/pkg/chart"
	"github.com/harrisonrobin/cronograma/pkg/model"
	"github.com/harrisonrobin/cronograma/pkg/resource"
	"github.com/harrisonrobin/cronograma/pkg/term"
	"github.com/spf13/cobra"
)

const resourcesExportFile = "horas_por_recurso.png"

func newResourcesCmd(a *app) *cobra.Command {
	var (
		year, month, person string
		export              bool
		asJSON              bool
	)

	cmd := &cobra.Command{
		Use:   "resources",
		Short: "Muestra las horas estimadas por recurso",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := model.ParseSelection(year, "", person, month)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			s, err := a.openSession(ctx, cmd)
			if err != nil {
				return err
			}
			defer s.close()

			view, loadErr := s.dash.Resources(ctx, sel)
			if loadErr != nil {
				fmt.Fprint(cmd.ErrOrStderr(), term.Error("los recursos", loadErr))
			}
			palette := s.colors.Colors(people(view))

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(view); err != nil {
					return err
				}
			} else {
				fmt.Fprint(out, term.Resources(view, palette))
			}

			if export {
				images, err := chart.ResourceCharts(view, palette)
				if err != nil {
					return err
				}
				path, err := chart.Export(s.cfg.ExportDir, resourcesExportFile, stack(images))
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
	f.StringVar(&month, "month", model.AllLabel, "month to show (Enero..Diciembre), or Todos")
	f.StringVar(&person, "person", model.AllLabel, "person to show, or Todos")
	f.BoolVar(&export, "export", false, "write the charts as PNG")
	f.BoolVar(&asJSON, "json", false, "print the view as JSON")
	return cmd
}

// people lists everyone drawn in any of the view's charts.
func people(view resource.View) []string {
	seen := make(map[string]bool)
	var out []string
	for _, segs := range [][]model.StackedBarSegment{view.Yearly, view.Monthly} {
		for _, s := range segs {
			if !seen[s.Person] {
				seen[s.Person] = true
				out = append(out, s.Person)
			}
		}
	}
	return out
}

func stack(images []image.Image) image.Image {
	if len(images) == 1 {
		return images[0]
	}
	return chart.StackVertically(images...)
}
