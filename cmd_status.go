package main

import (
	"fmt"
	"strconv"

	"github.com/harrisonrobin/cronograma/pkg/config"
	"github.com/harrisonrobin/cronograma/pkg/sheet"
	"github.com/harrisonrobin/cronograma/pkg/term"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Información del proyecto y última actualización",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := a.openSession(ctx, cmd)
			if err != nil {
				return err
			}
			defer s.close()

			updated, err := s.dash.LastUpdated(ctx)
			if err != nil {
				a.logger.Warn("could not read load history", zap.Error(err))
			}

			fmt.Fprint(cmd.OutOrStdout(), term.Status("Información del Proyecto", []term.Field{
				{Name: "Año de planificación", Value: strconv.Itoa(s.cfg.PlanningYear)},
				{Name: "Cronograma", Value: describe(s.cfg.Schedule.Source)},
				{Name: "Recursos", Value: describe(s.cfg.Resources)},
				{Name: "Horas base mensuales", Value: strconv.FormatFloat(s.cfg.MonthlyBaselineHours, 'f', -1, 64)},
				{Name: "Última actualización", Value: updated},
			}))
			return nil
		},
	}
}

func describe(src config.Source) string {
	if src.Engine == sheet.EngineGSheet {
		return "Google Sheets " + src.SpreadsheetID
	}
	return src.Path
}
