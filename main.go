package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harrisonrobin/cronograma/pkg/auth"
	"github.com/harrisonrobin/cronograma/pkg/colors"
	"github.com/harrisonrobin/cronograma/pkg/config"
	"github.com/harrisonrobin/cronograma/pkg/dashboard"
	"github.com/harrisonrobin/cronograma/pkg/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the global flags and the per-invocation state built from them.
type app struct {
	configPath    string
	verbose       bool
	scheduleFile  string
	resourcesFile string

	logger *zap.Logger
	cfg    *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "cronograma",
		Short: "Línea del tiempo y carga de recursos de proyectos IT",
		Long: `cronograma lee el cronograma del proyecto y la estimación de horas por recurso
desde hojas de cálculo y los muestra como línea del tiempo y gráficos de barras apiladas.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zc := zap.NewProductionConfig()
			if a.verbose {
				zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			a.logger, err = zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default ~/.config/cronograma/config.yaml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&a.scheduleFile, "schedule-file", "", "schedule spreadsheet (overrides config)")
	pf.StringVar(&a.resourcesFile, "resources-file", "", "resource estimates spreadsheet (overrides config)")

	root.AddCommand(
		newScheduleCmd(a),
		newResourcesCmd(a),
		newOptionsCmd(a),
		newStatusCmd(a),
		newAuthCmd(a),
		newConfigCmd(a),
	)
	return root
}

// loadConfig reads the config file and applies flag overrides.
func (a *app) loadConfig() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}
	var (
		cfg *config.Config
		err error
	)
	if a.configPath != "" {
		cfg, err = config.LoadFile(a.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if a.scheduleFile != "" {
		cfg.Schedule.Source = config.Source{Path: a.scheduleFile}
	}
	if a.resourcesFile != "" {
		cfg.Resources = config.Source{Path: a.resourcesFile}
	}
	a.cfg = cfg
	return cfg, nil
}

// flow keeps OAuth files next to the config file.
func (a *app) flow(cmd *cobra.Command) (*auth.Flow, error) {
	path, err := a.resolveConfigPath()
	if err != nil {
		return nil, err
	}
	return auth.NewFlow(filepath.Dir(path), a.logger, cmd.ErrOrStderr()), nil
}

// session is everything a render command needs. close releases the history store.
type session struct {
	cfg    *config.Config
	dash   *dashboard.Dashboard
	colors *colors.Cache
	close  func()
}

func (a *app) openSession(ctx context.Context, cmd *cobra.Command) (*session, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}
	flow, err := a.flow(cmd)
	if err != nil {
		return nil, err
	}

	var st store.Store
	closeStore := func() {}
	if sqlite, err := store.NewSQLiteStore(ctx, cfg.StorePath); err != nil {
		a.logger.Warn("load history unavailable", zap.String("path", cfg.StorePath), zap.Error(err))
	} else {
		st = sqlite
		closeStore = func() { sqlite.Close() }
	}

	cc, err := colors.Open(cfg.ColorCachePath, a.logger)
	if err != nil {
		a.logger.Warn("color cache unreadable, starting fresh", zap.Error(err))
		cc, _ = colors.Open("", a.logger)
	}

	return &session{
		cfg:    cfg,
		dash:   dashboard.New(cfg, a.logger, st, flow),
		colors: cc,
		close: func() {
			if err := cc.Save(); err != nil {
				a.logger.Warn("could not save color cache", zap.Error(err))
			}
			closeStore()
		},
	}, nil
}
