package main

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"accredash/internal/api"
	"accredash/internal/config"
	"accredash/internal/export"
	"accredash/internal/telemetry"
	"accredash/internal/timeouts"
	"accredash/internal/ui"
)

func newRootCmd() *cobra.Command {
	var envFiles []string
	cmd := &cobra.Command{
		Use:           "accredash",
		Short:         "Student organization accreditation dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd.Context(), envFiles, runTUI)
		},
	}
	cmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", config.DefaultEnvFiles, "env files to load before reading the environment")
	cmd.AddCommand(newExportRosterCmd(&envFiles), newStatsCmd(&envFiles))
	return cmd
}

// env is everything a command needs, built from the loaded configuration.
type env struct {
	cfg     *config.Config
	logger  *logrus.Logger
	client  *api.Client
	exports *export.Store
}

// withEnv loads configuration, opens the log file, starts tracing and
// builds the API client, then runs fn. Everything is torn down afterwards.
func withEnv(ctx context.Context, envFiles []string, fn func(context.Context, *env) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return err
	}
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logFile, logger, err := config.FileLogger(level, cfg.LogPath)
	if err != nil {
		return err
	}
	defer logFile.Close()

	tel, err := telemetry.NewProvider(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		logger.WithError(err).Warn("tracing disabled")
		tel = telemetry.Disabled()
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), timeouts.TelemetryShutdown)
		defer cancel()
		if serr := tel.Shutdown(sctx); serr != nil {
			logger.WithError(serr).Warn("telemetry shutdown")
		}
	}()

	client, err := api.NewClient(api.Options{
		BaseURL:   cfg.APIURL,
		AssetsURL: cfg.AssetsURL,
		Token:     cfg.APIToken,
		Logger:    logger,
		Telemetry: tel,
	})
	if err != nil {
		return err
	}
	exports, err := export.NewStore(cfg.ExportDir)
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"api_url":         cfg.APIURL,
		"home_department": cfg.HomeDepartment,
		"tracing":         tel.Enabled(),
	}).Info("accredash starting")
	return fn(ctx, &env{cfg: cfg, logger: logger, client: client, exports: exports})
}

func runTUI(ctx context.Context, e *env) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := ui.NewAppModel(ctx, e.client, e.exports, e.logger, e.cfg.HomeDepartment)
	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
