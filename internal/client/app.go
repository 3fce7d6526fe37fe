package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-access-keeper/internal/logger"
	"github.com/MKhiriev/go-access-keeper/internal/metrics"
	"github.com/MKhiriev/go-access-keeper/internal/tui"
	"github.com/prometheus/client_golang/prometheus"
)

var _ Client = (*App)(nil)

type App struct {
	ui       UI
	gatherer prometheus.Gatherer
	logger   *logger.Logger
}

func NewApp(ui UI, gatherer prometheus.Gatherer, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("ui is not configured")
	}

	return &App{ui: ui, gatherer: gatherer, logger: logger}, nil
}

// Run blocks until the user leaves the terminal UI. An interrupt with ctrl+c
// is a normal way to leave and is not reported as an error.
func (a *App) Run() error {
	ctx := a.logger.WithContext(context.Background())

	a.logger.Info().Msg("client started")
	defer a.logStats()

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("terminal ui: %w", err)
	}

	return nil
}

func (a *App) logStats() {
	if a.gatherer == nil {
		a.logger.Info().Msg("client stopped")
		return
	}

	snapshot, err := metrics.Snapshot(a.gatherer)
	if err != nil {
		a.logger.Err(err).Msg("failed to gather session statistics")
		return
	}

	a.logger.Info().Any("stats", snapshot).Msg("client stopped")
}
