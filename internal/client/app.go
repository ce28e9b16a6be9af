package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/lateness-tracker/internal/logger"
	"github.com/MKhiriev/lateness-tracker/internal/service"
	"github.com/MKhiriev/lateness-tracker/internal/tui"
)

var (
	errNoKiosk = errors.New("kiosk service is required")
	errNoUI    = errors.New("ui is required")
)

type App struct {
	kiosk  service.KioskService
	ui     UI
	logger *logger.Logger
}

func NewApp(kiosk service.KioskService, ui UI, logger *logger.Logger) (*App, error) {
	if kiosk == nil {
		return nil, errNoKiosk
	}
	if ui == nil {
		return nil, errNoUI
	}

	return &App{kiosk: kiosk, ui: ui, logger: logger}, nil
}

// Run blocks in the UI. Quitting with ctrl+c is a normal exit. The session is
// dropped on every exit path.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Msg("kiosk started")
	defer func() {
		a.kiosk.Logout()
		a.logger.Info().Msg("kiosk stopped")
	}()

	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		return nil
	default:
		return fmt.Errorf("run kiosk ui: %w", err)
	}
}
