package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/lateness-tracker/internal/logger"
	"github.com/MKhiriev/lateness-tracker/internal/service"
	"github.com/MKhiriev/lateness-tracker/models"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoKioskService = errors.New("kiosk service is required")

type TUI struct {
	kiosk     service.KioskService
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(kiosk service.KioskService, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if kiosk == nil {
		return nil, errNoKioskService
	}
	return &TUI{kiosk: kiosk, buildInfo: buildInfo, logger: logger}, nil
}

// newRoot builds the page set of one kiosk run.
func (t *TUI) newRoot(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.kiosk),
		pageRegister: NewRegisterModel(ctx, t.kiosk),
		pageScan:     NewScanModel(ctx, t.kiosk),
		pageHistory:  NewHistoryModel(ctx, t.kiosk),
	}

	return NewRootModel(ctx, t.kiosk, pages, pageMenu, t.buildInfo)
}

// Run shows the kiosk until ctrl+c or until ctx is cancelled. ctrl+c yields
// [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	finalModel, err := tea.NewProgram(t.newRoot(ctx), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if ctx.Err() != nil {
			t.logger.Info().Msg("kiosk stopped by signal")
			return nil
		}
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
