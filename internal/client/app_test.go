package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/lateness-tracker/internal/logger"
	"github.com/MKhiriev/lateness-tracker/internal/mock"
	"github.com/MKhiriev/lateness-tracker/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type uiFunc func(ctx context.Context) error

func (f uiFunc) Run(ctx context.Context) error { return f(ctx) }

func TestNewApp_RequiresDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	kiosk := mock.NewMockKioskService(ctrl)
	ui := uiFunc(func(context.Context) error { return nil })

	_, err := NewApp(nil, ui, logger.Nop())
	assert.ErrorIs(t, err, errNoKiosk)

	_, err = NewApp(kiosk, nil, logger.Nop())
	assert.ErrorIs(t, err, errNoUI)

	app, err := NewApp(kiosk, ui, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, app)
}

// TestApp_Run covers how UI exits map to Run results. Every path logs out.
func TestApp_Run(t *testing.T) {
	uiErr := errors.New("could not open a tty")

	tests := []struct {
		name    string
		uiErr   error
		wantErr error
	}{
		{"normal exit", nil, nil},
		{"ctrl+c", tui.ErrUserQuit, nil},
		{"ui failure", uiErr, uiErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			kiosk := mock.NewMockKioskService(ctrl)
			kiosk.EXPECT().Logout().Times(1)

			app, err := NewApp(kiosk, uiFunc(func(context.Context) error { return tt.uiErr }), logger.Nop())
			require.NoError(t, err)

			err = app.Run(context.Background())
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestApp_Run_PassesContext verifies the UI sees the caller's context.
func TestApp_Run_PassesContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	kiosk := mock.NewMockKioskService(ctrl)
	kiosk.EXPECT().Logout()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	app, err := NewApp(kiosk, uiFunc(func(got context.Context) error {
		assert.ErrorIs(t, got.Err(), context.Canceled)
		return nil
	}), logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, app.Run(ctx))
}
