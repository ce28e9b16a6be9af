// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/lateness-tracker/internal/app"
	"github.com/MKhiriev/lateness-tracker/internal/service"
)

// ErrUserQuit is returned by [TUI.Run] when the kiosk is closed with ctrl+c.
var ErrUserQuit = errors.New("user quit the kiosk")

// humanizeError turns service errors into the line shown under a form.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		return app.MsgUserNotFound
	case errors.Is(err, service.ErrWrongPassword):
		return app.MsgWrongPassword
	case errors.Is(err, service.ErrRegistrationFailed):
		return app.MsgRegistrationFailed
	case errors.Is(err, service.ErrNotLoggedIn):
		return "Please log in first"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the server is unavailable"
	}

	return err.Error()
}
