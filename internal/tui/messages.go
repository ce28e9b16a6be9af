package tui

import (
	"github.com/MKhiriev/lateness-tracker/models"
)

// Page names used with [NavigateTo].
const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
	pageScan     = "scan"
	pageHistory  = "history"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the login command.
type LoginResult struct {
	Err     error
	Student models.StudentView
}

// RegisterResult is produced by the register command.
type RegisterResult struct {
	Err       error
	StudentID string
}

// RegisterSuccessNotice is delivered to the menu after a registration.
type RegisterSuccessNotice struct {
	StudentID string
}

// LoggedIn is delivered to the scan page once a student is logged in.
type LoggedIn struct {
	Student models.StudentView
}

// LogoutRequested ends the current kiosk session.
type LogoutRequested struct{}

// LoggedOut is delivered to the menu once the session is cleared.
type LoggedOut struct{}

type scanDoneMsg struct {
	err error
}

type historyLoadedMsg struct {
	records []models.LatenessRecord
	err     error
}

type copiedMsg struct {
	rows int
	err  error
}

type clearStatusMsg struct{}
