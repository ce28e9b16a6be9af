package service

import "errors"

// Authentication failures.
var (
	ErrStudentNotFound = errors.New("user not found")
	ErrWrongPassword   = errors.New("wrong password")
)

var (
	// ErrRegistrationFailed wraps every registration failure.
	ErrRegistrationFailed = errors.New("registration failed")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
	ErrForbidden             = errors.New("forbidden")
)

// Kiosk errors.
var (
	ErrNotLoggedIn     = errors.New("no student is logged in")
	ErrLoginOnServer   = errors.New("login on server failed")
	ErrScanOnServer    = errors.New("recording lateness on server failed")
	ErrHistoryOnServer = errors.New("loading history from server failed")
)
