// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the lateness-tracker server from a kiosk.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Non-2xx responses are returned as [*APIError], which unwraps to one of the
// sentinels in errors.go so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrUnauthorized] for 401) and read
// the server's message from [APIError.Message].
package adapter

import (
	"context"

	"github.com/MKhiriev/lateness-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// lateness-tracker server. Implementations are responsible for serialisation
// and for mapping transport-level errors to the values defined in this
// package.
type ServerAdapter interface {
	// Register creates a student account. The password travels in plain text
	// and is hashed by the server. Returns an error if the request fails or
	// the server responds with a non-2xx status.
	Register(ctx context.Context, student models.Student) error

	// Login checks the credentials and returns the public view of the
	// student. A rejected login comes back as an [*APIError] wrapping
	// [ErrUnauthorized] whose Message tells a missing account from a wrong
	// password.
	Login(ctx context.Context, req models.LoginRequest) (models.StudentView, error)

	// Scan records one lateness event.
	Scan(ctx context.Context, req models.ScanRequest) error

	// History returns the lateness records of studentID, newest first.
	History(ctx context.Context, studentID string) ([]models.LatenessRecord, error)

	// Version returns the version string the server reports.
	Version(ctx context.Context) (string, error)
}
