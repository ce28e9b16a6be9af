// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/lateness-tracker/internal/adapter"
	"github.com/MKhiriev/lateness-tracker/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. Errors it does not recognise are returned unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *adapter.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch apiErr.StatusCode {
	case http.StatusUnauthorized:
		switch apiErr.Message {
		case app.MsgUserNotFound:
			return ErrStudentNotFound
		case app.MsgWrongPassword:
			return ErrWrongPassword
		}
	case http.StatusForbidden:
		return ErrForbidden
	}

	return err
}
