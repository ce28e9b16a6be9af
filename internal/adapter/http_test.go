// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/lateness-tracker/internal/config"
	"github.com/MKhiriev/lateness-tracker/internal/logger"
	"github.com/MKhiriev/lateness-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter builds an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: msg})
}

// ── Constructor ─────────────────────────────────────────────────────────────

// TestNewHTTPServerAdapter_InvalidAddress verifies an empty server URL is
// rejected at construction time.
func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "  "}, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid adapter http address")
}

// ── Register ────────────────────────────────────────────────────────────────

// TestRegister_Success verifies the request shape: the plaintext password is
// sent and the route is POST /api/register.
func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/register", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "S1", body["student_id"])
		assert.Equal(t, "pw", body["password"])
		assert.NotContains(t, body, "password_hash")

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "Student account created!"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Register(context.Background(), models.Student{StudentID: "S1", Email: "a@x", Password: "pw"})
	require.NoError(t, err)
}

// TestRegister_InternalServerError verifies a 500 maps to
// ErrInternalServerError and keeps the server's message.
func TestRegister_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusInternalServerError, "Registration failed")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Register(context.Background(), models.Student{StudentID: "S1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Registration failed", apiErr.Message)
}

// ── Login ───────────────────────────────────────────────────────────────────

// TestLogin_Success verifies the student view is taken from the "user" field.
func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@x", req.Email)
		assert.Equal(t, "pw", req.Password)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.LoginResponse{
			Message: "Login successful",
			User:    models.StudentView{StudentID: "S1", Email: "a@x", Name: "Ann"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.LoginRequest{Email: "a@x", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "S1", got.StudentID)
	assert.Equal(t, "Ann", got.Name)
}

// TestLogin_Unauthorized verifies both 401 messages survive the mapping so
// the caller can tell them apart.
func TestLogin_Unauthorized(t *testing.T) {
	for _, msg := range []string{"User not found", "Wrong password"} {
		t.Run(msg, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeError(w, http.StatusUnauthorized, msg)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.Login(context.Background(), models.LoginRequest{Email: "a@x", Password: "pw"})

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnauthorized)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, msg, apiErr.Message)
		})
	}
}

// TestLogin_BadGateway verifies a 502 with a plain-text body keeps that body
// as the message.
func TestLogin_BadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadGateway)
	assert.Contains(t, err.Error(), "upstream down")
}

// TestLogin_TransportError verifies a dead server surfaces as a request
// error rather than an APIError.
func TestLogin_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.Login(context.Background(), models.LoginRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "login request")

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

// ── Scan ────────────────────────────────────────────────────────────────────

// TestScan_Success verifies the scan payload reaches POST /api/scan.
func TestScan_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/scan", r.URL.Path)

		var req models.ScanRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.ScanRequest{StudentID: "S1", Reason: "bus", MinutesLate: 7}, req)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "Attendance recorded!"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Scan(context.Background(), models.ScanRequest{StudentID: "S1", Reason: "bus", MinutesLate: 7})
	require.NoError(t, err)
}

// TestScan_Failure verifies a storage failure on the server is reported.
func TestScan_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusInternalServerError, "unknown student")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Scan(context.Background(), models.ScanRequest{StudentID: "nope"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Contains(t, err.Error(), "unknown student")
}

// ── History ─────────────────────────────────────────────────────────────────

// TestHistory_Success verifies the student id is placed in the path and the
// records are decoded in server order.
func TestHistory_Success(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 15, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/history/S-1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.LatenessRecord{
			{ID: 2, StudentID: "S-1", Reason: "rain", MinutesLate: 3, ArrivalTime: now},
			{ID: 1, StudentID: "S-1", Reason: "bus", MinutesLate: 10, ArrivalTime: now.Add(-24 * time.Hour)},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.History(context.Background(), "S-1")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.True(t, got[0].ArrivalTime.Equal(now))
}

// TestHistory_Empty verifies an empty JSON array yields a non-nil slice.
func TestHistory_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.History(context.Background(), "S-1")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// TestHistory_NotFound verifies a 404 maps to ErrNotFound.
func TestHistory_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "API route not found")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.History(context.Background(), "S-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Version ─────────────────────────────────────────────────────────────────

// TestVersion_Success verifies the plain-text body is returned trimmed.
func TestVersion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.2.3\n"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
}

// ── mapHTTPError ────────────────────────────────────────────────────────────

// TestAPIError_UnknownStatus verifies a status without a sentinel still
// produces a readable error.
func TestAPIError_UnknownStatus(t *testing.T) {
	err := &APIError{StatusCode: http.StatusTeapot, Message: "short and stout"}

	assert.Equal(t, "http 418: short and stout", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:3000", "http://localhost:3000", false},
		{"no scheme", "localhost:3000", "http://localhost:3000", false},
		{"trailing slash", "http://localhost:3000/", "http://localhost:3000", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
