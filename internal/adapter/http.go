package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/lateness-tracker/internal/config"
	"github.com/MKhiriev/lateness-tracker/internal/logger"
	"github.com/MKhiriev/lateness-tracker/internal/utils"
	"github.com/MKhiriev/lateness-tracker/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(utils.DefaultUserAgent)
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Register implements [ServerAdapter] via POST /api/register.
func (h *httpServerAdapter) Register(ctx context.Context, student models.Student) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(student).
		Post("/api/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [ServerAdapter] via POST /api/login and returns the
// "user" part of the response.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.StudentView, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/login")
	if err != nil {
		return models.StudentView{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StudentView{}, err
	}

	h.logger.Debug().Str("student_id", result.User.StudentID).Msg("student logged in")
	return result.User, nil
}

// Scan implements [ServerAdapter] via POST /api/scan.
func (h *httpServerAdapter) Scan(ctx context.Context, req models.ScanRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/scan")
	if err != nil {
		return fmt.Errorf("scan request: %w", err)
	}

	return mapHTTPError(resp)
}

// History implements [ServerAdapter] via GET /api/history/{student_id}.
func (h *httpServerAdapter) History(ctx context.Context, studentID string) ([]models.LatenessRecord, error) {
	var records []models.LatenessRecord

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("student_id", studentID).
		SetResult(&records).
		Get("/api/history/{student_id}")
	if err != nil {
		return nil, fmt.Errorf("history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if records == nil {
		records = []models.LatenessRecord{}
	}
	return records, nil
}

// Version implements [ServerAdapter] via GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
