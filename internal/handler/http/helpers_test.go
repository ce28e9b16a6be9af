package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/lateness-tracker/internal/config"
	"github.com/MKhiriev/lateness-tracker/internal/logger"
	"github.com/MKhiriev/lateness-tracker/internal/mock"
	"github.com/MKhiriev/lateness-tracker/internal/service"
	"github.com/MKhiriev/lateness-tracker/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testServices bundles the mocked service layer behind a Handler.
type testServices struct {
	auth       *mock.MockAuthService
	records    *mock.MockRecordService
	appInfo    *mock.MockAppInfoService
	authorizer *mock.MockAuthorizer
}

func testServerConfig(staticDir string) config.Server {
	return config.Server{
		HTTPAddress:    "0.0.0.0:3000",
		StaticDir:      staticDir,
		AllowedOrigins: []string{"*"},
	}
}

// newMockedHandler returns a Handler whose services are all gomock mocks.
func newMockedHandler(t *testing.T, cfg config.Server) (*Handler, *testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := &testServices{
		auth:       mock.NewMockAuthService(ctrl),
		records:    mock.NewMockRecordService(ctrl),
		appInfo:    mock.NewMockAppInfoService(ctrl),
		authorizer: mock.NewMockAuthorizer(ctrl),
	}

	services := &service.Services{
		AuthService:    ts.auth,
		RecordService:  ts.records,
		AppInfoService: ts.appInfo,
		Authorizer:     ts.authorizer,
	}

	return NewHandler(services, cfg, logger.Nop()), ts
}

// do sends one request through router and returns the recorded response.
func do(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		payload, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body.Error
}

func newRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const testIndexHTML = "<!doctype html><div id=\"root\"></div>"

// writeBundle lays out a minimal built SPA in a temp directory.
func writeBundle(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(testIndexHTML), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log('kiosk')"), 0o644))

	return dir
}

func gunzip(t *testing.T, r io.Reader) io.Reader {
	t.Helper()

	zr, err := gzip.NewReader(r)
	require.NoError(t, err)
	t.Cleanup(func() { _ = zr.Close() })
	return zr
}
