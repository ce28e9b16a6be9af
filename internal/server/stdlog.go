package server

import (
	"log"
	"strings"

	"github.com/MKhiriev/lateness-tracker/internal/logger"
)

// newStdLogger routes net/http's internal error log into zerolog.
func newStdLogger(l *logger.Logger) *log.Logger {
	return log.New(stdLogWriter{logger: l}, "", 0)
}

type stdLogWriter struct {
	logger *logger.Logger
}

func (w stdLogWriter) Write(p []byte) (int, error) {
	w.logger.Warn().Str("source", "net/http").Msg(strings.TrimSpace(string(p)))
	return len(p), nil
}
