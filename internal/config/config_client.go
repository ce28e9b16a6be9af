package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the kiosk transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the lateness-tracker server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound kiosk requests.
	RequestTimeout time.Duration
}

// ClientConfig is the kiosk configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the server address and timeout.
	Adapter ClientAdapter
	// LogLevel is the minimum level written to the kiosk log file.
	LogLevel string
}

// GetClientConfig builds and validates a kiosk-specific config view from the
// merged structured configuration.
//
// It loads the base config without the server-side validation (the kiosk
// needs no database), maps the fields relevant to the client runtime, and
// validates the resulting [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		LogLevel: cfg.App.LogLevel,
	}

	return clientCfg, clientCfg.validate()
}
