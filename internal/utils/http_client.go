package utils

import (
	"github.com/go-resty/resty/v2"
)

// DefaultUserAgent identifies kiosk requests in server access logs.
const DefaultUserAgent = "lateness-kiosk"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client tagged with userAgent. An
// empty userAgent selects DefaultUserAgent.
func NewHTTPClient(userAgent string) *HTTPClient {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &HTTPClient{Client: resty.New().SetHeader("User-Agent", userAgent)}
}
