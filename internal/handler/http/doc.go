// Package http implements the HTTP transport layer of the lateness tracker.
//
// It exposes route wiring, request handlers and middleware. Cross-cutting
// concerns such as request tracing, access logging, metrics, CORS, response
// compression and panic recovery are handled here before requests are
// delegated to the service layer. Paths outside /api are served from the
// single-page application bundle.
package http
