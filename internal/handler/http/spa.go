// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const spaIndex = "index.html"

// serveSPA answers every request no route claimed. /api paths get the JSON
// 404. GET and HEAD requests receive the matching file from the bundle
// directory, or index.html so the client-side router can resolve the path.
func (h *Handler) serveSPA(w http.ResponseWriter, r *http.Request) {
	if isAPIPath(r.URL.Path) {
		apiRouteNotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}

	if file, ok := h.staticFile(r.URL.Path); ok {
		http.ServeFile(w, r, file)
		return
	}

	index := filepath.Join(h.cfg.StaticDir, spaIndex)
	if _, err := os.Stat(index); err != nil {
		h.logger.Warn().Err(err).Str("index", index).Msg("spa index is missing")
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, index)
}

// staticFile resolves urlPath inside the bundle directory. Directories do
// not count as files.
func (h *Handler) staticFile(urlPath string) (string, bool) {
	if h.cfg.StaticDir == "" {
		return "", false
	}

	name := filepath.Join(h.cfg.StaticDir, filepath.FromSlash(path.Clean("/"+urlPath)))
	info, err := os.Stat(name)
	if err != nil || info.IsDir() {
		return "", false
	}

	return name, true
}

func isAPIPath(p string) bool {
	return p == "/api" || strings.HasPrefix(p, "/api/")
}
