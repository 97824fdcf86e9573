// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-realty-api/internal/logger"
)

// notRouted answers both unknown paths and known paths called with an
// unregistered method. Either way the client gets an empty 404, so a
// PUT /properties looks the same as GET /nowhere.
func (h *Handler) notRouted(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("func", "*Handler.notRouted").
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("no route for request")

	w.WriteHeader(http.StatusNotFound)
}
