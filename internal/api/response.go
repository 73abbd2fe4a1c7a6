// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/giellalt/langgate/internal/apierr"
	"github.com/giellalt/langgate/internal/logging"
)

// writeJSON encodes v as the response body with the given status code.
// Every handler in this package returns a bare, undecorated JSON value —
// there is no envelope, pagination metadata, or request ID wrapper: the
// shape on the wire is exactly the shape named at the boundary.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// writeAPIError writes the single externally visible error shape, always
// at HTTP 500 regardless of the internal cause: the boundary makes no
// distinction between a missing language and a backing-tool failure.
func writeAPIError(w http.ResponseWriter, err *apierr.Error) {
	writeJSON(w, http.StatusInternalServerError, err)
}

// decodeJSON reads and decodes the request body into v. A missing or
// malformed body is reported as a BadInput-shaped *apierr.Error so
// handlers can respond uniformly.
func decodeJSON(r *http.Request, v any) *apierr.Error {
	if r.Body == nil {
		return apierr.New("request body is required")
	}
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apierr.New("could not decode request body: %v", err)
	}
	return nil
}
