// Demoboard - Phaser.js Demo Catalog and Arcade Leaderboard
// Copyright 2026 P. Koster (pkoster)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pkoster/demoboard

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/pkoster/demoboard/internal/logging"
	"github.com/pkoster/demoboard/internal/models"
	"github.com/pkoster/demoboard/internal/validation"
)

// sanitizeLogValue removes control characters from strings so request input
// cannot forge log entries.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends v as a plain JSON body.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError sends a structured error body and logs the underlying error
// when one is attached.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().
			Str("code", sanitizeLogValue(code)).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API error")
	}

	respondJSON(w, status, &models.ErrorResponse{
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// decodeAndValidate parses a JSON request body into v and runs struct
// validation on it. On failure it writes the error response and returns
// false; the caller should simply return.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid JSON request body", err)
		return false
	}

	if validationErr := validation.ValidateStruct(v); validationErr != nil {
		apiErr := validationErr.ToAPIError()
		respondJSON(w, http.StatusBadRequest, &models.ErrorResponse{
			Error: &models.APIError{
				Code:    apiErr.Code,
				Message: apiErr.Message,
				Details: apiErr.Details,
			},
		})
		return false
	}

	return true
}

// getIntParam extracts an integer query parameter, falling back to
// defaultValue when absent. A non-integer value returns an error so the
// caller can reject it instead of silently substituting the default.
func getIntParam(r *http.Request, key string, defaultValue int) (int, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	return intValue, nil
}
