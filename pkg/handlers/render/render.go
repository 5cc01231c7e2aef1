// Package render writes HTTP responses for the handlers.
package render

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/chris/multicurrency-wallet/pkg/i18n"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Localizer is an error that can describe its fields in a given language.
type Localizer interface {
	error
	Localize(lang i18n.Language) map[string]string
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// Error writes a JSON error body.
func Error(w http.ResponseWriter, status int, format string, args ...any) {
	JSON(w, status, ErrorResponse{Error: fmt.Sprintf(format, args...)})
}

// Validation writes a 422 with the per-field messages of err in lang.
func Validation(w http.ResponseWriter, lang i18n.Language, err Localizer) {
	JSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Fields: err.Localize(lang)})
}

// Decode reads a JSON request body into v.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// Language picks the response language: the stored preference when it is supported,
// otherwise the best match for the request's Accept-Language header.
func Language(r *http.Request, stored string) i18n.Language {
	if l, ok := i18n.Parse(stored); ok {
		return l
	}
	return i18n.Match(r.Header.Get("Accept-Language"))
}
