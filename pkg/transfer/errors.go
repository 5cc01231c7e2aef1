package transfer

import (
	"errors"
	"sort"
	"strings"

	"github.com/chris/multicurrency-wallet/pkg/i18n"
)

var (
	// ErrNotFinalStep is returned when submitting before the amount step.
	ErrNotFinalStep = errors.New("transfer can only be submitted from the amount step")
	// ErrSubmitInProgress is returned when a submit is already running for the form.
	ErrSubmitInProgress = errors.New("transfer submission already in progress")
	// ErrNotFound is returned for an unknown transfer session.
	ErrNotFound = errors.New("transfer not found")
)

// ValidationError maps each invalid field to the message describing the problem.
type ValidationError struct {
	Fields map[string]i18n.Key
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "invalid transfer fields: " + strings.Join(names, ", ")
}

// Localize returns the field messages in lang.
func (e *ValidationError) Localize(lang i18n.Language) map[string]string {
	out := make(map[string]string, len(e.Fields))
	for f, k := range e.Fields {
		out[f] = i18n.T(lang, k)
	}
	return out
}
