package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/chris/multicurrency-wallet/pkg/handlers/render"
	"github.com/chris/multicurrency-wallet/pkg/i18n"
)

// RecoveryAction is something the client can do after a failure.
type RecoveryAction struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// RecoveryDetails describe the failure. They are only sent in development.
type RecoveryDetails struct {
	Label   string `json:"label"`
	Message string `json:"message"`
	Stack   string `json:"stack"`
}

// RecoveryDocument replaces a response whose handler panicked.
type RecoveryDocument struct {
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Support string           `json:"support"`
	Actions []RecoveryAction `json:"actions"`
	Details *RecoveryDetails `json:"details,omitempty"`
}

// NewRecoverer turns a panicking handler into a 500 recovery document in the request's
// language. The panic value and stack are included only when development is true.
func NewRecoverer(logger *slog.Logger, development bool, language func(*http.Request) i18n.Language) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				stack := debug.Stack()
				logger.Error("handler panicked", "path", r.URL.Path, "panic", rec, "stack", string(stack))

				if r.Header.Get("Connection") == "Upgrade" {
					return
				}
				render.JSON(w, http.StatusInternalServerError, recoveryDocument(language(r), rec, stack, development))
			}()

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}

func recoveryDocument(lang i18n.Language, rec any, stack []byte, development bool) RecoveryDocument {
	doc := RecoveryDocument{
		Title:   i18n.T(lang, i18n.SomethingWentWrong),
		Message: i18n.T(lang, i18n.UnexpectedError),
		Support: i18n.T(lang, i18n.IfProblemPersists),
		Actions: []RecoveryAction{
			{ID: "retry", Label: i18n.T(lang, i18n.TryAgain)},
			{ID: "reload", Label: i18n.T(lang, i18n.ReloadPage)},
		},
	}
	if development {
		doc.Details = &RecoveryDetails{
			Label:   i18n.T(lang, i18n.ErrorDetails),
			Message: fmt.Sprint(rec),
			Stack:   string(stack),
		}
	}
	return doc
}
