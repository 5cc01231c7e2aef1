package handlers_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chris/multicurrency-wallet/pkg/appdata/appdatatest"
	"github.com/chris/multicurrency-wallet/pkg/handlers"
	"github.com/chris/multicurrency-wallet/pkg/middleware"
	"github.com/chris/multicurrency-wallet/pkg/models"
	"github.com/chris/multicurrency-wallet/pkg/scheduler/mocks"
	"github.com/chris/multicurrency-wallet/pkg/toast"
	"github.com/chris/multicurrency-wallet/pkg/transfer"
	"github.com/chris/multicurrency-wallet/pkg/websockets"
	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, development bool) *chi.Mux {
	t.Helper()
	state := appdatatest.New(t)
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	hub := websockets.NewHub(logger)
	notifier := toast.NewNotifier(&websockets.NoOpPublisher{}, logger)
	sessions := transfer.NewSessions(new(mocks.Scheduler), time.Millisecond)

	return handlers.NewApiHandler(state, sessions, notifier, hub, logger, development).Router()
}

func TestRouter(t *testing.T) {
	r := newTestRouter(t, false)

	routes := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/portfolio", http.StatusOK},
		{http.MethodGet, "/currencies", http.StatusOK},
		{http.MethodGet, "/transactions", http.StatusOK},
		{http.MethodGet, "/rates", http.StatusOK},
		{http.MethodGet, "/preferences", http.StatusOK},
		{http.MethodGet, "/languages", http.StatusOK},
		{http.MethodGet, "/theme", http.StatusOK},
		{http.MethodGet, "/transfers/countries", http.StatusOK},
		{http.MethodPost, "/transfers", http.StatusCreated},
		{http.MethodGet, "/missing", http.StatusNotFound},
	}
	for _, tt := range routes {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestRouterRecoversPanics(t *testing.T) {
	t.Run("Localized From Stored Language", func(t *testing.T) {
		r := newTestRouter(t, false)
		r.Get("/boom", func(w http.ResponseWriter, r *http.Request) { panic("boom") })

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		var doc middleware.RecoveryDocument
		require.NoError(t, jsoniter.Unmarshal(rr.Body.Bytes(), &doc))
		assert.Equal(t, "¡Ups! Algo salió mal", doc.Title)
		assert.Nil(t, doc.Details)
	})

	t.Run("Development Details", func(t *testing.T) {
		r := newTestRouter(t, true)
		r.Get("/boom", func(w http.ResponseWriter, r *http.Request) { panic("boom") })

		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom", nil))

		var doc middleware.RecoveryDocument
		require.NoError(t, jsoniter.Unmarshal(rr.Body.Bytes(), &doc))
		require.NotNil(t, doc.Details)
		assert.Equal(t, "boom", doc.Details.Message)
	})
}

func TestRouterSharesState(t *testing.T) {
	r := newTestRouter(t, false)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/preferences/balances/toggle", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/preferences", nil))

	var prefs models.UserPreferences
	require.NoError(t, jsoniter.Unmarshal(rr.Body.Bytes(), &prefs))
	assert.False(t, prefs.ShowBalances)
}
