package handlers

import (
	"log/slog"
	"net/http"

	"github.com/chris/multicurrency-wallet/pkg/appdata"
	"github.com/chris/multicurrency-wallet/pkg/handlers/preferences"
	"github.com/chris/multicurrency-wallet/pkg/handlers/rates"
	"github.com/chris/multicurrency-wallet/pkg/handlers/render"
	"github.com/chris/multicurrency-wallet/pkg/handlers/transactions"
	"github.com/chris/multicurrency-wallet/pkg/handlers/transfers"
	"github.com/chris/multicurrency-wallet/pkg/handlers/wallets"
	wshandler "github.com/chris/multicurrency-wallet/pkg/handlers/websockets"
	"github.com/chris/multicurrency-wallet/pkg/i18n"
	"github.com/chris/multicurrency-wallet/pkg/middleware"
	"github.com/chris/multicurrency-wallet/pkg/toast"
	"github.com/chris/multicurrency-wallet/pkg/transfer"
	"github.com/chris/multicurrency-wallet/pkg/websockets"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// ApiHandler holds the application's dependencies shared by every route.
type ApiHandler struct {
	State       *appdata.State
	Sessions    *transfer.Sessions
	Notifier    *toast.Notifier
	Connections websockets.ConnectionManager
	Logger      *slog.Logger
	Development bool
}

// NewApiHandler creates a new ApiHandler.
func NewApiHandler(state *appdata.State, sessions *transfer.Sessions, notifier *toast.Notifier, connections websockets.ConnectionManager, logger *slog.Logger, development bool) *ApiHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ApiHandler{
		State:       state,
		Sessions:    sessions,
		Notifier:    notifier,
		Connections: connections,
		Logger:      logger,
		Development: development,
	}
}

// Router mounts every route behind the shared middleware stack.
func (h *ApiHandler) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewStructuredLogger(h.Logger))
	r.Use(middleware.NewRecoverer(h.Logger, h.Development, h.language))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/ws", wshandler.NewHandler(h.Connections))

	wallets.NewWalletsHandler(h.State).Routes(r)
	transactions.NewTransactionsHandler(h.State).Routes(r)
	rates.NewRatesHandler(h.State, h.Notifier).Routes(r)
	preferences.NewPreferencesHandler(h.State, h.Notifier).Routes(r)
	transfers.NewTransfersHandler(h.Sessions, h.State, h.Notifier).Routes(r)

	return r
}

func (h *ApiHandler) language(r *http.Request) i18n.Language {
	return render.Language(r, h.State.Language())
}
