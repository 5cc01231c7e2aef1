package transactions

import (
	"net/http"

	"github.com/chris/multicurrency-wallet/pkg/appdata"
	"github.com/chris/multicurrency-wallet/pkg/handlers/render"
	"github.com/chris/multicurrency-wallet/pkg/mapping"
	"github.com/chris/multicurrency-wallet/pkg/models"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// TransactionsHandler holds the dependencies for transaction-related handlers.
type TransactionsHandler struct {
	State *appdata.State
}

// NewTransactionsHandler creates a new TransactionsHandler.
func NewTransactionsHandler(state *appdata.State) *TransactionsHandler {
	return &TransactionsHandler{State: state}
}

// Routes mounts the handlers on r.
func (h *TransactionsHandler) Routes(r chi.Router) {
	r.Get("/transactions", h.ListTransactions)
	r.Post("/transactions", h.CreateTransaction)
}

// ListTransactions returns the timeline, newest first. The optional limit query parameter
// caps the number of entries.
func (h *TransactionsHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	var limit int
	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &limit); err != nil {
		render.Error(w, http.StatusBadRequest, "Invalid format for parameter limit: %v", err)
		return
	}
	if limit < 0 {
		render.Error(w, http.StatusBadRequest, "limit must not be negative")
		return
	}

	render.JSON(w, http.StatusOK, mapping.ToTransactionViews(h.State.Transactions(), limit))
}

// CreateTransaction records a transaction. The id in the body is ignored.
func (h *TransactionsHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var tx models.Transaction
	if err := render.Decode(r, &tx); err != nil {
		render.Error(w, http.StatusBadRequest, "%v", err)
		return
	}
	if tx.Type != models.SENT && tx.Type != models.RECEIVED {
		render.Error(w, http.StatusBadRequest, "type must be %q or %q", models.SENT, models.RECEIVED)
		return
	}
	if tx.Currency == "" {
		render.Error(w, http.StatusBadRequest, "currency is required")
		return
	}

	created := h.State.AddTransaction(r.Context(), tx)
	render.JSON(w, http.StatusCreated, mapping.ToTransactionView(created))
}
