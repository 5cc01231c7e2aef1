package wallets

import (
	"net/http"

	"github.com/chris/multicurrency-wallet/pkg/appdata"
	"github.com/chris/multicurrency-wallet/pkg/handlers/render"
	"github.com/chris/multicurrency-wallet/pkg/mapping"
	"github.com/chris/multicurrency-wallet/pkg/models"
	"github.com/go-chi/chi/v5"
)

// WalletsHandler holds the dependencies for portfolio-related handlers.
type WalletsHandler struct {
	State *appdata.State
}

// NewWalletsHandler creates a new WalletsHandler.
func NewWalletsHandler(state *appdata.State) *WalletsHandler {
	return &WalletsHandler{State: state}
}

// Routes mounts the handlers on r.
func (h *WalletsHandler) Routes(r chi.Router) {
	r.Get("/portfolio", h.GetPortfolio)
	r.Get("/currencies", h.ListCurrencies)
	r.Patch("/currencies/{code}", h.UpdateCurrency)
}

// GetPortfolio returns the balances and their USD total, masked when balances are hidden.
func (h *WalletsHandler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	prefs := h.State.Preferences()
	view := mapping.ToPortfolioView(h.State.Currencies(), h.State.TotalPortfolioValue(), prefs.ShowBalances)
	render.JSON(w, http.StatusOK, view)
}

// ListCurrencies returns the raw currency records.
func (h *WalletsHandler) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, http.StatusOK, h.State.Currencies())
}

// UpdateCurrency replaces the fields present in the body on the currency with the given code.
func (h *WalletsHandler) UpdateCurrency(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var patch models.CurrencyPatch
	if err := render.Decode(r, &patch); err != nil {
		render.Error(w, http.StatusBadRequest, "%v", err)
		return
	}

	if !h.State.UpdateCurrency(r.Context(), code, patch) {
		render.Error(w, http.StatusNotFound, "currency %s not found", code)
		return
	}

	for _, c := range h.State.Currencies() {
		if c.Code == code {
			render.JSON(w, http.StatusOK, c)
			return
		}
	}
}
