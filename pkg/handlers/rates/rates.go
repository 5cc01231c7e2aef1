package rates

import (
	"net/http"

	"github.com/chris/multicurrency-wallet/pkg/appdata"
	"github.com/chris/multicurrency-wallet/pkg/handlers/render"
	"github.com/chris/multicurrency-wallet/pkg/i18n"
	"github.com/chris/multicurrency-wallet/pkg/mapping"
	"github.com/chris/multicurrency-wallet/pkg/toast"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/shopspring/decimal"
)

// RatesHandler holds the dependencies for exchange rate handlers.
type RatesHandler struct {
	State    *appdata.State
	Notifier *toast.Notifier
}

// NewRatesHandler creates a new RatesHandler.
func NewRatesHandler(state *appdata.State, notifier *toast.Notifier) *RatesHandler {
	return &RatesHandler{State: state, Notifier: notifier}
}

// Routes mounts the handlers on r.
func (h *RatesHandler) Routes(r chi.Router) {
	r.Get("/rates", h.ListRates)
	r.Post("/rates/refresh", h.RefreshRates)
	r.Get("/rates/convert", h.Convert)
}

// ConvertResponse is a quick-exchange quote.
type ConvertResponse struct {
	Amount  string `json:"amount"`
	From    string `json:"from"`
	To      string `json:"to"`
	Result  string `json:"result"`
	Display string `json:"display"`
}

// ListRates returns the quoted pairs.
func (h *RatesHandler) ListRates(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, http.StatusOK, h.State.ExchangeRates())
}

// RefreshRates moves every rate a little and tells the clients.
func (h *RatesHandler) RefreshRates(w http.ResponseWriter, r *http.Request) {
	rates := h.State.RefreshRates(r.Context())

	lang := render.Language(r, h.State.Language())
	h.Notifier.Success(r.Context(), i18n.T(lang, i18n.RatesUpdated))

	render.JSON(w, http.StatusOK, rates)
}

// Convert quotes an amount from one currency to another through the static factors.
func (h *RatesHandler) Convert(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var amount string
	if err := runtime.BindQueryParameter("form", true, true, "amount", query, &amount); err != nil {
		render.Error(w, http.StatusBadRequest, "Invalid format for parameter amount: %v", err)
		return
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		render.Error(w, http.StatusBadRequest, "Invalid format for parameter amount: %v", err)
		return
	}

	var from, to string
	if err := runtime.BindQueryParameter("form", true, true, "from", query, &from); err != nil {
		render.Error(w, http.StatusBadRequest, "Invalid format for parameter from: %v", err)
		return
	}
	if err := runtime.BindQueryParameter("form", true, true, "to", query, &to); err != nil {
		render.Error(w, http.StatusBadRequest, "Invalid format for parameter to: %v", err)
		return
	}

	result := appdata.Convert(value, from, to)
	render.JSON(w, http.StatusOK, ConvertResponse{
		Amount:  value.String(),
		From:    from,
		To:      to,
		Result:  result.StringFixed(4),
		Display: mapping.FormatMoney(result, to),
	})
}
