package wallets_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chris/multicurrency-wallet/pkg/appdata/appdatatest"
	"github.com/chris/multicurrency-wallet/pkg/handlers/wallets"
	"github.com/chris/multicurrency-wallet/pkg/mapping"
	"github.com/chris/multicurrency-wallet/pkg/models"
	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(h *wallets.WalletsHandler) http.Handler {
	r := chi.NewRouter()
	h.Routes(r)
	return r
}

func TestGetPortfolio(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		state := appdatatest.New(t)
		h := wallets.NewWalletsHandler(state)

		req := httptest.NewRequest(http.MethodGet, "/portfolio", nil)
		rr := httptest.NewRecorder()
		newRouter(h).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var view mapping.PortfolioView
		require.NoError(t, jsoniter.Unmarshal(rr.Body.Bytes(), &view))
		require.NotNil(t, view.Total)
		assert.Equal(t, "38860.75", *view.Total)
		assert.Equal(t, "$38,860.75", view.TotalDisplay)
		assert.Len(t, view.Currencies, 4)
	})

	t.Run("Hidden Balances", func(t *testing.T) {
		state := appdatatest.New(t)
		state.ToggleBalances(context.Background())
		h := wallets.NewWalletsHandler(state)

		req := httptest.NewRequest(http.MethodGet, "/portfolio", nil)
		rr := httptest.NewRecorder()
		newRouter(h).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotContains(t, rr.Body.String(), "12847.32")
		assert.Contains(t, rr.Body.String(), `"showBalances":false`)
	})
}

func TestUpdateCurrency(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		state := appdatatest.New(t)
		h := wallets.NewWalletsHandler(state)

		req := httptest.NewRequest(http.MethodPatch, "/currencies/GBP", strings.NewReader(`{"balance": 7000.5}`))
		rr := httptest.NewRecorder()
		newRouter(h).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var c models.Currency
		require.NoError(t, jsoniter.Unmarshal(rr.Body.Bytes(), &c))
		assert.Equal(t, models.Currency{Code: "GBP", Symbol: "£", Balance: 7000.5, Change: 0.89, Flag: "🇬🇧"}, c)
		assert.Equal(t, 7000.5, state.Currencies()[2].Balance)
	})

	t.Run("Not Found", func(t *testing.T) {
		h := wallets.NewWalletsHandler(appdatatest.New(t))

		req := httptest.NewRequest(http.MethodPatch, "/currencies/BTC", strings.NewReader(`{"balance": 1}`))
		rr := httptest.NewRecorder()
		newRouter(h).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Invalid Body", func(t *testing.T) {
		h := wallets.NewWalletsHandler(appdatatest.New(t))

		req := httptest.NewRequest(http.MethodPatch, "/currencies/USD", strings.NewReader(`{"balance":`))
		rr := httptest.NewRecorder()
		newRouter(h).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
