package mapping

import (
	"testing"

	"github.com/chris/multicurrency-wallet/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var currencies = []models.Currency{
	{Code: "USD", Symbol: "$", Balance: 12847.32, Change: 2.34, Flag: "🇺🇸"},
	{Code: "JPY", Symbol: "¥", Balance: 1234567, Change: -0.45, Flag: "🇯🇵"},
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$12,847.32", FormatMoney(decimal.RequireFromString("12847.32"), "USD"))
	assert.Equal(t, "¥1,234,567", FormatMoney(decimal.NewFromInt(1234567), "JPY"))
	assert.Equal(t, "12.50 XYZ", FormatMoney(decimal.RequireFromString("12.5"), "XYZ"))
}

func TestToPortfolioView(t *testing.T) {
	total := decimal.RequireFromString("21118.9189")

	t.Run("Shown", func(t *testing.T) {
		v := ToPortfolioView(currencies, total, true)

		assert.True(t, v.ShowBalances)
		require.NotNil(t, v.Total)
		assert.Equal(t, "21118.92", *v.Total)
		assert.Equal(t, "$21,118.92", v.TotalDisplay)
		require.Len(t, v.Currencies, 2)
		require.NotNil(t, v.Currencies[0].Balance)
		assert.Equal(t, 12847.32, *v.Currencies[0].Balance)
		assert.Equal(t, "$12,847.32", v.Currencies[0].Display)
	})

	t.Run("Hidden", func(t *testing.T) {
		v := ToPortfolioView(currencies, total, false)

		assert.Nil(t, v.Total)
		assert.Equal(t, "••••••••", v.TotalDisplay)
		for _, c := range v.Currencies {
			assert.Nil(t, c.Balance)
			assert.Equal(t, "••••••", c.Display)
		}
		assert.Equal(t, -0.45, v.Currencies[1].Change)
	})
}

func TestToTransactionViews(t *testing.T) {
	txs := []models.Transaction{
		{ID: 2, Amount: 1840, Currency: "USD"},
		{ID: 1, Amount: 12.5, Currency: "USD"},
	}

	all := ToTransactionViews(txs, 0)
	require.Len(t, all, 2)
	assert.Equal(t, "$1,840.00", all[0].Display)

	limited := ToTransactionViews(txs, 1)
	require.Len(t, limited, 1)
	assert.Equal(t, int64(2), limited[0].ID)
}
