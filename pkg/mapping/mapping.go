package mapping

import (
	"github.com/Rhymond/go-money"
	"github.com/chris/multicurrency-wallet/pkg/models"
	"github.com/shopspring/decimal"
)

const (
	hiddenBalance = "••••••"
	hiddenTotal   = "••••••••"
)

// CurrencyView is a currency as shown on the portfolio. Balance is omitted when balances
// are hidden.
type CurrencyView struct {
	Code    string   `json:"code"`
	Symbol  string   `json:"symbol"`
	Flag    string   `json:"flag"`
	Change  float64  `json:"change"`
	Balance *float64 `json:"balance,omitempty"`
	Display string   `json:"display"`
}

// PortfolioView is the portfolio overview.
type PortfolioView struct {
	ShowBalances bool           `json:"showBalances"`
	Total        *string        `json:"total,omitempty"`
	TotalDisplay string         `json:"totalDisplay"`
	Currencies   []CurrencyView `json:"currencies"`
}

// TransactionView is a timeline entry with its formatted amount.
type TransactionView struct {
	models.Transaction
	Display string `json:"display"`
}

// FormatMoney renders amount in code's conventions, e.g. "$12,847.32" or "¥1,234,567".
// Codes unknown to the currency table are rendered as "12.50 XYZ".
func FormatMoney(amount decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return amount.StringFixed(2) + " " + code
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), code).Display()
}

// ToCurrencyView converts a domain Currency for display.
func ToCurrencyView(c models.Currency, showBalances bool) CurrencyView {
	v := CurrencyView{
		Code:    c.Code,
		Symbol:  c.Symbol,
		Flag:    c.Flag,
		Change:  c.Change,
		Display: hiddenBalance,
	}
	if showBalances {
		balance := c.Balance
		v.Balance = &balance
		v.Display = FormatMoney(decimal.NewFromFloat(c.Balance), c.Code)
	}
	return v
}

// ToPortfolioView builds the overview from the currencies and their USD total.
func ToPortfolioView(currencies []models.Currency, total decimal.Decimal, showBalances bool) PortfolioView {
	v := PortfolioView{
		ShowBalances: showBalances,
		TotalDisplay: hiddenTotal,
		Currencies:   make([]CurrencyView, len(currencies)),
	}
	for i, c := range currencies {
		v.Currencies[i] = ToCurrencyView(c, showBalances)
	}
	if showBalances {
		s := total.StringFixed(2)
		v.Total = &s
		v.TotalDisplay = FormatMoney(total, "USD")
	}
	return v
}

// ToTransactionView formats a domain Transaction. Amounts are always shown.
func ToTransactionView(tx models.Transaction) TransactionView {
	return TransactionView{
		Transaction: tx,
		Display:     FormatMoney(decimal.NewFromFloat(tx.Amount), tx.Currency),
	}
}

// ToTransactionViews formats at most limit transactions; limit <= 0 means all.
func ToTransactionViews(txs []models.Transaction, limit int) []TransactionView {
	if limit > 0 && limit < len(txs) {
		txs = txs[:limit]
	}
	out := make([]TransactionView, len(txs))
	for i, tx := range txs {
		out[i] = ToTransactionView(tx)
	}
	return out
}
