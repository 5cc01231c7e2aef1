package models

import (
	"time"
)

// Storage keys of the persisted collections.
const (
	KeyCurrencies    = "financiera-currencies"
	KeyTransactions  = "financiera-transactions"
	KeyExchangeRates = "financiera-exchange-rates"
	KeyPreferences   = "financiera-preferences"
	KeyLanguage      = "financiera-language"
	KeyTheme         = "financiera-theme"
)

// TransactionType defines the direction of a transaction.
type TransactionType string

const (
	SENT     TransactionType = "sent"
	RECEIVED TransactionType = "received"
)

// Currency is one balance held in the wallet.
type Currency struct {
	Code    string  `json:"code" yaml:"code"`
	Symbol  string  `json:"symbol" yaml:"symbol"`
	Balance float64 `json:"balance" yaml:"balance"`
	Change  float64 `json:"change" yaml:"change"`
	Flag    string  `json:"flag" yaml:"flag"`
}

// CurrencyPatch holds the fields to replace on a Currency. Nil fields are left untouched.
type CurrencyPatch struct {
	Symbol  *string  `json:"symbol,omitempty"`
	Balance *float64 `json:"balance,omitempty"`
	Change  *float64 `json:"change,omitempty"`
	Flag    *string  `json:"flag,omitempty"`
}

// Apply returns c with the patch applied.
func (p CurrencyPatch) Apply(c Currency) Currency {
	if p.Symbol != nil {
		c.Symbol = *p.Symbol
	}
	if p.Balance != nil {
		c.Balance = *p.Balance
	}
	if p.Change != nil {
		c.Change = *p.Change
	}
	if p.Flag != nil {
		c.Flag = *p.Flag
	}
	return c
}

// Transaction is one entry of the activity timeline. Amount is signed: negative when sent.
type Transaction struct {
	ID          int64           `json:"id" yaml:"id"`
	Type        TransactionType `json:"type" yaml:"type"`
	Amount      float64         `json:"amount" yaml:"amount"`
	Currency    string          `json:"currency" yaml:"currency"`
	Recipient   string          `json:"recipient" yaml:"recipient"`
	Location    string          `json:"location" yaml:"location"`
	Flag        string          `json:"flag" yaml:"flag"`
	Category    string          `json:"category" yaml:"category"`
	Icon        string          `json:"icon" yaml:"icon"`
	Time        string          `json:"time" yaml:"time"`
	Description string          `json:"description" yaml:"description"`
	Date        time.Time       `json:"date" yaml:"-"`
}

// ExchangeRate is a quoted currency pair.
type ExchangeRate struct {
	Pair          string  `json:"pair" yaml:"pair"`
	Rate          float64 `json:"rate" yaml:"rate"`
	Change        float64 `json:"change" yaml:"change"`
	ChangePercent float64 `json:"changePercent" yaml:"changePercent"`
	High          float64 `json:"high" yaml:"high"`
	Low           float64 `json:"low" yaml:"low"`
	BankRate      float64 `json:"bankRate" yaml:"bankRate"`
	Spread        float64 `json:"spread" yaml:"spread"`
}

// UserPreferences are the user's display settings.
type UserPreferences struct {
	ShowBalances    bool   `json:"showBalances" yaml:"showBalances"`
	DefaultCurrency string `json:"defaultCurrency" yaml:"defaultCurrency"`
	Notifications   bool   `json:"notifications" yaml:"notifications"`
	Language        string `json:"language" yaml:"language"`
}

// Theme is the colour scheme preference. The zero value is treated as ThemeSystem.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}
