// Package appdata holds the wallet's persisted collections and the operations built on them.
package appdata

import (
	"context"
	"math/rand"
	"slices"
	"time"

	"github.com/chris/multicurrency-wallet/pkg/models"
	"github.com/chris/multicurrency-wallet/pkg/seed"
	"github.com/chris/multicurrency-wallet/pkg/storage"
	"github.com/shopspring/decimal"
)

// usdFactors are the static conversion factors used for portfolio totals and quotes.
var usdFactors = map[string]decimal.Decimal{
	"USD": decimal.NewFromInt(1),
	"EUR": decimal.RequireFromString("1.08"),
	"GBP": decimal.RequireFromString("1.26"),
	"JPY": decimal.RequireFromString("0.0067"),
}

// USDFactor returns the static factor converting one unit of code into USD.
// Unknown codes count as 1.
func USDFactor(code string) decimal.Decimal {
	if f, ok := usdFactors[code]; ok {
		return f
	}
	return decimal.NewFromInt(1)
}

// State is the application state of one execution context.
type State struct {
	store *storage.Store

	currencies   *storage.Cell[[]models.Currency]
	transactions *storage.Cell[[]models.Transaction]
	rates        *storage.Cell[[]models.ExchangeRate]
	preferences  *storage.Cell[models.UserPreferences]
	language     *storage.Cell[string]
	theme        *storage.Cell[models.Theme]

	now  func() time.Time
	rand func() float64
}

// Option configures a State.
type Option func(*State)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *State) { s.now = now }
}

// WithRand replaces the source of the [0,1) numbers used to perturb exchange rates.
func WithRand(fn func() float64) Option {
	return func(s *State) { s.rand = fn }
}

// New opens every collection of the wallet on store. Collections that were never stored
// start from the seed data, which is not written until the first change.
func New(ctx context.Context, store *storage.Store, initial *seed.Data, opts ...Option) *State {
	s := &State{
		store: store,
		now:   time.Now,
		rand:  rand.Float64,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.currencies = storage.NewCell(ctx, store, models.KeyCurrencies, initial.Currencies)
	s.transactions = storage.NewCell(ctx, store, models.KeyTransactions, initial.Transactions)
	s.rates = storage.NewCell(ctx, store, models.KeyExchangeRates, initial.ExchangeRates)
	s.preferences = storage.NewCell(ctx, store, models.KeyPreferences, initial.Preferences)
	s.language = storage.NewCell(ctx, store, models.KeyLanguage, initial.Language)
	s.theme = storage.NewCell(ctx, store, models.KeyTheme, initial.Theme)
	return s
}

// Store returns the store the state lives in.
func (s *State) Store() *storage.Store {
	return s.store
}

// Close stops following changes. The store stays open.
func (s *State) Close() {
	s.currencies.Close()
	s.transactions.Close()
	s.rates.Close()
	s.preferences.Close()
	s.language.Close()
	s.theme.Close()
}

// Currencies, Transactions and ExchangeRates return copies; change state through the setters.
func (s *State) Currencies() []models.Currency        { return slices.Clone(s.currencies.Get()) }
func (s *State) Transactions() []models.Transaction   { return slices.Clone(s.transactions.Get()) }
func (s *State) ExchangeRates() []models.ExchangeRate { return slices.Clone(s.rates.Get()) }
func (s *State) Preferences() models.UserPreferences  { return s.preferences.Get() }
func (s *State) Language() string                     { return s.language.Get() }

// Theme returns the theme preference, ThemeSystem when unset.
func (s *State) Theme() models.Theme {
	if t := s.theme.Get(); t != "" {
		return t
	}
	return models.ThemeSystem
}

func (s *State) SetCurrencies(ctx context.Context, v []models.Currency) {
	s.currencies.Set(ctx, v)
}

func (s *State) SetTransactions(ctx context.Context, v []models.Transaction) {
	s.transactions.Set(ctx, v)
}

func (s *State) SetExchangeRates(ctx context.Context, v []models.ExchangeRate) {
	s.rates.Set(ctx, v)
}

func (s *State) SetPreferences(ctx context.Context, v models.UserPreferences) {
	s.preferences.Set(ctx, v)
}

// UpdatePreferences applies fn to the current preferences.
func (s *State) UpdatePreferences(ctx context.Context, fn func(models.UserPreferences) models.UserPreferences) models.UserPreferences {
	var next models.UserPreferences
	s.preferences.Update(ctx, func(p models.UserPreferences) models.UserPreferences {
		next = fn(p)
		return next
	})
	return next
}

func (s *State) SetLanguage(ctx context.Context, lang string) {
	s.language.Set(ctx, lang)
}

func (s *State) SetTheme(ctx context.Context, t models.Theme) {
	s.theme.Set(ctx, t)
}

// ToggleBalances flips whether balances are shown and returns the new setting.
func (s *State) ToggleBalances(ctx context.Context) bool {
	p := s.UpdatePreferences(ctx, func(p models.UserPreferences) models.UserPreferences {
		p.ShowBalances = !p.ShowBalances
		return p
	})
	return p.ShowBalances
}

// AddTransaction gives tx a new id and puts it first in the timeline. The id is the current
// time in milliseconds, moved past the largest existing id when needed.
func (s *State) AddTransaction(ctx context.Context, tx models.Transaction) models.Transaction {
	s.transactions.Update(ctx, func(prev []models.Transaction) []models.Transaction {
		id := s.now().UnixMilli()
		for _, t := range prev {
			if t.ID >= id {
				id = t.ID + 1
			}
		}
		tx.ID = id

		next := make([]models.Transaction, 0, len(prev)+1)
		next = append(next, tx)
		return append(next, prev...)
	})
	return tx
}

// UpdateCurrency applies patch to the currency with the given code. It reports whether
// such a currency exists; the collection is written either way.
func (s *State) UpdateCurrency(ctx context.Context, code string, patch models.CurrencyPatch) bool {
	found := false
	s.currencies.Update(ctx, func(prev []models.Currency) []models.Currency {
		next := make([]models.Currency, len(prev))
		for i, c := range prev {
			if c.Code == code {
				c = patch.Apply(c)
				found = true
			}
			next[i] = c
		}
		return next
	})
	return found
}

// TotalPortfolioValue is the sum of every balance converted to USD through the static factors.
func (s *State) TotalPortfolioValue() decimal.Decimal {
	total := decimal.Zero
	for _, c := range s.currencies.Get() {
		total = total.Add(decimal.NewFromFloat(c.Balance).Mul(USDFactor(c.Code)))
	}
	return total
}

// RefreshRates applies a small random move to every quoted rate.
func (s *State) RefreshRates(ctx context.Context) []models.ExchangeRate {
	var next []models.ExchangeRate
	s.rates.Update(ctx, func(prev []models.ExchangeRate) []models.ExchangeRate {
		next = make([]models.ExchangeRate, len(prev))
		for i, r := range prev {
			r.Rate += (s.rand() - 0.5) * 0.01
			r.Change = (s.rand() - 0.5) * 0.01
			r.ChangePercent = (s.rand() - 0.5) * 0.5
			next[i] = r
		}
		return next
	})
	return next
}

// Convert quotes amount of from in to through the static factors.
func Convert(amount decimal.Decimal, from, to string) decimal.Decimal {
	return amount.Mul(USDFactor(from)).Div(USDFactor(to))
}

// Watch calls fn with the key and new value after every change of any collection.
func (s *State) Watch(fn func(key string, value any)) (cancel func()) {
	cancels := []func(){
		s.currencies.Subscribe(func(v []models.Currency) { fn(models.KeyCurrencies, v) }),
		s.transactions.Subscribe(func(v []models.Transaction) { fn(models.KeyTransactions, v) }),
		s.rates.Subscribe(func(v []models.ExchangeRate) { fn(models.KeyExchangeRates, v) }),
		s.preferences.Subscribe(func(v models.UserPreferences) { fn(models.KeyPreferences, v) }),
		s.language.Subscribe(func(v string) { fn(models.KeyLanguage, v) }),
		s.theme.Subscribe(func(v models.Theme) { fn(models.KeyTheme, v) }),
	}
	return func() {
		for _, c := range cancels {
			c()
		}
	}
}
