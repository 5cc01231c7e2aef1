// Package seed holds the initial data a fresh wallet starts from.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/chris/multicurrency-wallet/pkg/models"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var document []byte

// Data is the initial value of every persisted collection.
type Data struct {
	Currencies    []models.Currency      `yaml:"currencies"`
	Transactions  []models.Transaction   `yaml:"transactions"`
	ExchangeRates []models.ExchangeRate  `yaml:"exchangeRates"`
	Preferences   models.UserPreferences `yaml:"preferences"`
	Language      string                 `yaml:"language"`
	Theme         models.Theme           `yaml:"theme"`
}

// Load decodes the embedded seed document. Transaction dates are stamped with now.
func Load(now time.Time) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(document, &d); err != nil {
		return nil, fmt.Errorf("failed to decode seed data: %w", err)
	}
	for i := range d.Transactions {
		d.Transactions[i].Date = now
	}
	return &d, nil
}

// MustLoad is Load for callers that cannot recover from a broken binary.
func MustLoad(now time.Time) *Data {
	d, err := Load(now)
	if err != nil {
		panic(err)
	}
	return d
}
