package transfer

import (
	"regexp"
	"unicode/utf8"

	"github.com/chris/multicurrency-wallet/pkg/i18n"
)

const (
	minNameLength    = 2
	minAccountLength = 8
	minAmount        = 1
	maxAmount        = 100000
)

var emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)

// Validate checks the fields shown on step s. It returns nil when they are all valid.
func (f Form) Validate(s Step) *ValidationError {
	errs := map[string]i18n.Key{}

	switch s {
	case StepRecipient:
		switch {
		case f.RecipientName == "":
			errs["recipientName"] = i18n.NameRequired
		case utf8.RuneCountInString(f.RecipientName) < minNameLength:
			errs["recipientName"] = i18n.MinTwoChars
		}
		switch {
		case f.RecipientEmail == "":
			errs["recipientEmail"] = i18n.EmailRequired
		case !emailPattern.MatchString(f.RecipientEmail):
			errs["recipientEmail"] = i18n.InvalidEmail
		}
		if f.RecipientCountry == "" {
			errs["recipientCountry"] = i18n.CountryRequired
		}
	case StepBank:
		if f.RecipientBank == "" {
			errs["recipientBank"] = i18n.BankRequired
		}
		switch {
		case f.RecipientAccount == "":
			errs["recipientAccount"] = i18n.AccountRequired
		case utf8.RuneCountInString(f.RecipientAccount) < minAccountLength:
			errs["recipientAccount"] = i18n.MinEightChars
		}
	case StepAmount:
		switch {
		case f.Amount == nil:
			errs["amount"] = i18n.AmountRequired
		case *f.Amount < minAmount:
			errs["amount"] = i18n.MinAmount
		case *f.Amount > maxAmount:
			errs["amount"] = i18n.MaxAmount
		}
		if f.Purpose == "" {
			errs["purpose"] = i18n.PurposeRequired
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Fields: errs}
}

// ValidateAll checks every step.
func (f Form) ValidateAll() *ValidationError {
	all := map[string]i18n.Key{}
	for s := StepRecipient; s <= StepAmount; s++ {
		if err := f.Validate(s); err != nil {
			for field, k := range err.Fields {
				all[field] = k
			}
		}
	}
	if len(all) == 0 {
		return nil
	}
	return &ValidationError{Fields: all}
}
