// Package transfer implements the three-step international transfer wizard.
package transfer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/chris/multicurrency-wallet/pkg/models"
	"github.com/chris/multicurrency-wallet/pkg/scheduler"
)

// DefaultDelay is the simulated processing time of a transfer.
const DefaultDelay = 2 * time.Second

// Step is a page of the wizard.
type Step int

const (
	StepRecipient Step = 1
	StepBank      Step = 2
	StepAmount    Step = 3
)

// Form holds the values entered in the wizard.
type Form struct {
	RecipientName    string   `json:"recipientName"`
	RecipientEmail   string   `json:"recipientEmail"`
	RecipientPhone   string   `json:"recipientPhone"`
	RecipientCountry string   `json:"recipientCountry"`
	RecipientBank    string   `json:"recipientBank"`
	RecipientAccount string   `json:"recipientAccount"`
	Amount           *float64 `json:"amount,omitempty"`
	Currency         string   `json:"currency"`
	Purpose          string   `json:"purpose"`
	Notes            string   `json:"notes"`
}

// DefaultForm is the state of a fresh wizard.
func DefaultForm() Form {
	return Form{Currency: "USD", RecipientCountry: "US"}
}

// State is a snapshot of a Flow.
type State struct {
	ID         string `json:"id"`
	Step       Step   `json:"step"`
	Form       Form   `json:"form"`
	Submitting bool   `json:"submitting"`
}

// Flow is one run of the wizard.
type Flow struct {
	id        string
	scheduler scheduler.Scheduler
	delay     time.Duration
	now       func() time.Time
	logger    *slog.Logger

	mu         sync.Mutex
	step       Step
	form       Form
	submitting bool
}

// NewFlow creates a wizard on its first step with the default form.
func NewFlow(id string, s scheduler.Scheduler, delay time.Duration) *Flow {
	return &Flow{
		id:        id,
		scheduler: s,
		delay:     delay,
		now:       time.Now,
		logger:    slog.Default(),
		step:      StepRecipient,
		form:      DefaultForm(),
	}
}

// ID returns the flow's identifier.
func (f *Flow) ID() string {
	return f.id
}

// State returns a snapshot of the flow.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return State{ID: f.id, Step: f.step, Form: f.form, Submitting: f.submitting}
}

// SetForm replaces the entered values. The step does not change. The form cannot be
// edited while a submit is running, since a successful submit resets it.
func (f *Flow) SetForm(form Form) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return ErrSubmitInProgress
	}
	f.form = form
	return nil
}

// Next moves to the following step when the fields of the current one are valid.
// On the last step it only validates.
func (f *Flow) Next() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if verr := f.form.Validate(f.step); verr != nil {
		return verr
	}
	if f.step < StepAmount {
		f.step++
	}
	return nil
}

// Back moves to the previous step. It never validates and stops at the first step.
func (f *Flow) Back() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step > StepRecipient {
		f.step--
	}
}

// Submit validates the whole form and hands the transfer to the scheduler. On success the
// flow goes back to the first step with the default form. Only one submit may run at a time.
func (f *Flow) Submit(ctx context.Context) (models.Transaction, error) {
	f.mu.Lock()
	if f.step != StepAmount {
		f.mu.Unlock()
		return models.Transaction{}, ErrNotFinalStep
	}
	if f.submitting {
		f.mu.Unlock()
		return models.Transaction{}, ErrSubmitInProgress
	}
	if verr := f.form.ValidateAll(); verr != nil {
		f.mu.Unlock()
		return models.Transaction{}, verr
	}
	f.submitting = true
	tx := f.transaction()
	f.mu.Unlock()

	err := f.scheduler.ScheduleTransfer(ctx, tx, f.delay)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err != nil {
		f.logger.Error("failed to schedule transfer", "transfer_id", f.id, "error", err)
		return models.Transaction{}, fmt.Errorf("failed to schedule transfer: %w", err)
	}

	f.step = StepRecipient
	f.form = DefaultForm()
	return tx, nil
}

// transaction builds the sent transaction for the current form. f.mu must be held.
func (f *Flow) transaction() models.Transaction {
	return models.Transaction{
		Type:        models.SENT,
		Amount:      -*f.form.Amount,
		Currency:    f.form.Currency,
		Recipient:   f.form.RecipientName,
		Location:    f.form.RecipientCountry,
		Flag:        FlagFor(f.form.RecipientCountry),
		Category:    "Transfer",
		Icon:        "Send",
		Time:        "Just now",
		Description: f.form.Purpose,
		Date:        f.now(),
	}
}
