package scheduler

import (
	"context"
	"time"

	"github.com/chris/multicurrency-wallet/pkg/models"
)

// Scheduler defines the interface for a component that records a transfer after a delay.
type Scheduler interface {
	// ScheduleTransfer hands a sent transaction over for processing once delay has passed.
	ScheduleTransfer(ctx context.Context, tx models.Transaction, delay time.Duration) error
}

// Sink receives transactions once they are processed.
type Sink interface {
	AddTransaction(ctx context.Context, tx models.Transaction) models.Transaction
}
