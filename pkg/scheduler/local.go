package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/chris/multicurrency-wallet/pkg/models"
)

// Local processes transfers in-process: it waits for the delay and appends the transaction
// to the sink before returning.
type Local struct {
	sink   Sink
	logger *slog.Logger
	sleep  func(time.Duration)
}

// NewLocal creates a Local scheduler writing into sink.
func NewLocal(sink Sink, logger *slog.Logger) *Local {
	if logger == nil {
		logger = slog.Default()
	}
	return &Local{sink: sink, logger: logger, sleep: time.Sleep}
}

// Make sure we conform to the interface
var _ Scheduler = (*Local)(nil)

// ScheduleTransfer blocks for delay and then records tx. The wait is not cut short when
// ctx is cancelled, and the transaction is recorded regardless.
func (l *Local) ScheduleTransfer(ctx context.Context, tx models.Transaction, delay time.Duration) error {
	l.sleep(delay)

	added := l.sink.AddTransaction(context.WithoutCancel(ctx), tx)
	l.logger.Info("transfer recorded", "transaction_id", added.ID, "amount", added.Amount, "currency", added.Currency)
	return nil
}
