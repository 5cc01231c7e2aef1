package transfer

import (
	"time"

	"github.com/chris/multicurrency-wallet/pkg/scheduler"
	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
)

// Sessions keeps the open wizards of this process.
type Sessions struct {
	flows     *xsync.MapOf[string, *Flow]
	scheduler scheduler.Scheduler
	delay     time.Duration
}

// NewSessions creates an empty registry whose flows submit through s after delay.
func NewSessions(s scheduler.Scheduler, delay time.Duration) *Sessions {
	return &Sessions{
		flows:     xsync.NewMapOf[string, *Flow](),
		scheduler: s,
		delay:     delay,
	}
}

// Start opens a new wizard.
func (s *Sessions) Start() *Flow {
	f := NewFlow(uuid.New().String(), s.scheduler, s.delay)
	s.flows.Store(f.ID(), f)
	return f
}

// Get returns the wizard with the given id.
func (s *Sessions) Get(id string) (*Flow, error) {
	f, ok := s.flows.Load(id)
	if !ok {
		return nil, ErrNotFound
	}
	return f, nil
}

// Delete closes the wizard with the given id.
func (s *Sessions) Delete(id string) {
	s.flows.Delete(id)
}
