package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type prober interface {
	Probe(ctx context.Context) error
}

// Scheduler probes the booking API on a fixed interval and remembers
// whether it answered.
type Scheduler struct {
	prober   prober
	interval time.Duration
	logger   logger.Logger

	mu     sync.RWMutex
	status domain.APIStatus
}

func New(
	prober prober,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		prober:   prober,
		interval: interval,
		logger:   logger,
	}
}

// Start probes once immediately, then every interval until ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	s.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	err := s.prober.Probe(probeCtx)
	if ctx.Err() != nil {
		return
	}

	s.mu.Lock()
	wasUp := s.status.Up || !s.status.Checked
	s.status = domain.APIStatus{Checked: true, Up: err == nil, LastCheck: time.Now()}
	if err != nil {
		s.status.LastError = err.Error()
	}
	s.mu.Unlock()

	switch {
	case err != nil && wasUp:
		s.logger.Error("booking api probe failed",
			logger.String("error", err.Error()),
		)
	case err == nil && !wasUp:
		s.logger.Info("booking api is reachable again")
	}
}

func (s *Scheduler) Status() domain.APIStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}
