package order

import (
	"context"
	"time"

	"go.uber.org/zap"

	"foodcourt/internal/domain"
	apperrors "foodcourt/internal/errors"
	"foodcourt/internal/metrics"
)

const sweepOrderTimeout = 30 * time.Second

// Sweeper cancels orders stuck in PREPARING past the stall threshold.
// A single goroutine runs the loop; cancellations go through the order
// service so caching, logging and notification behave exactly as for a
// user-initiated cancel.
type Sweeper struct {
	repo           Repository
	service        Service
	period         time.Duration
	stallThreshold time.Duration
	logger         *zap.Logger
	now            func() time.Time
}

func NewSweeper(repo Repository, service Service, period, stallThreshold time.Duration, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		repo:           repo,
		service:        service,
		period:         period,
		stallThreshold: stallThreshold,
		logger:         logger,
		now:            time.Now,
	}
}

// Run blocks until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	s.logger.Info("sweeper started",
		zap.Duration("period", s.period),
		zap.Duration("stallThreshold", s.stallThreshold),
	)

	ticker := time.NewTicker(s.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sweeper stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one pass. Losing a race on an individual order is expected
// and harmless: anyone who moved it first wins, and the resulting
// conflict is a no-op here.
func (s *Sweeper) Sweep(ctx context.Context) {
	cutoff := s.now().UTC().Add(-s.stallThreshold)

	stalled, err := s.repo.FindStalled(ctx, domain.OrderStatusPreparing, cutoff)
	if err != nil {
		s.logger.Error("sweeper scan failed", zap.Error(err))
		return
	}
	if len(stalled) == 0 {
		return
	}

	s.logger.Info("sweeping stalled orders", zap.Int("count", len(stalled)))

	for i := range stalled {
		s.cancelOne(stalled[i].OrderID)
	}
}

func (s *Sweeper) cancelOne(orderID string) {
	// Detached from the loop context so a shutdown mid-pass does not
	// abandon a cancellation halfway through.
	ctx, cancel := context.WithTimeout(context.Background(), sweepOrderTimeout)
	defer cancel()

	if _, err := s.service.Cancel(ctx, orderID); err != nil {
		if _, ok := apperrors.IsConflictError(err); ok {
			s.logger.Debug("order moved before sweep, skipping", zap.String("orderId", orderID))
			return
		}
		s.logger.Error("sweeper cancel failed", zap.String("orderId", orderID), zap.Error(err))
		return
	}

	metrics.OrdersCancelledBySweeper.Inc()
	s.logger.Info("stalled order cancelled",
		zap.String("worker", "sweeper"),
		zap.String("orderId", orderID),
	)
}
