package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"foodcourt/internal/domain"
)

func newSweeperFixture(t *testing.T) (*Sweeper, *fixture) {
	t.Helper()
	f := newFixture()
	sw := NewSweeper(f.repo, f.svc, time.Minute, 30*time.Minute, zap.NewNop())
	return sw, f
}

func seedOrder(f *fixture, id string, status domain.OrderStatus, age time.Duration) {
	now := time.Now().UTC()
	f.repo.orders[id] = &domain.Order{
		OrderID:      id,
		UserID:       "u1",
		RestaurantID: "r1",
		Items:        []domain.OrderLine{{MenuItemID: "m1", Quantity: 1, Price: 4.50, TotalPrice: 4.50}},
		TotalPrice:   4.50,
		Status:       status,
		CreatedAt:    now.Add(-age),
		UpdatedAt:    now.Add(-age),
	}
}

func TestSweeper_CancelsStalledOrders(t *testing.T) {
	sw, f := newSweeperFixture(t)

	seedOrder(f, "stalled", domain.OrderStatusPreparing, time.Hour)
	seedOrder(f, "fresh", domain.OrderStatusPreparing, time.Minute)
	seedOrder(f, "done", domain.OrderStatusDelivered, time.Hour)

	sw.Sweep(context.Background())

	assert.Equal(t, domain.OrderStatusCancelled, f.repo.orders["stalled"].Status)
	assert.Equal(t, domain.OrderStatusPreparing, f.repo.orders["fresh"].Status)
	assert.Equal(t, domain.OrderStatusDelivered, f.repo.orders["done"].Status)
}

func TestSweeper_SecondPassIsNoOp(t *testing.T) {
	sw, f := newSweeperFixture(t)

	seedOrder(f, "stalled", domain.OrderStatusPreparing, time.Hour)

	sw.Sweep(context.Background())
	require.Equal(t, domain.OrderStatusCancelled, f.repo.orders["stalled"].Status)
	updatedAt := f.repo.orders["stalled"].UpdatedAt

	sw.Sweep(context.Background())
	assert.Equal(t, updatedAt, f.repo.orders["stalled"].UpdatedAt, "a cancelled order must not be touched again")
}

func TestSweeper_LostRaceIsSwallowed(t *testing.T) {
	sw, f := newSweeperFixture(t)

	seedOrder(f, "racy", domain.OrderStatusPreparing, time.Hour)

	// Another actor delivers the order between the scan and the cancel.
	racingRepo := &raceRepo{fakeRepo: f.repo, winner: domain.OrderStatusDelivered}
	sw.repo = racingRepo

	sw.Sweep(context.Background())

	assert.Equal(t, domain.OrderStatusDelivered, f.repo.orders["racy"].Status)
}

func TestSweeper_NotifiesOnCancel(t *testing.T) {
	sw, f := newSweeperFixture(t)

	seedOrder(f, "stalled", domain.OrderStatusPreparing, time.Hour)

	sw.Sweep(context.Background())

	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, "Order Update - stalled", f.notifier.sent[0].subject)
}

func TestSweeper_RunStopsOnContextCancel(t *testing.T) {
	sw, _ := newSweeperFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sw.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after context cancellation")
	}
}

// raceRepo returns stalled orders from the scan but flips their status
// before the sweeper's cancel lands, simulating a concurrent update.
type raceRepo struct {
	*fakeRepo
	winner domain.OrderStatus
}

func (r *raceRepo) FindStalled(ctx context.Context, status domain.OrderStatus, cutoff time.Time) ([]domain.Order, error) {
	stalled, err := r.fakeRepo.FindStalled(ctx, status, cutoff)
	if err != nil {
		return nil, err
	}
	for i := range stalled {
		r.fakeRepo.orders[stalled[i].OrderID].Status = r.winner
	}
	return stalled, nil
}
