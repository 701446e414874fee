package notify

import (
	"sync"

	"go.uber.org/zap"

	"foodcourt/internal/metrics"
)

// Sender delivers one message. Implementations must be safe for
// concurrent use by the worker pool.
type Sender interface {
	Send(to, subject, body string) error
}

type message struct {
	to      string
	subject string
	body    string
}

// Dispatcher is a bounded fire-and-forget worker pool. Delivery is
// at-most-once: send failures are logged and dropped, and when the queue
// is full new notifications are dropped with a warning. Email is
// non-critical; callers never observe the outcome.
type Dispatcher struct {
	sender Sender
	logger *zap.Logger
	queue  chan message
	wg     sync.WaitGroup
}

func NewDispatcher(sender Sender, workers, queueSize int, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		logger: logger,
		queue:  make(chan message, queueSize),
	}

	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}

	return d
}

// Notify enqueues a notification without blocking the caller. The
// originating request may be cancelled or finished by the time the
// message is delivered; the dispatcher is fully detached from it.
func (d *Dispatcher) Notify(to, subject, body string) {
	select {
	case d.queue <- message{to: to, subject: subject, body: body}:
	default:
		metrics.NotificationsDropped.Inc()
		d.logger.Warn("notification queue full, dropping",
			zap.String("to", to),
			zap.String("subject", subject),
		)
	}
}

func (d *Dispatcher) worker(id int) {
	defer d.wg.Done()
	for msg := range d.queue {
		if err := d.sender.Send(msg.to, msg.subject, msg.body); err != nil {
			d.logger.Warn("notification delivery failed",
				zap.Int("worker", id),
				zap.String("to", msg.to),
				zap.String("subject", msg.subject),
				zap.Error(err),
			)
			continue
		}
		d.logger.Debug("notification sent",
			zap.Int("worker", id),
			zap.String("to", msg.to),
			zap.String("subject", msg.subject),
		)
	}
}

// Close drains the queue and stops the workers.
func (d *Dispatcher) Close() {
	close(d.queue)
	d.wg.Wait()
}
