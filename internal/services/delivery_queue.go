package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"eventticketing/internal/domain"
)

// DeliveryQueue delivers invitation emails on a fixed pool of worker goroutines.
// When the buffer is full a job gets its own goroutine so Enqueue never blocks.
type DeliveryQueue struct {
	emails  domain.EmailService
	jobs    chan *domain.InvitationEmailData
	workers int
	timeout time.Duration
	logger  *slog.Logger

	base   context.Context
	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewDeliveryQueue returns a stopped queue. Call Start before enqueuing.
func NewDeliveryQueue(emails domain.EmailService, workers, buffer int, timeout time.Duration, logger *slog.Logger) *DeliveryQueue {
	if workers < 1 {
		workers = 1
	}
	return &DeliveryQueue{
		emails:  emails,
		jobs:    make(chan *domain.InvitationEmailData, buffer),
		workers: workers,
		timeout: timeout,
		logger:  logger,
		base:    context.Background(),
	}
}

// Start launches the workers. Jobs inherit ctx values but not its cancellation, so
// shutting down the server does not abort deliveries already in flight.
func (q *DeliveryQueue) Start(ctx context.Context) {
	q.base = context.WithoutCancel(ctx)
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go func() {
			defer q.wg.Done()
			for job := range q.jobs {
				q.deliver(job)
			}
		}()
	}
}

// Enqueue schedules data for delivery. Jobs enqueued after Stop are dropped and logged.
func (q *DeliveryQueue) Enqueue(data *domain.InvitationEmailData) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		q.logger.Warn("delivery queue stopped, dropping invitation", "event_id", data.EventID, "to", data.Email)
		return
	}
	select {
	case q.jobs <- data:
	default:
		q.wg.Add(1)
		go func() {
			defer q.wg.Done()
			q.deliver(data)
		}()
	}
}

// Stop closes the queue and waits for queued and in-flight jobs until ctx is done.
func (q *DeliveryQueue) Stop(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *DeliveryQueue) deliver(data *domain.InvitationEmailData) {
	ctx, cancel := context.WithTimeout(q.base, q.timeout)
	defer cancel()
	if err := q.emails.SendInvitation(ctx, data); err != nil {
		q.logger.ErrorContext(ctx, "invitation delivery failed", "event_id", data.EventID, "to", data.Email, "error", err)
	}
}
