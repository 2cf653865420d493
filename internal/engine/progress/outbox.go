package progress

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const defaultOutboxSize = 64

// outbox runs outward side effects (notifications, publishing) one at a time,
// in submission order, off the session's critical section.
type outbox struct {
	jobs    chan func(ctx context.Context)
	timeout time.Duration
	logger  *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

func newOutbox(size int, timeout time.Duration, logger *slog.Logger) *outbox {
	if size <= 0 {
		size = defaultOutboxSize
	}

	ctx, cancel := context.WithCancel(context.Background())
	o := &outbox{
		jobs:    make(chan func(ctx context.Context), size),
		timeout: timeout,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	go o.run()

	return o
}

// submit queues a job; it never blocks and drops the job when full or closed.
func (o *outbox) submit(name string, job func(ctx context.Context)) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if o.closed {
		return
	}

	select {
	case o.jobs <- job:
	default:
		o.logger.Warn("Outbox full, dropping side effect", slog.String("job", name))
	}
}

// close drains queued jobs until ctx expires, then stops the worker.
func (o *outbox) close(ctx context.Context) {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()

		return
	}
	o.closed = true
	close(o.jobs)
	o.mu.Unlock()

	select {
	case <-o.done:
	case <-ctx.Done():
		o.cancel()
		<-o.done
	}
	o.cancel()
}

func (o *outbox) run() {
	defer close(o.done)

	for job := range o.jobs {
		if o.ctx.Err() != nil {
			continue
		}
		o.exec(job)
	}
}

func (o *outbox) exec(job func(ctx context.Context)) {
	ctx := o.ctx
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(o.ctx, o.timeout)
		defer cancel()
	}

	job(ctx)
}
