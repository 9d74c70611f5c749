package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

var (
	ErrQueueFull = errors.New("task queue is full")
	ErrStopped   = errors.New("dispatcher is stopped")
)

type task struct {
	name string
	fn   func(ctx context.Context)
}

// Dispatcher runs submitted tasks on a fixed set of workers. Tasks are fire and
// forget: they outlive the submitting request and report nothing back.
type Dispatcher struct {
	log     *slog.Logger
	workers int
	tasks   chan task
	stopped atomic.Bool
}

func NewDispatcher(log *slog.Logger, workers, queueSize int) *Dispatcher {
	return &Dispatcher{
		log:     log,
		workers: max(workers, 1),
		tasks:   make(chan task, max(queueSize, 1)),
	}
}

// Submit never blocks. It returns ErrQueueFull when every slot is taken.
func (d *Dispatcher) Submit(name string, fn func(ctx context.Context)) error {
	if d.stopped.Load() {
		return ErrStopped
	}

	select {
	case d.tasks <- task{name: name, fn: fn}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Queued is the number of tasks waiting for a worker.
func (d *Dispatcher) Queued() int {
	return len(d.tasks)
}

// Run blocks until ctx is done. Tasks still queued at that point are dropped;
// running ones finish on a context that is not cancelled.
func (d *Dispatcher) Run(ctx context.Context) error {
	defer d.stopped.Store(true)

	erg, ctx := errgroup.WithContext(ctx)

	for i := range d.workers {
		erg.Go(func() error {
			return d.work(ctx, i)
		})
	}

	return erg.Wait()
}

func (d *Dispatcher) work(ctx context.Context, id int) error {
	log := d.log.With(slog.Int("worker", id))

	for {
		select {
		case t := <-d.tasks:
			d.execute(ctx, log, t)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (d *Dispatcher) execute(ctx context.Context, log *slog.Logger, t task) {
	log = log.With(slog.String("task", t.name))

	defer func() {
		if r := recover(); r != nil {
			log.ErrorContext(ctx, "task panicked", slog.String("err", fmt.Sprint(r)))
		}
	}()

	log.DebugContext(ctx, "task started")

	t.fn(context.WithoutCancel(ctx))

	log.DebugContext(ctx, "task finished")
}
