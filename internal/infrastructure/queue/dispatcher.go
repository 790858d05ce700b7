package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/jobdeck/jobboard-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes notification events to a fixed set of workers using
// consistent hashing on the application id, guaranteeing per-application
// delivery ordering.
type Dispatcher struct {
	workers []chan ports.NotificationInput
	service ports.NotificationService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.NotificationService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.NotificationInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.NotificationInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its application id.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(event ports.NotificationInput) {
	d.workers[d.shardIndex(event.ApplicationID)] <- event
}

// shardIndex maps an application id deterministically to a worker index.
func (d *Dispatcher) shardIndex(applicationID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(applicationID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.NotificationInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("application_id", event.ApplicationID).
					Int("worker_id", id).
					Msg("notification processing failed")
			}
		}
	}
}
