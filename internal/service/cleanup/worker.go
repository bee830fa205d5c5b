package cleanup

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Pinger drops spectators that stopped answering. It returns how many were
// dropped.
type Pinger interface {
	Ping() int
}

type Worker struct {
	Spectators Pinger
	Interval   time.Duration
	log        *zap.Logger
}

func NewWorker(spectators Pinger, interval time.Duration, log *zap.Logger) *Worker {
	return &Worker{Spectators: spectators, Interval: interval, log: log.Named("cleanup")}
}

// Start runs the sweep on a ticker until ctx is cancelled. The returned
// channel is closed once the worker has stopped.
func (w *Worker) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	ticker := time.NewTicker(w.Interval)

	go func() {
		defer close(done)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				w.log.Debug("background worker stopped")
				return
			case <-ticker.C:
				w.runCleanup()
			}
		}
	}()

	w.log.Debug("background worker started", zap.Duration("interval", w.Interval))
	return done
}

// runCleanup executes one sweep
func (w *Worker) runCleanup() {
	if dropped := w.Spectators.Ping(); dropped > 0 {
		w.log.Info("removed unresponsive spectators", zap.Int("dropped", dropped))
	}
}
