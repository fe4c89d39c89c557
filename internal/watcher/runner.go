// internal/watcher/runner.go
package watcher

import (
	"context"
	"time"
)

// Run executes the first cycle immediately, then one per interval until
// ctx is canceled. The pause between cycles is unconditional: success,
// failure, and empty responses all wait the same interval.
func (w *Watcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	for {
		w.RunCycle(ctx)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
