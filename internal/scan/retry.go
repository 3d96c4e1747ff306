package scan

import (
	"context"
	"log/slog"
	"time"
)

// Retry runs fn until ctx is cancelled, restarting it after delay
// whenever it returns. A dropped adapter or a transient HCI error must
// not take the watcher down for good.
func Retry(ctx context.Context, delay time.Duration, fn func(context.Context) error) {
	for {
		err := fn(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			slog.Warn("scan stopped, retrying", "error", err, "delay", delay)
		} else {
			slog.Warn("scan stopped, retrying", "delay", delay)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}
