package scan

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetry_restartsFailingRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runs := 0
	Retry(ctx, time.Millisecond, func(context.Context) error {
		runs++
		if runs == 3 {
			cancel()
		}
		return errors.New("adapter gone")
	})

	if runs != 3 {
		t.Errorf("run count = %d; want 3", runs)
	}
}

func TestRetry_restartsCleanReturn(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runs := 0
	Retry(ctx, time.Millisecond, func(context.Context) error {
		runs++
		if runs == 2 {
			cancel()
		}
		return nil
	})

	if runs != 2 {
		t.Errorf("run count = %d; want 2", runs)
	}
}

func TestRetry_stopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runs := 0
	Retry(ctx, time.Hour, func(context.Context) error {
		runs++
		return errors.New("boom")
	})

	if runs != 1 {
		t.Errorf("run count = %d; want 1 (no retry after cancellation)", runs)
	}
}
