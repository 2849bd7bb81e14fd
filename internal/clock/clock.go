// Package clock renders the header clock.
package clock

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Layout is 24-hour HH:MM:SS.
const Layout = "15:04:05"

func Format(t time.Time) string {
	return t.Format(Layout)
}

// Run writes the current time to w once immediately and then on every tick
// until ctx is done. It returns nil on cancellation.
func Run(ctx context.Context, w io.Writer, interval time.Duration) error {
	return run(ctx, w, interval, time.Now)
}

func run(ctx context.Context, w io.Writer, interval time.Duration, now func() time.Time) error {
	if interval <= 0 {
		interval = time.Second
	}
	if _, err := fmt.Fprintln(w, Format(now())); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := fmt.Fprintln(w, Format(now())); err != nil {
				return err
			}
		}
	}
}
