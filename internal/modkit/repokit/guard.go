package repokit

import (
	"context"
	"fmt"
	"time"
)

// Pinger is satisfied by stores that can answer a health ping
type Pinger interface {
	Ping(context.Context) error
}

// Ready pings p within timeout; a nil p is reported as not configured
func Ready(ctx context.Context, name string, p Pinger, timeout time.Duration) error {
	if p == nil {
		return fmt.Errorf("%s: not configured", name)
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := p.Ping(ctx); err != nil {
		return fmt.Errorf("%s ping: %w", name, err)
	}
	return nil
}
