// Package bootstrap waits for the email library to appear and initialises it.
package bootstrap

import (
	"context"
	"time"

	"github.com/Zachkp/portfolio-widgets/internal/clock"
)

// Outcome is how a wait resolved.
type Outcome int

const (
	Found Outcome = iota
	Exhausted
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

const (
	DefaultPollInterval = 100 * time.Millisecond
	DefaultMaxAttempts  = 50
)

// Poller checks Ready once up front and then once per tick, giving up
// after MaxAttempts ticks.
type Poller struct {
	Interval    time.Duration
	MaxAttempts int
	Ready       func() bool
	Clock       clock.Clock
}

// Wait blocks until Ready reports true, the attempt budget runs out, or ctx
// is done. It returns the outcome and the number of ticks consumed.
func (p *Poller) Wait(ctx context.Context) (Outcome, int) {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	maxAttempts := p.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	clk := p.Clock
	if clk == nil {
		clk = clock.Real{}
	}

	ticker := clk.NewTicker(interval)
	defer ticker.Stop()

	if p.Ready() {
		return Found, 0
	}

	attempts := 0
	for {
		select {
		case <-ctx.Done():
			return Cancelled, attempts
		case <-ticker.C():
			attempts++
			if p.Ready() {
				return Found, attempts
			}
			if attempts >= maxAttempts {
				return Exhausted, attempts
			}
		}
	}
}
