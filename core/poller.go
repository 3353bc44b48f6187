package core

import (
	"context"
	"time"

	"github.com/benchwatch/benchwatch/internal/contract"
)

// pollTick is the granularity at which the sleeping poller rechecks its
// stop conditions, so shutdown never waits out a long interval.
const pollTick = 100 * time.Millisecond

// Poller runs check cycles against the coordinator on the active
// scenario's cadence until the context is cancelled or the exit latch
// trips.
type Poller struct {
	coord *Coordinator
}

// NewPoller returns a poller bound to the coordinator.
func NewPoller(coord *Coordinator) *Poller {
	return &Poller{coord: coord}
}

// Run executes cycles until stopped. Each iteration runs first and sleeps
// after, so the first results are available one cycle after start. Cycle
// errors are logged and do not stop the loop. The interval is re-read
// every iteration, picking up live changes.
func (p *Poller) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil || p.coord.ShouldExit() {
			return
		}

		if _, _, err := p.coord.RunChecks(); err != nil {
			contract.LogWarn("running checks", err)
		}

		ticks := p.coord.PollInterval() * 10
		for range ticks {
			if ctx.Err() != nil || p.coord.ShouldExit() {
				return
			}
			time.Sleep(pollTick)
		}
	}
}
