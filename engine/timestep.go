package engine

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/platform-fighter/parameter"
	"github.com/lixenwraith/platform-fighter/status"
	"github.com/lixenwraith/platform-fighter/vmath"
)

// FixedTimestep turns variable wall-clock deltas into a whole number of fixed steps
// Durations are integral nanoseconds so any chunking of the same wall time
// yields the same step count and leftover
type FixedTimestep struct {
	fixed       time.Duration
	accumulator time.Duration
	maxSteps    int
	logger      *slog.Logger

	// Cached metric pointers, nil until Instrument
	statSteps   *atomic.Int64
	statDropped *status.Gauge
}

// NewFixedTimestep creates a driver running fps steps per second
// Non-positive arguments fall back to SimulationFPS and MaxStepsPerUpdate
func NewFixedTimestep(fps, maxSteps int) *FixedTimestep {
	if fps <= 0 {
		fps = parameter.SimulationFPS
	}
	if maxSteps <= 0 {
		maxSteps = parameter.MaxStepsPerUpdate
	}
	return &FixedTimestep{
		fixed:    time.Second / time.Duration(fps),
		maxSteps: maxSteps,
		logger:   discardLogger(nil),
	}
}

// Instrument attaches a logger and metric registry, either may be nil
func (ft *FixedTimestep) Instrument(reg *status.Registry, logger *slog.Logger) {
	ft.logger = discardLogger(logger)
	if reg != nil {
		ft.statSteps = reg.Counters.Get(status.StepsLastTick)
		ft.statDropped = reg.Gauges.Get(status.DroppedMillis)
	}
}

// Update accumulates delta and runs step once per whole fixed delta held
// Past maxSteps the whole-step backlog is dropped and the fraction kept
// Returns the number of steps run
func (ft *FixedTimestep) Update(delta time.Duration, step func()) int {
	if delta > 0 {
		ft.accumulator += delta
	}

	steps := 0
	for ft.accumulator >= ft.fixed {
		if steps == ft.maxSteps {
			dropped := ft.accumulator - ft.accumulator%ft.fixed
			ft.accumulator %= ft.fixed
			ft.logger.Warn("simulation behind, dropping backlog",
				"dropped", dropped, "steps", steps)
			if ft.statDropped != nil {
				ft.statDropped.Add(float64(dropped) / float64(time.Millisecond))
			}
			break
		}
		step()
		ft.accumulator -= ft.fixed
		steps++
	}

	if ft.statSteps != nil {
		ft.statSteps.Store(int64(steps))
	}
	return steps
}

// Interpolation is the leftover fraction of a step, in [0, 1)
func (ft *FixedTimestep) Interpolation() float64 {
	return float64(ft.accumulator) / float64(ft.fixed)
}

// FixedDelta is the duration of one step
func (ft *FixedTimestep) FixedDelta() time.Duration { return ft.fixed }

// Accumulated is the wall time not yet simulated
func (ft *FixedTimestep) Accumulated() time.Duration { return ft.accumulator }

// Reset discards accumulated time
func (ft *FixedTimestep) Reset() { ft.accumulator = 0 }

// Interpolate blends the previous and current simulated positions for drawing
func Interpolate(prev, cur vmath.Point2D, alpha float64) vmath.Point2D {
	alpha = vmath.Clamp(alpha, 0, 1)
	return vmath.Pt(vmath.Lerp(prev.X, cur.X, alpha), vmath.Lerp(prev.Y, cur.Y, alpha))
}

func discardLogger(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return slog.New(slog.DiscardHandler)
}
