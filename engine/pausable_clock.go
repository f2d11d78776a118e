package engine

import (
	"sync"
	"time"
)

// PausableClock tracks play time, excluding the time spent paused
// Presentation only: the HUD shows it, the simulation counts frames instead
type PausableClock struct {
	mu sync.RWMutex

	provider TimeProvider

	startTime       time.Time
	paused          bool
	pauseStartTime  time.Time
	totalPausedTime time.Duration
}

// NewPausableClock starts a running clock over provider, nil uses the system clock
func NewPausableClock(provider TimeProvider) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		provider:  provider,
		startTime: provider.Now(),
	}
}

// Elapsed returns play time since start or the last Restart
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	end := pc.provider.Now()
	if pc.paused {
		// Frozen at the pause point
		end = pc.pauseStartTime
	}
	return end.Sub(pc.startTime) - pc.totalPausedTime
}

// Pause stops play time, repeated calls are ignored
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStartTime = pc.provider.Now()
}

// Resume continues play time, repeated calls are ignored
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return
	}
	pc.totalPausedTime += pc.provider.Now().Sub(pc.pauseStartTime)
	pc.paused = false
	pc.pauseStartTime = time.Time{}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time, including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.paused {
		total += pc.provider.Now().Sub(pc.pauseStartTime)
	}
	return total
}

// Restart zeroes play time and leaves the clock running
func (pc *PausableClock) Restart() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	pc.startTime = pc.provider.Now()
	pc.paused = false
	pc.pauseStartTime = time.Time{}
	pc.totalPausedTime = 0
}
