package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/platform-fighter/parameter"
)

var _ TimeProvider = (*MockTimeProvider)(nil)

// MockTimeProvider is a hand-stepped clock for tests of the frame driver
// Time is an offset from a fixed origin so readers never lock
type MockTimeProvider struct {
	origin time.Time
	offset atomic.Int64
}

func NewMockTimeProvider(origin time.Time) *MockTimeProvider {
	return &MockTimeProvider{origin: origin}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.origin.Add(time.Duration(m.offset.Load()))
}

// Set jumps to t, earlier than Now included
func (m *MockTimeProvider) Set(t time.Time) {
	m.offset.Store(int64(t.Sub(m.origin)))
}

func (m *MockTimeProvider) Advance(d time.Duration) {
	m.offset.Add(int64(d))
}

// AdvanceFrames moves forward by n simulation frames at SimulationFPS
func (m *MockTimeProvider) AdvanceFrames(n int) {
	m.Advance(time.Duration(n) * (time.Second / parameter.SimulationFPS))
}
