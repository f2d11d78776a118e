package status

import "sync/atomic"

// Registry holds the simulator's metrics by kind
// The game loop writes, the HUD and telemetry read
type Registry struct {
	Counters *Table[atomic.Int64]
	Gauges   *Table[Gauge]
	Flags    *Table[atomic.Bool]
	Labels   *Table[Label]
}

func NewRegistry() *Registry {
	return &Registry{
		Counters: newTable[atomic.Int64](),
		Gauges:   newTable[Gauge](),
		Flags:    newTable[atomic.Bool](),
		Labels:   newTable[Label](),
	}
}

// Len counts registered metrics of every kind
func (r *Registry) Len() int {
	return r.Counters.Len() + r.Gauges.Len() + r.Flags.Len() + r.Labels.Len()
}

// Readout is the fixed metric set shown in the HUD and sent as the telemetry "metrics" message
// Metrics nobody registered read as zero
type Readout struct {
	Frames        int64   `json:"frames"`
	Paused        bool    `json:"paused"`
	StepsLastTick int64   `json:"steps_last_tick"`
	DroppedMillis float64 `json:"dropped_time_ms"`
	State         string  `json:"state"`
	StateFrame    int64   `json:"state_frame"`
	VelocityX     float64 `json:"vx"`
	VelocityY     float64 `json:"vy"`
}

// Readout reads the simulator metrics without registering missing ones
func (r *Registry) Readout() Readout {
	return Readout{
		Frames:        r.counter(Frames),
		Paused:        r.flag(Paused),
		StepsLastTick: r.counter(StepsLastTick),
		DroppedMillis: r.gauge(DroppedMillis),
		State:         r.label(State),
		StateFrame:    r.counter(StateFrame),
		VelocityX:     r.gauge(VelocityX),
		VelocityY:     r.gauge(VelocityY),
	}
}

func (r *Registry) counter(k Key) int64 {
	if p, ok := r.Counters.Lookup(k); ok {
		return p.Load()
	}
	return 0
}

func (r *Registry) gauge(k Key) float64 {
	if p, ok := r.Gauges.Lookup(k); ok {
		return p.Value()
	}
	return 0
}

func (r *Registry) flag(k Key) bool {
	if p, ok := r.Flags.Lookup(k); ok {
		return p.Load()
	}
	return false
}

func (r *Registry) label(k Key) string {
	if p, ok := r.Labels.Lookup(k); ok {
		return p.Value()
	}
	return ""
}
