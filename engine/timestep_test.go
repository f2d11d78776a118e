package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/platform-fighter/status"
	"github.com/lixenwraith/platform-fighter/vmath"
)

func TestFixedTimestepChunkingIsDeterministic(t *testing.T) {
	tests := []struct {
		name   string
		chunks []time.Duration
	}{
		{"one tick", []time.Duration{33 * time.Millisecond}},
		{"two ticks", []time.Duration{16500 * time.Microsecond, 16500 * time.Microsecond}},
		{"many small ticks", []time.Duration{
			5 * time.Millisecond, 5 * time.Millisecond, 5 * time.Millisecond,
			5 * time.Millisecond, 5 * time.Millisecond, 5 * time.Millisecond, 3 * time.Millisecond,
		}},
	}

	ref := NewFixedTimestep(60, 10)
	refSteps := ref.Update(33*time.Millisecond, func() {})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft := NewFixedTimestep(60, 10)
			steps := 0
			for _, d := range tt.chunks {
				steps += ft.Update(d, func() {})
			}
			if steps != refSteps {
				t.Errorf("steps = %d, want %d", steps, refSteps)
			}
			if ft.Accumulated() != ref.Accumulated() {
				t.Errorf("leftover = %v, want %v", ft.Accumulated(), ref.Accumulated())
			}
		})
	}
}

func TestFixedTimestepSteps(t *testing.T) {
	ft := NewFixedTimestep(60, 10)
	if ft.FixedDelta() != time.Second/60 {
		t.Fatalf("fixed delta = %v", ft.FixedDelta())
	}

	calls := 0
	step := func() { calls++ }

	if n := ft.Update(10*time.Millisecond, step); n != 0 || calls != 0 {
		t.Errorf("partial frame ran %d steps", n)
	}
	if a := ft.Interpolation(); a <= 0 || a >= 1 {
		t.Errorf("interpolation = %v, want in (0,1)", a)
	}
	if n := ft.Update(10*time.Millisecond, step); n != 1 || calls != 1 {
		t.Errorf("steps = %d, want 1", n)
	}
	if n := ft.Update(-time.Second, step); n != 0 {
		t.Errorf("negative delta ran %d steps", n)
	}

	ft.Reset()
	if ft.Interpolation() != 0 {
		t.Errorf("interpolation after reset = %v", ft.Interpolation())
	}
}

func TestFixedTimestepDropsBacklog(t *testing.T) {
	reg := status.NewRegistry()
	ft := NewFixedTimestep(60, 10)
	ft.Instrument(reg, nil)

	n := ft.Update(time.Second, func() {})
	if n != 10 {
		t.Errorf("steps = %d, want capped 10", n)
	}
	if a := ft.Interpolation(); a < 0 || a >= 1 {
		t.Errorf("interpolation = %v, want in [0,1)", a)
	}
	if got := reg.Readout().StepsLastTick; got != 10 {
		t.Errorf("steps metric = %d", got)
	}
	if got := reg.Readout().DroppedMillis; got < 800 {
		t.Errorf("dropped metric = %v ms, want most of a second", got)
	}
}

func TestFixedTimestepDefaults(t *testing.T) {
	ft := NewFixedTimestep(0, 0)
	if ft.FixedDelta() != time.Second/60 {
		t.Errorf("default fixed delta = %v", ft.FixedDelta())
	}
	if n := ft.Update(time.Hour, func() {}); n != 10 {
		t.Errorf("default cap = %d, want 10", n)
	}
}

func TestInterpolate(t *testing.T) {
	prev, cur := vmath.Pt(0, 0), vmath.Pt(10, -4)
	tests := []struct {
		alpha float64
		want  vmath.Point2D
	}{
		{0, prev},
		{1, cur},
		{0.5, vmath.Pt(5, -2)},
		{-1, prev},
		{2, cur},
	}
	for _, tt := range tests {
		if got := Interpolate(prev, cur, tt.alpha); got != tt.want {
			t.Errorf("Interpolate(%v) = %v, want %v", tt.alpha, got, tt.want)
		}
	}
}
