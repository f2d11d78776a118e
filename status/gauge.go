package status

import (
	"math"
	"sync/atomic"
	"unicode/utf8"
)

// Gauge is a float64 metric stored as bits, the zero value reads 0
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Set(v float64) { g.bits.Store(math.Float64bits(v)) }

func (g *Gauge) Value() float64 { return math.Float64frombits(g.bits.Load()) }

// Add accumulates delta, used for running totals such as dropped time
func (g *Gauge) Add(delta float64) float64 {
	for {
		old := g.bits.Load()
		sum := math.Float64frombits(old) + delta
		if g.bits.CompareAndSwap(old, math.Float64bits(sum)) {
			return sum
		}
	}
}

// MaxLabelLen bounds a Label in bytes; state names are far shorter
const MaxLabelLen = 32

// Label is a short string metric such as the fighter state name
type Label struct {
	ptr atomic.Pointer[string]
}

// Set stores v cut to MaxLabelLen without splitting a rune
func (l *Label) Set(v string) {
	if len(v) > MaxLabelLen {
		cut := MaxLabelLen
		for cut > 0 && !utf8.RuneStart(v[cut]) {
			cut--
		}
		v = v[:cut]
	}
	l.ptr.Store(&v)
}

func (l *Label) Value() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
