package status

import (
	"math"
	"sync/atomic"
)

// Float is an atomic float64 stored as bits; zero value reads 0.0
type Float struct {
	bits atomic.Uint64
}

func (f *Float) Set(v float64) { f.bits.Store(math.Float64bits(v)) }

func (f *Float) Get() float64 { return math.Float64frombits(f.bits.Load()) }

// Text is an atomic short string; values past MaxTextLen are truncated
type Text struct {
	ptr atomic.Pointer[string]
}

// MaxTextLen bounds overlay line width
const MaxTextLen = 24

func (t *Text) Set(v string) {
	if len(v) > MaxTextLen {
		v = v[:MaxTextLen]
	}
	t.ptr.Store(&v)
}

func (t *Text) Get() string {
	if p := t.ptr.Load(); p != nil {
		return *p
	}
	return ""
}

// RateMeter smooths a per-frame rate with an exponential moving average
// Written by the frame goroutine only, read through the published Float
type RateMeter struct {
	out   *Float
	avg   float64
	alpha float64
}

// NewRateMeter publishes into out; alpha in (0,1], higher reacts faster
func NewRateMeter(out *Float, alpha float64) *RateMeter {
	if alpha <= 0 || alpha > 1 {
		alpha = 0.1
	}
	return &RateMeter{out: out, alpha: alpha}
}

// Sample records one frame of dt seconds; non-positive dt is ignored
func (m *RateMeter) Sample(dt float64) {
	if dt <= 0 {
		return
	}
	rate := 1 / dt
	if m.avg == 0 {
		m.avg = rate
	} else {
		m.avg += m.alpha * (rate - m.avg)
	}
	m.out.Set(m.avg)
}
