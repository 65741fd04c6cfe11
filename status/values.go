package status

import (
	"math"
	"sync/atomic"
	"unicode/utf8"
)

// LabelLen caps HUD labels in bytes
const LabelLen = 24

// Float is a float64 gauge stored as raw bits
// Zero value reads 0
type Float struct {
	bits atomic.Uint64
}

func (f *Float) Set(v float64) {
	f.bits.Store(math.Float64bits(v))
}

func (f *Float) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Blend moves the gauge toward sample by alpha and returns the result
// An unset gauge (exactly 0) takes the sample as is
func (f *Float) Blend(sample, alpha float64) float64 {
	for {
		old := f.bits.Load()
		cur := math.Float64frombits(old)
		next := sample
		if cur != 0 {
			next = cur + (sample-cur)*alpha
		}
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

// Label is a short string shown on the HUD
type Label struct {
	ptr atomic.Pointer[string]
}

// Store keeps at most LabelLen bytes, cut on a rune boundary
func (l *Label) Store(s string) {
	if len(s) > LabelLen {
		cut := LabelLen
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	l.ptr.Store(&s)
}

func (l *Label) Load() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
