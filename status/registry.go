package status

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/exp/slices"
)

// Registry holds every gauge and counter published by the frame loop and surfaces
type Registry struct {
	Bools   *Table[atomic.Bool]
	Ints    *Table[atomic.Int64]
	Floats  *Table[Float]
	Strings *Table[Label]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewTable[atomic.Bool](),
		Ints:    NewTable[atomic.Int64](),
		Floats:  NewTable[Float](),
		Strings: NewTable[Label](),
	}
}

// Len counts metrics across all tables
func (r *Registry) Len() int {
	return r.Bools.Len() + r.Ints.Len() + r.Floats.Len() + r.Strings.Len()
}

// Entry is one metric rendered for logs and reports
type Entry struct {
	Key   string
	Value string
}

// Snapshot renders all metrics sorted by key
func (r *Registry) Snapshot() []Entry {
	out := make([]Entry, 0, r.Len())
	r.Bools.Range(func(k string, v *atomic.Bool) { out = append(out, Entry{k, fmt.Sprint(v.Load())}) })
	r.Ints.Range(func(k string, v *atomic.Int64) { out = append(out, Entry{k, fmt.Sprint(v.Load())}) })
	r.Floats.Range(func(k string, v *Float) { out = append(out, Entry{k, fmt.Sprintf("%.2f", v.Get())}) })
	r.Strings.Range(func(k string, v *Label) { out = append(out, Entry{k, v.Load()}) })
	slices.SortFunc(out, func(a, b Entry) int {
		switch {
		case a.Key < b.Key:
			return -1
		case a.Key > b.Key:
			return 1
		}
		return 0
	})
	return out
}
