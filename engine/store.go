package engine

import (
	"github.com/lixenwraith/chaos-merge/parameter"
)

// BodyID is a stable body identifier, never reused within a simulation
type BodyID uint64

// bodyInit carries every attribute of a body at creation
type bodyInit struct {
	x, y, vx, vy float64
	r, hue       float64
	cooldown     int32
	immunity     int32
	fuse         int32
	group        int64
	fragment     bool
}

// BodyStore is a structure-of-arrays container for all bodies
// Slots are dense; ids stay stable across swap-remove compaction
// Removals within a phase only set the dead flag, Compact applies them
type BodyStore struct {
	ids      []BodyID
	x, y     []float64
	vx, vy   []float64
	r        []float64
	hue      []float64
	cooldown []int32
	immunity []int32
	fuse     []int32
	group    []int64
	splitAge []int32
	fragment []bool
	dead     []bool

	slot   map[BodyID]int
	nextID BodyID
	deaths int // pending dead flags
}

// NewBodyStore creates an empty store with pre-sized arrays
func NewBodyStore(capacity int) *BodyStore {
	s := &BodyStore{
		slot:   make(map[BodyID]int, capacity),
		nextID: 1,
	}
	s.ids = make([]BodyID, 0, capacity)
	s.x = make([]float64, 0, capacity)
	s.y = make([]float64, 0, capacity)
	s.vx = make([]float64, 0, capacity)
	s.vy = make([]float64, 0, capacity)
	s.r = make([]float64, 0, capacity)
	s.hue = make([]float64, 0, capacity)
	s.cooldown = make([]int32, 0, capacity)
	s.immunity = make([]int32, 0, capacity)
	s.fuse = make([]int32, 0, capacity)
	s.group = make([]int64, 0, capacity)
	s.splitAge = make([]int32, 0, capacity)
	s.fragment = make([]bool, 0, capacity)
	s.dead = make([]bool, 0, capacity)
	return s
}

// Len returns the slot count, dead bodies pending compaction included
func (s *BodyStore) Len() int {
	return len(s.ids)
}

// Live returns the number of bodies not flagged dead
func (s *BodyStore) Live() int {
	return len(s.ids) - s.deaths
}

// add appends a body and returns its slot
func (s *BodyStore) add(b bodyInit) int {
	id := s.nextID
	s.nextID++

	i := len(s.ids)
	s.ids = append(s.ids, id)
	s.x = append(s.x, b.x)
	s.y = append(s.y, b.y)
	s.vx = append(s.vx, b.vx)
	s.vy = append(s.vy, b.vy)
	s.r = append(s.r, b.r)
	s.hue = append(s.hue, b.hue)
	s.cooldown = append(s.cooldown, b.cooldown)
	s.immunity = append(s.immunity, b.immunity)
	s.fuse = append(s.fuse, b.fuse)
	s.group = append(s.group, b.group)
	s.splitAge = append(s.splitAge, 0)
	s.fragment = append(s.fragment, b.fragment)
	s.dead = append(s.dead, false)

	s.slot[id] = i
	return i
}

// kill flags a slot for removal at the next Compact
func (s *BodyStore) kill(i int) {
	if s.dead[i] {
		return
	}
	s.dead[i] = true
	s.deaths++
}

// Lookup returns the slot of a live body
func (s *BodyStore) Lookup(id BodyID) (int, bool) {
	i, ok := s.slot[id]
	if !ok || s.dead[i] {
		return 0, false
	}
	return i, true
}

// Compact removes dead slots with swap-remove, O(dead)
// Slot order of survivors is not preserved
func (s *BodyStore) Compact() {
	if s.deaths == 0 {
		return
	}
	for i := len(s.ids) - 1; i >= 0 && s.deaths > 0; i-- {
		if !s.dead[i] {
			continue
		}
		delete(s.slot, s.ids[i])
		last := len(s.ids) - 1
		if i != last {
			s.move(last, i)
		}
		s.truncate(last)
		s.deaths--
	}
}

// move copies slot src into dst and repoints the id map
func (s *BodyStore) move(src, dst int) {
	s.ids[dst] = s.ids[src]
	s.x[dst] = s.x[src]
	s.y[dst] = s.y[src]
	s.vx[dst] = s.vx[src]
	s.vy[dst] = s.vy[src]
	s.r[dst] = s.r[src]
	s.hue[dst] = s.hue[src]
	s.cooldown[dst] = s.cooldown[src]
	s.immunity[dst] = s.immunity[src]
	s.fuse[dst] = s.fuse[src]
	s.group[dst] = s.group[src]
	s.splitAge[dst] = s.splitAge[src]
	s.fragment[dst] = s.fragment[src]
	s.dead[dst] = s.dead[src]
	s.slot[s.ids[dst]] = dst
}

func (s *BodyStore) truncate(n int) {
	s.ids = s.ids[:n]
	s.x = s.x[:n]
	s.y = s.y[:n]
	s.vx = s.vx[:n]
	s.vy = s.vy[:n]
	s.r = s.r[:n]
	s.hue = s.hue[:n]
	s.cooldown = s.cooldown[:n]
	s.immunity = s.immunity[:n]
	s.fuse = s.fuse[:n]
	s.group = s.group[:n]
	s.splitAge = s.splitAge[:n]
	s.fragment = s.fragment[:n]
	s.dead = s.dead[:n]
}

// Clear removes every body, ids keep increasing
func (s *BodyStore) Clear() {
	s.truncate(0)
	clear(s.slot)
	s.deaths = 0
}

// view builds a read-only copy of one slot
func (s *BodyStore) view(i int) BodyView {
	return BodyView{
		ID:       s.ids[i],
		X:        s.x[i],
		Y:        s.y[i],
		VX:       s.vx[i],
		VY:       s.vy[i],
		Radius:   s.r[i],
		Hue:      s.hue[i],
		Cooldown: int(s.cooldown[i]),
		Immunity: int(s.immunity[i]),
		Fuse:     int(s.fuse[i]),
		Group:    s.group[i],
		SplitAge: int(s.splitAge[i]),
		Fragment: s.fragment[i],
		InGroup:  s.group[i] != parameter.NoGroup,
	}
}

// BodyView is a read-only copy of one body
type BodyView struct {
	ID       BodyID
	X, Y     float64
	VX, VY   float64
	Radius   float64
	Hue      float64
	Cooldown int
	Immunity int
	Fuse     int
	Group    int64
	SplitAge int
	Fragment bool
	InGroup  bool
}
