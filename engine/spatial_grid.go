package engine

import (
	"math"

	"github.com/lixenwraith/chaos-merge/vmath"
)

// SpatialGrid is a uniform broad-phase grid in compressed sparse row form
// Cell c holds Items[Start[c]:Start[c+1]], rebuilt by counting sort each step
// without per-cell allocation
type SpatialGrid struct {
	Side     int     // cells per axis
	CellSize float64 // arena units per cell, max(width, height) / Side
	Width    float64
	Height   float64

	Start []int32 // Side*Side + 1 offsets into Items
	Items []int32 // body slots grouped by cell

	cellOf []int32 // per-body cell index from the last Build
	cursor []int32 // fill cursor scratch
}

// TargetSide returns clamp(ceil(sqrt(n / occupancy)), lo, hi)
func TargetSide(n int, occupancy float64, lo, hi int) int {
	if occupancy <= 0 {
		occupancy = 1
	}
	side := int(math.Ceil(math.Sqrt(float64(n) / occupancy)))
	return vmath.ClampInt(side, lo, hi)
}

// NewSpatialGrid creates a grid with side cells per axis over the arena
func NewSpatialGrid(side int, width, height float64) *SpatialGrid {
	g := &SpatialGrid{}
	g.Resize(side, width, height)
	return g
}

// Resize reconfigures the grid, returns true if anything changed
// Existing contents are discarded; the next Build repopulates
func (g *SpatialGrid) Resize(side int, width, height float64) bool {
	if side < 1 {
		side = 1
	}
	if side == g.Side && width == g.Width && height == g.Height && g.Start != nil {
		return false
	}
	g.Side = side
	g.Width = width
	g.Height = height
	g.CellSize = math.Max(width, height) / float64(side)
	if g.CellSize <= 0 {
		g.CellSize = 1
	}
	cells := side * side
	g.Start = make([]int32, cells+1)
	g.cursor = make([]int32, cells)
	g.Items = g.Items[:0]
	return true
}

// CellCoords maps a point to clamped cell coordinates
func (g *SpatialGrid) CellCoords(x, y float64) (cx, cy int) {
	x = vmath.Clamp(x, 0, g.Width-1)
	y = vmath.Clamp(y, 0, g.Height-1)
	cx = vmath.ClampInt(int(x/g.CellSize), 0, g.Side-1)
	cy = vmath.ClampInt(int(y/g.CellSize), 0, g.Side-1)
	return cx, cy
}

// CellIndex maps a point to a clamped 1D cell index: row*Side + col
func (g *SpatialGrid) CellIndex(x, y float64) int {
	cx, cy := g.CellCoords(x, y)
	return cy*g.Side + cx
}

// Build buckets every body slot by center with a two-pass counting sort
func (g *SpatialGrid) Build(xs, ys []float64) {
	n := len(xs)
	if cap(g.cellOf) < n {
		g.cellOf = make([]int32, n)
	}
	g.cellOf = g.cellOf[:n]
	if cap(g.Items) < n {
		g.Items = make([]int32, n)
	}
	g.Items = g.Items[:n]

	clear(g.Start)
	for i := 0; i < n; i++ {
		c := int32(g.CellIndex(xs[i], ys[i]))
		g.cellOf[i] = c
		g.Start[c+1]++
	}
	for c := 1; c < len(g.Start); c++ {
		g.Start[c] += g.Start[c-1]
	}
	copy(g.cursor, g.Start[:len(g.Start)-1])
	for i := 0; i < n; i++ {
		c := g.cellOf[i]
		g.Items[g.cursor[c]] = int32(i)
		g.cursor[c]++
	}
}

// Cell returns the slots bucketed at (cx, cy), nil when out of range
// INTERNAL USE ONLY - view into grid storage, valid until the next Build
func (g *SpatialGrid) Cell(cx, cy int) []int32 {
	if cx < 0 || cx >= g.Side || cy < 0 || cy >= g.Side {
		return nil
	}
	c := cy*g.Side + cx
	return g.Items[g.Start[c]:g.Start[c+1]]
}

// CellOf returns the cell index body slot i was bucketed into
func (g *SpatialGrid) CellOf(i int) int {
	return int(g.cellOf[i])
}

// ForEachNeighbor calls fn for every slot j > i bucketed in the 3x3 block around slot i
// Iteration stops early when fn returns false
func (g *SpatialGrid) ForEachNeighbor(i int, fn func(j int) bool) {
	c := int(g.cellOf[i])
	cx, cy := c%g.Side, c/g.Side
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			for _, j := range g.Cell(cx+dx, cy+dy) {
				if int(j) <= i {
					continue
				}
				if !fn(int(j)) {
					return
				}
			}
		}
	}
}
