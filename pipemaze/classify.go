package pipemaze

import (
	"fmt"
	"iter"
)

// Regions is the outcome of classifying a traced grid.
type Regions struct {
	Outer, Inner Side
	OuterCount   int
	InnerCount   int
}

// outward yields from, from-1, ..., 0, then from+1, ..., n-1.
func outward(from, n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := from; i >= 0; i-- {
			if !yield(i) {
				return
			}
		}
		for i := from + 1; i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// scanOrder yields every cell index column by column, starting with the
// start cell's column and moving left to the first column, then right of
// it to the last. Within a column rows go from the start row up to the
// top, then from below the start row down to the bottom.
func (g *Grid) scanOrder(start int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for col := range outward(g.Col(start), g.width) {
			for row := range outward(g.Row(start), g.Height()) {
				if !yield(g.Index(row, col)) {
					return
				}
			}
		}
	}
}

// Classify resolves the side of every cell that tracing left Unknown and
// works out which side of the loop is enclosed.
//
// Non-loop cells that touch each other are never separated by the loop,
// so each 4-connected region of them takes the side of whichever of its
// cells the tracer tagged. Regions are filled in scan order. The outer side
// is the side of the first non-loop cell on the grid boundary met in that
// order; if the loop covers the whole boundary the loop's winding decides.
func Classify(g *Grid, l *Cycle) (*Regions, error) {
	seen := make([]bool, len(g.cells))
	var queue, region []int
	outer := Unknown
	for i := range g.scanOrder(l.Start) {
		if g.cells[i].Side == Loop {
			continue
		}
		if !seen[i] {
			queue = append(queue[:0], i)
			region = region[:0]
			seen[i] = true
			side := Unknown
			for len(queue) > 0 {
				u := queue[0]
				queue = queue[1:]
				region = append(region, u)
				if s := g.cells[u].Side; side == Unknown {
					side = s
				} else if s != Unknown && s != side {
					return nil, fmt.Errorf("%w: cell %d is tagged %s inside a %s region", ErrUnresolved, u, s, side)
				}
				for d := North; d <= West; d++ {
					v, ok := g.Neighbor(u, d)
					if !ok || seen[v] || g.cells[v].Side == Loop {
						continue
					}
					seen[v] = true
					queue = append(queue, v)
				}
			}
			if side == Unknown {
				return nil, fmt.Errorf("%w: region at cell %d doesn't touch the loop", ErrUnresolved, i)
			}
			for _, u := range region {
				g.cells[u].Side = side
			}
		}
		if outer == Unknown && g.onBoundary(i) {
			outer = g.cells[i].Side
		}
	}
	if outer == Unknown {
		outer = Left
		if !l.Clockwise() {
			outer = Right
		}
	}
	return &Regions{
		Outer:      outer,
		Inner:      outer.other(),
		OuterCount: g.Count(outer),
		InnerCount: g.Count(outer.other()),
	}, nil
}

// CountEnclosedRayCast counts the cells enclosed by l by scanning each row
// and flipping between outside and inside whenever a loop pipe with a
// northward connector is crossed. It doesn't look at side tags.
func CountEnclosedRayCast(g *Grid, l *Cycle) int {
	onLoop := make([]bool, len(g.cells))
	for _, i := range l.Path {
		onLoop[i] = true
	}
	var n int
	for row := range g.Height() {
		inside := false
		for col := range g.width {
			i := g.Index(row, col)
			if !onLoop[i] {
				if inside {
					n++
				}
				continue
			}
			sym := g.cells[i].Symbol
			if i == l.Start {
				sym = l.StartSymbol
			}
			if sym.connects(North) {
				inside = !inside
			}
		}
	}
	return n
}
