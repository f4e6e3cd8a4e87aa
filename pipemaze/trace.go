package pipemaze

import (
	"errors"
	"fmt"
)

// A Direction is one of the four compass directions, in clockwise order.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

var directionNames = [...]string{North: "north", East: "east", South: "south", West: "west"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

func (d Direction) Opposite() Direction { return (d + 2) % 4 }

// turn returns +1 if going from heading a to heading b is a right turn,
// -1 if it is a left turn and 0 otherwise.
func turn(a, b Direction) int {
	switch b {
	case (a + 1) % 4:
		return 1
	case (a + 3) % 4:
		return -1
	}
	return 0
}

// A step is a pipe entered from a particular side.
type step struct {
	sym  Symbol
	from Direction
}

// exits maps a pipe and the side it was entered from to the side it is
// left by.
var exits = map[step]Direction{
	{Vertical, North}:   South,
	{Vertical, South}:   North,
	{Horizontal, East}:  West,
	{Horizontal, West}:  East,
	{NorthEast, North}:  East,
	{NorthEast, East}:   North,
	{NorthWest, North}:  West,
	{NorthWest, West}:   North,
	{SouthEast, South}:  East,
	{SouthEast, East}:   South,
	{SouthWest, South}:  West,
	{SouthWest, West}:   South,
}

type lateral struct {
	dir  Direction
	side Side
}

// laterals lists, for each step, the two neighbors of the pipe that are
// not joined to it and which side of the direction of travel they are on.
// Elbows put both free neighbors on the outside of the turn.
var laterals = map[step][2]lateral{
	{Vertical, North}:   {{West, Right}, {East, Left}},
	{Vertical, South}:   {{East, Right}, {West, Left}},
	{Horizontal, East}:  {{North, Right}, {South, Left}},
	{Horizontal, West}:  {{South, Right}, {North, Left}},
	{NorthEast, North}:  {{West, Right}, {South, Right}},
	{NorthEast, East}:   {{West, Left}, {South, Left}},
	{NorthWest, North}:  {{East, Left}, {South, Left}},
	{NorthWest, West}:   {{East, Right}, {South, Right}},
	{SouthEast, South}:  {{West, Left}, {North, Left}},
	{SouthEast, East}:   {{West, Right}, {North, Right}},
	{SouthWest, South}:  {{East, Right}, {North, Right}},
	{SouthWest, West}:   {{East, Left}, {North, Left}},
}

// A Cycle is the result of tracing the pipe loop through the start cell.
type Cycle struct {
	Start       int
	StartSymbol Symbol // the pipe hidden under the start cell
	Steps       int    // moves taken to return to Start
	Path        []int  // loop cells in the order visited, beginning with Start

	// turns is the net number of right turns made around the loop:
	// +4 for a clockwise loop and -4 for a counterclockwise one.
	turns int
}

// Farthest returns the distance along the loop from the start to the
// cell farthest from it.
func (l *Cycle) Farthest() int { return l.Steps / 2 }

// Clockwise reports whether the loop was traced clockwise, in which case
// the enclosed cells are on its right.
func (l *Cycle) Clockwise() bool { return l.turns > 0 }

// FindStart returns the index of the start cell.
func (g *Grid) FindStart() (int, error) {
	start := -1
	for i, c := range g.cells {
		if c.Symbol != Start {
			continue
		}
		if start >= 0 {
			return 0, ErrMultipleStarts
		}
		start = i
	}
	if start < 0 {
		return 0, ErrNoStart
	}
	return start, nil
}

// StartDirections returns two directions leading out of start into pipes
// that connect back to it. Neighbors are checked north, south, east, west;
// the first two that connect win.
func (g *Grid) StartDirections(start int) (Direction, Direction, error) {
	dirs := g.startCandidates(start)
	if len(dirs) < 2 {
		return 0, 0, ErrNoPath
	}
	return dirs[0], dirs[1], nil
}

// startCandidates returns every direction out of start, in the order
// north, south, east, west, whose neighbor has a pipe connecting back.
func (g *Grid) startCandidates(start int) []Direction {
	var found []Direction
	for _, d := range [...]Direction{North, South, East, West} {
		n, ok := g.Neighbor(start, d)
		if ok && g.cells[n].Symbol.connects(d.Opposite()) {
			found = append(found, d)
		}
	}
	return found
}

// Trace follows the loop from the start cell until it comes back around,
// marking every loop cell with Loop and tagging the free neighbors of each
// loop cell with the side of the loop they're on.
//
// The walk leaves the start by the first connecting neighbor in north,
// south, east, west order. A stray pipe that merely points at the start can
// come first in that order, so when a walk breaks down the side tags are
// cleared and the next connecting neighbor is tried. If every walk fails
// the error from the first one is returned.
func Trace(g *Grid) (*Cycle, error) {
	start, err := g.FindStart()
	if err != nil {
		return nil, err
	}
	dirs := g.startCandidates(start)
	if len(dirs) < 2 {
		return nil, ErrNoPath
	}
	var firstErr error
	for _, d := range dirs {
		l, err := g.traceFrom(start, d)
		if err == nil {
			return l, nil
		}
		if !errors.Is(err, ErrInvalidPath) {
			return nil, err
		}
		if firstErr == nil {
			firstErr = err
		}
		g.clearSides()
	}
	return nil, firstErr
}

// traceFrom walks the loop leaving start in direction first.
func (g *Grid) traceFrom(start int, first Direction) (*Cycle, error) {
	l := &Cycle{Start: start, Path: []int{start}}
	g.cells[start].Side = Loop

	heading := first
	cur, _ := g.Neighbor(start, first)
	l.Steps = 1
	for cur != start {
		if l.Steps > len(g.cells) {
			return nil, fmt.Errorf("%w: loop never returns to the start", ErrInvalidPath)
		}
		s := step{g.cells[cur].Symbol, heading.Opposite()}
		exit, ok := exits[s]
		if !ok {
			return nil, &InvalidPathError{Index: cur, Symbol: s.sym, From: s.from}
		}
		g.cells[cur].Side = Loop
		g.tagLaterals(cur, s)
		l.Path = append(l.Path, cur)
		l.turns += turn(heading, exit)

		next, ok := g.Neighbor(cur, exit)
		if !ok {
			return nil, fmt.Errorf("%w: pipe at cell %d leads off the grid", ErrInvalidPath, cur)
		}
		heading = exit
		cur = next
		l.Steps++
	}

	// Close the loop through the start cell using the pipe it must hold.
	from := heading.Opposite()
	sym, ok := pipeJoining(from, first)
	if !ok {
		return nil, fmt.Errorf("%w: loop re-enters the start from the %s, the way it left", ErrInvalidPath, from)
	}
	l.StartSymbol = sym
	g.tagLaterals(start, step{sym, from})
	l.turns += turn(heading, first)
	return l, nil
}

func (g *Grid) tagLaterals(i int, s step) {
	for _, lat := range laterals[s] {
		if n, ok := g.Neighbor(i, lat.dir); ok {
			g.setSide(n, lat.side)
		}
	}
}
