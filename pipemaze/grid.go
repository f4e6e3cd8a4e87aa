// Package pipemaze solves the 2023 day 10 puzzle: it traces the single
// pipe loop that passes through the start cell and classifies every other
// cell as enclosed by the loop or not.
package pipemaze

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A Symbol is the glyph of one grid cell.
type Symbol byte

const (
	Vertical   Symbol = '|'
	Horizontal Symbol = '-'
	NorthEast  Symbol = 'L'
	NorthWest  Symbol = 'J'
	SouthEast  Symbol = 'F'
	SouthWest  Symbol = '7'
	Ground     Symbol = '.'
	Start      Symbol = 'S'
)

func parseSymbol(r rune) (Symbol, bool) {
	if r >= utf8.RuneSelf {
		return 0, false
	}
	switch s := Symbol(r); s {
	case Vertical, Horizontal, NorthEast, NorthWest, SouthEast, SouthWest, Ground, Start:
		return s, true
	}
	return 0, false
}

func (s Symbol) String() string { return string(rune(s)) }

// connects reports whether s has a connector pointing in direction d.
func (s Symbol) connects(d Direction) bool {
	c, ok := connectors[s]
	return ok && (c[0] == d || c[1] == d)
}

// connectors lists the two directions each pipe joins.
var connectors = map[Symbol][2]Direction{
	Vertical:   {North, South},
	Horizontal: {East, West},
	NorthEast:  {North, East},
	NorthWest:  {North, West},
	SouthEast:  {South, East},
	SouthWest:  {South, West},
}

// pipeJoining returns the pipe whose connectors are d0 and d1.
func pipeJoining(d0, d1 Direction) (Symbol, bool) {
	for s, c := range connectors {
		if (c[0] == d0 && c[1] == d1) || (c[0] == d1 && c[1] == d0) {
			return s, true
		}
	}
	return 0, false
}

// A Side records where a cell lies relative to the loop's direction of
// travel.
type Side uint8

const (
	Unknown Side = iota
	Loop
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case Loop:
		return "loop"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Side(%d)", uint8(s))
}

// other returns the opposite side of Left or Right.
func (s Side) other() Side {
	switch s {
	case Left:
		return Right
	case Right:
		return Left
	}
	return s
}

type Cell struct {
	Symbol Symbol
	Side   Side
}

// A Grid is a rectangular pipe map stored row by row.
// len(cells) is always a multiple of width.
type Grid struct {
	cells []Cell
	width int
}

// Parse reads a pipe map, one row per line. All whitespace is dropped
// before the row width is computed, so indented fixtures parse the same as
// flush ones.
func Parse(input string) (*Grid, error) {
	g := new(Grid)
	for n, line := range strings.Split(input, "\n") {
		row := 0
		for col, r := range []rune(line) {
			if unicode.IsSpace(r) {
				continue
			}
			s, ok := parseSymbol(r)
			if !ok {
				return nil, &InvalidSymbolError{Char: r, Line: n + 1, Col: col + 1}
			}
			g.cells = append(g.cells, Cell{Symbol: s})
			row++
		}
		if row == 0 {
			continue
		}
		if g.width == 0 {
			g.width = row
		}
		if row != g.width {
			return nil, fmt.Errorf("%w: line %d has %d cells; want %d", ErrRagged, n+1, row, g.width)
		}
	}
	if g.width == 0 {
		return nil, ErrEmptyInput
	}
	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return len(g.cells) / g.width }
func (g *Grid) Len() int    { return len(g.cells) }

func (g *Grid) At(i int) Cell { return g.cells[i] }

func (g *Grid) Row(i int) int { return i / g.width }
func (g *Grid) Col(i int) int { return i % g.width }

func (g *Grid) Index(row, col int) int { return row*g.width + col }

// Neighbor returns the index of the cell next to i in direction d. It
// reports false if that would step off the grid, including wrapping around
// a row end.
func (g *Grid) Neighbor(i int, d Direction) (int, bool) {
	switch d {
	case North:
		i -= g.width
	case South:
		i += g.width
	case East:
		if g.Col(i) == g.width-1 {
			return 0, false
		}
		i++
	case West:
		if g.Col(i) == 0 {
			return 0, false
		}
		i--
	default:
		return 0, false
	}
	if i < 0 || i >= len(g.cells) {
		return 0, false
	}
	return i, true
}

// onBoundary reports whether i is in the first or last row or column.
func (g *Grid) onBoundary(i int) bool {
	row, col := g.Row(i), g.Col(i)
	return row == 0 || row == g.Height()-1 || col == 0 || col == g.width-1
}

// Count returns the number of cells tagged with side s.
func (g *Grid) Count(s Side) int {
	var n int
	for _, c := range g.cells {
		if c.Side == s {
			n++
		}
	}
	return n
}

// setSide tags i with s unless i is already part of the loop.
func (g *Grid) setSide(i int, s Side) {
	if g.cells[i].Side == Loop {
		return
	}
	g.cells[i].Side = s
}

func (g *Grid) clearSides() {
	for i := range g.cells {
		g.cells[i].Side = Unknown
	}
}

// String renders the grid's symbols.
func (g *Grid) String() string {
	var b strings.Builder
	for i, c := range g.cells {
		b.WriteByte(byte(c.Symbol))
		if g.Col(i) == g.width-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

var sideGlyphs = [...]byte{Unknown: '?', Loop: '*', Left: 'L', Right: 'R'}

// SideString renders the grid's side tags, one glyph per cell:
// ? unknown, * loop, L left, R right.
func (g *Grid) SideString() string {
	var b strings.Builder
	for i, c := range g.cells {
		b.WriteByte(sideGlyphs[c.Side])
		if g.Col(i) == g.width-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
