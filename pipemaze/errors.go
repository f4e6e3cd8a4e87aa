package pipemaze

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput     = errors.New("pipemaze: empty input")
	ErrInvalidSymbol  = errors.New("pipemaze: invalid pipe symbol")
	ErrRagged         = errors.New("pipemaze: rows have different widths")
	ErrNoStart        = errors.New("pipemaze: no start cell found")
	ErrMultipleStarts = errors.New("pipemaze: more than one start cell")
	ErrNoPath         = errors.New("pipemaze: fewer than two pipes connect to the start cell")
	ErrInvalidPath    = errors.New("pipemaze: invalid path taken")
	ErrUnresolved     = errors.New("pipemaze: cell side could not be resolved")
)

// InvalidSymbolError reports a character that is not a pipe glyph.
type InvalidSymbolError struct {
	Char rune
	Line int // 1-based
	Col  int // 1-based, in runes
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("pipemaze: invalid pipe symbol %q at %d:%d", e.Char, e.Line, e.Col)
}

func (e *InvalidSymbolError) Is(target error) bool { return target == ErrInvalidSymbol }

// InvalidPathError reports a trace step that entered a cell from a side
// the cell's symbol doesn't connect to, or that left the grid.
type InvalidPathError struct {
	Index  int
	Symbol Symbol
	From   Direction
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("pipemaze: invalid path taken: entered %q at cell %d from the %s", e.Symbol, e.Index, e.From)
}

func (e *InvalidPathError) Is(target error) bool { return target == ErrInvalidPath }
