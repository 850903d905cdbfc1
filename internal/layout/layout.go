// Package layout sizes scanned cells and packs them into fixed-height
// columns for the panel window.
package layout

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/devmarvs/filedock/internal/scanner"
)

// Params are the pixel and character tunables the layout works with.
type Params struct {
	WindowHeight  int
	ShortButton   int
	TallButton    int
	Spacing       int
	TextWrapWidth int
}

// ErrWindowTooShort indicates the configured window height cannot hold the
// panel's four control buttons.
var ErrWindowTooShort = errors.New("window height too short")

// ControlRows is the number of fixed control buttons stacked on top of the
// first column. MakeColumns reserves their space; the GUI adds the buttons.
const ControlRows = 4

// ReservedHeight is the space held back from the first column for the
// control buttons.
func (p Params) ReservedHeight() int {
	return ControlRows * (p.ShortButton + p.Spacing)
}

// Wrap inserts a line break at the midpoint of text when it is longer than
// width characters. For odd lengths the first line gets the extra
// character. Text at or below width is returned unchanged.
func Wrap(text string, width int) string {
	runes := []rune(text)
	n := len(runes)
	if n <= width {
		return text
	}
	index := n / 2
	if n%2 == 1 {
		index++
	}
	return string(runes[:index]) + "\n" + string(runes[index:])
}

// ComputeHeights wraps each cell's display text and assigns its height
// class: one line is short, two lines tall. Labels wrap their own title,
// file cells wrap the target's base name. The input cells are not mutated.
func ComputeHeights(cells []scanner.Cell, p Params) []scanner.Cell {
	sized := make([]scanner.Cell, 0, len(cells))
	for _, cell := range cells {
		text := cell.Title
		if !cell.IsLabel() {
			text = filepath.Base(cell.Target)
		}
		text = Wrap(text, p.TextWrapWidth)

		height := p.ShortButton
		if strings.Contains(text, "\n") {
			height = p.TallButton
		}
		sized = append(sized, scanner.Cell{Title: text, Target: cell.Target, Height: height})
	}
	return sized
}

// MakeColumns greedily distributes the sized cells into columns of the
// configured window height, preserving input order. The first column's
// capacity is reduced by the control button reservation. A cell taller
// than a whole column still gets a column of its own.
func MakeColumns(cells []scanner.Cell, p Params) ([][]scanner.Cell, error) {
	if p.WindowHeight < p.ReservedHeight() {
		return nil, fmt.Errorf("%w: %d px cannot hold %d control buttons",
			ErrWindowTooShort, p.WindowHeight, ControlRows)
	}

	var columns [][]scanner.Cell
	var column []scanner.Cell
	capacity := p.WindowHeight - p.ReservedHeight()

	for _, cell := range cells {
		required := cell.Height + p.Spacing
		if required <= capacity {
			column = append(column, cell)
			capacity -= required
			continue
		}
		// Close the current column, even when empty: an empty first
		// column still carries the control buttons.
		columns = append(columns, column)
		column = []scanner.Cell{cell}
		capacity = p.WindowHeight - required
	}
	if len(column) > 0 {
		columns = append(columns, column)
	}
	return columns, nil
}
