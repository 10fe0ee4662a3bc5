package model

import (
	"fmt"
	"strings"
)

// Load builds a floor from rows of '.', '>' and 'v', each row ended by a
// line break. Anything after the last line break is ignored.
func Load(text string) (*Floor, error) {
	end := strings.LastIndexByte(text, '\n')
	if end < 0 {
		return nil, &InputError{Reason: "no complete line"}
	}
	lines := strings.Split(text[:end], "\n")

	f := &Floor{
		matrix: make([][]*Cell, 0, len(lines)),
		east:   make([]*Cell, 0),
		south:  make([]*Cell, 0),
	}
	for row, s := range lines {
		s = strings.TrimSuffix(s, "\r")
		line := make([]*Cell, 0, f.width)
		col := 0
		for _, char := range s {
			kind, ok := ParseKind(char)
			if !ok {
				return nil, &InputError{Line: row + 1, Col: col + 1, Reason: fmt.Sprintf("unrecognized character %q", char)}
			}
			cell := &Cell{kind: kind, pos: Coords{X: col, Y: row}, floor: f}
			line = append(line, cell)
			// keep row-major order, phases check markers in this order
			switch kind {
			case East:
				f.east = append(f.east, cell)
			case South:
				f.south = append(f.south, cell)
			}
			col++
		}
		if row == 0 {
			if col == 0 {
				return nil, &InputError{Line: 1, Reason: "empty line"}
			}
			f.width = col
		} else if col != f.width {
			return nil, &InputError{Line: row + 1, Reason: fmt.Sprintf("length %d, want %d", col, f.width)}
		}
		f.matrix = append(f.matrix, line)
	}
	f.height = len(f.matrix)
	return f, nil
}

func (f *Floor) Width() int {
	return f.width
}

func (f *Floor) Height() int {
	return f.height
}

func (f *Floor) wrap(c Coords) Coords {
	x := c.X % f.width
	if x < 0 {
		x += f.width
	}
	y := c.Y % f.height
	if y < 0 {
		y += f.height
	}
	return Coords{X: x, Y: y}
}

// Get returns the cell at c, wrapping both axes.
func (f *Floor) Get(c Coords) *Cell {
	c = f.wrap(c)
	return f.matrix[c.Y][c.X]
}

// Set stores cell at the wrapped c and updates its position. It is the only
// place a cell position changes.
func (f *Floor) Set(c Coords, cell *Cell) {
	c = f.wrap(c)
	f.matrix[c.Y][c.X] = cell
	cell.pos = c
}

// Swap exchanges the slots of a and b.
func (f *Floor) Swap(a, b *Cell) {
	from, to := a.pos, b.pos
	f.Set(to, a)
	f.Set(from, b)
}

// Markers returns the markers of kind in load order.
func (f *Floor) Markers(kind Kind) []*Cell {
	var list []*Cell
	switch kind {
	case East:
		list = f.east
	case South:
		list = f.south
	default:
		return nil
	}
	out := make([]*Cell, len(list))
	copy(out, list)
	return out
}

// Phase moves every marker of kind that can move. Eligibility is decided for
// all markers first, against the same state, and only then are they moved.
func (f *Floor) Phase(kind Kind) []Move {
	var markers []*Cell
	switch kind {
	case East:
		markers = f.east
	case South:
		markers = f.south
	default:
		return nil
	}

	movable := make([]*Cell, 0)
	for _, cell := range markers {
		if cell.CanMove() {
			movable = append(movable, cell)
		}
	}

	moves := make([]Move, 0, len(movable))
	for _, cell := range movable {
		from := cell.pos
		cell.Move()
		moves = append(moves, Move{Kind: kind, From: from, To: cell.pos})
	}
	return moves
}

// MovePhase runs one phase and reports whether anything moved.
func (f *Floor) MovePhase(kind Kind) bool {
	return len(f.Phase(kind)) > 0
}

// Step runs one round: east facing markers, then south facing ones.
func (f *Floor) Step() StepResult {
	east := f.Phase(East)
	south := f.Phase(South)
	return StepResult{East: east, South: south}
}

// Census counts the occupants of every slot.
func (f *Floor) Census() Census {
	var c Census
	for _, line := range f.matrix {
		for _, cell := range line {
			switch cell.kind {
			case East:
				c.East++
			case South:
				c.South++
			default:
				c.Empty++
			}
		}
	}
	return c
}

// Rows renders each row with its input characters.
func (f *Floor) Rows() []string {
	rows := make([]string, 0, f.height)
	var b strings.Builder
	for _, line := range f.matrix {
		b.Reset()
		for _, cell := range line {
			b.WriteRune(cell.kind.Rune())
		}
		rows = append(rows, b.String())
	}
	return rows
}

// Render joins the rows with line breaks, without a trailing one.
func (f *Floor) Render() string {
	return strings.Join(f.Rows(), "\n")
}

func (f *Floor) String() string {
	return f.Render()
}
