package model

import "fmt"

// Kind tells what occupies a cell. Markers never change kind.
type Kind byte

const (
	Empty Kind = '.'
	East  Kind = '>'
	South Kind = 'v'
)

// ParseKind maps an input character to its Kind.
func ParseKind(r rune) (Kind, bool) {
	switch r {
	case '.', '>', 'v':
		return Kind(r), true
	}
	return 0, false
}

func (k Kind) Rune() rune {
	return rune(k)
}

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case East:
		return "east"
	case South:
		return "south"
	default:
		return fmt.Sprintf("n/a:%q", byte(k))
	}
}

// Coords is a column (X) and row (Y) pair.
type Coords struct {
	X, Y int
}

// Cell is one occupant of the floor. Its position always matches the slot
// the owning Floor keeps it under.
type Cell struct {
	kind  Kind
	pos   Coords
	floor *Floor
}

// Floor is the toroidal grid of cells.
type Floor struct {
	width, height int
	// matrix is indexed [row][col]
	matrix [][]*Cell
	east   []*Cell
	south  []*Cell
}

type Census struct {
	East, South, Empty int
}

func (c Census) Total() int {
	return c.East + c.South + c.Empty
}

// Move records one marker relocation within a phase.
type Move struct {
	Kind     Kind
	From, To Coords
}

// StepResult holds the moves of one round, east phase first.
type StepResult struct {
	East  []Move
	South []Move
}

func (r StepResult) Moved() bool {
	return len(r.East) > 0 || len(r.South) > 0
}
