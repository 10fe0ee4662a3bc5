package model

func (c *Cell) Kind() Kind {
	return c.kind
}

func (c *Cell) Position() Coords {
	return c.pos
}

// ahead returns the cell the marker faces, or the cell itself when empty.
func (c *Cell) ahead() *Cell {
	switch c.kind {
	case East:
		return c.floor.Get(Coords{X: c.pos.X + 1, Y: c.pos.Y})
	case South:
		return c.floor.Get(Coords{X: c.pos.X, Y: c.pos.Y + 1})
	}
	return c
}

// CanMove reports whether the cell in front of the marker is empty.
// On a one cell wide axis the marker faces itself and cannot move.
func (c *Cell) CanMove() bool {
	if c.kind == Empty {
		return false
	}
	return c.ahead().kind == Empty
}

// Move swaps the marker with the cell in front of it. It does not check
// CanMove again; the phase that calls it already did against the same state.
func (c *Cell) Move() bool {
	if c.kind == Empty {
		return false
	}
	c.floor.Swap(c, c.ahead())
	return true
}
