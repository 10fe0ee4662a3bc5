package model

// Slide is a marker being drawn while it moves into (Col, Row). Progress
// goes from 0 to 1.
type Slide struct {
	Kind     Kind
	Col, Row int
	Progress float64
}

// Position interpolates the on-screen cell of the marker. A marker leaving
// over an edge slides in from outside the opposite one.
func (s *Slide) Position() (float64, float64) {
	var dc, dr float64
	switch s.Kind {
	case East:
		dc = 1
	case South:
		dr = 1
	}
	back := 1 - s.Progress
	return float64(s.Col) - dc*back, float64(s.Row) - dr*back
}

// Replay is the viewer's copy of a floor, rebuilt from server messages.
type Replay struct {
	Width, Height int
	Board         Board
	Step          int
	Moving        []*Slide
}

// Advance applies a frame to the board and returns the slides to animate,
// east moves first.
func (r *Replay) Advance(fr Frame) []*Slide {
	r.Step = fr.Step
	r.Board.ApplyFrame(fr)
	moving := make([]*Slide, 0, len(fr.East)+len(fr.South))
	for _, moves := range [][]Move{fr.East, fr.South} {
		for _, mv := range moves {
			moving = append(moving, &Slide{
				Kind: mv.Kind,
				Col:  mv.To.X,
				Row:  mv.To.Y,
			})
		}
	}
	r.Moving = moving
	return moving
}

// IsMoving reports whether the cell is drawn by a slide.
func (r *Replay) IsMoving(col, row int) bool {
	for _, s := range r.Moving {
		if s.Col == col && s.Row == row {
			return true
		}
	}
	return false
}
