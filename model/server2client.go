package model

// ServerMessage is one gob frame sent to the viewer. Exactly one of the
// slices carries data, the others stay empty.
type ServerMessage struct {
	Setup     []Setup
	Frames    []Frame
	Converged []Converged
}

type Setup struct {
	Width, Height int
	Rows          []string
}

// Frame carries the moves of a round that moved something.
type Frame struct {
	Step  int
	East  []Move
	South []Move
}

type Converged struct {
	Steps int
	Rows  []string
}

const (
	CMD_PAUSE = iota + 1
	CMD_RESUME
	CMD_RESTART
)

type ClientMessage struct {
	Command int
}

func SetupMessage(f *Floor) ServerMessage {
	return ServerMessage{Setup: []Setup{{
		Width:  f.Width(),
		Height: f.Height(),
		Rows:   f.Rows(),
	}}}
}

func FrameMessage(step int, r StepResult) ServerMessage {
	return ServerMessage{Frames: []Frame{{Step: step, East: r.East, South: r.South}}}
}

func ConvergedMessage(f *Floor, steps int) ServerMessage {
	return ServerMessage{Converged: []Converged{{Steps: steps, Rows: f.Rows()}}}
}

// Board is the client side copy of a floor, rebuilt from messages.
type Board [][]Kind

func NewBoard(rows []string) Board {
	b := make(Board, 0, len(rows))
	for _, row := range rows {
		line := make([]Kind, 0, len(row))
		for _, char := range row {
			line = append(line, Kind(char))
		}
		b = append(b, line)
	}
	return b
}

// Apply replays the moves of one phase in order.
func (b Board) Apply(moves []Move) {
	for _, m := range moves {
		b[m.From.Y][m.From.X] = Empty
		b[m.To.Y][m.To.X] = m.Kind
	}
}

// ApplyFrame replays a whole round, east phase first.
func (b Board) ApplyFrame(fr Frame) {
	b.Apply(fr.East)
	b.Apply(fr.South)
}

func (b Board) Rows() []string {
	rows := make([]string, 0, len(b))
	for _, line := range b {
		row := make([]byte, len(line))
		for i, k := range line {
			row[i] = byte(k)
		}
		rows = append(rows, string(row))
	}
	return rows
}
