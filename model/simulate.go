package model

import (
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
)

// Outcome is the result of a simulation run.
type Outcome struct {
	// Steps counts rounds including the last one, where nothing moved.
	Steps     int
	Converged bool
}

// Observer is told about every round once it has been applied.
type Observer func(step int, result StepResult)

// Simulate runs rounds until one of them moves nothing. With maxSteps > 0 it
// stops after that many rounds and returns ErrStepLimit if the floor is
// still moving.
func Simulate(f *Floor, maxSteps int, observer Observer) (Outcome, error) {
	var out Outcome
	for {
		result := f.Step()
		out.Steps++
		if observer != nil {
			observer(out.Steps, result)
		}
		if !result.Moved() {
			out.Converged = true
			return out, nil
		}
		if maxSteps > 0 && out.Steps >= maxSteps {
			return out, errors.Wrapf(ErrStepLimit, "still moving after %d steps", out.Steps)
		}
	}
}

// DefaultInput is the floor map shipped with the repository.
const DefaultInput = "data/input.txt"

// Read loads a floor from everything r yields.
func Read(r io.Reader) (*Floor, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read floor")
	}
	return Load(string(data))
}

// LoadFile loads the floor stored at path.
func LoadFile(path string) (*Floor, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open floor %s", path)
	}
	f, err := Load(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "load floor %s", path)
	}
	return f, nil
}
