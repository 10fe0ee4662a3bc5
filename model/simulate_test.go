package model

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seafloor = []string{
	"v...>>.vv>",
	".vv>>.vv..",
	">>.>v>...v",
	">>v>>.>.v.",
	"v>v.vv.v..",
	">.>>..v...",
	".vv..>.>v.",
	"v.v..>>v.v",
	"....v..v.>",
}

var settled = []string{
	"..>>v>vv..",
	"..v.>>vv..",
	"..>>v>>vv.",
	"..>>>>>vv.",
	"v......>vv",
	"v>v....>>v",
	"vvv.....>>",
	">vv......>",
	".>v.vv.v..",
}

var wrapping = []string{
	"...>...",
	".......",
	"......>",
	"v.....>",
	"......>",
	".......",
	"..vvv..",
}

func TestSimulateSettles(t *testing.T) {
	f := mustLoad(t, seafloor...)
	out, err := Simulate(f, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, Outcome{Steps: 58, Converged: true}, out)
	assert.Equal(t, strings.Join(settled, "\n"), f.Render())
}

func TestSimulateFirstStep(t *testing.T) {
	f := mustLoad(t, seafloor...)
	r := f.Step()
	assert.True(t, r.Moved())
	assert.Equal(t, strings.Join([]string{
		"....>.>v.>",
		"v.v>.>v.v.",
		">v>>..>v..",
		">>v>v>.>.v",
		".>v.v...v.",
		"v>>.>vvv..",
		"..v...>>..",
		"vv...>>vv.",
		">.v.v..v.v",
	}, "\n"), f.Render())
}

func TestWrappingSteps(t *testing.T) {
	f := mustLoad(t, wrapping...)
	want := [][]string{
		{"..vv>..", ".......", ">......", "v.....>", ">......", ".......", "....v.."},
		{"....v>.", "..vv...", ".>.....", "......>", "v>.....", ".......", "......."},
		{"......>", "..v.v..", "..>v...", ">......", "..>....", "v......", "......."},
		{">......", "..v....", "..>.v..", ".>.v...", "...>...", ".......", "v......"},
	}
	for i, rows := range want {
		assert.True(t, f.Step().Moved())
		assert.Equal(t, strings.Join(rows, "\n"), f.Render(), "step %d", i+1)
	}
}

func TestSimulateStepLimit(t *testing.T) {
	// this floor cycles forever
	f := mustLoad(t, wrapping...)
	out, err := Simulate(f, 20, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStepLimit))
	assert.Equal(t, Outcome{Steps: 20}, out)
}

func TestSimulateConservesPopulation(t *testing.T) {
	f := mustLoad(t, seafloor...)
	before := f.Census()
	require.Equal(t, f.Width()*f.Height(), before.Total())

	kinds := map[*Cell]Kind{}
	for _, c := range append(f.Markers(East), f.Markers(South)...) {
		kinds[c] = c.Kind()
	}

	steps := 0
	_, err := Simulate(f, 0, func(step int, r StepResult) {
		steps++
		assert.Equal(t, steps, step)
		assert.Equal(t, before, f.Census(), "step %d", step)
		for c, k := range kinds {
			assert.Equal(t, k, c.Kind())
			assert.Same(t, c, f.Get(c.Position()))
		}
	})
	require.NoError(t, err)
	assert.Equal(t, 58, steps)
}

func TestSettledStaysSettled(t *testing.T) {
	f := mustLoad(t, settled...)
	assert.False(t, f.MovePhase(East))
	assert.False(t, f.MovePhase(South))
	assert.False(t, f.MovePhase(East))
	assert.False(t, f.Step().Moved())
	assert.Equal(t, strings.Join(settled, "\n"), f.Render())
}

func TestSimulateEmptyFloor(t *testing.T) {
	f := mustLoad(t, "...", "...")
	out, err := Simulate(f, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, Outcome{Steps: 1, Converged: true}, out)
}

func TestRead(t *testing.T) {
	f, err := Read(strings.NewReader(">.\n.v\n"))
	require.NoError(t, err)
	assert.Equal(t, ">.\n.v", f.Render())
}

func TestLoadFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "seafloor")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "input.txt")
	require.NoError(t, ioutil.WriteFile(path, []byte(strings.Join(seafloor, "\n")+"\n"), 0644))
	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 10, f.Width())
	assert.Equal(t, 9, f.Height())

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, ioutil.WriteFile(bad, []byte(">x\n"), 0644))
	_, err = LoadFile(bad)
	assert.True(t, errors.Is(err, ErrMalformedInput))
	assert.Contains(t, err.Error(), bad)

	_, err = LoadFile(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrMalformedInput))
}
