package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/seafloor/model"
)

const seafloor = `v...>>.vv>
.vv>>.vv..
>>.>v>...v
>>v>>.>.v.
v>v.vv.v..
>.>>..v...
.vv..>.>v.
v.v..>>v.v
....v..v.>
`

const settled = `..>>v>vv..
..v.>>vv..
..>>v>>vv.
..>>>>>vv.
v......>vv
v>v....>>v
vvv.....>>
>vv......>
.>v.vv.v..`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "seafloor")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(ioutil.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRun(t *testing.T) {
	out, err := execute("run", "-i", writeInput(t, seafloor))
	require.NoError(t, err)
	assert.Equal(t, settled+"\n\nIt took 58 steps for none of the cucumbers to move\n", out)
}

func TestRunStepLimit(t *testing.T) {
	_, err := execute("run", "-i", writeInput(t, seafloor), "--max-steps", "10")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrStepLimit))
}

func TestRunMalformed(t *testing.T) {
	_, err := execute("run", "-i", writeInput(t, ">>\n>\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrMalformedInput))
}

func TestValidate(t *testing.T) {
	out, err := execute("validate", "--input", writeInput(t, seafloor))
	require.NoError(t, err)
	assert.Equal(t, "10x9, 23 east, 26 south\n", out)
}

func TestStep(t *testing.T) {
	path := writeInput(t, "...>...\n.......\n......>\nv.....>\n......>\n.......\n..vvv..\n")
	out, err := execute("step", "2", "-i", path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"After 2 steps:",
		"....v>.",
		"..vv...",
		".>.....",
		"......>",
		"v>.....",
		".......",
		".......",
	}, "\n")+"\n", out)

	out, err = execute("step", "100", "-i", writeInput(t, ">\n"))
	require.NoError(t, err)
	assert.Equal(t, "After 1 steps:\n>\n", out)

	_, err = execute("step", "-i", path, "--", "-3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")

	_, err = execute("step", "many", "-i", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")
}

func TestInputDefault(t *testing.T) {
	flag := newRootCmd().PersistentFlags().Lookup("input")
	require.NotNil(t, flag)
	assert.Equal(t, model.DefaultInput, flag.DefValue)
}
