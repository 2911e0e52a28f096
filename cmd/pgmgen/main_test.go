package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynpgm/builder"
	"github.com/katalvlaran/dynpgm/internal/logging"
	"github.com/katalvlaran/dynpgm/pgm"
)

// execute runs a fresh root command and returns what it printed to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if args == nil {
		args = []string{} // nil would make cobra fall back to os.Args
	}
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestGenerate_WritesFile(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "--out-dir", dir, "2", "3")
	require.NoError(t, err)

	path := filepath.Join(dir, "dynamic_2_query_3.pgm")
	assert.Equal(t, "wrote to "+path+"\n", out)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	m, err := pgm.Generate(2, 3)
	require.NoError(t, err)
	assert.Equal(t, m.Bytes(), got)
}

func TestGenerate_Usage(t *testing.T) {
	out, err := execute(t, "3")
	require.NoError(t, err)
	assert.Equal(t, usageLine+"\n", out)

	out, err = execute(t)
	require.NoError(t, err)
	assert.Equal(t, usageLine+"\n", out)
}

func TestGenerate_Stdout(t *testing.T) {
	out, err := execute(t, "--stdout", "1", "2")
	require.NoError(t, err)
	m, err := pgm.Generate(1, 2)
	require.NoError(t, err)
	assert.Equal(t, m.String(), out)

	out, err = execute(t, "--stdout", "--format", "yaml", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "name: dynamic_1\n")
}

func TestGenerate_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "--out-dir", dir, "x", "2")
	assert.ErrorContains(t, err, "n must be an integer")

	_, err = execute(t, "--out-dir", dir, "--", "-1", "2")
	assert.ErrorIs(t, err, builder.ErrInvalidHorizon)

	_, err = execute(t, "--out-dir", dir, "3", "1")
	assert.ErrorIs(t, err, builder.ErrInvalidComplexity)

	_, err = execute(t, "--out-dir", dir, "1", "5")
	assert.ErrorIs(t, err, builder.ErrOutOfRange)

	_, err = execute(t, "--out-dir", dir, "1", "2", "3")
	assert.Error(t, err)

	_, err = execute(t, "--out-dir", dir, "--format", "json", "1", "2")
	assert.ErrorIs(t, err, pgm.ErrUnknownFormat)

	_, err = execute(t, "--out-dir", dir, "--log-level", "loud", "1", "2")
	assert.Error(t, err)

	// Rejected input leaves nothing behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerate_MissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "models")

	_, err := execute(t, "--out-dir", dir, "1", "2")
	assert.ErrorIs(t, err, pgm.ErrWrite)

	_, err = execute(t, "--out-dir", dir, "--mkdir", "1", "2")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "dynamic_1_query_2.pgm"))
}

func TestSweep(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "sweep", "--out-dir", dir,
		"--max-horizon", "2", "--max-complexity", "3", "--jobs", "2")
	require.NoError(t, err)

	want := []string{
		"dynamic_0_query_2.pgm",
		"dynamic_1_query_2.pgm", "dynamic_1_query_3.pgm",
		"dynamic_2_query_2.pgm", "dynamic_2_query_3.pgm",
	}
	var lines string
	for _, name := range want {
		assert.FileExists(t, filepath.Join(dir, name))
		lines += "wrote to " + filepath.Join(dir, name) + "\n"
	}
	assert.Equal(t, lines, out)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, len(want))
}

func TestSweep_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "sweep", "--out-dir", dir, "--max-horizon", "2")
	assert.Error(t, err)

	_, err = execute(t, "sweep", "--out-dir", dir, "--max-horizon", "2", "--max-complexity", "3", "--min-complexity", "1")
	assert.ErrorIs(t, err, builder.ErrInvalidComplexity)

	_, err = execute(t, "sweep", "--out-dir", filepath.Join(dir, "missing"), "--max-horizon", "1", "--max-complexity", "2")
	assert.ErrorIs(t, err, pgm.ErrWrite)
}

func TestPlanSweep(t *testing.T) {
	jobs, err := planSweep(sweepFlags{minHorizon: 1, maxHorizon: 1, minComplexity: 2, maxComplexity: 9, jobs: 1})
	require.NoError(t, err)
	assert.Equal(t, []sweepJob{{n: 1, j: 2}, {n: 1, j: 3}}, jobs)

	_, err = planSweep(sweepFlags{minHorizon: 3, maxHorizon: 1, minComplexity: 2, maxComplexity: 2, jobs: 1})
	assert.ErrorIs(t, err, builder.ErrInvalidHorizon)

	_, err = planSweep(sweepFlags{maxHorizon: 1, minComplexity: 2, maxComplexity: 2})
	assert.ErrorIs(t, err, errSweepRange)
}

func TestRunSweep_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := &outputFlags{outDir: t.TempDir()}
	_, err := runSweep(ctx, logging.NewNop(), out, pgm.FormatPGM, []sweepJob{{n: 0, j: 2}}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "pgmgen version 0.1.0\n", out)
}
