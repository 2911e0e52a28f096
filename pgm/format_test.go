package pgm_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynpgm/pgm"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]pgm.Format{
		"pgm": pgm.FormatPGM, "PGM": pgm.FormatPGM,
		"yaml": pgm.FormatYAML, " yml ": pgm.FormatYAML,
	} {
		got, err := pgm.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := pgm.ParseFormat("json")
	assert.ErrorIs(t, err, pgm.ErrUnknownFormat)

	assert.Equal(t, "pgm", pgm.FormatPGM.String())
	assert.Equal(t, "yaml", pgm.FormatYAML.String())
	assert.Equal(t, "Format(9)", pgm.Format(9).String())
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	m, err := pgm.Generate(1, 2)
	require.NoError(t, err)

	out, err := pgm.Marshal(m, pgm.FormatPGM)
	require.NoError(t, err)
	assert.Equal(t, m.Bytes(), out)

	_, err = pgm.Marshal(m, pgm.Format(9))
	assert.ErrorIs(t, err, pgm.ErrUnknownFormat)
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, pgm.FileName(1, 2, pgm.FormatPGM))
	require.NoError(t, pgm.WriteFile(path, []byte("first")))
	require.NoError(t, pgm.WriteFile(path, []byte("second")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	// No temporary siblings survive.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFile_Failure(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "out.pgm")
	err := pgm.WriteFile(missing, []byte("x"))
	assert.ErrorIs(t, err, pgm.ErrWrite)
	assert.ErrorIs(t, err, os.ErrNotExist)

	// Target is a directory: the rename fails and the temp file is removed.
	dir := t.TempDir()
	target := filepath.Join(dir, "taken")
	require.NoError(t, os.Mkdir(target, 0o755))
	assert.ErrorIs(t, pgm.WriteFile(target, []byte("x")), pgm.ErrWrite)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
