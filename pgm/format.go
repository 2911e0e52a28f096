// SPDX-License-Identifier: MIT
// Package: dynpgm/pgm
//
// format.go — output format selection and file persistence.

package pgm

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format selects the encoding of a model.
type Format int

const (
	// FormatPGM is the model-description text read by the inference engine.
	FormatPGM Format = iota
	// FormatYAML is the structured dump produced by EncodeYAML.
	FormatYAML
)

// String returns the flag-friendly name of f.
func (f Format) String() string {
	switch f {
	case FormatPGM:
		return "pgm"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string {
	if f == FormatYAML {
		return ".yaml"
	}

	return ".pgm"
}

// ParseFormat maps "pgm" or "yaml"/"yml" (case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pgm":
		return FormatPGM, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
	}
}

// Encode writes m to w in format f.
func Encode(w io.Writer, m *Model, f Format) error {
	switch f {
	case FormatPGM:
		return Render(w, m)
	case FormatYAML:
		return EncodeYAML(w, m)
	default:
		return fmt.Errorf("Encode: %s: %w", f, ErrUnknownFormat)
	}
}

// Marshal is Encode into a fresh buffer.
func Marshal(m *Model, f Format) ([]byte, error) {
	var b bytes.Buffer
	if err := Encode(&b, m, f); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// WriteFile stores data at path without leaving a partial file behind: the
// bytes go to a temporary sibling which is renamed over path once complete.
// Every failure wraps ErrWrite together with the underlying OS error.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("WriteFile(%s): %w: %w", path, ErrWrite, err)
	}
	name := tmp.Name()

	_, err = tmp.Write(data)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(name, 0o644)
	}
	if err == nil {
		err = os.Rename(name, path)
	}
	if err != nil {
		_ = os.Remove(name)

		return fmt.Errorf("WriteFile(%s): %w: %w", path, ErrWrite, err)
	}

	return nil
}
