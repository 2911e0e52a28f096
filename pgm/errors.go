// SPDX-License-Identifier: MIT
// Package: dynpgm/pgm
//
// errors.go — sentinel errors for the pgm package.

package pgm

import "errors"

var (
	// ErrNilModel is returned when a nil *Model is rendered or encoded.
	ErrNilModel = errors.New("pgm: model is nil")

	// ErrUnresolvedQuery indicates a query reference with no matching variable.
	ErrUnresolvedQuery = errors.New("pgm: query references undeclared variable")

	// ErrUnknownFormat indicates an unsupported output format name.
	ErrUnknownFormat = errors.New("pgm: unknown format")

	// ErrWrite wraps any failure to persist a rendered model.
	ErrWrite = errors.New("pgm: write failed")
)
