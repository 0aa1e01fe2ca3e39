// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package coerce

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInputKind reports a value outside the [Input] union.
	ErrInvalidInputKind = errors.New("coerce: invalid input kind")

	// ErrOutOfBounds reports a view access past the end of the view.
	// Accessors return a [*BoundsError] that matches it with errors.Is.
	ErrOutOfBounds = errors.New("coerce: access out of bounds")

	// ErrUnsupportedLayout reports a width/kind pair [Assemble] cannot
	// produce, such as a 4-byte wide integer.
	ErrUnsupportedLayout = errors.New("coerce: unsupported element layout")
)

// BoundsError describes a rejected view access.
type BoundsError struct {
	// Op names the accessor, e.g. "Uint16" or "SetFloat64".
	Op string

	// Offset is the requested byte offset relative to the view.
	Offset int

	// Width is the number of bytes the access needed.
	Width int

	// Length is the view's byte length.
	Length int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("coerce: %s at offset %d needs %d bytes, view has %d",
		e.Op, e.Offset, e.Width, e.Length)
}

// Unwrap makes errors.Is(err, ErrOutOfBounds) hold.
func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}
