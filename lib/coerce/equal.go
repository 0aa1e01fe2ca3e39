// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package coerce

import "bytes"

// Equal reports whether a and b hold the same bytes. Both are viewed
// with [ToView]; views of different lengths are unequal without any
// byte comparison.
func Equal(a, b Input) bool {
	left, right := ToView(a), ToView(b)
	if left.ByteLength() != right.ByteLength() {
		return false
	}
	return bytes.Equal(left.Bytes(), right.Bytes())
}

// EqualAny is [Equal] for values of unknown type. It fails with
// [ErrInvalidInputKind] when either value cannot be viewed (see [ViewOf]).
func EqualAny(a, b any) (bool, error) {
	left, err := ViewOf(a)
	if err != nil {
		return false, err
	}
	right, err := ViewOf(b)
	if err != nil {
		return false, err
	}
	return Equal(left, right), nil
}
