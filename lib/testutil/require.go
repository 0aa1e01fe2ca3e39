// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// TB is the subset of testing.TB the helpers need.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

// RequireBytes fails the test unless got and want hold the same bytes.
// A nil slice and an empty slice are equal.
//
//	testutil.RequireBytes(t, view.Bytes(), []byte{0x12, 0x34}, "after SetUint16")
func RequireBytes(t TB, got, want []byte, msgAndArgs ...any) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: length %d, want %d\n  got:  %s\n  want: %s",
			formatMessage(msgAndArgs), len(got), len(want), hex.EncodeToString(got), hex.EncodeToString(want))
		return
	}
	for index := range got {
		if got[index] != want[index] {
			t.Fatalf("%s: first difference at offset %d (0x%02x, want 0x%02x)\n  got:  %s\n  want: %s",
				formatMessage(msgAndArgs), index, got[index], want[index], hex.EncodeToString(got), hex.EncodeToString(want))
			return
		}
	}
}

// RequireErrorIs fails the test unless errors.Is(err, target).
//
//	_, err := view.Uint32(6, nil)
//	testutil.RequireErrorIs(t, err, coerce.ErrOutOfBounds, "read past end")
func RequireErrorIs(t TB, err, target error, msgAndArgs ...any) {
	t.Helper()
	if err == nil {
		t.Fatalf("%s: got nil error, want %v", formatMessage(msgAndArgs), target)
		return
	}
	if !errors.Is(err, target) {
		t.Fatalf("%s: got error %v, want %v", formatMessage(msgAndArgs), err, target)
	}
}

// RequireNoError fails the test if err is non-nil.
func RequireNoError(t TB, err error, msgAndArgs ...any) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: %v", formatMessage(msgAndArgs), err)
	}
}

// formatMessage formats optional message arguments into a string.
// Accepts either a single string or a format string followed by args.
func formatMessage(msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return "(no message)"
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs)
}
