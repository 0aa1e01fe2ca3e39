// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// recorder captures Fatalf calls instead of stopping the test.
type recorder struct {
	failed  bool
	message string
}

func (r *recorder) Helper() {}

func (r *recorder) Fatalf(format string, args ...any) {
	r.failed = true
	r.message = fmt.Sprintf(format, args...)
}

func TestRequireBytesEqual(t *testing.T) {
	var r recorder
	RequireBytes(&r, []byte{1, 2, 3}, []byte{1, 2, 3}, "same")
	if r.failed {
		t.Errorf("RequireBytes failed on equal input: %s", r.message)
	}

	RequireBytes(&r, nil, []byte{}, "nil and empty")
	if r.failed {
		t.Errorf("RequireBytes failed on nil vs empty: %s", r.message)
	}
}

func TestRequireBytesReportsOffset(t *testing.T) {
	var r recorder
	RequireBytes(&r, []byte{0x12, 0x34}, []byte{0x12, 0x35}, "byte %d", 1)
	if !r.failed {
		t.Fatal("RequireBytes passed on different input")
	}
	if !strings.Contains(r.message, "byte 1") || !strings.Contains(r.message, "offset 1") {
		t.Errorf("message %q should name the caller message and offset 1", r.message)
	}
}

func TestRequireBytesReportsLength(t *testing.T) {
	var r recorder
	RequireBytes(&r, []byte{1}, []byte{1, 2}, "short")
	if !r.failed || !strings.Contains(r.message, "length 1, want 2") {
		t.Errorf("RequireBytes message = %q, want a length mismatch", r.message)
	}
}

func TestRequireBytesLongerThanWant(t *testing.T) {
	var r recorder
	RequireBytes(&r, []byte{1, 2}, []byte{1}, "long")
	if !r.failed || !strings.Contains(r.message, "length 2, want 1") {
		t.Errorf("RequireBytes message = %q, want a length mismatch", r.message)
	}
}

func TestRequireErrorIs(t *testing.T) {
	sentinel := errors.New("sentinel")

	var r recorder
	RequireErrorIs(&r, fmt.Errorf("wrapped: %w", sentinel), sentinel, "wrapped")
	if r.failed {
		t.Errorf("RequireErrorIs failed on wrapped sentinel: %s", r.message)
	}

	r = recorder{}
	RequireErrorIs(&r, nil, sentinel, "nil error")
	if !r.failed || !strings.Contains(r.message, "got nil error") {
		t.Errorf("RequireErrorIs(nil) message = %q", r.message)
	}

	r = recorder{}
	RequireErrorIs(&r, errors.New("other"), sentinel)
	if !r.failed || !strings.Contains(r.message, "(no message)") {
		t.Errorf("RequireErrorIs(other) message = %q", r.message)
	}
}

func TestRequireNoError(t *testing.T) {
	var r recorder
	RequireNoError(&r, nil, "nil")
	if r.failed {
		t.Error("RequireNoError failed on nil")
	}
	RequireNoError(&r, errors.New("boom"), "step %s", "load")
	if !r.failed || r.message != "step load: boom" {
		t.Errorf("RequireNoError message = %q", r.message)
	}
}
