// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package coerce

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/bureau-foundation/bytecoerce/cmd/bytecoerce/cli"
	"github.com/bureau-foundation/bytecoerce/lib/binhash"
	"github.com/bureau-foundation/bytecoerce/lib/testutil"
)

func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()
	var exitError *cli.ExitError
	if !errors.As(err, &exitError) {
		t.Fatalf("error = %v, want ExitError", err)
	}
	if exitError.Code != code {
		t.Fatalf("exit code = %d, want %d", exitError.Code, code)
	}
}

func TestFirstDifference(t *testing.T) {
	tests := []struct {
		name        string
		left, right string
		want        int
	}{
		{"equal", "abc", "abc", -1},
		{"both empty", "", "", -1},
		{"first byte", "abc", "xbc", 0},
		{"middle", "abc", "axc", 1},
		{"prefix", "ab", "abc", 2},
		{"empty against content", "", "a", 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := firstDifference([]byte(test.left), []byte(test.right)); got != test.want {
				t.Errorf("firstDifference(%q, %q) = %d, want %d", test.left, test.right, got, test.want)
			}
		})
	}
}

func TestRunEqual(t *testing.T) {
	isolateConfig(t)
	left := writeTempFile(t, "left.bin", []byte("abc"))
	same := writeTempFile(t, "same.bin", []byte("abc"))
	changed := writeTempFile(t, "changed.bin", []byte("axc"))
	longer := writeTempFile(t, "longer.bin", []byte("abcd"))

	var stdout bytes.Buffer
	err := runEqual(&equalParams{}, []string{left, same}, strings.NewReader(""), &stdout, discardLogger())
	testutil.RequireNoError(t, err, "runEqual equal")
	if !strings.Contains(stdout.String(), "are equal (3 bytes)") {
		t.Errorf("output = %q", stdout.String())
	}

	stdout.Reset()
	err = runEqual(&equalParams{}, []string{left, changed}, strings.NewReader(""), &stdout, discardLogger())
	requireExitCode(t, err, 1)
	if !strings.Contains(stdout.String(), "differ at byte 1") {
		t.Errorf("output = %q", stdout.String())
	}

	stdout.Reset()
	err = runEqual(&equalParams{}, []string{left, longer}, strings.NewReader(""), &stdout, discardLogger())
	requireExitCode(t, err, 1)
	if !strings.Contains(stdout.String(), "lengths 3 and 4, first difference at byte 3") {
		t.Errorf("output = %q", stdout.String())
	}
}

func TestRunEqualStdin(t *testing.T) {
	isolateConfig(t)
	path := writeTempFile(t, "expected.bin", helloWorld)

	var stdout bytes.Buffer
	err := runEqual(&equalParams{}, []string{"-", path}, bytes.NewReader(helloWorld), &stdout, discardLogger())
	testutil.RequireNoError(t, err, "runEqual")

	err = runEqual(&equalParams{}, []string{path, "-"}, strings.NewReader("Hello world?"), &stdout, discardLogger())
	requireExitCode(t, err, 1)
}

func TestRunEqualQuiet(t *testing.T) {
	isolateConfig(t)
	left := writeTempFile(t, "left.bin", []byte{1})
	right := writeTempFile(t, "right.bin", []byte{2})

	var stdout bytes.Buffer
	err := runEqual(&equalParams{Quiet: true}, []string{left, right}, strings.NewReader(""), &stdout, discardLogger())
	requireExitCode(t, err, 1)
	if stdout.Len() != 0 {
		t.Errorf("quiet output = %q, want nothing", stdout.String())
	}
}

func TestRunEqualJSON(t *testing.T) {
	isolateConfig(t)
	left := writeTempFile(t, "left.bin", helloWorld)
	right := writeTempFile(t, "right.bin", []byte("Hello"))

	params := equalParams{commonParams: commonParams{Output: cli.Output{Format: cli.FormatJSON}}}
	var stdout bytes.Buffer
	err := runEqual(&params, []string{left, right}, strings.NewReader(""), &stdout, discardLogger())
	requireExitCode(t, err, 1)

	var result equalResult
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if result.Equal || result.FirstDifference != 5 {
		t.Errorf("result = %+v, want unequal at 5", result)
	}
	if result.Left.Length != 12 || result.Right.Length != 5 {
		t.Errorf("lengths = %d, %d", result.Left.Length, result.Right.Length)
	}
	if result.Left.Digest != binhash.SumBytes(helloWorld).String() {
		t.Errorf("left digest = %s", result.Left.Digest)
	}
	if result.Right.Digest != binhash.SumBytes([]byte("Hello")).String() {
		t.Errorf("right digest = %s", result.Right.Digest)
	}
}

func TestRunEqualErrors(t *testing.T) {
	isolateConfig(t)
	path := writeTempFile(t, "one.bin", []byte{1})

	tests := []struct {
		name     string
		args     []string
		category cli.ErrorCategory
	}{
		{"one argument", []string{path}, cli.CategoryValidation},
		{"three arguments", []string{path, path, path}, cli.CategoryValidation},
		{"stdin twice", []string{"-", "-"}, cli.CategoryValidation},
		{"missing file", []string{path, "/nonexistent/two.bin"}, cli.CategoryNotFound},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := runEqual(&equalParams{}, test.args, strings.NewReader(""), &bytes.Buffer{}, discardLogger())
			requireCategory(t, err, test.category)
		})
	}
}
