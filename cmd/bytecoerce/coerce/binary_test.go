// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package coerce

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bureau-foundation/bytecoerce/cmd/bytecoerce/cli"
	"github.com/bureau-foundation/bytecoerce/lib/testutil"
	"github.com/bureau-foundation/bytecoerce/lib/textcodec"
)

func separator(text string) cli.OptionalString {
	return cli.OptionalString{Text: text, Given: true}
}

func TestRunBinaryEncode(t *testing.T) {
	isolateConfig(t)

	tests := []struct {
		name   string
		params binaryParams
		args   []string
		want   string
	}{
		{
			name: "default separator",
			args: []string{"Hi"},
			want: "01001000 01101001\n",
		},
		{
			name:   "empty separator",
			params: binaryParams{Separator: separator("")},
			args:   []string{"Hi"},
			want:   "0100100001101001\n",
		},
		{
			name:   "custom separator",
			params: binaryParams{Separator: separator(",")},
			args:   []string{"Hi"},
			want:   "01001000,01101001\n",
		},
		{
			name:   "small values are zero padded",
			params: binaryParams{inputParams: inputParams{Bytes: "[0, 1, 255]"}},
			want:   "00000000 00000001 11111111\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var stdout bytes.Buffer
			err := runBinary(&test.params, test.args, strings.NewReader(""), &stdout, discardLogger())
			testutil.RequireNoError(t, err, "runBinary")
			if stdout.String() != test.want {
				t.Errorf("output = %q, want %q", stdout.String(), test.want)
			}
		})
	}
}

func TestRunBinaryHelloWorld(t *testing.T) {
	isolateConfig(t)
	var stdout bytes.Buffer
	err := runBinary(&binaryParams{}, []string{"Hello world!"}, strings.NewReader(""), &stdout, discardLogger())
	testutil.RequireNoError(t, err, "runBinary")
	want := textcodec.EncodeBinaryDigits(helloWorld, textcodec.DefaultSeparator) + "\n"
	if stdout.String() != want {
		t.Errorf("output = %q, want %q", stdout.String(), want)
	}
}

func TestRunBinaryDecode(t *testing.T) {
	isolateConfig(t)

	tests := []struct {
		name   string
		params binaryParams
		args   []string
		stdin  string
		want   string
	}{
		{
			name:   "positional digits",
			params: binaryParams{Decode: true, As: asRaw},
			args:   []string{"01001000 01101001"},
			want:   "Hi",
		},
		{
			name:   "piped with trailing newline",
			params: binaryParams{Decode: true, As: asRaw},
			stdin:  "01001000 01101001\n",
			want:   "Hi",
		},
		{
			name:   "fixed groups, short last group",
			params: binaryParams{Decode: true, As: asDecimal, Separator: separator("")},
			args:   []string{"0100100011"},
			want:   "72 3\n",
		},
		{
			name:   "empty input",
			params: binaryParams{Decode: true, As: asHex},
			stdin:  "",
			want:   "\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var stdout bytes.Buffer
			err := runBinary(&test.params, test.args, strings.NewReader(test.stdin), &stdout, discardLogger())
			testutil.RequireNoError(t, err, "runBinary")
			if stdout.String() != test.want {
				t.Errorf("output = %q, want %q", stdout.String(), test.want)
			}
		})
	}
}

func TestRunBinaryConfiguredSeparator(t *testing.T) {
	isolateConfig(t)
	path := writeTempFile(t, "bytecoerce.yaml", []byte("separator: \"-\"\n"))

	params := binaryParams{commonParams: commonParams{Config: path}}
	var stdout bytes.Buffer
	err := runBinary(&params, []string{"Hi"}, strings.NewReader(""), &stdout, discardLogger())
	testutil.RequireNoError(t, err, "runBinary")
	if stdout.String() != "01001000-01101001\n" {
		t.Errorf("output = %q, want configured separator", stdout.String())
	}
}

func TestRunBinaryDecodeMalformed(t *testing.T) {
	isolateConfig(t)
	params := binaryParams{Decode: true}
	err := runBinary(&params, []string{"01001000 0110x001"}, strings.NewReader(""), &bytes.Buffer{}, discardLogger())
	requireCategory(t, err, cli.CategoryValidation)
	testutil.RequireErrorIs(t, err, textcodec.ErrMalformedDigits)
}
