// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package coerce

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/bureau-foundation/bytecoerce/cmd/bytecoerce/cli"
	libcoerce "github.com/bureau-foundation/bytecoerce/lib/coerce"
	"github.com/bureau-foundation/bytecoerce/lib/testutil"
)

func TestRunRead(t *testing.T) {
	isolateConfig(t)

	tests := []struct {
		name   string
		params readParams
		want   string
	}{
		{
			name:   "big-endian by default",
			params: readParams{inputParams: inputParams{Hex: "00123400"}, Offset: 1, Type: "uint16", Order: "big"},
			want:   "4660\n",
		},
		{
			name:   "little-endian",
			params: readParams{inputParams: inputParams{Hex: "00123400"}, Offset: 1, Type: "uint16", Order: "little"},
			want:   "13330\n",
		},
		{
			name:   "signed byte",
			params: readParams{inputParams: inputParams{Hex: "ff"}, Type: "int8", Order: "big"},
			want:   "-1\n",
		},
		{
			name:   "float32",
			params: readParams{inputParams: inputParams{Hex: "0000803f"}, Type: "float32", Order: "little"},
			want:   "1\n",
		},
		{
			name:   "float16",
			params: readParams{inputParams: inputParams{Hex: "3c00"}, Type: "float16", Order: "big"},
			want:   "1\n",
		},
		{
			name:   "float64 infinity",
			params: readParams{inputParams: inputParams{Hex: "7ff0000000000000"}, Type: "float64", Order: "big"},
			want:   "+Inf\n",
		},
		{
			name:   "int64",
			params: readParams{inputParams: inputParams{Hex: "fffffffffffffffe"}, Type: "int64", Order: "big"},
			want:   "-2\n",
		},
		{
			name:   "text input",
			params: readParams{inputParams: inputParams{Number: "42"}, Offset: 1, Type: "uint8", Order: "big"},
			want:   "50\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var stdout bytes.Buffer
			err := runRead(&test.params, nil, strings.NewReader(""), &stdout, discardLogger())
			testutil.RequireNoError(t, err, "runRead")
			if stdout.String() != test.want {
				t.Errorf("output = %q, want %q", stdout.String(), test.want)
			}
		})
	}
}

func TestRunReadJSON(t *testing.T) {
	isolateConfig(t)
	params := readParams{
		commonParams: commonParams{Output: cli.Output{Format: cli.FormatJSON}},
		inputParams:  inputParams{Hex: "1234"},
		Type:         "uint16",
		Order:        "big",
	}
	var stdout bytes.Buffer
	err := runRead(&params, nil, strings.NewReader(""), &stdout, discardLogger())
	testutil.RequireNoError(t, err, "runRead")

	var result struct {
		Type   string `json:"type"`
		Offset int    `json:"offset"`
		Order  string `json:"order"`
		Value  uint16 `json:"value"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if result.Type != "uint16" || result.Offset != 0 || result.Order != "big" || result.Value != 0x1234 {
		t.Errorf("result = %+v", result)
	}
}

func TestRunReadErrors(t *testing.T) {
	isolateConfig(t)

	tests := []struct {
		name   string
		params readParams
		isOOB  bool
	}{
		{
			name:   "past the end",
			params: readParams{inputParams: inputParams{Hex: "0011"}, Offset: 1, Type: "uint16", Order: "big"},
			isOOB:  true,
		},
		{
			name:   "negative offset",
			params: readParams{inputParams: inputParams{Hex: "0011"}, Offset: -1, Type: "uint8", Order: "big"},
			isOOB:  true,
		},
		{
			name:   "empty input",
			params: readParams{inputParams: inputParams{Bytes: "[]"}, Type: "uint8", Order: "big"},
			isOOB:  true,
		},
		{
			name:   "unknown type",
			params: readParams{inputParams: inputParams{Hex: "00"}, Type: "uint24", Order: "big"},
		},
		{
			name:   "unknown order",
			params: readParams{inputParams: inputParams{Hex: "00"}, Type: "uint8", Order: "middle"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := runRead(&test.params, nil, strings.NewReader(""), &bytes.Buffer{}, discardLogger())
			requireCategory(t, err, cli.CategoryValidation)
			if test.isOOB {
				testutil.RequireErrorIs(t, err, libcoerce.ErrOutOfBounds)
			}
		})
	}
}

func TestRunWrite(t *testing.T) {
	isolateConfig(t)

	tests := []struct {
		name   string
		params writeParams
		args   []string
		want   string
	}{
		{
			name: "big-endian uint16 at offset 1",
			params: writeParams{
				readParams: readParams{inputParams: inputParams{Hex: "00000000"}, Offset: 1, Type: "uint16", Order: "big"},
				Value:      "0x1234",
				As:         asHex,
			},
			want: "00123400\n",
		},
		{
			name: "little-endian int32",
			params: writeParams{
				readParams: readParams{inputParams: inputParams{Hex: "00000000"}, Type: "int32", Order: "little"},
				Value:      "-2",
				As:         asHex,
			},
			want: "feffffff\n",
		},
		{
			name: "overwrite a character",
			params: writeParams{
				readParams: readParams{Type: "uint8", Order: "big"},
				Value:      "74",
				As:         asRaw,
			},
			args: []string{"Hello"},
			want: "Jello",
		},
		{
			name: "float16",
			params: writeParams{
				readParams: readParams{inputParams: inputParams{Hex: "0000"}, Type: "float16", Order: "big"},
				Value:      "1",
				As:         asHex,
			},
			want: "3c00\n",
		},
		{
			name: "float64 decimal output",
			params: writeParams{
				readParams: readParams{inputParams: inputParams{Hex: "0000000000000000"}, Type: "float64", Order: "big"},
				Value:      "2",
				As:         asDecimal,
			},
			want: "64 0 0 0 0 0 0 0\n",
		},
		{
			name: "binary literal",
			params: writeParams{
				readParams: readParams{inputParams: inputParams{Hex: "00"}, Type: "uint8", Order: "big"},
				Value:      "0b101",
				As:         asHex,
			},
			want: "05\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var stdout bytes.Buffer
			err := runWrite(&test.params, test.args, strings.NewReader(""), &stdout, discardLogger())
			testutil.RequireNoError(t, err, "runWrite")
			if stdout.String() != test.want {
				t.Errorf("output = %q, want %q", stdout.String(), test.want)
			}
		})
	}
}

func TestRunWriteErrors(t *testing.T) {
	isolateConfig(t)

	tests := []struct {
		name     string
		params   writeParams
		contains string
	}{
		{
			name:     "missing value",
			params:   writeParams{readParams: readParams{inputParams: inputParams{Hex: "00"}, Type: "uint8", Order: "big"}},
			contains: "--value is required",
		},
		{
			name: "value out of range",
			params: writeParams{
				readParams: readParams{inputParams: inputParams{Hex: "00"}, Type: "uint8", Order: "big"},
				Value:      "300",
			},
			contains: "not a valid uint8",
		},
		{
			name: "not a number",
			params: writeParams{
				readParams: readParams{inputParams: inputParams{Hex: "00"}, Type: "float32", Order: "big"},
				Value:      "one",
			},
			contains: "not a valid float32",
		},
		{
			name: "does not fit",
			params: writeParams{
				readParams: readParams{inputParams: inputParams{Hex: "0000"}, Offset: 1, Type: "uint16", Order: "big"},
				Value:      "1",
			},
			contains: "needs 2 bytes",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := runWrite(&test.params, nil, strings.NewReader(""), &bytes.Buffer{}, discardLogger())
			requireCategory(t, err, cli.CategoryValidation)
			if !strings.Contains(err.Error(), test.contains) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), test.contains)
			}
		})
	}
}
