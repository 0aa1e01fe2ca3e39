// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package coerce

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/bureau-foundation/bytecoerce/cmd/bytecoerce/cli"
	"github.com/bureau-foundation/bytecoerce/lib/binhash"
	libcoerce "github.com/bureau-foundation/bytecoerce/lib/coerce"
)

type equalParams struct {
	commonParams
	Quiet bool `json:"-" flag:"quiet,q" desc:"print nothing; report only through the exit status"`
}

// equalResult is the structured output of equal. FirstDifference is
// -1 when the inputs are equal.
type equalResult struct {
	Equal           bool         `json:"equal"            yaml:"equal"`
	Left            equalOperand `json:"left"             yaml:"left"`
	Right           equalOperand `json:"right"            yaml:"right"`
	FirstDifference int          `json:"first_difference" yaml:"first_difference"`
}

type equalOperand struct {
	Path   string `json:"path"   yaml:"path"`
	Length int    `json:"length" yaml:"length"`
	Digest string `json:"digest" yaml:"digest"`
}

func equalCommand() *cli.Command {
	var params equalParams

	return &cli.Command{
		Name:    "equal",
		Summary: "Compare two inputs byte for byte",
		Description: `Compare the bytes of two files. Inputs of different lengths are
unequal without comparing content. "-" reads one of the inputs from
stdin.

Exits 0 when the inputs are equal and 1 when they differ, like cmp(1).
The text output names the first differing byte offset; structured
output also carries each input's BLAKE3 digest.`,
		Usage: "bytecoerce equal [flags] <left> <right>",
		Examples: []cli.Example{
			{
				Description: "Compare two files",
				Command:     "bytecoerce equal before.bin after.bin",
			},
			{
				Description: "Compare stdin against a file, exit status only",
				Command:     "produce | bytecoerce equal -q - expected.bin",
			},
		},
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			return runEqual(&params, args, os.Stdin, os.Stdout, logger)
		},
	}
}

func runEqual(params *equalParams, args []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	if len(args) != 2 {
		return cli.Validation("equal takes exactly two inputs, got %d", len(args))
	}
	if args[0] == "-" && args[1] == "-" {
		return cli.Validation("only one input can be stdin")
	}
	if _, err := params.loadConfig(); err != nil {
		return err
	}

	left, err := readOperand(args[0], stdin)
	if err != nil {
		return err
	}
	right, err := readOperand(args[1], stdin)
	if err != nil {
		return err
	}

	equal := libcoerce.Equal(left, right)
	result := equalResult{
		Equal:           equal,
		Left:            equalOperand{Path: args[0], Length: len(left), Digest: binhash.Sum(left).String()},
		Right:           equalOperand{Path: args[1], Length: len(right), Digest: binhash.Sum(right).String()},
		FirstDifference: firstDifference(left, right),
	}
	logger.Debug("compared inputs",
		"left_bytes", result.Left.Length,
		"right_bytes", result.Right.Length,
		"equal", equal,
	)

	if !params.Quiet {
		if err := writeEqual(stdout, &params.Output, result); err != nil {
			return err
		}
	}
	if !equal {
		return &cli.ExitError{Code: 1}
	}
	return nil
}

func readOperand(path string, stdin io.Reader) (libcoerce.Buffer, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, cli.Internal("read stdin: %w", err)
		}
		return libcoerce.Buffer(data), nil
	}
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return libcoerce.Buffer(data), nil
}

// firstDifference returns the offset of the first byte that differs,
// the shorter length when one input is a prefix of the other, or -1
// when they are equal.
func firstDifference(left, right []byte) int {
	shorter := min(len(left), len(right))
	for index := range shorter {
		if left[index] != right[index] {
			return index
		}
	}
	if len(left) != len(right) {
		return shorter
	}
	return -1
}

func writeEqual(w io.Writer, output *cli.Output, result equalResult) error {
	if done, err := output.Emit(w, result); done {
		return err
	}
	switch {
	case result.Equal:
		return cli.Printf(w, "%s and %s are equal (%d bytes)\n", result.Left.Path, result.Right.Path, result.Left.Length)
	case result.Left.Length != result.Right.Length:
		return cli.Printf(w, "%s and %s differ: lengths %d and %d, first difference at byte %d\n",
			result.Left.Path, result.Right.Path, result.Left.Length, result.Right.Length, result.FirstDifference)
	default:
		return cli.Printf(w, "%s and %s differ at byte %d\n", result.Left.Path, result.Right.Path, result.FirstDifference)
	}
}
