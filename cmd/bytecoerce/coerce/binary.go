// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package coerce

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bureau-foundation/bytecoerce/cmd/bytecoerce/cli"
	libcoerce "github.com/bureau-foundation/bytecoerce/lib/coerce"
)

type binaryParams struct {
	commonParams
	inputParams
	Separator cli.OptionalString `json:"-" flag:"separator,s" desc:"group separator; empty means fixed 8-digit groups (default from config)"`
	Decode    bool               `json:"-" flag:"decode,d"    desc:"parse binary digits back into bytes"`
	As        string             `json:"-" flag:"as"          desc:"rendering of decoded bytes: decimal, hex or raw" default:"raw"`
}

// binaryResult is the structured output of binary encoding.
type binaryResult struct {
	Separator string `json:"separator" yaml:"separator"`
	Digits    string `json:"digits"    yaml:"digits"`
}

func binaryCommand() *cli.Command {
	var params binaryParams

	return &cli.Command{
		Name:    "binary",
		Summary: "Convert between bytes and binary digit strings",
		Description: `Render each byte of the input as eight binary digits, zero padded,
joined by the separator (a single space unless configured otherwise).

With --decode the input's text is parsed back into bytes: it is split
on the separator, or every eight digits when the separator is empty,
and each group of one to eight digits becomes one byte. Trailing line
breaks are ignored.`,
		Usage: "bytecoerce binary [flags] [text...]",
		Examples: []cli.Example{
			{
				Description: "Encode a string",
				Command:     "bytecoerce binary 'Hi'",
			},
			{
				Description: "Decode digits without separators",
				Command:     "bytecoerce binary --decode --separator '' 0100100001101001",
			},
			{
				Description: "Round trip through a pipe",
				Command:     "bytecoerce binary 'Hi' | bytecoerce binary --decode",
			},
		},
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			return runBinary(&params, args, os.Stdin, os.Stdout, logger)
		},
	}
}

func runBinary(params *binaryParams, args []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	cfg, err := params.loadConfig()
	if err != nil {
		return err
	}
	separator := params.Separator.Or(cfg.Separator)

	input, err := params.resolve(args, stdin)
	if err != nil {
		return err
	}
	logInput(logger, input)

	if params.Decode {
		digits := strings.TrimRight(libcoerce.ToString(input), "\r\n")
		decoded, err := libcoerce.FromBinarySequence(libcoerce.Text(digits), separator)
		if err != nil {
			return cli.Validation("%w", err)
		}
		if done, err := params.Emit(stdout, newBytesResult(decoded)); done {
			return err
		}
		return writeBytes(stdout, decoded, params.As)
	}

	result := binaryResult{
		Separator: separator,
		Digits:    libcoerce.ToBinarySequence(input, separator),
	}
	if done, err := params.Emit(stdout, result); done {
		return err
	}
	return cli.Printf(stdout, "%s\n", result.Digits)
}
