// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package coerce

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/bureau-foundation/bytecoerce/cmd/bytecoerce/cli"
	libcoerce "github.com/bureau-foundation/bytecoerce/lib/coerce"
)

type bytesParams struct {
	commonParams
	inputParams
	As string `json:"-" flag:"as" desc:"text rendering: decimal, hex or raw" default:"decimal"`
}

func bytesCommand() *cli.Command {
	var params bytesParams

	return &cli.Command{
		Name:    "bytes",
		Summary: "Print the canonical byte sequence of an input",
		Description: `Normalize an input to its canonical byte sequence and print it.

Text becomes its UTF-8 encoding. An integer (--number) becomes the UTF-8
of its decimal digits, not its binary representation: 42 is the two
bytes "4" and "2". A byte list (--bytes) keeps the low 8 bits of each
value, so 256 becomes 0 and -1 becomes 255. Files, hex and stdin are
used as they are.`,
		Usage: "bytecoerce bytes [flags] [text...]",
		Examples: []cli.Example{
			{
				Description: "UTF-8 bytes of a string",
				Command:     "bytecoerce bytes 'Hello world!'",
			},
			{
				Description: "Decimal text of a number, as hex",
				Command:     "bytecoerce bytes --number 42 --as hex",
			},
			{
				Description: "Out-of-range list values wrap to one byte",
				Command:     "bytecoerce bytes --bytes '[256, -1]'",
			},
		},
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			return runBytes(&params, args, os.Stdin, os.Stdout, logger)
		},
	}
}

func runBytes(params *bytesParams, args []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	if _, err := params.loadConfig(); err != nil {
		return err
	}
	input, err := params.resolve(args, stdin)
	if err != nil {
		return err
	}
	logInput(logger, input)

	if done, err := params.Emit(stdout, newBytesResult(input)); done {
		return err
	}
	return writeBytes(stdout, libcoerce.Normalize(input).Bytes(), params.As)
}
