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

type textParams struct {
	commonParams
	inputParams
	Latin1 bool `json:"-" flag:"latin1,l" desc:"decode as ISO-8859-1, one character per byte"`
}

// textResult is the structured output of text.
type textResult struct {
	Encoding string `json:"encoding" yaml:"encoding"`
	Text     string `json:"text"     yaml:"text"`
}

func textCommand() *cli.Command {
	var params textParams

	return &cli.Command{
		Name:    "text",
		Summary: "Decode an input's bytes as text",
		Description: `Decode the input's byte sequence as UTF-8 and print it.

A leading byte order mark is dropped and invalid sequences print as
U+FFFD. With --latin1 every byte is one character (ISO-8859-1), so the
output never contains replacement characters.`,
		Usage: "bytecoerce text [flags]",
		Examples: []cli.Example{
			{
				Description: "Decode hex as UTF-8",
				Command:     "bytecoerce text --hex 48656c6c6f",
			},
			{
				Description: "Decode a byte list as Latin-1",
				Command:     "bytecoerce text --latin1 --bytes '[72, 233]'",
			},
			{
				Description: "Transcode a UTF-16 file to UTF-8",
				Command:     "bytecoerce text --utf16 le --file notes.txt",
			},
		},
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			return runText(&params, args, os.Stdin, os.Stdout, logger)
		},
	}
}

func runText(params *textParams, args []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	if _, err := params.loadConfig(); err != nil {
		return err
	}
	input, err := params.resolve(args, stdin)
	if err != nil {
		return err
	}
	logInput(logger, input)

	result := textResult{Encoding: "utf-8", Text: libcoerce.ToString(input)}
	if params.Latin1 {
		result = textResult{Encoding: "iso-8859-1", Text: libcoerce.ToLatin1String(input)}
	}

	if done, err := params.Emit(stdout, result); done {
		return err
	}
	return cli.Printf(stdout, "%s\n", result.Text)
}
