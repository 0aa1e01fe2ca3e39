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

type arrayParams struct {
	commonParams
	inputParams
	layoutParams
}

func arrayCommand() *cli.Command {
	var params arrayParams

	return &cli.Command{
		Name:    "array",
		Summary: "Assemble an input into fixed-width numbers",
		Description: `Group the input's bytes into fixed-width elements and print them.

The array has ceil(length / width) elements. A final group shorter
than the width is padded with zero bytes, which in little-endian order
are the high-order bytes. Floats reinterpret the assembled bits as
IEEE-754 binary16, binary32 or binary64.

Width, kind and order default to the configured layout (4-byte uint,
little-endian unless the config file says otherwise).`,
		Usage: "bytecoerce array [flags] [text...]",
		Examples: []cli.Example{
			{
				Description: "Three 32-bit words from twelve bytes",
				Command:     "bytecoerce array --width 4 --kind uint 'Hello world!'",
			},
			{
				Description: "Big-endian 16-bit values from hex",
				Command:     "bytecoerce array -w 2 --order big --hex 123456",
			},
			{
				Description: "Half-precision floats as JSON",
				Command:     "bytecoerce array -w 2 -k float --hex 003c -o json",
			},
		},
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			return runArray(&params, args, os.Stdin, os.Stdout, logger)
		},
	}
}

func runArray(params *arrayParams, args []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	cfg, err := params.loadConfig()
	if err != nil {
		return err
	}
	layout, err := params.layoutParams.resolve(cfg)
	if err != nil {
		return err
	}
	input, err := params.inputParams.resolve(args, stdin)
	if err != nil {
		return err
	}
	logInput(logger, input)

	numeric, err := libcoerce.Assemble(input, layout)
	if err != nil {
		return cli.Validation("%w", err)
	}
	logger.Debug("assembled array",
		"width", layout.Width,
		"kind", layout.Kind.String(),
		"order", orderName(layout.Order),
		"elements", numeric.Len(),
	)

	result := newArrayResult(numeric, orderName(layout.Order))
	if done, err := params.Emit(stdout, result); done {
		return err
	}
	return writeElements(stdout, result.Elements)
}
