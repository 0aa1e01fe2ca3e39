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

type inspectParams struct {
	commonParams
	inputParams
	Expect string `json:"-" flag:"expect" desc:"exit 1 unless the BLAKE3 digest equals this hex digest"`
}

// inspectResult describes a coerced input.
type inspectResult struct {
	Kind      string `json:"kind"       yaml:"kind"`
	Length    int    `json:"length"     yaml:"length"`
	Aliased   bool   `json:"aliased"    yaml:"aliased"`
	HostOrder string `json:"host_order" yaml:"host_order"`
	Digest    string `json:"digest"     yaml:"digest"`
	Matches   *bool  `json:"matches,omitempty" yaml:"matches,omitempty"`
}

func inspectCommand() *cli.Command {
	var params inspectParams

	return &cli.Command{
		Name:    "inspect",
		Summary: "Describe how an input is coerced",
		Description: `Report what the coercion layer sees for an input: its kind, the
length of its byte sequence, whether that sequence shares memory with
the input or is a fresh copy, the host byte order typed arrays are
viewed in, and a BLAKE3 digest of the bytes.

With --expect, the digest is also compared against a known digest and
the command exits 1 when they differ.

Text, numbers and byte lists are always copied. File, hex and stdin
input is a buffer and is viewed in place.`,
		Usage: "bytecoerce inspect [flags] [text...]",
		Examples: []cli.Example{
			{
				Description: "Inspect a string",
				Command:     "bytecoerce inspect 'Hello world!'",
			},
			{
				Description: "Inspect a file as YAML",
				Command:     "bytecoerce inspect --file data.bin -o yaml",
			},
			{
				Description: "Check a file against a recorded digest",
				Command:     "bytecoerce inspect --file data.bin --expect 5f1c...",
			},
		},
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			return runInspect(&params, args, os.Stdin, os.Stdout, logger)
		},
	}
}

func runInspect(params *inspectParams, args []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	if _, err := params.loadConfig(); err != nil {
		return err
	}
	var expected binhash.Digest
	if params.Expect != "" {
		var err error
		if expected, err = binhash.ParseDigest(params.Expect); err != nil {
			return cli.Validation("--expect: %w", err).
				WithHint("A digest is 64 hex characters, as printed by \"bytecoerce inspect\".")
		}
	}
	input, err := params.resolve(args, stdin)
	if err != nil {
		return err
	}
	logInput(logger, input)

	view := libcoerce.Normalize(input)
	digest := binhash.Sum(input)
	result := inspectResult{
		Kind:      input.Kind().String(),
		Length:    view.Len(),
		Aliased:   view.Aliased(),
		HostOrder: libcoerce.HostOrder().String(),
		Digest:    digest.String(),
	}
	if params.Expect != "" {
		matches := digest == expected
		result.Matches = &matches
	}

	if err := writeInspect(stdout, &params.Output, result); err != nil {
		return err
	}
	if result.Matches != nil && !*result.Matches {
		logger.Debug("digest mismatch", "expected", expected.String(), "actual", result.Digest)
		return &cli.ExitError{Code: 1}
	}
	return nil
}

func writeInspect(stdout io.Writer, output *cli.Output, result inspectResult) error {
	if done, err := output.Emit(stdout, result); done {
		return err
	}
	if err := cli.Printf(stdout, "kind:       %s\nlength:     %d\naliased:    %t\nhost order: %s\ndigest:     %s\n",
		result.Kind, result.Length, result.Aliased, result.HostOrder, result.Digest); err != nil {
		return err
	}
	if result.Matches != nil {
		return cli.Printf(stdout, "matches:    %t\n", *result.Matches)
	}
	return nil
}
