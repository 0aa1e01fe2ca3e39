// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete bytecoerce command tree. main
// executes it; tests walk it.
package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/bureau-foundation/bytecoerce/cmd/bytecoerce/cli"
	coercecmd "github.com/bureau-foundation/bytecoerce/cmd/bytecoerce/coerce"
	"github.com/bureau-foundation/bytecoerce/lib/version"
)

type rootParams struct {
	Version bool `json:"-" flag:"version" desc:"print the version and exit"`
}

type versionParams struct {
	cli.Output
}

// Root builds and returns the complete bytecoerce command tree.
func Root() *cli.Command {
	var params rootParams

	root := &cli.Command{
		Name: "bytecoerce",
		Description: `bytecoerce: turn byte-like values into canonical byte sequences.

Text, integers, byte lists, files and typed arrays are normalized to
one byte sequence, which can then be assembled into fixed-width
numbers, read and written at byte offsets, decoded as text, rendered
as binary digits, compared, digested, or encoded as a CBOR typed array.`,
		Subcommands: append(coercecmd.Commands(), versionCommand()),
		Params:      func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Canonical bytes of a string",
				Command:     "bytecoerce bytes 'Hello world!'",
			},
			{
				Description: "The same bytes as little-endian 32-bit words",
				Command:     "bytecoerce array --width 4 --kind uint 'Hello world!'",
			},
			{
				Description: "Read a big-endian uint16 at offset 1",
				Command:     "bytecoerce read --hex 00123400 --offset 1 --type uint16",
			},
			{
				Description: "Compare two files",
				Command:     "bytecoerce equal before.bin after.bin",
			},
		},
	}
	root.Run = func(_ context.Context, args []string, _ *slog.Logger) error {
		return runRoot(root, &params, args, os.Stdout, os.Stderr)
	}
	return root
}

// runRoot handles the root command when no subcommand matched: only
// flags reach here.
func runRoot(root *cli.Command, params *rootParams, args []string, stdout, stderr io.Writer) error {
	if params.Version {
		return cli.Printf(stdout, "bytecoerce %s\n", version.Info())
	}
	root.PrintHelp(stderr)
	if len(args) > 0 {
		return cli.Validation("unknown command %q", args[0])
	}
	return cli.Validation("subcommand required")
}

func versionCommand() *cli.Command {
	var params versionParams

	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Params:  func() any { return &params },
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			return runVersion(&params, os.Stdout)
		},
	}
}

func runVersion(params *versionParams, stdout io.Writer) error {
	if done, err := params.Emit(stdout, version.Current()); done {
		return err
	}
	return cli.Printf(stdout, "bytecoerce %s\n", version.Full())
}
