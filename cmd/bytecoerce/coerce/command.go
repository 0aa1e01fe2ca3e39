// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package coerce

import "github.com/bureau-foundation/bytecoerce/cmd/bytecoerce/cli"

// Commands returns the coercion subcommands in help order.
func Commands() []*cli.Command {
	return []*cli.Command{
		bytesCommand(),
		arrayCommand(),
		readCommand(),
		writeCommand(),
		textCommand(),
		binaryCommand(),
		equalCommand(),
		inspectCommand(),
		cborCommand(),
	}
}
