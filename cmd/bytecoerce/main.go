// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bureau-foundation/bytecoerce/cmd/bytecoerce/cli"
	"github.com/bureau-foundation/bytecoerce/cmd/bytecoerce/commands"
)

func main() {
	os.Exit(exitCode(run()))
}

func run() error {
	return commands.Root().Execute(context.Background(), os.Args[1:])
}

// exitCode maps a command error to the process exit status, printing
// it unless the command already reported the outcome itself (like
// "equal" returning 1 when its inputs differ).
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitError *cli.ExitError
	if errors.As(err, &exitError) {
		return exitError.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	var toolError *cli.ToolError
	if errors.As(err, &toolError) {
		return toolError.ExitCode()
	}
	return 1
}
