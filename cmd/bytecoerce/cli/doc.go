// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the command framework behind the bytecoerce binary.
//
// A [Command] tree dispatches on the first positional argument, parses
// flags with spf13/pflag, and runs the leaf command's Run function with
// a context and a [log/slog] logger scoped to the command path.
//
// Flags are declared as tagged struct fields and bound by [BindFlags]:
//
//	type readParams struct {
//	    cli.Output
//	    Offset int    `json:"offset" flag:"offset" desc:"byte offset"`
//	    Type   string `json:"type"   flag:"type,t" desc:"scalar type" default:"uint8"`
//	}
//
// Typos in command and flag names get "did you mean" suggestions based
// on Levenshtein distance.
//
// Errors carry a category ([Validation], [NotFound], [Internal]) that
// main maps to an exit status; [ExitError] requests a status without
// printing anything, for commands whose non-zero exit is an answer
// rather than a failure.
//
// [Output] adds --format (text, json, yaml, cbor) to any parameter
// struct; [NewCommandLogger] picks a text or JSON slog handler based on
// whether stderr is a terminal.
package cli
