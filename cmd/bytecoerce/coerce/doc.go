// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package coerce implements the bytecoerce subcommands: one command per
// public operation of lib/coerce, lib/codec and lib/binhash.
//
// Every command that takes a single value resolves it the same way
// (see [inputParams]): positional arguments are UTF-8 text, --file reads
// a file, --hex decodes hex digits, --bytes parses a JSON list of byte
// values (comments and trailing commas allowed), --number coerces an
// integer through its decimal text, and with none of these the command
// reads stdin. --utf16 transcodes file, hex or stdin bytes from UTF-16
// before coercion.
//
// Commands write plain text by default. --format json, yaml or cbor
// emits a structured result instead (see [cli.Output]); the default
// format and byte order come from the YAML file named by --config or
// BYTECOERCE_CONFIG (see lib/config).
package coerce
