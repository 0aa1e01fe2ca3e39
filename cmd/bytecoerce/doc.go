// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Bytecoerce is the command-line front end to the byte coercion
// libraries. It normalizes text, integers, byte lists, hex and files to
// canonical byte sequences and exposes every operation on them as a
// subcommand: bytes, array, read, write, text, binary, equal, inspect
// and cbor.
package main
