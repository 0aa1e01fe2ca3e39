// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package binhash provides BLAKE3 content digests of byte views.
//
// The CLI reports a digest next to every inspected input so two inputs
// of different kinds (a text, a file, a typed array) can be recognized
// as byte-identical at a glance. Digests use BLAKE3 keyed mode with a
// fixed domain key, so a view digest never collides with a plain
// BLAKE3 hash of the same bytes computed by another tool.
//
// The API surface is four functions:
//
//   - [Sum] -- digests the byte view of any [coerce.Input]
//   - [SumBytes] -- digests a raw byte slice in the same domain
//   - [FormatDigest] -- converts a [Digest] to its canonical
//     hex-encoded string, used in CLI output and logs
//   - [ParseDigest] -- parses a hex-encoded digest string back to a
//     [Digest], validating length and encoding
package binhash
