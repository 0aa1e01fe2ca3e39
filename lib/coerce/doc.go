// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package coerce normalizes "anything byte-like" into one canonical
// binary representation and reinterprets it as fixed-width numbers or a
// random-access view.
//
// Code at a boundary (CLI input, decoded payloads, test fixtures)
// accepts an [Input] and works with the canonical forms internally.
// [Input] is a closed union; its variants are:
//
//   - [Text]: UTF-8 text. [FromUTF16] transcodes UTF-16 into Text.
//   - [Int], [Uint], [BigInt]: integer scalars. A scalar is coerced
//     through its base-10 text form, so Int(10) becomes the two bytes
//     '1' and '0', not a binary integer.
//   - [Sequence]: small integers, one per byte, truncated to 8 bits.
//   - [Buffer]: a raw byte slice.
//   - [Array]: a slice of any fixed-width numeric type.
//   - *[View]: an existing addressable view.
//
// Each variant reports its [Kind]. [From] maps arbitrary Go values onto
// the union and is the only place an unsupported value is detected at
// run time ([ErrInvalidInputKind]).
//
// # Canonical forms
//
// [Normalize] produces a [ByteView], the flat byte sequence. [Assemble]
// (and the typed helpers [Uint16s], [Int32s], [Float32s], [Int64s] and
// friends) groups that sequence into fixed-width scalars: element count
// is ceil(length/width), bytes are little-endian unless the [Layout]
// says otherwise, and a short final group is zero filled before it is
// decoded. [ToView] wraps the sequence in a [View] offering bounds
// checked scalar reads and writes at byte offsets ([ErrOutOfBounds]).
//
// # Copying and aliasing
//
// Ownership is a property of the variant, reported by [Kind.Aliases]
// and by [ByteView.Aliased] / [View.Aliased]:
//
//	Text, Int, Uint, BigInt, Sequence   fresh copy; safe to retain
//	Buffer, Array, *View                aliases the caller's storage
//
// An aliasing result observes later writes to the caller's storage and
// writes through a [View] land in it. Callers that retain a result
// past the lifetime of their buffer should [ByteView.Clone] or
// [View.Clone] it first. Array bytes are in host order ([HostOrder]),
// since they are the array's own memory.
//
// Nothing in this package keeps state between calls or blocks.
package coerce
