// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides bytecoerce's CBOR encoding configuration and
// the RFC 8746 typed-array wire form for assembled numeric arrays.
//
// bytecoerce uses CBOR in two places:
//
//   - Structured CLI output (`--format cbor`), where the same json-tagged
//     report structs are also rendered as JSON and YAML. fxamacker/cbor
//     v2 reads `json` tags when `cbor` tags are absent, so one tag
//     controls field naming for every format.
//   - Typed arrays, where a [coerce.Numeric] is written as a byte string
//     under the RFC 8746 tag naming its element type and byte order.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. Same
// logical data always produces identical bytes.
//
//	data, err := codec.Marshal(report)
//	err = codec.Unmarshal(data, &report)
//
// # Typed arrays
//
// RFC 8746 assigns tags 64-87 to homogeneous numeric arrays. The tag
// number encodes three flags and a size:
//
//	tag = 64 + 16*float + 8*signed + 4*littleEndian + ll
//
// with ll the log2 of the element size (for floats, of half the size).
// [MarshalTypedArray] picks the tag from the array's layout and the
// requested byte order, then re-encodes the elements in that order, so
// the wire bytes never depend on the host:
//
//	words := coerce.Uint16s(coerce.Text("Hi!"))
//	data, err := codec.MarshalTypedArray(words, binary.BigEndian)
//	// data is 65(h'69480021')
//
// [UnmarshalTypedArray] reverses it through [coerce.Assemble], so
// decoding uses the same grouping rules as the rest of the module.
// Tags with no Go element type (float128, the reserved signed
// little-endian byte) fail with [ErrNotTypedArray]. The clamped uint8
// tag decodes as plain uint8.
package codec
