// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package textcodec moves values between human text and raw bytes.
//
// It is the text boundary for [github.com/bureau-foundation/bytecoerce/lib/coerce]:
// the normalizer encodes string inputs with [EncodeText], and callers turn a
// byte view back into text with [DecodeUTF8] or [DecodeLatin1]. Every
// function here operates on plain []byte and string values and has no
// dependency on the coerce input union, so coerce can import this
// package without a cycle.
//
// Three groups of helpers:
//
//   - UTF-8: [EncodeText] and [DecodeUTF8]. Decoding strips a leading
//     byte order mark and substitutes U+FFFD for invalid sequences,
//     matching what a WHATWG TextDecoder produces.
//   - Latin-1: [DecodeLatin1] maps each byte to the code point of the
//     same value (0-255). It never fails and never substitutes.
//   - UTF-16: [EncodeUTF16BE], [EncodeUTF16LE], [DecodeUTF16BE],
//     [DecodeUTF16LE] and the order-parameterised [DecodeUTF16]. The
//     big-endian and little-endian variants are separate functions on
//     purpose; call sites depend on a specific order.
//
// The binary digit helpers [EncodeBinaryDigits] and [DecodeBinaryDigits]
// render bytes as zero-padded 8-digit base-2 groups ("01001000") joined
// by a caller-chosen separator, and parse them back.
//
// The charset work is delegated to golang.org/x/text.
package textcodec
