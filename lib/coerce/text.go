// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package coerce

import (
	"fmt"

	"github.com/bureau-foundation/bytecoerce/lib/textcodec"
)

// ToString decodes the byte view of input as UTF-8.
func ToString(input Input) string {
	return textcodec.DecodeUTF8(Normalize(input).Bytes())
}

// ToLatin1String decodes the byte view of input as ISO-8859-1, one code
// point per byte.
func ToLatin1String(input Input) string {
	return textcodec.DecodeLatin1(Normalize(input).Bytes())
}

// ToBinarySequence renders the byte view of input as zero-padded 8-digit
// binary groups joined by separator.
func ToBinarySequence(input Input, separator string) string {
	return textcodec.EncodeBinaryDigits(Normalize(input).Bytes(), separator)
}

// FromBinarySequence parses a binary digit string, given as any input
// whose UTF-8 decoding is the digits, back into bytes.
func FromBinarySequence(input Input, separator string) (Buffer, error) {
	decoded, err := textcodec.DecodeBinaryDigits(ToString(input), separator)
	if err != nil {
		return nil, fmt.Errorf("coerce: %w", err)
	}
	return Buffer(decoded), nil
}
