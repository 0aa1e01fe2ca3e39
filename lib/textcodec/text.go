// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package textcodec

import (
	"encoding/binary"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// EncodeText returns the UTF-8 bytes of s in a freshly allocated slice.
// The result never aliases the string's storage.
func EncodeText(s string) []byte {
	return []byte(s)
}

// DecodeUTF8 decodes data as UTF-8. A leading byte order mark is
// dropped and every invalid byte sequence becomes U+FFFD.
func DecodeUTF8(data []byte) string {
	decoded, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
	if err != nil {
		// The x/text UTF-8 decoder substitutes rather than failing on
		// in-memory input; keep the same contract if that ever changes.
		return strings.ToValidUTF8(strings.TrimPrefix(string(data), "\uFEFF"), "\uFFFD")
	}
	return string(decoded)
}

// DecodeLatin1 decodes data as ISO-8859-1: byte b becomes code point b.
func DecodeLatin1(data []byte) string {
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		// ISO-8859-1 maps all 256 byte values; fall back to the same
		// mapping by hand.
		var builder strings.Builder
		builder.Grow(len(data) * 2)
		for _, b := range data {
			builder.WriteRune(rune(b))
		}
		return builder.String()
	}
	return string(decoded)
}

// EncodeUTF16BE encodes s as big-endian UTF-16 without a byte order mark.
func EncodeUTF16BE(s string) []byte {
	return encodeUTF16(s, unicode.BigEndian)
}

// EncodeUTF16LE encodes s as little-endian UTF-16 without a byte order mark.
func EncodeUTF16LE(s string) []byte {
	return encodeUTF16(s, unicode.LittleEndian)
}

// DecodeUTF16BE decodes big-endian UTF-16. A leading byte order mark is
// honored and removed.
func DecodeUTF16BE(data []byte) (string, error) {
	return decodeUTF16(data, unicode.BigEndian)
}

// DecodeUTF16LE decodes little-endian UTF-16. A leading byte order mark is
// honored and removed.
func DecodeUTF16LE(data []byte) (string, error) {
	return decodeUTF16(data, unicode.LittleEndian)
}

// DecodeUTF16 decodes UTF-16 in the given byte order. A nil order means
// little-endian. The order is judged by what it writes, so
// binary.NativeEndian and custom orders decode correctly.
func DecodeUTF16(data []byte, order binary.ByteOrder) (string, error) {
	if order != nil && writesBigEndian(order) {
		return DecodeUTF16BE(data)
	}
	return DecodeUTF16LE(data)
}

func writesBigEndian(order binary.ByteOrder) bool {
	var written [2]byte
	order.PutUint16(written[:], 1)
	return written[1] == 1
}

func encodeUTF16(s string, endianness unicode.Endianness) []byte {
	encoder := unicode.UTF16(endianness, unicode.IgnoreBOM).NewEncoder()
	encoded, err := encoder.Bytes([]byte(s))
	if err != nil {
		// Go strings may carry invalid UTF-8; encode it the way the
		// decoder would have seen it.
		encoded, _ = encoder.Bytes([]byte(strings.ToValidUTF8(s, "\uFFFD")))
	}
	return encoded
}

func decodeUTF16(data []byte, endianness unicode.Endianness) (string, error) {
	if len(data)%2 != 0 {
		return "", fmt.Errorf("decoding UTF-16: odd byte length %d", len(data))
	}
	decoded, err := unicode.UTF16(endianness, unicode.UseBOM).NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding UTF-16: %w", err)
	}
	return string(decoded), nil
}
