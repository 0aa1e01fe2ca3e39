// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package textcodec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// digitsPerByte is the width of one rendered byte in a binary digit string.
const digitsPerByte = 8

// DefaultSeparator separates byte groups when the caller has no preference.
const DefaultSeparator = " "

// ErrMalformedDigits is returned by [DecodeBinaryDigits] when a group is
// not one to eight binary digits.
var ErrMalformedDigits = errors.New("textcodec: malformed binary digit group")

// EncodeBinaryDigits renders each byte of data as eight base-2 digits,
// most significant bit first, and joins the groups with separator.
//
//	EncodeBinaryDigits([]byte("Hi"), " ") // "01001000 01101001"
func EncodeBinaryDigits(data []byte, separator string) string {
	if len(data) == 0 {
		return ""
	}
	var builder strings.Builder
	builder.Grow(len(data)*digitsPerByte + (len(data)-1)*len(separator))
	for index, b := range data {
		if index > 0 {
			builder.WriteString(separator)
		}
		for bit := digitsPerByte - 1; bit >= 0; bit-- {
			builder.WriteByte('0' + (b>>bit)&1)
		}
	}
	return builder.String()
}

// DecodeBinaryDigits parses a string produced by [EncodeBinaryDigits].
// With an empty separator the input is cut into consecutive eight-digit
// groups; a shorter final group is accepted and read as its own value.
// An empty input yields an empty, non-nil slice.
func DecodeBinaryDigits(digits string, separator string) ([]byte, error) {
	if digits == "" {
		return []byte{}, nil
	}

	var groups []string
	if separator == "" {
		for start := 0; start < len(digits); start += digitsPerByte {
			groups = append(groups, digits[start:min(start+digitsPerByte, len(digits))])
		}
	} else {
		groups = strings.Split(digits, separator)
	}

	decoded := make([]byte, len(groups))
	for index, group := range groups {
		if len(group) == 0 || len(group) > digitsPerByte {
			return nil, fmt.Errorf("%w: group %d is %d digits", ErrMalformedDigits, index, len(group))
		}
		value, err := strconv.ParseUint(group, 2, digitsPerByte)
		if err != nil {
			return nil, fmt.Errorf("%w: group %d %q", ErrMalformedDigits, index, group)
		}
		decoded[index] = byte(value)
	}
	return decoded, nil
}
