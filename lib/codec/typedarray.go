// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/bureau-foundation/bytecoerce/lib/coerce"
)

var (
	// ErrNotTypedArray reports CBOR data that is not a byte string
	// under one of the RFC 8746 typed-array tags this package handles.
	ErrNotTypedArray = errors.New("codec: not an RFC 8746 typed array")

	// ErrTypedArrayLength reports a typed-array byte string whose
	// length is not a multiple of its element width.
	ErrTypedArrayLength = errors.New("codec: typed array length is not a multiple of the element width")
)

// RFC 8746 §2.1 lays the tag number out as 0b010_f_s_e_ll: f selects
// float, s signed, e little-endian, and ll the element size.
const (
	tagBase         = 64
	tagFloat        = 1 << 4
	tagSigned       = 1 << 3
	tagLittleEndian = 1 << 2

	// tagUint8Clamped has the same bytes as tagBase but clamped
	// arithmetic in JavaScript. Decoded here as plain uint8.
	tagUint8Clamped = tagBase | tagLittleEndian
)

// TypedArrayTag returns the RFC 8746 tag for elements of layout encoded
// in order (nil means little-endian). Single-byte elements have no byte
// order, so their tag ignores order.
func TypedArrayTag(layout coerce.Layout, order binary.ByteOrder) (uint64, error) {
	tag := uint64(tagBase)
	if !isBigEndian(order) {
		tag |= tagLittleEndian
	}

	switch layout.Kind {
	case coerce.NumericFloat:
		tag |= tagFloat
		switch layout.Width {
		case 2:
		case 4:
			tag |= 1
		case 8:
			tag |= 2
		default:
			return 0, fmt.Errorf("%w: %d-byte float", coerce.ErrUnsupportedLayout, layout.Width)
		}
		return tag, nil
	case coerce.NumericInt, coerce.NumericWideInt:
		tag |= tagSigned
	case coerce.NumericUint, coerce.NumericWideUint:
	default:
		return 0, fmt.Errorf("%w: numeric kind %s", coerce.ErrUnsupportedLayout, layout.Kind)
	}

	switch layout.Width {
	case 1:
		tag &^= tagLittleEndian
	case 2:
		tag |= 1
	case 4:
		tag |= 2
	case 8:
		tag |= 3
	default:
		return 0, fmt.Errorf("%w: %d-byte integer", coerce.ErrUnsupportedLayout, layout.Width)
	}
	return tag, nil
}

// ParseTypedArrayTag is the inverse of [TypedArrayTag]. The returned
// layout's Order is the tag's byte order.
func ParseTypedArrayTag(tag uint64) (coerce.Layout, error) {
	if tag < tagBase || tag > tagBase+0x17 {
		return coerce.Layout{}, fmt.Errorf("%w: tag %d", ErrNotTypedArray, tag)
	}
	bits := tag - tagBase
	size := int(bits & 3)

	layout := coerce.Layout{Order: binary.BigEndian}
	if bits&tagLittleEndian != 0 {
		layout.Order = binary.LittleEndian
	}

	if bits&tagFloat != 0 {
		if bits&tagSigned != 0 || size == 3 {
			// Signed floats are unassigned; float128 has no Go type.
			return coerce.Layout{}, fmt.Errorf("%w: tag %d", ErrNotTypedArray, tag)
		}
		layout.Kind = coerce.NumericFloat
		layout.Width = 2 << size
		return layout, nil
	}

	layout.Width = 1 << size
	layout.Kind = coerce.NumericUint
	if bits&tagSigned != 0 {
		layout.Kind = coerce.NumericInt
	}
	if layout.Width == 1 {
		if tag == tagBase|tagSigned|tagLittleEndian {
			// Reserved: a "little-endian" signed byte.
			return coerce.Layout{}, fmt.Errorf("%w: tag %d", ErrNotTypedArray, tag)
		}
		layout.Order = nil
	}
	return layout, nil
}

// MarshalTypedArray encodes elements as an RFC 8746 typed array: a tag
// naming the element type and byte order wrapping a byte string of the
// elements in that order (nil means little-endian).
func MarshalTypedArray(elements coerce.Numeric, order binary.ByteOrder) ([]byte, error) {
	if order == nil {
		order = binary.LittleEndian
	}
	tag, err := TypedArrayTag(elements.Layout(), order)
	if err != nil {
		return nil, err
	}
	content := elements.AppendBytes(make([]byte, 0, elements.Len()*elements.Layout().Width), order)
	return encMode.Marshal(cbor.Tag{Number: tag, Content: content})
}

// UnmarshalTypedArray decodes an RFC 8746 typed array into an array of
// the tagged element type. The result owns its memory and holds the
// decoded values, independent of the wire byte order.
func UnmarshalTypedArray(data []byte) (coerce.Numeric, error) {
	var raw cbor.RawTag
	if err := decMode.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotTypedArray, err)
	}
	layout, err := ParseTypedArrayTag(raw.Number)
	if err != nil {
		return nil, err
	}

	var content []byte
	if err := decMode.Unmarshal(raw.Content, &content); err != nil {
		return nil, fmt.Errorf("%w: tag %d content: %w", ErrNotTypedArray, raw.Number, err)
	}
	if len(content)%layout.Width != 0 {
		return nil, fmt.Errorf("%w: %d bytes of %d-byte elements", ErrTypedArrayLength, len(content), layout.Width)
	}

	if layout.Width == 1 {
		if layout.Kind == coerce.NumericInt {
			elements := make(coerce.Array[int8], len(content))
			for index, value := range content {
				elements[index] = int8(value)
			}
			return elements, nil
		}
		return coerce.Array[uint8](content), nil
	}
	return coerce.Assemble(coerce.Buffer(content), layout)
}

// TypedArrayTagOf returns the tag of the typed array encoded in data
// without decoding its content.
func TypedArrayTagOf(data []byte) (uint64, error) {
	var raw cbor.RawTag
	if err := decMode.Unmarshal(data, &raw); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNotTypedArray, err)
	}
	if _, err := ParseTypedArrayTag(raw.Number); err != nil {
		return 0, err
	}
	return raw.Number, nil
}

// isBigEndian probes order so binary.NativeEndian and custom orders are
// classified by what they write. Nil is little-endian.
func isBigEndian(order binary.ByteOrder) bool {
	if order == nil {
		return false
	}
	var probe [2]byte
	order.PutUint16(probe[:], 1)
	return probe[1] == 1
}
