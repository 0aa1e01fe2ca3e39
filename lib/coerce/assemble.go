// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package coerce

import (
	"encoding/binary"
	"math"

	"github.com/x448/float16"
)

// Assemble groups the byte view of input into elements of the given
// layout. The element count is ceil(length/width); an empty input gives
// an empty array. Bytes past the end of the input read as zero, so a
// short final group is zero extended (for little-endian, its missing
// high-order bytes are zero).
//
// The result is a fresh [Array] whose element type follows the layout:
//
//	2 int/uint/float         int16, uint16, float16.Float16
//	4 int/uint/float         int32, uint32, float32
//	8 int/uint/float         int64, uint64, float64
//	8 wideint/wideuint       int64, uint64
//
// Other layouts fail with [ErrUnsupportedLayout].
func Assemble(input Input, layout Layout) (Numeric, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	order := layout.byteOrder()

	switch layout.Width {
	case 2:
		switch layout.Kind {
		case NumericInt:
			return Int16sOrder(input, order), nil
		case NumericUint:
			return Uint16sOrder(input, order), nil
		default:
			return Float16sOrder(input, order), nil
		}
	case 4:
		switch layout.Kind {
		case NumericInt:
			return Int32sOrder(input, order), nil
		case NumericUint:
			return Uint32sOrder(input, order), nil
		default:
			return Float32sOrder(input, order), nil
		}
	default:
		switch layout.Kind {
		case NumericInt, NumericWideInt:
			return Int64sOrder(input, order), nil
		case NumericUint, NumericWideUint:
			return Uint64sOrder(input, order), nil
		default:
			return Float64sOrder(input, order), nil
		}
	}
}

// Int16s assembles little-endian 16-bit signed integers.
func Int16s(input Input) Array[int16] { return Int16sOrder(input, binary.LittleEndian) }

// Int16sOrder assembles 16-bit signed integers in order.
func Int16sOrder(input Input, order binary.ByteOrder) Array[int16] {
	return assemble(input, 2, order, func(bits uint64) int16 { return int16(bits) })
}

// Uint16s assembles little-endian 16-bit unsigned integers.
func Uint16s(input Input) Array[uint16] { return Uint16sOrder(input, binary.LittleEndian) }

// Uint16sOrder assembles 16-bit unsigned integers in order.
func Uint16sOrder(input Input, order binary.ByteOrder) Array[uint16] {
	return assemble(input, 2, order, func(bits uint64) uint16 { return uint16(bits) })
}

// Float16s assembles little-endian IEEE-754 half-precision floats.
func Float16s(input Input) Array[float16.Float16] {
	return Float16sOrder(input, binary.LittleEndian)
}

// Float16sOrder assembles half-precision floats in order.
func Float16sOrder(input Input, order binary.ByteOrder) Array[float16.Float16] {
	return assemble(input, 2, order, func(bits uint64) float16.Float16 {
		return float16.Frombits(uint16(bits))
	})
}

// Int32s assembles little-endian 32-bit signed integers.
func Int32s(input Input) Array[int32] { return Int32sOrder(input, binary.LittleEndian) }

// Int32sOrder assembles 32-bit signed integers in order.
func Int32sOrder(input Input, order binary.ByteOrder) Array[int32] {
	return assemble(input, 4, order, func(bits uint64) int32 { return int32(bits) })
}

// Uint32s assembles little-endian 32-bit unsigned integers.
func Uint32s(input Input) Array[uint32] { return Uint32sOrder(input, binary.LittleEndian) }

// Uint32sOrder assembles 32-bit unsigned integers in order.
func Uint32sOrder(input Input, order binary.ByteOrder) Array[uint32] {
	return assemble(input, 4, order, func(bits uint64) uint32 { return uint32(bits) })
}

// Float32s assembles little-endian binary32 floats. Each group's bits
// are reinterpreted, not converted numerically.
func Float32s(input Input) Array[float32] { return Float32sOrder(input, binary.LittleEndian) }

// Float32sOrder assembles binary32 floats in order.
func Float32sOrder(input Input, order binary.ByteOrder) Array[float32] {
	return assemble(input, 4, order, func(bits uint64) float32 {
		return math.Float32frombits(uint32(bits))
	})
}

// Int64s assembles little-endian 64-bit signed integers: the two's
// complement reading of each 64-bit pattern.
func Int64s(input Input) Array[int64] { return Int64sOrder(input, binary.LittleEndian) }

// Int64sOrder assembles 64-bit signed integers in order.
func Int64sOrder(input Input, order binary.ByteOrder) Array[int64] {
	return assemble(input, 8, order, func(bits uint64) int64 { return int64(bits) })
}

// Uint64s assembles little-endian 64-bit unsigned integers.
func Uint64s(input Input) Array[uint64] { return Uint64sOrder(input, binary.LittleEndian) }

// Uint64sOrder assembles 64-bit unsigned integers in order.
func Uint64sOrder(input Input, order binary.ByteOrder) Array[uint64] {
	return assemble(input, 8, order, func(bits uint64) uint64 { return bits })
}

// Float64s assembles little-endian binary64 floats by reinterpreting
// each group's bits.
func Float64s(input Input) Array[float64] { return Float64sOrder(input, binary.LittleEndian) }

// Float64sOrder assembles binary64 floats in order.
func Float64sOrder(input Input, order binary.ByteOrder) Array[float64] {
	return assemble(input, 8, order, math.Float64frombits)
}

// assemble is the shared grouping loop. Every group is accumulated in a
// uint64 so 64-bit patterns never lose precision; convert narrows or
// reinterprets it.
func assemble[E Element](input Input, width int, order binary.ByteOrder, convert func(uint64) E) Array[E] {
	if order == nil {
		order = binary.LittleEndian
	}
	data := Normalize(input).Bytes()
	count := (len(data) + width - 1) / width
	elements := make(Array[E], count)

	var group [8]byte
	for index := range elements {
		filled := copy(group[:width], data[index*width:])
		clear(group[filled:width])
		elements[index] = convert(decodeGroup(group[:width], order))
	}
	return elements
}

func decodeGroup(group []byte, order binary.ByteOrder) uint64 {
	switch len(group) {
	case 2:
		return uint64(order.Uint16(group))
	case 4:
		return uint64(order.Uint32(group))
	default:
		return order.Uint64(group)
	}
}
