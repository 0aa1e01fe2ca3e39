// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package coerce

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"unsafe"

	"github.com/x448/float16"
	"golang.org/x/exp/constraints"
)

// Element is any fixed-width numeric type an [Array] can hold.
// float16.Float16 qualifies through its uint16 representation and is
// reported as a half-precision float by [Array.Layout].
type Element interface {
	constraints.Integer | constraints.Float
}

// NumericKind selects how an assembled group of bytes is interpreted.
type NumericKind uint8

const (
	// NumericInt is a two's-complement signed integer.
	NumericInt NumericKind = iota + 1
	// NumericUint is an unsigned integer.
	NumericUint
	// NumericFloat is an IEEE-754 float (binary16, binary32, binary64).
	NumericFloat
	// NumericWideInt is a 64-bit signed integer assembled without
	// passing through a narrower type.
	NumericWideInt
	// NumericWideUint is the unsigned counterpart of NumericWideInt.
	NumericWideUint
)

var numericKindNames = map[NumericKind]string{
	NumericInt:      "int",
	NumericUint:     "uint",
	NumericFloat:    "float",
	NumericWideInt:  "wideint",
	NumericWideUint: "wideuint",
}

func (k NumericKind) String() string {
	if name, ok := numericKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("NumericKind(%d)", uint8(k))
}

// ParseNumericKind parses the names printed by [NumericKind.String].
func ParseNumericKind(name string) (NumericKind, error) {
	for kind, candidate := range numericKindNames {
		if strings.EqualFold(name, candidate) {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown numeric kind %q", ErrUnsupportedLayout, name)
}

// Layout describes one element of a fixed-width array.
type Layout struct {
	// Width is the element size in bytes.
	Width int

	// Kind is the numeric interpretation.
	Kind NumericKind

	// Order is the byte order elements are assembled in. Nil means
	// little-endian.
	Order binary.ByteOrder
}

// Validate reports whether [Assemble] can produce this layout.
func (l Layout) Validate() error {
	switch l.Width {
	case 2, 4:
		switch l.Kind {
		case NumericInt, NumericUint, NumericFloat:
			return nil
		}
	case 8:
		switch l.Kind {
		case NumericInt, NumericUint, NumericFloat, NumericWideInt, NumericWideUint:
			return nil
		}
	}
	return fmt.Errorf("%w: %d-byte %s", ErrUnsupportedLayout, l.Width, l.Kind)
}

func (l Layout) byteOrder() binary.ByteOrder {
	if l.Order == nil {
		return binary.LittleEndian
	}
	return l.Order
}

// Numeric is a fixed-width array of any element type. Every [Array]
// implements it.
type Numeric interface {
	Input

	// Len returns the number of elements.
	Len() int

	// Layout describes the element type. Order is [HostOrder], the
	// order of the elements in memory.
	Layout() Layout

	// AppendBytes appends the elements to dst encoded in order.
	AppendBytes(dst []byte, order binary.ByteOrder) []byte
}

// Array is a typed fixed-width numeric slice. As an [Input] its byte
// view is the slice's own memory: len(a)*width bytes in host order, no
// copy.
type Array[E Element] []E

func (Array[E]) Kind() Kind { return KindArray }

func (a Array[E]) byteView() ByteView {
	return ByteView{data: elementBytes(a), aliased: true}
}

// Len returns the number of elements.
func (a Array[E]) Len() int {
	return len(a)
}

// Layout describes E.
func (a Array[E]) Layout() Layout {
	var zero E
	layout := Layout{Width: int(unsafe.Sizeof(zero)), Order: HostOrder()}
	if _, half := any(zero).(float16.Float16); half {
		layout.Kind = NumericFloat
		return layout
	}
	switch reflect.TypeFor[E]().Kind() {
	case reflect.Float32, reflect.Float64:
		layout.Kind = NumericFloat
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		layout.Kind = NumericInt
	default:
		layout.Kind = NumericUint
	}
	return layout
}

// AppendBytes appends the elements to dst in the given order (nil means
// little-endian).
func (a Array[E]) AppendBytes(dst []byte, order binary.ByteOrder) []byte {
	if order == nil {
		order = binary.LittleEndian
	}
	native := elementBytes(a)
	start := len(dst)
	dst = append(dst, native...)

	width := a.Layout().Width
	if width == 1 || isBigEndian(order) == isBigEndian(HostOrder()) {
		return dst
	}
	for offset := start; offset < len(dst); offset += width {
		slices.Reverse(dst[offset : offset+width])
	}
	return dst
}

// elementBytes reinterprets the elements' memory as bytes.
func elementBytes[E Element](elements []E) []byte {
	if len(elements) == 0 {
		return []byte{}
	}
	width := int(unsafe.Sizeof(elements[0]))
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(elements))), len(elements)*width)
}
