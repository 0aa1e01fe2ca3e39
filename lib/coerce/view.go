// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package coerce

import (
	"encoding/binary"
	"fmt"
	"math"
	"slices"
	"unsafe"

	"github.com/x448/float16"
)

// View is a bounds-checked window of bytes supporting scalar reads and
// writes at byte offsets. It is byte granular: no element-count
// reinterpretation happens when one is built from an [Array].
//
// Multi-byte accessors take the byte order explicitly. A nil order
// means big-endian, the convention of the DataView interface this type
// mirrors; it is deliberately not the little-endian default of
// [Assemble].
type View struct {
	storage []byte
	offset  int
	length  int
	aliased bool
}

// Handle identifies the storage behind a view. Views built over the
// same storage, including sub-views, share a Handle. Views over empty
// storage have the zero Handle.
type Handle struct {
	base *byte
}

// ToView returns a view over the byte view of input. A *View input is
// returned as is, so ToView(ToView(x)) == ToView(x).
func ToView(input Input) *View {
	if view, ok := input.(*View); ok {
		return view
	}
	bytes := Normalize(input)
	return &View{
		storage: bytes.data,
		length:  len(bytes.data),
		aliased: bytes.aliased,
	}
}

// ViewOf is [ToView] for values of unknown type. It fails with
// [ErrInvalidInputKind] for anything [From] rejects and for bare integer
// scalars, which have no storage to view.
func ViewOf(value any) (*View, error) {
	input, err := From(value)
	if err != nil {
		return nil, err
	}
	if input.Kind() == KindScalar {
		return nil, fmt.Errorf("%w: scalar %T has no backing storage", ErrInvalidInputKind, value)
	}
	return ToView(input), nil
}

// NewView returns a view of length bytes of buffer starting at offset.
// The view aliases buffer.
func NewView(buffer []byte, offset, length int) (*View, error) {
	if offset < 0 || length < 0 || offset > len(buffer) || length > len(buffer)-offset {
		return nil, &BoundsError{Op: "NewView", Offset: offset, Width: length, Length: len(buffer)}
	}
	return &View{storage: buffer, offset: offset, length: length, aliased: true}, nil
}

func (*View) Kind() Kind { return KindView }

func (v *View) byteView() ByteView {
	return ByteView{data: v.Bytes(), aliased: true}
}

// ByteLength returns the number of bytes in the view.
func (v *View) ByteLength() int {
	return v.length
}

// ByteOffset returns where the view starts within its storage.
func (v *View) ByteOffset() int {
	return v.offset
}

// Bytes returns the viewed bytes without copying.
func (v *View) Bytes() []byte {
	return v.storage[v.offset : v.offset+v.length : v.offset+v.length]
}

// Aliased reports whether the view writes through to caller storage.
func (v *View) Aliased() bool {
	return v.aliased
}

// Identity returns the handle of the view's storage.
func (v *View) Identity() Handle {
	if len(v.storage) == 0 {
		return Handle{}
	}
	return Handle{base: unsafe.SliceData(v.storage)}
}

// Sub returns a view of length bytes starting at offset within v. The
// sub-view shares v's storage.
func (v *View) Sub(offset, length int) (*View, error) {
	if offset < 0 || length < 0 || offset > v.length || length > v.length-offset {
		return nil, &BoundsError{Op: "Sub", Offset: offset, Width: length, Length: v.length}
	}
	return &View{storage: v.storage, offset: v.offset + offset, length: length, aliased: true}, nil
}

// Clone returns a view over a private copy of the viewed bytes.
func (v *View) Clone() *View {
	storage := slices.Clone(v.Bytes())
	if storage == nil {
		storage = []byte{}
	}
	return &View{storage: storage, length: len(storage)}
}

// window returns the width bytes at offset, or a *BoundsError.
func (v *View) window(op string, offset, width int) ([]byte, error) {
	if offset < 0 || width > v.length || offset > v.length-width {
		return nil, &BoundsError{Op: op, Offset: offset, Width: width, Length: v.length}
	}
	start := v.offset + offset
	return v.storage[start : start+width], nil
}

func viewOrder(order binary.ByteOrder) binary.ByteOrder {
	if order == nil {
		return binary.BigEndian
	}
	return order
}

// Uint8 reads the byte at offset.
func (v *View) Uint8(offset int) (uint8, error) {
	window, err := v.window("Uint8", offset, 1)
	if err != nil {
		return 0, err
	}
	return window[0], nil
}

// Int8 reads the byte at offset as a signed value.
func (v *View) Int8(offset int) (int8, error) {
	window, err := v.window("Int8", offset, 1)
	if err != nil {
		return 0, err
	}
	return int8(window[0]), nil
}

// Uint16 reads a 16-bit unsigned integer at offset.
func (v *View) Uint16(offset int, order binary.ByteOrder) (uint16, error) {
	return v.uint16At("Uint16", offset, order)
}

// Int16 reads a 16-bit signed integer at offset.
func (v *View) Int16(offset int, order binary.ByteOrder) (int16, error) {
	value, err := v.uint16At("Int16", offset, order)
	return int16(value), err
}

// Float16 reads an IEEE-754 half-precision float at offset.
func (v *View) Float16(offset int, order binary.ByteOrder) (float16.Float16, error) {
	bits, err := v.uint16At("Float16", offset, order)
	return float16.Frombits(bits), err
}

// Uint32 reads a 32-bit unsigned integer at offset.
func (v *View) Uint32(offset int, order binary.ByteOrder) (uint32, error) {
	return v.uint32At("Uint32", offset, order)
}

// Int32 reads a 32-bit signed integer at offset.
func (v *View) Int32(offset int, order binary.ByteOrder) (int32, error) {
	value, err := v.uint32At("Int32", offset, order)
	return int32(value), err
}

// Float32 reads a binary32 float at offset.
func (v *View) Float32(offset int, order binary.ByteOrder) (float32, error) {
	bits, err := v.uint32At("Float32", offset, order)
	return math.Float32frombits(bits), err
}

// Uint64 reads a 64-bit unsigned integer at offset.
func (v *View) Uint64(offset int, order binary.ByteOrder) (uint64, error) {
	return v.uint64At("Uint64", offset, order)
}

// Int64 reads a 64-bit signed integer at offset.
func (v *View) Int64(offset int, order binary.ByteOrder) (int64, error) {
	value, err := v.uint64At("Int64", offset, order)
	return int64(value), err
}

// Float64 reads a binary64 float at offset.
func (v *View) Float64(offset int, order binary.ByteOrder) (float64, error) {
	bits, err := v.uint64At("Float64", offset, order)
	return math.Float64frombits(bits), err
}

func (v *View) uint16At(op string, offset int, order binary.ByteOrder) (uint16, error) {
	window, err := v.window(op, offset, 2)
	if err != nil {
		return 0, err
	}
	return viewOrder(order).Uint16(window), nil
}

func (v *View) uint32At(op string, offset int, order binary.ByteOrder) (uint32, error) {
	window, err := v.window(op, offset, 4)
	if err != nil {
		return 0, err
	}
	return viewOrder(order).Uint32(window), nil
}

func (v *View) uint64At(op string, offset int, order binary.ByteOrder) (uint64, error) {
	window, err := v.window(op, offset, 8)
	if err != nil {
		return 0, err
	}
	return viewOrder(order).Uint64(window), nil
}

// SetUint8 writes value at offset.
func (v *View) SetUint8(offset int, value uint8) error {
	window, err := v.window("SetUint8", offset, 1)
	if err != nil {
		return err
	}
	window[0] = value
	return nil
}

// SetInt8 writes value at offset.
func (v *View) SetInt8(offset int, value int8) error {
	window, err := v.window("SetInt8", offset, 1)
	if err != nil {
		return err
	}
	window[0] = uint8(value)
	return nil
}

// SetUint16 writes value at offset.
func (v *View) SetUint16(offset int, value uint16, order binary.ByteOrder) error {
	return v.setUint16("SetUint16", offset, value, order)
}

// SetInt16 writes value at offset.
func (v *View) SetInt16(offset int, value int16, order binary.ByteOrder) error {
	return v.setUint16("SetInt16", offset, uint16(value), order)
}

// SetFloat16 writes value at offset.
func (v *View) SetFloat16(offset int, value float16.Float16, order binary.ByteOrder) error {
	return v.setUint16("SetFloat16", offset, value.Bits(), order)
}

// SetUint32 writes value at offset.
func (v *View) SetUint32(offset int, value uint32, order binary.ByteOrder) error {
	return v.setUint32("SetUint32", offset, value, order)
}

// SetInt32 writes value at offset.
func (v *View) SetInt32(offset int, value int32, order binary.ByteOrder) error {
	return v.setUint32("SetInt32", offset, uint32(value), order)
}

// SetFloat32 writes value at offset.
func (v *View) SetFloat32(offset int, value float32, order binary.ByteOrder) error {
	return v.setUint32("SetFloat32", offset, math.Float32bits(value), order)
}

// SetUint64 writes value at offset.
func (v *View) SetUint64(offset int, value uint64, order binary.ByteOrder) error {
	return v.setUint64("SetUint64", offset, value, order)
}

// SetInt64 writes value at offset.
func (v *View) SetInt64(offset int, value int64, order binary.ByteOrder) error {
	return v.setUint64("SetInt64", offset, uint64(value), order)
}

// SetFloat64 writes value at offset.
func (v *View) SetFloat64(offset int, value float64, order binary.ByteOrder) error {
	return v.setUint64("SetFloat64", offset, math.Float64bits(value), order)
}

func (v *View) setUint16(op string, offset int, value uint16, order binary.ByteOrder) error {
	window, err := v.window(op, offset, 2)
	if err != nil {
		return err
	}
	viewOrder(order).PutUint16(window, value)
	return nil
}

func (v *View) setUint32(op string, offset int, value uint32, order binary.ByteOrder) error {
	window, err := v.window(op, offset, 4)
	if err != nil {
		return err
	}
	viewOrder(order).PutUint32(window, value)
	return nil
}

func (v *View) setUint64(op string, offset int, value uint64, order binary.ByteOrder) error {
	window, err := v.window(op, offset, 8)
	if err != nil {
		return err
	}
	viewOrder(order).PutUint64(window, value)
	return nil
}
