// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package coerce

import (
	"bytes"
	"encoding/binary"
	"slices"

	"golang.org/x/sys/cpu"

	"github.com/bureau-foundation/bytecoerce/lib/textcodec"
)

// ByteView is the canonical flat byte sequence produced by [Normalize].
// Its length is exact. When [ByteView.Aliased] is true the bytes belong
// to the caller's input and change when that input changes.
type ByteView struct {
	data    []byte
	aliased bool
}

// Normalize returns the byte view of input. It cannot fail for any
// member of the union; a nil input is a programming error and panics.
func Normalize(input Input) ByteView {
	if input == nil {
		panic("coerce.Normalize: nil Input")
	}
	return input.byteView()
}

// Len returns the number of bytes.
func (b ByteView) Len() int {
	return len(b.data)
}

// Bytes returns the bytes without copying. Callers must not modify
// them unless they own the input the view was made from.
func (b ByteView) Bytes() []byte {
	return b.data
}

// Aliased reports whether the bytes are shared with the caller's input.
func (b ByteView) Aliased() bool {
	return b.aliased
}

// Clone returns a view over a private copy of the bytes.
func (b ByteView) Clone() ByteView {
	data := slices.Clone(b.data)
	if data == nil {
		data = []byte{}
	}
	return ByteView{data: data}
}

// String decodes the bytes as UTF-8.
func (b ByteView) String() string {
	return textcodec.DecodeUTF8(b.data)
}

// Equal reports whether both views hold the same bytes.
func (b ByteView) Equal(other ByteView) bool {
	return bytes.Equal(b.data, other.data)
}

// HostOrder returns the byte order of the running machine. Array inputs
// are viewed in this order because their bytes are the array's memory.
func HostOrder() binary.ByteOrder {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// isBigEndian reports the order an arbitrary ByteOrder writes in, so
// that binary.NativeEndian and custom orders compare correctly.
func isBigEndian(order binary.ByteOrder) bool {
	var probe [2]byte
	order.PutUint16(probe[:], 1)
	return probe[1] == 1
}
