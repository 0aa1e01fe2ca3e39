// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package coerce

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"strconv"

	"github.com/x448/float16"
	"golang.org/x/exp/constraints"

	"github.com/bureau-foundation/bytecoerce/lib/textcodec"
)

// Kind discriminates the variants of [Input].
type Kind uint8

const (
	// KindText is UTF-8 text ([Text]).
	KindText Kind = iota + 1
	// KindScalar is an integer coerced via its decimal text ([Int],
	// [Uint], [BigInt]).
	KindScalar
	// KindSequence is a list of small integers, one per byte ([Sequence]).
	KindSequence
	// KindBuffer is a raw byte slice ([Buffer]).
	KindBuffer
	// KindArray is a typed fixed-width numeric slice ([Array]).
	KindArray
	// KindView is an existing addressable view (*[View]).
	KindView
)

var kindNames = map[Kind]string{
	KindText:     "text",
	KindScalar:   "scalar",
	KindSequence: "sequence",
	KindBuffer:   "buffer",
	KindArray:    "array",
	KindView:     "view",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Aliases reports whether inputs of this kind share storage with the
// caller instead of being copied.
func (k Kind) Aliases() bool {
	switch k {
	case KindBuffer, KindArray, KindView:
		return true
	default:
		return false
	}
}

// Input is the closed set of byte-like values the package accepts. The
// unexported method keeps the set closed: only the types in this
// package implement it.
type Input interface {
	// Kind reports which variant this is.
	Kind() Kind

	byteView() ByteView
}

// Text is UTF-8 text. Its byte view is a fresh copy of the encoding.
type Text string

func (Text) Kind() Kind { return KindText }

func (t Text) byteView() ByteView {
	return ByteView{data: textcodec.EncodeText(string(t))}
}

// FromUTF16 transcodes UTF-16 text in the given byte order (nil means
// little-endian; a leading byte order mark overrides it) into [Text].
func FromUTF16(data []byte, order binary.ByteOrder) (Text, error) {
	decoded, err := textcodec.DecodeUTF16(data, order)
	if err != nil {
		return "", fmt.Errorf("coerce: %w", err)
	}
	return Text(decoded), nil
}

// Int is a signed integer scalar, coerced via its decimal text.
type Int int64

func (Int) Kind() Kind { return KindScalar }

func (i Int) byteView() ByteView {
	return Text(strconv.FormatInt(int64(i), 10)).byteView()
}

// Uint is an unsigned integer scalar, coerced via its decimal text.
type Uint uint64

func (Uint) Kind() Kind { return KindScalar }

func (u Uint) byteView() ByteView {
	return Text(strconv.FormatUint(uint64(u), 10)).byteView()
}

// BigInt is an arbitrary-precision integer scalar, coerced via its
// decimal text. A nil Value reads as zero.
type BigInt struct {
	Value *big.Int
}

func (BigInt) Kind() Kind { return KindScalar }

func (b BigInt) byteView() ByteView {
	if b.Value == nil {
		return Text("0").byteView()
	}
	return Text(b.Value.Text(10)).byteView()
}

// FromInteger wraps any Go integer as a scalar input.
func FromInteger[N constraints.Integer](value N) Input {
	if value < 0 {
		return Int(int64(value))
	}
	return Uint(uint64(value))
}

// Sequence is an ordered list of small integers, one per byte. Values
// are not range checked: each is truncated to its low 8 bits, so -1
// becomes 255 and 256 becomes 0.
type Sequence []int

func (Sequence) Kind() Kind { return KindSequence }

func (s Sequence) byteView() ByteView {
	data := make([]byte, len(s))
	for index, value := range s {
		data[index] = byte(value)
	}
	return ByteView{data: data}
}

// Buffer is a raw byte slice. Its byte view aliases the slice.
type Buffer []byte

func (Buffer) Kind() Kind { return KindBuffer }

func (b Buffer) byteView() ByteView {
	return ByteView{data: b, aliased: true}
}

// From maps a Go value onto the [Input] union:
//
//	Input (any variant)          itself
//	string                       Text
//	[]byte                       Buffer
//	[]int                        Sequence
//	int, int8 ... uint64         Int or Uint
//	*big.Int                     BigInt
//	[]int8 ... []float64         Array of the same element type
//	[]float16.Float16            Array[float16.Float16]
//
// Anything else (functions, structs, maps, bools, floats, nil) fails
// with [ErrInvalidInputKind].
func From(value any) (Input, error) {
	switch v := value.(type) {
	case *View:
		if v == nil {
			return nil, fmt.Errorf("%w: nil *View", ErrInvalidInputKind)
		}
		return v, nil
	case Input:
		return v, nil
	case string:
		return Text(v), nil
	case []byte:
		return Buffer(v), nil
	case []int:
		return Sequence(v), nil
	case int:
		return FromInteger(v), nil
	case int8:
		return FromInteger(v), nil
	case int16:
		return FromInteger(v), nil
	case int32:
		return FromInteger(v), nil
	case int64:
		return FromInteger(v), nil
	case uint:
		return FromInteger(v), nil
	case uint8:
		return FromInteger(v), nil
	case uint16:
		return FromInteger(v), nil
	case uint32:
		return FromInteger(v), nil
	case uint64:
		return FromInteger(v), nil
	case *big.Int:
		if v == nil {
			return nil, fmt.Errorf("%w: nil *big.Int", ErrInvalidInputKind)
		}
		return BigInt{Value: v}, nil
	case []int8:
		return Array[int8](v), nil
	case []int16:
		return Array[int16](v), nil
	case []int32:
		return Array[int32](v), nil
	case []int64:
		return Array[int64](v), nil
	case []uint:
		return Array[uint](v), nil
	case []uint16:
		return Array[uint16](v), nil
	case []uint32:
		return Array[uint32](v), nil
	case []uint64:
		return Array[uint64](v), nil
	case []float16.Float16:
		return Array[float16.Float16](v), nil
	case []float32:
		return Array[float32](v), nil
	case []float64:
		return Array[float64](v), nil
	case nil:
		return nil, fmt.Errorf("%w: nil", ErrInvalidInputKind)
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidInputKind, value)
	}
}
