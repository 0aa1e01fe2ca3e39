// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package coerce

import (
	"encoding/binary"
	"math"
	"slices"
	"testing"

	"github.com/x448/float16"

	"github.com/bureau-foundation/bytecoerce/lib/testutil"
)

func TestUint32sPadding(t *testing.T) {
	// Each group reads b0 + b1*256 + b2*65536 + b3*16777216 with the
	// missing tail bytes of the last group treated as zero.
	tests := []struct {
		name  string
		input []byte
		want  []uint32
	}{
		{"empty", []byte{}, []uint32{}},
		{"one byte", []byte{7}, []uint32{7}},
		{"three bytes", []byte{1, 2, 3}, []uint32{1 + 2*256 + 3*65536}},
		{"exact", []byte{0x78, 0x56, 0x34, 0x12}, []uint32{0x12345678}},
		{"five bytes", []byte{1, 0, 0, 0, 9}, []uint32{1, 9}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Uint32s(Buffer(test.input))
			if !slices.Equal(got, test.want) {
				t.Errorf("Uint32s(%v) = %v, want %v", test.input, got, test.want)
			}
		})
	}
}

func TestAssembleElementCount(t *testing.T) {
	for length := range 20 {
		input := Buffer(make([]byte, length))
		if got, want := len(Uint16s(input)), (length+1)/2; got != want {
			t.Errorf("len(Uint16s(%d bytes)) = %d, want %d", length, got, want)
		}
		if got, want := len(Float32s(input)), (length+3)/4; got != want {
			t.Errorf("len(Float32s(%d bytes)) = %d, want %d", length, got, want)
		}
		if got, want := len(Int64s(input)), (length+7)/8; got != want {
			t.Errorf("len(Int64s(%d bytes)) = %d, want %d", length, got, want)
		}
		if got, want := len(Float64s(input)), (length+7)/8; got != want {
			t.Errorf("len(Float64s(%d bytes)) = %d, want %d", length, got, want)
		}
	}
}

func TestAssembleHelloWorld(t *testing.T) {
	// "Hello world!" is 12 bytes: three 32-bit words, two 64-bit words.
	words := Uint32s(Text("Hello world!"))
	want := []uint32{0x6c6c6548, 0x6f77206f, 0x21646c72}
	if !slices.Equal(words, want) {
		t.Errorf("Uint32s = %#x, want %#x", []uint32(words), want)
	}

	wide := Uint64s(Text("Hello world!"))
	wantWide := []uint64{0x6f77206f6c6c6548, 0x0000000021646c72}
	if !slices.Equal(wide, wantWide) {
		t.Errorf("Uint64s = %#x, want %#x", []uint64(wide), wantWide)
	}
}

func TestAssembleSignedTwosComplement(t *testing.T) {
	allOnes := Buffer{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	if got := Int64s(allOnes); !slices.Equal(got, []int64{-1}) {
		t.Errorf("Int64s(all ones) = %v, want [-1]", got)
	}
	if got := Uint64s(allOnes); !slices.Equal(got, []uint64{math.MaxUint64}) {
		t.Errorf("Uint64s(all ones) = %v, want [MaxUint64]", got)
	}
	if got := Int16s(Buffer{0x00, 0x80}); !slices.Equal(got, []int16{math.MinInt16}) {
		t.Errorf("Int16s = %v, want [%d]", got, math.MinInt16)
	}
	// Padding is zero extension, never sign extension.
	if got := Int32s(Buffer{0xff}); !slices.Equal(got, []int32{255}) {
		t.Errorf("Int32s(0xff) = %v, want [255]", got)
	}
	// 64-bit values keep every bit; a float64 detour would round this.
	if got := Uint64s(Buffer{0x01, 0, 0, 0, 0, 0, 0x20, 0}); got[0] != 0x0020000000000001 {
		t.Errorf("Uint64s = %#x, want 0x20000000000001", got[0])
	}
}

func TestAssembleFloatsReinterpretBits(t *testing.T) {
	single := binary.LittleEndian.AppendUint32(nil, math.Float32bits(1.5))
	if got := Float32s(Buffer(single)); !slices.Equal(got, []float32{1.5}) {
		t.Errorf("Float32s = %v, want [1.5]", got)
	}

	double := binary.LittleEndian.AppendUint64(nil, math.Float64bits(-2.25))
	if got := Float64s(Buffer(double)); !slices.Equal(got, []float64{-2.25}) {
		t.Errorf("Float64s = %v, want [-2.25]", got)
	}

	half := Float16s(Buffer{0x00, 0x3c})
	if len(half) != 1 || half[0].Float32() != 1 {
		t.Errorf("Float16s(0x3c00) = %v, want [1]", half)
	}

	nan := Float32s(Buffer{0x01, 0x00, 0xc0, 0x7f})
	if !math.IsNaN(float64(nan[0])) || math.Float32bits(nan[0]) != 0x7fc00001 {
		t.Errorf("NaN payload not preserved: %#x", math.Float32bits(nan[0]))
	}
}

func TestAssembleBigEndian(t *testing.T) {
	got := Uint16sOrder(Buffer{0x12, 0x34, 0x56}, binary.BigEndian)
	if !slices.Equal(got, []uint16{0x1234, 0x5600}) {
		t.Errorf("Uint16sOrder(BE) = %#x, want [0x1234 0x5600]", []uint16(got))
	}
	if got := Uint32sOrder(Buffer{1, 2, 3, 4}, nil); got[0] != 0x04030201 {
		t.Errorf("nil order should be little-endian, got %#x", got[0])
	}
}

func TestAssembleCopies(t *testing.T) {
	buffer := []byte{1, 0, 2, 0}
	words := Uint16s(Buffer(buffer))
	buffer[0] = 9
	if words[0] != 1 {
		t.Errorf("assembled array changed after input mutation: %v", words)
	}
}

func TestAssembleLayouts(t *testing.T) {
	input := Buffer{1, 2, 3, 4, 5, 6, 7, 8, 9}
	tests := []struct {
		layout Layout
		length int
		width  int
		kind   NumericKind
	}{
		{Layout{Width: 2, Kind: NumericInt}, 5, 2, NumericInt},
		{Layout{Width: 2, Kind: NumericUint}, 5, 2, NumericUint},
		{Layout{Width: 2, Kind: NumericFloat}, 5, 2, NumericFloat},
		{Layout{Width: 4, Kind: NumericInt}, 3, 4, NumericInt},
		{Layout{Width: 4, Kind: NumericFloat, Order: binary.BigEndian}, 3, 4, NumericFloat},
		{Layout{Width: 8, Kind: NumericUint}, 2, 8, NumericUint},
		{Layout{Width: 8, Kind: NumericWideInt}, 2, 8, NumericInt},
		{Layout{Width: 8, Kind: NumericWideUint}, 2, 8, NumericUint},
		{Layout{Width: 8, Kind: NumericFloat}, 2, 8, NumericFloat},
	}
	for _, test := range tests {
		t.Run(test.layout.Kind.String(), func(t *testing.T) {
			array, err := Assemble(input, test.layout)
			testutil.RequireNoError(t, err, "Assemble(%d-byte %s)", test.layout.Width, test.layout.Kind)
			if array.Len() != test.length {
				t.Errorf("Len() = %d, want %d", array.Len(), test.length)
			}
			layout := array.Layout()
			if layout.Width != test.width || layout.Kind != test.kind {
				t.Errorf("Layout() = %d-byte %s, want %d-byte %s", layout.Width, layout.Kind, test.width, test.kind)
			}
		})
	}
}

func TestAssembleMatchesTypedHelpers(t *testing.T) {
	input := Text("Hello world!")
	array, err := Assemble(input, Layout{Width: 4, Kind: NumericUint})
	testutil.RequireNoError(t, err, "Assemble")
	if !slices.Equal(array.(Array[uint32]), Uint32s(input)) {
		t.Errorf("Assemble = %v, want %v", array, Uint32s(input))
	}

	half, err := Assemble(input, Layout{Width: 2, Kind: NumericFloat})
	testutil.RequireNoError(t, err, "Assemble float16")
	if _, ok := half.(Array[float16.Float16]); !ok {
		t.Errorf("2-byte float layout produced %T", half)
	}
}

func TestAssembleUnsupportedLayout(t *testing.T) {
	for _, layout := range []Layout{
		{Width: 1, Kind: NumericUint},
		{Width: 3, Kind: NumericInt},
		{Width: 4, Kind: NumericWideInt},
		{Width: 2, Kind: NumericWideUint},
		{Width: 8},
		{Width: 16, Kind: NumericFloat},
	} {
		_, err := Assemble(Buffer{1}, layout)
		testutil.RequireErrorIs(t, err, ErrUnsupportedLayout, "Assemble(%d-byte %s)", layout.Width, layout.Kind)
	}
}

func TestParseNumericKind(t *testing.T) {
	for _, kind := range []NumericKind{NumericInt, NumericUint, NumericFloat, NumericWideInt, NumericWideUint} {
		parsed, err := ParseNumericKind(kind.String())
		testutil.RequireNoError(t, err, "ParseNumericKind(%q)", kind.String())
		if parsed != kind {
			t.Errorf("ParseNumericKind(%q) = %s", kind.String(), parsed)
		}
	}
	if kind, err := ParseNumericKind("FLOAT"); err != nil || kind != NumericFloat {
		t.Errorf("ParseNumericKind is case-sensitive: %v, %v", kind, err)
	}
	_, err := ParseNumericKind("complex")
	testutil.RequireErrorIs(t, err, ErrUnsupportedLayout, "ParseNumericKind(complex)")
}

func TestArrayAppendBytes(t *testing.T) {
	array := Array[uint32]{0x01020304, 0x0a0b0c0d}
	testutil.RequireBytes(t, array.AppendBytes(nil, binary.BigEndian),
		[]byte{1, 2, 3, 4, 0x0a, 0x0b, 0x0c, 0x0d}, "big-endian")
	testutil.RequireBytes(t, array.AppendBytes([]byte{0xee}, binary.LittleEndian),
		[]byte{0xee, 4, 3, 2, 1, 0x0d, 0x0c, 0x0b, 0x0a}, "little-endian after prefix")
	testutil.RequireBytes(t, array.AppendBytes(nil, nil), array.AppendBytes(nil, binary.LittleEndian), "nil order")

	// Round trip through the assembler in both orders.
	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		again := Uint32sOrder(Buffer(array.AppendBytes(nil, order)), order)
		if !slices.Equal(again, array) {
			t.Errorf("round trip in %v = %#x, want %#x", order, []uint32(again), []uint32(array))
		}
	}

	if array[0] != 0x01020304 {
		t.Error("AppendBytes modified the array")
	}
}
