// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package coerce

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"reflect"
	"strings"

	"github.com/x448/float16"

	"github.com/bureau-foundation/bytecoerce/cmd/bytecoerce/cli"
	libcoerce "github.com/bureau-foundation/bytecoerce/lib/coerce"
	"github.com/bureau-foundation/bytecoerce/lib/config"
)

// Byte rendering modes for --as.
const (
	asDecimal = "decimal"
	asHex     = "hex"
	asRaw     = "raw"
)

// bytesResult is the structured form of a byte sequence.
type bytesResult struct {
	Kind    string `json:"kind"    yaml:"kind"`
	Length  int    `json:"length"  yaml:"length"`
	Aliased bool   `json:"aliased" yaml:"aliased"`
	Hex     string `json:"hex"     yaml:"hex"`
	Bytes   []int  `json:"bytes"   yaml:"bytes"`
}

func newBytesResult(input libcoerce.Input) bytesResult {
	view := libcoerce.Normalize(input)
	data := view.Bytes()
	values := make([]int, len(data))
	for index, value := range data {
		values[index] = int(value)
	}
	return bytesResult{
		Kind:    input.Kind().String(),
		Length:  view.Len(),
		Aliased: view.Aliased(),
		Hex:     hex.EncodeToString(data),
		Bytes:   values,
	}
}

// writeBytes renders data in the --as mode. Decimal and hex output end
// with a newline; raw output is the bytes alone.
func writeBytes(w io.Writer, data []byte, as string) error {
	switch as {
	case "", asDecimal:
		digits := make([]string, len(data))
		for index, value := range data {
			digits[index] = fmt.Sprint(value)
		}
		return cli.Printf(w, "%s\n", strings.Join(digits, " "))
	case asHex:
		return cli.Printf(w, "%s\n", hex.EncodeToString(data))
	case asRaw:
		if _, err := w.Write(data); err != nil {
			return cli.Internal("write output: %w", err)
		}
		return nil
	default:
		return cli.Validation("--as must be %s, %s or %s, got %q", asDecimal, asHex, asRaw, as)
	}
}

// layoutResult is the structured form of an element layout.
type layoutResult struct {
	Width int    `json:"width" yaml:"width"`
	Kind  string `json:"kind"  yaml:"kind"`
	Order string `json:"order" yaml:"order"`
}

// orderName names a byte order the way --order spells it. Single-byte
// layouts have no order.
func orderName(order binary.ByteOrder) string {
	switch order {
	case nil:
		return "none"
	case binary.BigEndian:
		return config.OrderBig
	default:
		return config.OrderLittle
	}
}

// arrayResult is the structured form of an assembled array.
type arrayResult struct {
	Layout   layoutResult `json:"layout"   yaml:"layout"`
	Length   int          `json:"length"   yaml:"length"`
	Elements []any        `json:"elements" yaml:"elements"`
}

func newArrayResult(numeric libcoerce.Numeric, orderName string) arrayResult {
	layout := numeric.Layout()
	return arrayResult{
		Layout: layoutResult{
			Width: layout.Width,
			Kind:  layout.Kind.String(),
			Order: orderName,
		},
		Length:   numeric.Len(),
		Elements: elementValues(numeric),
	}
}

// elementValues lists the elements of an array as plain Go numbers
// (see [plainNumber]).
func elementValues(numeric libcoerce.Numeric) []any {
	array := reflect.ValueOf(numeric)
	values := make([]any, array.Len())
	for index := range values {
		values[index] = plainNumber(array.Index(index).Interface())
	}
	return values
}

// plainNumber widens half-precision floats to float32 and turns NaN
// and infinities into their string form, which every output format can
// carry.
func plainNumber(value any) any {
	switch number := value.(type) {
	case float16.Float16:
		return plainNumber(number.Float32())
	case float32:
		if math.IsNaN(float64(number)) || math.IsInf(float64(number), 0) {
			return fmt.Sprint(number)
		}
	case float64:
		if math.IsNaN(number) || math.IsInf(number, 0) {
			return fmt.Sprint(number)
		}
	}
	return value
}

// writeElements prints elements separated by spaces.
func writeElements(w io.Writer, elements []any) error {
	fields := make([]string, len(elements))
	for index, element := range elements {
		fields[index] = fmt.Sprint(element)
	}
	return cli.Printf(w, "%s\n", strings.Join(fields, " "))
}
