// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package coerce

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"

	"github.com/x448/float16"

	"github.com/bureau-foundation/bytecoerce/cmd/bytecoerce/cli"
	libcoerce "github.com/bureau-foundation/bytecoerce/lib/coerce"
)

// scalarTypes are the --type names accepted by read and write.
var scalarTypes = []string{
	"int8", "uint8",
	"int16", "uint16", "float16",
	"int32", "uint32", "float32",
	"int64", "uint64", "float64",
}

type readParams struct {
	commonParams
	inputParams
	Offset int    `json:"offset" flag:"offset" desc:"byte offset into the input"`
	Type   string `json:"type"   flag:"type,t" desc:"scalar type, e.g. uint8, int16, float32" default:"uint8"`
	Order  string `json:"order"  flag:"order"  desc:"byte order: big or little" default:"big"`
}

type writeParams struct {
	readParams
	Value string `json:"value" flag:"value" desc:"value to store (integers accept 0x, 0o and 0b prefixes)"`
	As    string `json:"-"     flag:"as"    desc:"text rendering: decimal, hex or raw" default:"decimal"`
}

// readResult is the structured output of read.
type readResult struct {
	Type   string `json:"type"   yaml:"type"`
	Offset int    `json:"offset" yaml:"offset"`
	Order  string `json:"order"  yaml:"order"`
	Value  any    `json:"value"  yaml:"value"`
}

func readCommand() *cli.Command {
	var params readParams

	return &cli.Command{
		Name:    "read",
		Summary: "Read one number at a byte offset",
		Description: `View the input's bytes and read a single number at --offset.

Reads default to big-endian, independently of the configured array
order. An access that does not fit inside the input fails and reports
the offset, width and length.`,
		Usage: "bytecoerce read [flags] [text...]",
		Examples: []cli.Example{
			{
				Description: "Big-endian uint16 at offset 1",
				Command:     "bytecoerce read --hex 00123400 --offset 1 --type uint16",
			},
			{
				Description: "Little-endian float32",
				Command:     "bytecoerce read --hex 0000803f --type float32 --order little",
			},
		},
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			return runRead(&params, args, os.Stdin, os.Stdout, logger)
		},
	}
}

func writeCommand() *cli.Command {
	var params writeParams

	return &cli.Command{
		Name:    "write",
		Summary: "Store one number at a byte offset and print the result",
		Description: `View the input's bytes, store --value at --offset and print the
modified bytes. The input is never longer afterwards: a store that does
not fit fails.

Writes default to big-endian, like read.`,
		Usage: "bytecoerce write --type <type> --value <value> [flags] [text...]",
		Examples: []cli.Example{
			{
				Description: "Store 0x1234 big-endian at offset 1",
				Command:     "bytecoerce write --hex 00000000 --offset 1 --type uint16 --value 0x1234 --as hex",
			},
			{
				Description: "Overwrite a character",
				Command:     "bytecoerce write --type uint8 --value 74 --as raw 'Hello'",
			},
		},
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			return runWrite(&params, args, os.Stdin, os.Stdout, logger)
		},
	}
}

func runRead(params *readParams, args []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	view, order, err := params.prepare(args, stdin, logger)
	if err != nil {
		return err
	}

	value, err := readScalar(view, params.Type, params.Offset, order)
	if err != nil {
		return err
	}

	result := readResult{Type: params.Type, Offset: params.Offset, Order: params.Order, Value: value}
	if done, err := params.Emit(stdout, result); done {
		return err
	}
	return writeElements(stdout, []any{value})
}

func runWrite(params *writeParams, args []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	if params.Value == "" {
		return cli.Validation("--value is required")
	}
	view, order, err := params.prepare(args, stdin, logger)
	if err != nil {
		return err
	}

	if err := writeScalar(view, params.Type, params.Offset, params.Value, order); err != nil {
		return err
	}
	logger.Debug("stored value", "type", params.Type, "offset", params.Offset, "value", params.Value)

	if done, err := params.Emit(stdout, newBytesResult(view)); done {
		return err
	}
	return writeBytes(stdout, view.Bytes(), params.As)
}

// prepare loads config, validates the type and order, and views the
// resolved input.
func (p *readParams) prepare(args []string, stdin io.Reader, logger *slog.Logger) (*libcoerce.View, binary.ByteOrder, error) {
	if _, err := p.loadConfig(); err != nil {
		return nil, nil, err
	}
	if !slices.Contains(scalarTypes, p.Type) {
		return nil, nil, cli.Validation("unknown --type %q", p.Type).
			WithHint("Valid types: int8, uint8, int16, uint16, float16, int32, uint32, float32, int64, uint64, float64.")
	}
	order, err := viewOrder(p.Order)
	if err != nil {
		return nil, nil, err
	}
	input, err := p.resolve(args, stdin)
	if err != nil {
		return nil, nil, err
	}
	logInput(logger, input)
	return libcoerce.ToView(input), order, nil
}

// readScalar reads a value of the named type, converted for output by
// [plainNumber].
func readScalar(view *libcoerce.View, typeName string, offset int, order binary.ByteOrder) (any, error) {
	var (
		value any
		err   error
	)
	switch typeName {
	case "int8":
		value, err = view.Int8(offset)
	case "uint8":
		value, err = view.Uint8(offset)
	case "int16":
		value, err = view.Int16(offset, order)
	case "uint16":
		value, err = view.Uint16(offset, order)
	case "float16":
		value, err = view.Float16(offset, order)
	case "int32":
		value, err = view.Int32(offset, order)
	case "uint32":
		value, err = view.Uint32(offset, order)
	case "float32":
		value, err = view.Float32(offset, order)
	case "int64":
		value, err = view.Int64(offset, order)
	case "uint64":
		value, err = view.Uint64(offset, order)
	case "float64":
		value, err = view.Float64(offset, order)
	default:
		return nil, cli.Validation("unknown --type %q", typeName)
	}
	if err != nil {
		return nil, cli.Validation("%w", err)
	}
	return plainNumber(value), nil
}

// writeScalar parses text as the named type and stores it.
func writeScalar(view *libcoerce.View, typeName string, offset int, text string, order binary.ByteOrder) error {
	err := storeScalar(view, typeName, offset, text, order)
	if err == nil {
		return nil
	}
	var numError *strconv.NumError
	if errors.As(err, &numError) {
		return cli.Validation("--value %q is not a valid %s: %w", text, typeName, err)
	}
	return cli.Validation("%w", err)
}

func storeScalar(view *libcoerce.View, typeName string, offset int, text string, order binary.ByteOrder) error {
	switch typeName {
	case "int8":
		value, err := strconv.ParseInt(text, 0, 8)
		if err != nil {
			return err
		}
		return view.SetInt8(offset, int8(value))
	case "uint8":
		value, err := strconv.ParseUint(text, 0, 8)
		if err != nil {
			return err
		}
		return view.SetUint8(offset, uint8(value))
	case "int16":
		value, err := strconv.ParseInt(text, 0, 16)
		if err != nil {
			return err
		}
		return view.SetInt16(offset, int16(value), order)
	case "uint16":
		value, err := strconv.ParseUint(text, 0, 16)
		if err != nil {
			return err
		}
		return view.SetUint16(offset, uint16(value), order)
	case "float16":
		value, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return err
		}
		return view.SetFloat16(offset, float16.Fromfloat32(float32(value)), order)
	case "int32":
		value, err := strconv.ParseInt(text, 0, 32)
		if err != nil {
			return err
		}
		return view.SetInt32(offset, int32(value), order)
	case "uint32":
		value, err := strconv.ParseUint(text, 0, 32)
		if err != nil {
			return err
		}
		return view.SetUint32(offset, uint32(value), order)
	case "float32":
		value, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return err
		}
		return view.SetFloat32(offset, float32(value), order)
	case "int64":
		value, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return err
		}
		return view.SetInt64(offset, value, order)
	case "uint64":
		value, err := strconv.ParseUint(text, 0, 64)
		if err != nil {
			return err
		}
		return view.SetUint64(offset, value, order)
	case "float64":
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return err
		}
		return view.SetFloat64(offset, value, order)
	default:
		return fmt.Errorf("unknown --type %q", typeName)
	}
}
