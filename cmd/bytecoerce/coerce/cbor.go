// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package coerce

import (
	"context"
	"encoding/hex"
	"io"
	"log/slog"
	"os"

	"github.com/bureau-foundation/bytecoerce/cmd/bytecoerce/cli"
	libcoerce "github.com/bureau-foundation/bytecoerce/lib/coerce"
	"github.com/bureau-foundation/bytecoerce/lib/codec"
)

// CBOR rendering modes for --as.
const (
	asDiagnostic = "diag"
)

type cborParams struct {
	commonParams
	inputParams
	layoutParams
	As     string `json:"-" flag:"as"       desc:"text rendering of the encoding: raw, hex or diag" default:"raw"`
	Decode bool   `json:"-" flag:"decode,d" desc:"decode a typed array and print its elements"`
}

// cborResult is the structured output of typed-array encoding.
type cborResult struct {
	Tag        uint64       `json:"tag"        yaml:"tag"`
	Layout     layoutResult `json:"layout"     yaml:"layout"`
	Hex        string       `json:"hex"        yaml:"hex"`
	Diagnostic string       `json:"diagnostic" yaml:"diagnostic"`
}

func cborCommand() *cli.Command {
	var params cborParams

	return &cli.Command{
		Name:    "cbor",
		Summary: "Encode or decode an RFC 8746 CBOR typed array",
		Description: `Assemble the input like "array" and encode the elements as a CBOR
typed array (RFC 8746): a tag naming the element type and byte order
wrapping a byte string of the elements.

With --decode the input is a typed array; its elements are printed as
"array" would print them. 8-bit arrays, including the clamped uint8
tag, decode as well as the 16, 32 and 64-bit ones.`,
		Usage: "bytecoerce cbor [flags] [text...]",
		Examples: []cli.Example{
			{
				Description: "Encode 16-bit words and show diagnostic notation",
				Command:     "bytecoerce cbor -w 2 -k uint --hex 3412cdab --as diag",
			},
			{
				Description: "Big-endian float32 typed array to a file",
				Command:     "bytecoerce cbor -w 4 -k float --order big 'Hello world!' > floats.cbor",
			},
			{
				Description: "Decode a typed array",
				Command:     "bytecoerce cbor --decode --file floats.cbor",
			},
		},
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			return runCBOR(&params, args, os.Stdin, os.Stdout, logger)
		},
	}
}

func runCBOR(params *cborParams, args []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	cfg, err := params.loadConfig()
	if err != nil {
		return err
	}
	input, err := params.inputParams.resolve(args, stdin)
	if err != nil {
		return err
	}
	logInput(logger, input)

	if params.Decode {
		return decodeTypedArray(params, input, stdout)
	}

	layout, err := params.layoutParams.resolve(cfg)
	if err != nil {
		return err
	}
	numeric, err := libcoerce.Assemble(input, layout)
	if err != nil {
		return cli.Validation("%w", err)
	}
	encoded, err := codec.MarshalTypedArray(numeric, layout.Order)
	if err != nil {
		return cli.Internal("encode typed array: %w", err)
	}
	tag, err := codec.TypedArrayTag(numeric.Layout(), layout.Order)
	if err != nil {
		return cli.Internal("typed array tag: %w", err)
	}
	diagnostic, err := codec.Diagnose(encoded)
	if err != nil {
		return cli.Internal("diagnose typed array: %w", err)
	}
	logger.Debug("encoded typed array", "tag", tag, "elements", numeric.Len(), "bytes", len(encoded))

	result := cborResult{
		Tag: tag,
		Layout: layoutResult{
			Width: layout.Width,
			Kind:  layout.Kind.String(),
			Order: orderName(layout.Order),
		},
		Hex:        hex.EncodeToString(encoded),
		Diagnostic: diagnostic,
	}
	if done, err := params.Emit(stdout, result); done {
		return err
	}

	switch params.As {
	case asDiagnostic:
		return cli.Printf(stdout, "%s\n", diagnostic)
	case asHex, asRaw:
		return writeBytes(stdout, encoded, params.As)
	default:
		return cli.Validation("--as must be %s, %s or %s, got %q", asRaw, asHex, asDiagnostic, params.As)
	}
}

func decodeTypedArray(params *cborParams, input libcoerce.Input, stdout io.Writer) error {
	data := libcoerce.Normalize(input).Bytes()
	tag, err := codec.TypedArrayTagOf(data)
	if err != nil {
		return cli.Validation("%w", err)
	}
	layout, err := codec.ParseTypedArrayTag(tag)
	if err != nil {
		return cli.Validation("%w", err)
	}
	numeric, err := codec.UnmarshalTypedArray(data)
	if err != nil {
		return cli.Validation("%w", err)
	}

	result := newArrayResult(numeric, orderName(layout.Order))
	if done, err := params.Emit(stdout, result); done {
		return err
	}
	return writeElements(stdout, result.Elements)
}
