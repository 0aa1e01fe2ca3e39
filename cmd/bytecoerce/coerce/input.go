// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package coerce

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"math/big"
	"os"
	"strings"
	"unicode"

	"github.com/tidwall/jsonc"

	"github.com/bureau-foundation/bytecoerce/cmd/bytecoerce/cli"
	libcoerce "github.com/bureau-foundation/bytecoerce/lib/coerce"
	"github.com/bureau-foundation/bytecoerce/lib/config"
)

// inputParams select where a command's single input comes from. At
// most one source may be given; with none, the input is stdin.
type inputParams struct {
	File   string `json:"-" flag:"file,f"   desc:"read the input from a file (- for stdin)"`
	Hex    string `json:"-" flag:"hex,x"    desc:"input as hex digits, whitespace ignored"`
	Bytes  string `json:"-" flag:"bytes,b"  desc:"input as a JSON list of byte values, e.g. '[72, 105]'"`
	Number string `json:"-" flag:"number,n" desc:"input as an integer, coerced through its decimal text"`
	UTF16  string `json:"-" flag:"utf16"    desc:"transcode file, hex or stdin bytes from UTF-16 (le or be)"`
}

// resolve builds the command input from the flags and positional args.
// stdin is read only when no other source is given or --file is "-".
func (p *inputParams) resolve(args []string, stdin io.Reader) (libcoerce.Input, error) {
	sources := 0
	for _, given := range []bool{len(args) > 0, p.File != "", p.Hex != "", p.Bytes != "", p.Number != ""} {
		if given {
			sources++
		}
	}
	if sources > 1 {
		return nil, cli.Validation("more than one input given").
			WithHint("Pass text arguments, --file, --hex, --bytes or --number, not a combination.")
	}

	if p.UTF16 != "" && (len(args) > 0 || p.Bytes != "" || p.Number != "") {
		return nil, cli.Validation("--utf16 applies only to --file, --hex or stdin input")
	}

	switch {
	case len(args) > 0:
		return libcoerce.Text(strings.Join(args, " ")), nil
	case p.Bytes != "":
		return parseByteList(p.Bytes)
	case p.Number != "":
		return parseNumber(p.Number)
	}

	var data []byte
	var err error
	switch {
	case p.Hex != "":
		data, err = decodeHexInput([]byte(p.Hex))
	case p.File != "" && p.File != "-":
		data, err = readFile(p.File)
	default:
		data, err = io.ReadAll(stdin)
		if err != nil {
			err = cli.Internal("read stdin: %w", err)
		}
	}
	if err != nil {
		return nil, err
	}

	if p.UTF16 != "" {
		order, err := config.ParseOrder(p.UTF16)
		if err != nil {
			return nil, cli.Validation("--utf16: %w", err)
		}
		text, err := libcoerce.FromUTF16(data, order)
		if err != nil {
			return nil, cli.Validation("%w", err)
		}
		return text, nil
	}
	return libcoerce.Buffer(data), nil
}

// readFile reads a named input file, reporting a missing file as
// not-found rather than internal.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, cli.NotFound("read %s: %w", path, err)
	}
	if err != nil {
		return nil, cli.Internal("read %s: %w", path, err)
	}
	return data, nil
}

// decodeHexInput strips whitespace from hex-encoded input and decodes
// it. Whitespace between digit pairs is allowed ("48 65 6c" or
// "48656c").
func decodeHexInput(data []byte) ([]byte, error) {
	cleaned := bytes.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, data)

	decoded := make([]byte, hex.DecodedLen(len(cleaned)))
	count, err := hex.Decode(decoded, cleaned)
	if err != nil {
		return nil, cli.Validation("decode hex: %w", err)
	}
	return decoded[:count], nil
}

// parseByteList parses a JSON list of integers into a Sequence. The
// list may carry comments and trailing commas. Values outside 0-255
// are accepted and truncated to their low byte by the coercion.
func parseByteList(text string) (libcoerce.Sequence, error) {
	var values []int
	if err := json.Unmarshal(jsonc.ToJSON([]byte(text)), &values); err != nil {
		return nil, cli.Validation("--bytes: %w", err).
			WithHint("Pass a JSON list of integers, e.g. --bytes '[72, 101, 108, 108, 111]'.")
	}
	if values == nil {
		values = []int{}
	}
	return libcoerce.Sequence(values), nil
}

// parseNumber parses a decimal integer of any size into a scalar input.
func parseNumber(text string) (libcoerce.Input, error) {
	value, ok := new(big.Int).SetString(strings.TrimSpace(text), 10)
	if !ok {
		return nil, cli.Validation("--number: %q is not a decimal integer", text)
	}
	switch {
	case value.IsInt64():
		return libcoerce.Int(value.Int64()), nil
	case value.IsUint64():
		return libcoerce.Uint(value.Uint64()), nil
	default:
		return libcoerce.BigInt{Value: value}, nil
	}
}

// logInput records the resolved input at debug level.
func logInput(logger *slog.Logger, input libcoerce.Input) {
	logger.Debug("resolved input",
		"kind", input.Kind().String(),
		"bytes", libcoerce.Normalize(input).Len(),
	)
}
