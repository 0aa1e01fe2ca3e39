// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/bytecoerce/lib/codec"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCBOR = "cbor"
)

// Output is an embeddable struct that adds --format support to a
// command's parameter struct. Embedding it provides the --format flag
// (via struct tag processing in [BindFlags]) and the [Output.Emit]
// method for structured output.
//
// Usage:
//
//	type arrayParams struct {
//	    cli.Output
//	    Width int `json:"width" flag:"width" desc:"element width"`
//	}
//
//	// In Run:
//	if done, err := params.Emit(os.Stdout, report); done {
//	    return err
//	}
//	// ... text formatting ...
//
// Result structs carry json and yaml tags. CBOR output reads the json
// tags (see lib/codec).
type Output struct {
	Format string `json:"-" flag:"format,o" desc:"output format: text, json, yaml, cbor (default from config)"`
}

// DefaultFormat fills in the format when the flag was not given.
func (o *Output) DefaultFormat(format string) {
	if o.Format == "" {
		o.Format = format
	}
}

// Emit writes result to w in the selected structured format. Returns
// (true, nil) on success, (true, err) on failure, or (false, nil) for
// text output, where the caller should proceed with its own formatting.
//
// Nil slices are normalized to empty slices before serialization, so
// callers never need to guard against null output.
func (o *Output) Emit(w io.Writer, result any) (bool, error) {
	result = normalizeNilSlice(result)
	switch o.Format {
	case "", FormatText:
		return false, nil
	case FormatJSON:
		return true, WriteJSON(w, result)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(result); err != nil {
			return true, Internal("encode YAML: %w", err)
		}
		return true, encoder.Close()
	case FormatCBOR:
		data, err := codec.Marshal(result)
		if err != nil {
			return true, Internal("encode CBOR: %w", err)
		}
		_, err = w.Write(data)
		return true, err
	default:
		return true, Validation("unknown output format %q (want %s, %s, %s or %s)",
			o.Format, FormatText, FormatJSON, FormatYAML, FormatCBOR)
	}
}

// WriteJSON marshals value as indented JSON and writes it to w.
func WriteJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return Internal("encode JSON: %w", err)
	}
	return nil
}

// normalizeNilSlice returns an empty slice of the same type if value
// is a nil slice, so that serialization produces [] instead of null.
// Returns value unchanged for all other types.
func normalizeNilSlice(value any) any {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Slice && v.IsNil() {
		return reflect.MakeSlice(v.Type(), 0, 0).Interface()
	}
	return value
}

// Printf is fmt.Fprintf for command output. Write failures on stdout
// are reported as internal errors.
func Printf(w io.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return Internal("write output: %w", err)
	}
	return nil
}
