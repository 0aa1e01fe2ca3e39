// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/bytecoerce/lib/coerce"
	"github.com/bureau-foundation/bytecoerce/lib/textcodec"
)

// EnvironmentVariable names the config file when --config is absent.
const EnvironmentVariable = "BYTECOERCE_CONFIG"

// Byte orders accepted by the order field.
const (
	OrderLittle = "little"
	OrderBig    = "big"
)

// Output formats accepted by the format field.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCBOR = "cbor"
)

var (
	orders  = []string{OrderLittle, OrderBig}
	formats = []string{FormatText, FormatJSON, FormatYAML, FormatCBOR}
)

// Config holds the CLI defaults. Every field can still be overridden
// by the corresponding command flag.
type Config struct {
	// Separator joins binary digit groups.
	// Default: " "
	Separator string `yaml:"separator"`

	// Order is the byte order for assembling arrays and encoding typed
	// arrays. View reads and writes take their own --order flag, which
	// defaults to big-endian independently of this.
	// Values: "little", "big". Default: little
	Order string `yaml:"order"`

	// Format is the output format.
	// Values: "text", "json", "yaml", "cbor". Default: text
	Format string `yaml:"format"`

	// Layout is the default element layout for array and cbor.
	Layout LayoutConfig `yaml:"layout"`
}

// LayoutConfig configures the default element layout.
type LayoutConfig struct {
	// Width is the element width in bytes.
	// Default: 4
	Width int `yaml:"width"`

	// Kind is the numeric interpretation: int, uint, float, wideint,
	// wideuint.
	// Default: uint
	Kind string `yaml:"kind"`
}

// Default returns the default configuration. Fields absent from a
// config file keep these values.
func Default() *Config {
	return &Config{
		Separator: textcodec.DefaultSeparator,
		Order:     OrderLittle,
		Format:    FormatText,
		Layout: LayoutConfig{
			Width: 4,
			Kind:  coerce.NumericUint.String(),
		},
	}
}

// Load loads configuration from the file named by BYTECOERCE_CONFIG.
// When the variable is unset it returns [Default]; there is no file
// discovery beyond that variable.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, layered over
// [Default], and validates it.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(orders, c.Order) {
		errs = append(errs, fmt.Errorf("order must be one of: %v", orders))
	}
	if !slices.Contains(formats, c.Format) {
		errs = append(errs, fmt.Errorf("format must be one of: %v", formats))
	}
	if _, err := c.ElementLayout(); err != nil {
		errs = append(errs, fmt.Errorf("layout: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// ByteOrder returns the configured order.
func (c *Config) ByteOrder() binary.ByteOrder {
	order, _ := ParseOrder(c.Order)
	return order
}

// ElementLayout returns the configured layout in the configured order.
func (c *Config) ElementLayout() (coerce.Layout, error) {
	kind, err := coerce.ParseNumericKind(c.Layout.Kind)
	if err != nil {
		return coerce.Layout{}, err
	}
	layout := coerce.Layout{Width: c.Layout.Width, Kind: kind, Order: c.ByteOrder()}
	if err := layout.Validate(); err != nil {
		return coerce.Layout{}, err
	}
	return layout, nil
}

// ParseOrder maps "little" and "big" (and the shorthands "le", "be")
// to a byte order. Anything else returns little-endian and an error.
func ParseOrder(name string) (binary.ByteOrder, error) {
	switch name {
	case OrderLittle, "le":
		return binary.LittleEndian, nil
	case OrderBig, "be":
		return binary.BigEndian, nil
	default:
		return binary.LittleEndian, fmt.Errorf("unknown byte order %q (want %s or %s)", name, OrderLittle, OrderBig)
	}
}
