// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package coerce

import (
	"encoding/binary"
	"log/slog"

	"github.com/bureau-foundation/bytecoerce/cmd/bytecoerce/cli"
	libcoerce "github.com/bureau-foundation/bytecoerce/lib/coerce"
	"github.com/bureau-foundation/bytecoerce/lib/config"
)

// commonParams are the flags every subcommand accepts.
type commonParams struct {
	cli.Output
	Config  string `json:"-" flag:"config" desc:"YAML config file (default $BYTECOERCE_CONFIG)"`
	Verbose bool   `json:"-" flag:"verbose,v" desc:"log debug detail to stderr"`
}

// LogLevel implements [cli.LevelSetter].
func (p *commonParams) LogLevel() slog.Level {
	if p.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// loadConfig reads the configuration and fills in the output format
// when --format was not given.
func (p *commonParams) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if p.Config != "" {
		cfg, err = config.LoadFile(p.Config)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, cli.Validation("%w", err)
	}
	p.DefaultFormat(cfg.Format)
	return cfg, nil
}

// layoutParams select an element layout. Zero values fall back to the
// configured layout.
type layoutParams struct {
	Width int    `json:"width" flag:"width,w" desc:"element width in bytes: 2, 4 or 8 (default from config)"`
	Kind  string `json:"kind"  flag:"kind,k"  desc:"element kind: int, uint, float, wideint, wideuint (default from config)"`
	Order string `json:"order" flag:"order"   desc:"byte order: little or big (default from config)"`
}

// resolve merges the flags over the configured layout.
func (p *layoutParams) resolve(cfg *config.Config) (libcoerce.Layout, error) {
	merged := *cfg
	if p.Width != 0 {
		merged.Layout.Width = p.Width
	}
	if p.Kind != "" {
		merged.Layout.Kind = p.Kind
	}
	if p.Order != "" {
		merged.Order = p.Order
	}

	order, err := config.ParseOrder(merged.Order)
	if err != nil {
		return libcoerce.Layout{}, cli.Validation("--order: %w", err)
	}
	layout, err := merged.ElementLayout()
	if err != nil {
		return libcoerce.Layout{}, cli.Validation("%w", err).
			WithHint("Valid layouts: width 2 or 4 with int, uint or float; width 8 with any kind.")
	}
	layout.Order = order
	return layout, nil
}

// viewOrder parses the --order flag of the view commands. Unlike
// array assembly these default to big-endian regardless of config.
func viewOrder(name string) (binary.ByteOrder, error) {
	order, err := config.ParseOrder(name)
	if err != nil {
		return nil, cli.Validation("--order: %w", err)
	}
	return order, nil
}
