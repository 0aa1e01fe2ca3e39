// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the bytecoerce
// CLI.
//
// Configuration is loaded from a single file specified by either the
// BYTECOERCE_CONFIG environment variable (via [Load]) or a --config
// flag (via [LoadFile]). There is no ~/.config discovery and no
// automatic file search. With neither set, [Default] applies.
//
// A config file only sets defaults; command flags always win:
//
//	separator: ","
//	order: big
//	format: json
//	layout:
//	  width: 8
//	  kind: wideint
//
// Key exports:
//
//   - [Config] -- separator, order, output format, element layout
//   - [Default] -- the built-in defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [ParseOrder] -- the "little"/"big" names used by config and flags
package config
