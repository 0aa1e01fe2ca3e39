// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package coerce

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/bureau-foundation/bytecoerce/cmd/bytecoerce/cli"
	"github.com/bureau-foundation/bytecoerce/lib/config"
)

var helloWorld = []byte("Hello world!")

// isolateConfig keeps the caller's BYTECOERCE_CONFIG out of the test.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvironmentVariable, "")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func requireCategory(t *testing.T, err error, category cli.ErrorCategory) {
	t.Helper()
	if err == nil {
		t.Fatalf("got nil error, want %s", category)
	}
	var toolError *cli.ToolError
	if !errors.As(err, &toolError) {
		t.Fatalf("error %v is not a ToolError", err)
	}
	if toolError.Category != category {
		t.Fatalf("category = %s, want %s (error: %v)", toolError.Category, category, err)
	}
}
