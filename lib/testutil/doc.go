// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for bytecoerce packages.
//
// [RequireBytes] compares byte slices and, on mismatch, reports the
// first differing offset with both slices in hex, which is far easier
// to read than two %v dumps of decimal values.
//
// [RequireErrorIs] and [RequireNoError] encapsulate the errors.Is check
// that every failure-path test in the coerce and textcodec packages
// repeats.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since a broken precondition makes the rest of the test meaningless.
// They accept a minimal interface instead of *testing.T so they can be
// exercised by their own tests.
//
// This package has no bytecoerce-internal dependencies.
package testutil
