// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binhash

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/bytecoerce/lib/coerce"
)

// Digest is a 32-byte BLAKE3 keyed digest.
type Digest [32]byte

// viewDomainKey is the BLAKE3 key for view digests: the ASCII domain
// name zero-padded to 32 bytes. Changing it changes every digest.
var viewDomainKey = [32]byte{
	'b', 'y', 't', 'e', 'c', 'o', 'e', 'r', 'c', 'e', '.', 'v', 'i', 'e', 'w', 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Sum digests the byte view of input. Typed arrays are digested in
// host order, exactly as their byte view presents them.
func Sum(input coerce.Input) Digest {
	return SumBytes(coerce.Normalize(input).Bytes())
}

// SumBytes digests data in the view domain.
func SumBytes(data []byte) Digest {
	hasher, err := blake3.NewKeyed(viewDomainKey[:])
	if err != nil {
		panic("binhash: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)

	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest
}

// FormatDigest returns the hex-encoded string representation of a
// digest.
func FormatDigest(digest Digest) string {
	return hex.EncodeToString(digest[:])
}

// String returns [FormatDigest] of d.
func (d Digest) String() string {
	return FormatDigest(d)
}

// ParseDigest parses a hex-encoded digest string. Returns an error if
// the string is not a valid 64-character hex encoding of 32 bytes.
func ParseDigest(hexString string) (Digest, error) {
	var digest Digest
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return digest, fmt.Errorf("parsing digest: %w", err)
	}
	if len(decoded) != len(digest) {
		return digest, fmt.Errorf("digest is %d bytes, want %d", len(decoded), len(digest))
	}
	copy(digest[:], decoded)
	return digest, nil
}
