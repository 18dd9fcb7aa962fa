// Copyright 2026 The Jina Authors
// SPDX-License-Identifier: Apache-2.0

// Package ident generates random identities for requests and other
// wire records.
package ident

import (
	"encoding/hex"
	"fmt"
	"io"
)

// New draws 16 bytes from entropy and returns them hex-encoded: a
// 32-character identity string. The entropy source is an explicit
// parameter so callers control randomness (crypto/rand in production,
// a fixed reader in tests) and the package holds no process-wide
// state.
func New(entropy io.Reader) (string, error) {
	var buffer [16]byte
	if _, err := io.ReadFull(entropy, buffer[:]); err != nil {
		return "", fmt.Errorf("ident: reading entropy: %w", err)
	}
	return hex.EncodeToString(buffer[:]), nil
}
