// Copyright 2026 The Jina Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the standard CBOR encoding configuration for
// request wire traffic.
//
// Every package that serializes or parses a request record goes through
// this package so the whole codebase encodes identically: deterministic
// map-key ordering, smallest-integer encoding, string-keyed maps for
// any-typed targets. Compression is layered outside the codec (see
// lib/compress); the codec always sees and produces uncompressed bytes.
package codec
