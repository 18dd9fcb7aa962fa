// Copyright 2026 The Jina Authors
// SPDX-License-Identifier: Apache-2.0

// Package compress maps envelope algorithm identifiers to the codec
// that decodes them.
//
// The package holds no state: each call dispatches on the algorithm
// tag and delegates to an independent stream codec. The receive path
// of the request core only ever decompresses; Compress exists for
// senders and as the paired fixture in round-trip tests.
package compress
