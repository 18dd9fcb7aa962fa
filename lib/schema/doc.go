// Copyright 2026 The Jina Authors
// SPDX-License-Identifier: Apache-2.0

// Package schema defines the wire records exchanged between pipeline
// pods: the request with its mutually exclusive body variants, the
// documents and query-language fragments attached to it, and the
// envelope metadata that travels alongside (never inside) the message.
//
// The field layout is fixed protocol surface. Records carry json tags,
// which lib/codec's CBOR modes consume via fxamacker's json-tag
// fallback, so the same structs serve wire traffic and tooling output.
package schema
