// Copyright 2026 The Jina Authors
// SPDX-License-Identifier: Apache-2.0

package request

import (
	"io"

	"github.com/serguk89/jina/lib/codec"
	"github.com/serguk89/jina/lib/compress"
	"github.com/serguk89/jina/lib/ident"
	"github.com/serguk89/jina/lib/schema"
)

// Request is a lazy container for one wire message. It holds either
// the raw serialized bytes as they arrived (plus the envelope that
// describes their compression) or the parsed record, never both.
//
// A request constructed from bytes stays unparsed until the first
// field access or mutation. A forwarding hop that never looks inside
// can call Serialize and get the original bytes back verbatim, paying
// zero decode or encode cost. The first read or write materializes the
// record — a one-way transition — and from then on Serialize re-encodes
// the record on every call.
//
// A Request is owned by a single goroutine at a time; it performs no
// internal locking.
type Request struct {
	// buffer holds the raw serialized form. Valid only while record
	// is nil.
	buffer []byte

	// envelope is borrowed, read-only sideband metadata. It must
	// outlive the materialize call; the request never mutates it.
	envelope *schema.Envelope

	// record is the parsed form. Once set, it is the single source
	// of truth and buffer is discarded.
	record *schema.Request

	// touched reports whether the record has been exposed for read
	// or write at least once. Once set it never clears: the original
	// buffer can no longer be trusted as current.
	touched bool

	// decodeErr is the sticky materialization failure, if any.
	decodeErr error
}

// FromBytes wraps raw serialized bytes without decoding them. The
// envelope supplies the compression algorithm used when the request is
// eventually materialized; nil means uncompressed. The returned
// request is untouched: serializing it immediately returns data
// byte-for-byte.
func FromBytes(data []byte, envelope *schema.Envelope) *Request {
	return &Request{buffer: data, envelope: envelope}
}

// FromRecord wraps an already-parsed record. When copy is true the
// record is deep-cloned into owned storage; otherwise the request
// aliases rec directly and the caller must stop using it for writes.
// Either way the request counts as touched from the start: the caller
// has a live handle to the record (or had one), so no byte buffer
// could be trusted.
func FromRecord(rec *schema.Request, copy bool) *Request {
	if copy {
		rec = rec.Clone()
	}
	return &Request{record: rec, touched: true}
}

// New creates a fresh empty request with a random request ID drawn
// from entropy (use crypto/rand.Reader outside tests).
func New(entropy io.Reader) (*Request, error) {
	id, err := ident.New(entropy)
	if err != nil {
		return nil, err
	}
	return &Request{
		record:  &schema.Request{RequestID: id},
		touched: true,
	}, nil
}

// Touched reports whether the record has been exposed for read or
// write. An untouched request serializes to its original bytes.
func (r *Request) Touched() bool {
	return r.touched
}

// Envelope returns the borrowed envelope metadata the request was
// constructed with, or nil.
func (r *Request) Envelope() *schema.Envelope {
	return r.envelope
}

// Materialize returns the parsed record, decompressing and parsing
// the raw buffer on first call. The transition is one-way: the buffer
// is discarded and the request counts as touched, because the caller
// now holds a mutable handle. Repeated calls return the same record.
//
// A failure (unsupported algorithm, malformed compressed stream,
// malformed record bytes) is fatal for the instance and sticky: every
// later call returns the same error.
func (r *Request) Materialize() (*schema.Request, error) {
	if r.decodeErr != nil {
		return nil, r.decodeErr
	}
	if r.record != nil {
		r.touched = true
		return r.record, nil
	}

	algorithm, err := compress.ParseAlgorithm(r.envelope.CompressionAlgorithm())
	if err != nil {
		r.decodeErr = err
		return nil, err
	}

	data, err := compress.Decompress(r.buffer, algorithm)
	if err != nil {
		r.decodeErr = &DecodeError{Stage: "decompress", Err: err}
		return nil, r.decodeErr
	}

	var record schema.Request
	if err := codec.Unmarshal(data, &record); err != nil {
		r.decodeErr = &DecodeError{Stage: "parse", Err: err}
		return nil, r.decodeErr
	}

	r.record = &record
	r.buffer = nil
	r.touched = true
	return r.record, nil
}

// Serialize returns the request's wire bytes. Untouched requests
// return the original buffer verbatim, original compression included —
// the pass-through fast path. Touched requests re-encode the record on
// every call; the output is uncompressed (compression is the sender's
// concern, applied per the peer envelope it builds).
func (r *Request) Serialize() ([]byte, error) {
	if !r.touched {
		return r.buffer, nil
	}
	return codec.Marshal(r.record)
}
