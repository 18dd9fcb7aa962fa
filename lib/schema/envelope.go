// Copyright 2026 The Jina Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// CompressionMeta describes how the message alongside an envelope was
// compressed. The algorithm string is the wire identifier parsed by
// lib/compress; empty means uncompressed.
type CompressionMeta struct {
	// Algorithm is the compression algorithm identifier ("lz4",
	// "gzip", ...). Empty or "none" means no compression.
	Algorithm string `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`

	// MinBytes is the sender-side threshold below which messages are
	// sent uncompressed regardless of Algorithm. Receivers ignore it;
	// the per-message truth is Algorithm.
	MinBytes int `json:"min_bytes,omitempty" yaml:"min_bytes,omitempty"`
}

// Route is one hop in an envelope's provenance trail: which pod
// handled the message and when.
type Route struct {
	Pod       string  `json:"pod,omitempty" yaml:"pod,omitempty"`
	PodID     string  `json:"pod_id,omitempty" yaml:"pod_id,omitempty"`
	StartTime string  `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	EndTime   string  `json:"end_time,omitempty" yaml:"end_time,omitempty"`
	Status    *Status `json:"status,omitempty" yaml:"status,omitempty"`
}

// Envelope is the sideband metadata that travels with a serialized
// request between pods: routing, provenance, and compression. It is
// never part of the message payload itself, and the request core
// treats it as borrowed read-only state owned by the transport layer.
type Envelope struct {
	// SenderID identifies the pod that emitted the message.
	SenderID string `json:"sender_id,omitempty" yaml:"sender_id,omitempty"`

	// ReceiverID identifies the intended next hop, when pinned.
	ReceiverID string `json:"receiver_id,omitempty" yaml:"receiver_id,omitempty"`

	// RequestID mirrors the request's identifier so routers can
	// correlate without parsing the payload.
	RequestID string `json:"request_id,omitempty" yaml:"request_id,omitempty"`

	// Version is the protocol version the sender spoke.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// Routes is the provenance trail, appended to by each hop.
	Routes []Route `json:"routes,omitempty" yaml:"routes,omitempty"`

	// Compression describes the payload's compression.
	Compression CompressionMeta `json:"compression,omitempty" yaml:"compression,omitempty"`
}

// CompressionAlgorithm returns the envelope's compression algorithm
// identifier, treating a nil envelope as uncompressed. This is the
// accessor the request core uses so it never has to care whether an
// envelope was supplied.
func (e *Envelope) CompressionAlgorithm() string {
	if e == nil {
		return ""
	}
	return e.Compression.Algorithm
}
