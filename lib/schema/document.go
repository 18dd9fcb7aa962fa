// Copyright 2026 The Jina Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// Granularity levels for document decomposition. A document at
// granularity zero is a user-supplied root; its chunks sit one level
// deeper.
const (
	GranularityDocument = 0
	GranularityChunk    = 1
)

// Document is the wire record for one unit of content flowing through
// a pipeline: the thing that gets indexed, searched for, or trained
// on. Exactly one of Text, Buffer, or URI typically carries the
// content; the rest of the fields are derived or annotated by pods.
type Document struct {
	// ID identifies the document. Assigned at construction, stable
	// across pods.
	ID string `json:"id,omitempty"`

	// MimeType describes the content (e.g. "text/plain",
	// "image/png").
	MimeType string `json:"mime_type,omitempty"`

	// Text is inline textual content.
	Text string `json:"text,omitempty"`

	// Buffer is inline binary content.
	Buffer []byte `json:"buffer,omitempty"`

	// URI points at external content instead of carrying it inline.
	URI string `json:"uri,omitempty"`

	// Granularity is the chunking depth of this document relative to
	// its root.
	Granularity int `json:"granularity,omitempty"`

	// Score is the relevance assigned by a ranker pod.
	Score float32 `json:"score,omitempty"`

	// Embedding is the dense vector computed by an encoder pod.
	Embedding []float32 `json:"embedding,omitempty"`

	// Tags carries free-form annotations set by pods or callers.
	Tags map[string]any `json:"tags,omitempty"`

	// ContentHash is the hex digest of the document content, used
	// for deduplication across pods.
	ContentHash string `json:"content_hash,omitempty"`

	// Chunks are sub-documents produced by segmenter pods.
	Chunks []Document `json:"chunks,omitempty"`
}

// Clone returns a deep copy of the document, chunks included.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	clone := *d
	if d.Buffer != nil {
		clone.Buffer = make([]byte, len(d.Buffer))
		copy(clone.Buffer, d.Buffer)
	}
	if d.Embedding != nil {
		clone.Embedding = make([]float32, len(d.Embedding))
		copy(clone.Embedding, d.Embedding)
	}
	clone.Tags = cloneAnyMap(d.Tags)
	clone.Chunks = cloneDocuments(d.Chunks)
	return &clone
}
