// Copyright 2026 The Jina Authors
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"

	"github.com/serguk89/jina/lib/schema"
)

// contentDomainKey is the 32-byte key for BLAKE3 keyed hashing of
// document content. Domain separation keeps document digests from
// colliding with hashes computed elsewhere over the same bytes. The
// byte values are the ASCII domain name, zero-padded to 32 bytes, so
// the key is inspectable in hex dumps without losing any property of
// keyed hashing.
var contentDomainKey = [32]byte{
	'j', 'i', 'n', 'a', '.', 'd', 'o', 'c', 'u', 'm', 'e', 'n', 't', '.',
	'c', 'o', 'n', 't', 'e', 'n', 't', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Document is the value type pods and clients build content with
// before attaching it to a request. It owns its backing record; the
// canonical wire form is obtained with AsRecord, which always hands
// out an independent copy.
type Document struct {
	record schema.Document
}

// Option configures a document at construction time.
type Option func(*Document)

// WithID overrides the generated document ID.
func WithID(id string) Option {
	return func(d *Document) {
		d.record.ID = id
	}
}

// WithText sets inline textual content.
func WithText(text string) Option {
	return func(d *Document) {
		d.record.Text = text
		if d.record.MimeType == "" {
			d.record.MimeType = "text/plain"
		}
	}
}

// WithBuffer sets inline binary content with its mime type.
func WithBuffer(buffer []byte, mimeType string) Option {
	return func(d *Document) {
		d.record.Buffer = buffer
		d.record.MimeType = mimeType
	}
}

// WithURI points the document at external content.
func WithURI(uri string) Option {
	return func(d *Document) {
		d.record.URI = uri
	}
}

// WithTag sets one annotation on the document.
func WithTag(key string, value any) Option {
	return func(d *Document) {
		if d.record.Tags == nil {
			d.record.Tags = make(map[string]any)
		}
		d.record.Tags[key] = value
	}
}

// New builds a document. A random UUID is assigned unless WithID is
// given, and the content digest is computed from whatever content the
// options supplied.
func New(options ...Option) *Document {
	doc := &Document{}
	for _, option := range options {
		option(doc)
	}
	if doc.record.ID == "" {
		doc.record.ID = uuid.NewString()
	}
	doc.record.ContentHash = doc.contentDigest()
	return doc
}

// FromRecord wraps an existing wire record in a Document value. The
// record is deep-copied; later mutations of the input do not leak in.
func FromRecord(record *schema.Document) *Document {
	return &Document{record: *record.Clone()}
}

// ID returns the document identifier.
func (d *Document) ID() string {
	return d.record.ID
}

// MimeType returns the document's content type.
func (d *Document) MimeType() string {
	return d.record.MimeType
}

// ContentHash returns the hex BLAKE3 digest of the document content.
func (d *Document) ContentHash() string {
	return d.record.ContentHash
}

// SetEmbedding attaches a dense vector to the document.
func (d *Document) SetEmbedding(embedding []float32) {
	d.record.Embedding = append([]float32(nil), embedding...)
}

// SetScore sets the document's relevance score.
func (d *Document) SetScore(score float32) {
	d.record.Score = score
}

// AddChunk appends chunk as a sub-document one granularity level below
// this document.
func (d *Document) AddChunk(chunk *Document) {
	record := chunk.AsRecord()
	record.Granularity = d.record.Granularity + 1
	d.record.Chunks = append(d.record.Chunks, *record)
}

// AsRecord returns the document's canonical wire form as an
// independent deep copy, ready to embed into a request.
func (d *Document) AsRecord() *schema.Document {
	return d.record.Clone()
}

// contentDigest computes the keyed BLAKE3 digest over the document's
// content. Text, buffer, and URI contribute under distinct prefixes so
// a text document and a buffer document with identical bytes do not
// collide. Returns empty for a document with no content.
func (d *Document) contentDigest() string {
	if d.record.Text == "" && len(d.record.Buffer) == 0 && d.record.URI == "" {
		return ""
	}

	hasher, err := blake3.NewKeyed(contentDomainKey[:])
	if err != nil {
		panic("document: BLAKE3 keyed hash initialization failed: " + err.Error())
	}

	write := func(prefix string, content []byte) {
		fmt.Fprintf(hasher, "%s:%d:", prefix, len(content))
		hasher.Write(content)
	}
	write("text", []byte(d.record.Text))
	write("buffer", d.record.Buffer)
	write("uri", []byte(d.record.URI))

	return hex.EncodeToString(hasher.Sum(nil))
}
