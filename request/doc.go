// Copyright 2026 The Jina Authors
// SPDX-License-Identifier: Apache-2.0

// Package request implements the lazy request envelope at the heart of
// pipeline message flow.
//
// A Request constructed from raw bytes defers decompression and
// parsing until the first field access or mutation. A pod that merely
// forwards a message never triggers the decode, and Serialize returns
// the exact bytes that arrived — byte-for-byte pass-through at zero
// CPU cost. The first access materializes the record (decompressing
// per the envelope's algorithm and parsing the wire bytes), after
// which the parsed record is authoritative and Serialize re-encodes
// it.
//
// Field access is name-based: Get and Set resolve a field name against
// the active body variant first, then the request's own fields, so
// callers need not know which of the index/search/train/control bodies
// a message carries. Attachment operations (AddDocument,
// AddGroundTruth, ExtendQueryset) normalize the accepted input kinds
// into wire records and always append deep copies.
package request
