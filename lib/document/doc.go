// Copyright 2026 The Jina Authors
// SPDX-License-Identifier: Apache-2.0

// Package document provides the value type for building pipeline
// documents before they are attached to a request.
//
// A Document wraps its schema record and hands out deep copies via
// AsRecord, so a document instance can be attached to any number of
// requests without aliasing.
package document
