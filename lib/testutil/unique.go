// Copyright 2026 The Jina Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides small helpers shared by tests.
package testutil

import (
	"fmt"
	"sync/atomic"
)

var uniqueCounter atomic.Uint64

// UniqueID returns a string of the form "prefix-N" where N is a
// monotonically increasing integer. Use this instead of time.Now()
// when tests need distinguishable identifiers for documents, requests,
// or tags.
//
//	docID := testutil.UniqueID("doc") // "doc-1", "doc-2", ...
func UniqueID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, uniqueCounter.Add(1))
}
