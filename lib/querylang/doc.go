// Copyright 2026 The Jina Authors
// SPDX-License-Identifier: Apache-2.0

// Package querylang provides the value type for query-language
// fragments and the Driver interface pipeline stages implement to
// contribute their canonical fragment.
//
// Fragments can also be loaded from JSONC preset files so operators
// keep commented query configurations under version control.
package querylang
