// Copyright 2026 The Jina Authors
// SPDX-License-Identifier: Apache-2.0

package querylang

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/serguk89/jina/lib/schema"
)

// Parse strips JSONC comments and trailing commas from data, then
// unmarshals the result as an array of query-language fragments.
// Preset files use // line comments, /* block comments */, and
// trailing commas freely.
func Parse(data []byte) ([]*QueryLang, error) {
	stripped := jsonc.ToJSON(data)

	var records []schema.QueryLang
	if err := json.Unmarshal(stripped, &records); err != nil {
		return nil, fmt.Errorf("parsing queryset: %w", err)
	}

	fragments := make([]*QueryLang, len(records))
	for i := range records {
		fragments[i] = FromRecord(&records[i])
	}
	return fragments, nil
}

// ParseFile reads a JSONC queryset preset file from disk and parses
// it into fragments, preserving file order.
func ParseFile(path string) ([]*QueryLang, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading queryset file: %w", err)
	}
	fragments, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fragments, nil
}
