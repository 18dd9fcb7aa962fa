// Copyright 2026 The Jina Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// QueryLang is one query-language fragment: a named processing
// instruction with parameters, attached to a request's shared queryset
// to steer how downstream pods handle it (e.g. a "SliceQL" fragment
// limiting results, or a "VectorSearchQL" fragment overriding top-k).
type QueryLang struct {
	// Name identifies the instruction the fragment configures.
	Name string `json:"name,omitempty"`

	// Parameters carries the instruction's configuration.
	Parameters map[string]any `json:"parameters,omitempty"`

	// Priority orders fragments that configure the same instruction;
	// higher wins.
	Priority int32 `json:"priority,omitempty"`

	// Disabled marks a fragment that is carried but must not be
	// applied. Pods skip disabled fragments without removing them.
	Disabled bool `json:"disabled,omitempty"`
}

// Clone returns a deep copy of the fragment.
func (q *QueryLang) Clone() *QueryLang {
	if q == nil {
		return nil
	}
	clone := *q
	clone.Parameters = cloneAnyMap(q.Parameters)
	return &clone
}
