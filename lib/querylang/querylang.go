// Copyright 2026 The Jina Authors
// SPDX-License-Identifier: Apache-2.0

package querylang

import (
	"github.com/serguk89/jina/lib/schema"
)

// QueryLang is the value type for building query-language fragments
// before attaching them to a request's shared queryset.
type QueryLang struct {
	record schema.QueryLang
}

// Option configures a fragment at construction time.
type Option func(*QueryLang)

// WithPriority sets the fragment's priority; among fragments
// configuring the same instruction, higher wins.
func WithPriority(priority int32) Option {
	return func(q *QueryLang) {
		q.record.Priority = priority
	}
}

// WithDisabled marks the fragment as carried but not applied.
func WithDisabled() Option {
	return func(q *QueryLang) {
		q.record.Disabled = true
	}
}

// New builds a fragment for the named instruction with its parameters.
func New(name string, parameters map[string]any, options ...Option) *QueryLang {
	fragment := &QueryLang{record: schema.QueryLang{
		Name:       name,
		Parameters: parameters,
	}}
	for _, option := range options {
		option(fragment)
	}
	return fragment
}

// FromRecord wraps an existing wire record. The record is deep-copied.
func FromRecord(record *schema.QueryLang) *QueryLang {
	return &QueryLang{record: *record.Clone()}
}

// Name returns the instruction name the fragment configures.
func (q *QueryLang) Name() string {
	return q.record.Name
}

// AsRecord returns the fragment's canonical wire form as an
// independent deep copy.
func (q *QueryLang) AsRecord() *schema.QueryLang {
	return q.record.Clone()
}

// Driver is a pipeline stage that can contribute a query-language
// fragment describing its own configuration. Stages implement this so
// clients can attach "run me like this" instructions to a request
// without depending on the stage's concrete type.
type Driver interface {
	// QueryLang returns the stage's canonical fragment.
	QueryLang() *QueryLang
}
