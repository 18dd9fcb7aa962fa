// Copyright 2026 The Jina Authors
// SPDX-License-Identifier: Apache-2.0

package request

import (
	"fmt"

	"github.com/serguk89/jina/lib/schema"
)

// Field access is name-based so pipeline code can read "docs" or
// "command" without knowing which body variant is active. The lookup
// tables below are built once from the fixed schema; resolution is a
// map hit plus the body selector, no reflection.

type fieldGetter func(*schema.Request) any
type fieldSetter func(*schema.Request, any) error

// topGetters resolves the request's own fields.
var topGetters = map[string]fieldGetter{
	"request_id": func(r *schema.Request) any { return r.RequestID },
	"status":     func(r *schema.Request) any { return r.Status },
	"queryset":   func(r *schema.Request) any { return r.Queryset },
}

var topSetters = map[string]fieldSetter{
	"request_id": func(r *schema.Request, value any) error {
		s, ok := value.(string)
		if !ok {
			return &TypeMismatchError{Kind: fmt.Sprintf("%T", value), Want: "string"}
		}
		r.RequestID = s
		return nil
	},
	"status": func(r *schema.Request, value any) error {
		status, ok := value.(*schema.Status)
		if !ok {
			return &TypeMismatchError{Kind: fmt.Sprintf("%T", value), Want: "*schema.Status"}
		}
		r.Status = status
		return nil
	},
	"queryset": rejectAssign("queryset"),
}

// bodyGetters resolves variant fields, one table per body kind. A
// getter is only invoked after WhichBody confirmed its variant is the
// active one, so the pointer dereferences are safe.
var bodyGetters = map[schema.BodyKind]map[string]fieldGetter{
	schema.BodyIndex: {
		"docs":         func(r *schema.Request) any { return r.Index.Docs },
		"groundtruths": func(r *schema.Request) any { return r.Index.Groundtruths },
	},
	schema.BodySearch: {
		"docs":         func(r *schema.Request) any { return r.Search.Docs },
		"groundtruths": func(r *schema.Request) any { return r.Search.Groundtruths },
		"top_k":        func(r *schema.Request) any { return r.Search.TopK },
	},
	schema.BodyTrain: {
		"docs":         func(r *schema.Request) any { return r.Train.Docs },
		"groundtruths": func(r *schema.Request) any { return r.Train.Groundtruths },
	},
	schema.BodyControl: {
		"docs":         func(r *schema.Request) any { return r.Control.Docs },
		"groundtruths": func(r *schema.Request) any { return r.Control.Groundtruths },
		"command":      func(r *schema.Request) any { return r.Control.Command },
		"args":         func(r *schema.Request) any { return r.Control.Args },
	},
}

var bodySetters = map[schema.BodyKind]map[string]fieldSetter{
	schema.BodyIndex: {
		"docs":         rejectAssign("docs"),
		"groundtruths": rejectAssign("groundtruths"),
	},
	schema.BodySearch: {
		"docs":         rejectAssign("docs"),
		"groundtruths": rejectAssign("groundtruths"),
		"top_k": func(r *schema.Request, value any) error {
			switch v := value.(type) {
			case uint32:
				r.Search.TopK = v
			case int:
				if v < 0 {
					return &TypeMismatchError{Kind: "negative int", Want: "non-negative top_k"}
				}
				r.Search.TopK = uint32(v)
			default:
				return &TypeMismatchError{Kind: fmt.Sprintf("%T", value), Want: "uint32"}
			}
			return nil
		},
	},
	schema.BodyTrain: {
		"docs":         rejectAssign("docs"),
		"groundtruths": rejectAssign("groundtruths"),
	},
	schema.BodyControl: {
		"docs":         rejectAssign("docs"),
		"groundtruths": rejectAssign("groundtruths"),
		"command": func(r *schema.Request, value any) error {
			s, ok := value.(string)
			if !ok {
				return &TypeMismatchError{Kind: fmt.Sprintf("%T", value), Want: "string"}
			}
			r.Control.Command = s
			return nil
		},
		"args": rejectAssign("args"),
	},
}

// bodyFieldNames is the union of all variant field names. A name in
// this set always resolves against the active variant first, mirroring
// the wire schema's shadowing rules.
var bodyFieldNames = map[string]bool{}

func init() {
	for _, table := range bodyGetters {
		for name := range table {
			bodyFieldNames[name] = true
		}
	}
}

func rejectAssign(name string) fieldSetter {
	return func(*schema.Request, any) error {
		return fmt.Errorf("request: %q: %w", name, ErrNotAssignable)
	}
}

// Get resolves name against the active body variant's fields first,
// then the request's own fields. Either way the request is
// materialized, so Get on a raw request triggers the decode. A name
// defined by no variant and no top-level field — or defined only on
// variants other than the active one — returns *UnknownFieldError.
func (r *Request) Get(name string) (any, error) {
	if bodyFieldNames[name] {
		record, err := r.Materialize()
		if err != nil {
			return nil, err
		}
		table, ok := bodyGetters[record.WhichBody()]
		if !ok {
			// No body variant set: nothing for the name to resolve
			// against.
			return nil, &UnknownFieldError{Name: name}
		}
		getter, ok := table[name]
		if !ok {
			return nil, &UnknownFieldError{Name: name}
		}
		return getter(record), nil
	}

	if getter, ok := topGetters[name]; ok {
		record, err := r.Materialize()
		if err != nil {
			return nil, err
		}
		return getter(record), nil
	}

	return nil, &UnknownFieldError{Name: name}
}

// Set resolves name the same way Get does and assigns value to the
// field. Only scalar fields are assignable; collections are modified
// through AddDocument, AddGroundTruth, and ExtendQueryset, and
// assigning them fails with ErrNotAssignable. A value of the wrong
// type fails with *TypeMismatchError.
func (r *Request) Set(name string, value any) error {
	if bodyFieldNames[name] {
		record, err := r.Materialize()
		if err != nil {
			return err
		}
		table, ok := bodySetters[record.WhichBody()]
		if !ok {
			return &UnknownFieldError{Name: name}
		}
		setter, ok := table[name]
		if !ok {
			return &UnknownFieldError{Name: name}
		}
		return setter(record, value)
	}

	if setter, ok := topSetters[name]; ok {
		record, err := r.Materialize()
		if err != nil {
			return err
		}
		return setter(record, value)
	}

	return &UnknownFieldError{Name: name}
}
