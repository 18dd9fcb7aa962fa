// Copyright 2026 The Jina Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import "fmt"

// BodyKind names one of the mutually exclusive request body variants.
// The values are protocol constants: they are the field names of the
// body selector on the wire.
type BodyKind string

const (
	// BodyIndex is a request to add documents to an index.
	BodyIndex BodyKind = "index"

	// BodySearch is a request to query an index.
	BodySearch BodyKind = "search"

	// BodyTrain is a request carrying training documents and their
	// ground truths.
	BodyTrain BodyKind = "train"

	// BodyControl is an out-of-band pipeline control command.
	BodyControl BodyKind = "control"

	// BodyNone is reported by WhichBody when no variant is set.
	BodyNone BodyKind = ""
)

// ParseBodyKind parses a body variant name.
func ParseBodyKind(name string) (BodyKind, error) {
	switch BodyKind(name) {
	case BodyIndex, BodySearch, BodyTrain, BodyControl:
		return BodyKind(name), nil
	default:
		return BodyNone, fmt.Errorf("schema: unknown body kind %q", name)
	}
}

// DocSet is the pair of document collections every body variant
// carries: the primary documents the request operates on, and the
// ground-truth documents used for evaluation.
type DocSet struct {
	Docs         []Document `json:"docs,omitempty"`
	Groundtruths []Document `json:"groundtruths,omitempty"`
}

// IndexRequest is the body of an indexing request.
type IndexRequest struct {
	DocSet
}

// SearchRequest is the body of a search request.
type SearchRequest struct {
	DocSet

	// TopK is the number of results requested per query document.
	// Zero means the pod default.
	TopK uint32 `json:"top_k,omitempty"`
}

// TrainRequest is the body of a training request.
type TrainRequest struct {
	DocSet
}

// ControlRequest is the body of a pipeline control command.
type ControlRequest struct {
	DocSet

	// Command is the control verb (e.g. "terminate", "status",
	// "idle", "reload").
	Command string `json:"command,omitempty"`

	// Args carries command-specific parameters.
	Args map[string]any `json:"args,omitempty"`
}

// Status reports the processing outcome attached to a request after a
// pod has handled it.
type Status struct {
	Code        int32  `json:"code,omitempty"`
	Description string `json:"description,omitempty"`
}

// Request is the top-level wire message. Exactly one of the four body
// variant pointers is set; which one is the request's body selector.
type Request struct {
	// RequestID uniquely identifies the request across the pipeline.
	RequestID string `json:"request_id,omitempty"`

	// Status is set by pods that have processed the request.
	Status *Status `json:"status,omitempty"`

	// Queryset is the shared query-language collection. It applies
	// across body variants, steering how downstream pods interpret
	// the request.
	Queryset []QueryLang `json:"queryset,omitempty"`

	Index   *IndexRequest   `json:"index,omitempty"`
	Search  *SearchRequest  `json:"search,omitempty"`
	Train   *TrainRequest   `json:"train,omitempty"`
	Control *ControlRequest `json:"control,omitempty"`
}

// WhichBody returns the kind of the currently set body variant, or
// BodyNone when the request has no body yet. When multiple variants
// are set (a malformed message), the first in selector order wins,
// matching wire decode behavior.
func (r *Request) WhichBody() BodyKind {
	switch {
	case r.Index != nil:
		return BodyIndex
	case r.Search != nil:
		return BodySearch
	case r.Train != nil:
		return BodyTrain
	case r.Control != nil:
		return BodyControl
	default:
		return BodyNone
	}
}

// DocSetFor returns the document collections of the variant named by
// kind, creating the variant struct if the request does not carry it
// yet. The body selector is not consulted: attaching documents to an
// inactive variant is allowed and leaves the other variants untouched.
func (r *Request) DocSetFor(kind BodyKind) (*DocSet, error) {
	switch kind {
	case BodyIndex:
		if r.Index == nil {
			r.Index = &IndexRequest{}
		}
		return &r.Index.DocSet, nil
	case BodySearch:
		if r.Search == nil {
			r.Search = &SearchRequest{}
		}
		return &r.Search.DocSet, nil
	case BodyTrain:
		if r.Train == nil {
			r.Train = &TrainRequest{}
		}
		return &r.Train.DocSet, nil
	case BodyControl:
		if r.Control == nil {
			r.Control = &ControlRequest{}
		}
		return &r.Control.DocSet, nil
	default:
		return nil, fmt.Errorf("schema: unknown body kind %q", string(kind))
	}
}

// Clone returns a deep copy of the request. The copy shares no mutable
// state with the original.
func (r *Request) Clone() *Request {
	if r == nil {
		return nil
	}
	clone := &Request{
		RequestID: r.RequestID,
		Queryset:  cloneQueryset(r.Queryset),
	}
	if r.Status != nil {
		status := *r.Status
		clone.Status = &status
	}
	if r.Index != nil {
		clone.Index = &IndexRequest{DocSet: r.Index.DocSet.clone()}
	}
	if r.Search != nil {
		clone.Search = &SearchRequest{DocSet: r.Search.DocSet.clone(), TopK: r.Search.TopK}
	}
	if r.Train != nil {
		clone.Train = &TrainRequest{DocSet: r.Train.DocSet.clone()}
	}
	if r.Control != nil {
		clone.Control = &ControlRequest{
			DocSet:  r.Control.DocSet.clone(),
			Command: r.Control.Command,
			Args:    cloneAnyMap(r.Control.Args),
		}
	}
	return clone
}

func (s DocSet) clone() DocSet {
	return DocSet{
		Docs:         cloneDocuments(s.Docs),
		Groundtruths: cloneDocuments(s.Groundtruths),
	}
}

func cloneQueryset(queryset []QueryLang) []QueryLang {
	if queryset == nil {
		return nil
	}
	clone := make([]QueryLang, len(queryset))
	for i := range queryset {
		clone[i] = *queryset[i].Clone()
	}
	return clone
}

func cloneDocuments(docs []Document) []Document {
	if docs == nil {
		return nil
	}
	clone := make([]Document, len(docs))
	for i := range docs {
		clone[i] = *docs[i].Clone()
	}
	return clone
}

// cloneAnyValue deep-copies the JSON-shaped values that appear in
// tags, args, and query-language parameters: string-keyed maps,
// slices, and scalars. Scalars are immutable and returned as-is.
func cloneAnyValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return cloneAnyMap(v)
	case []any:
		clone := make([]any, len(v))
		for i := range v {
			clone[i] = cloneAnyValue(v[i])
		}
		return clone
	default:
		return v
	}
}

func cloneAnyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	clone := make(map[string]any, len(m))
	for key, value := range m {
		clone[key] = cloneAnyValue(value)
	}
	return clone
}
