// Copyright 2026 The Jina Authors
// SPDX-License-Identifier: Apache-2.0

package request

import (
	"fmt"

	"github.com/serguk89/jina/lib/document"
	"github.com/serguk89/jina/lib/querylang"
	"github.com/serguk89/jina/lib/schema"
)

// AddDocument appends a deep copy of doc to the document list of the
// body variant named by kind, creating the variant if the request does
// not carry it yet. The active body selector is not consulted, so a
// client can stage documents on the variant it is about to activate.
// Materializes the request.
func (r *Request) AddDocument(doc *document.Document, kind schema.BodyKind) error {
	record, err := r.Materialize()
	if err != nil {
		return err
	}
	set, err := record.DocSetFor(kind)
	if err != nil {
		return err
	}
	set.Docs = append(set.Docs, *doc.AsRecord())
	return nil
}

// AddGroundTruth appends a deep copy of doc to the ground-truth list
// of the body variant named by kind. Same variant-creation and
// materialization behavior as AddDocument.
func (r *Request) AddGroundTruth(doc *document.Document, kind schema.BodyKind) error {
	record, err := r.Materialize()
	if err != nil {
		return err
	}
	set, err := record.DocSetFor(kind)
	if err != nil {
		return err
	}
	set.Groundtruths = append(set.Groundtruths, *doc.AsRecord())
	return nil
}

const querysetWant = "*querylang.QueryLang, querylang.Driver, or schema.QueryLang"

// ExtendQueryset appends query-language fragments to the request's
// shared queryset, preserving argument order. Each item may be a
// fragment value (*querylang.QueryLang), a pipeline stage implementing
// querylang.Driver (converted via its canonical fragment), or a bare
// schema record (schema.QueryLang or pointer, copied). A fragment is
// always appended as a deep copy.
//
// An item of any other type fails with *TypeMismatchError naming the
// offending kind. Processing stops at the first failure; fragments
// already appended in the same call stay appended.
func (r *Request) ExtendQueryset(items ...any) error {
	record, err := r.Materialize()
	if err != nil {
		return err
	}

	for _, item := range items {
		switch q := item.(type) {
		case *querylang.QueryLang:
			record.Queryset = append(record.Queryset, *q.AsRecord())
		case *schema.QueryLang:
			record.Queryset = append(record.Queryset, *q.Clone())
		case schema.QueryLang:
			record.Queryset = append(record.Queryset, *q.Clone())
		case querylang.Driver:
			record.Queryset = append(record.Queryset, *q.QueryLang().AsRecord())
		default:
			return &TypeMismatchError{Kind: fmt.Sprintf("%T", item), Want: querysetWant}
		}
	}
	return nil
}
