// Copyright 2026 The Jina Authors
// SPDX-License-Identifier: Apache-2.0

package request

import (
	"errors"
	"testing"

	"github.com/serguk89/jina/lib/compress"
	"github.com/serguk89/jina/lib/schema"
)

func TestGetTopLevelField(t *testing.T) {
	data, envelope := wireBytes(t, sampleRecord(), compress.ZLIB)
	req := FromBytes(data, envelope)

	id, err := req.Get("request_id")
	if err != nil {
		t.Fatalf("Get(request_id): %v", err)
	}
	if id.(string) != "deadbeefdeadbeefdeadbeefdeadbeef" {
		t.Errorf("request_id = %q", id)
	}

	queryset, err := req.Get("queryset")
	if err != nil {
		t.Fatalf("Get(queryset): %v", err)
	}
	fragments := queryset.([]schema.QueryLang)
	if len(fragments) != 1 || fragments[0].Name != "SliceQL" {
		t.Errorf("queryset = %+v", fragments)
	}
}

func TestGetBodyFieldOnActiveVariant(t *testing.T) {
	req := FromRecord(sampleRecord(), true)

	docs, err := req.Get("docs")
	if err != nil {
		t.Fatalf("Get(docs): %v", err)
	}
	if got := docs.([]schema.Document); len(got) != 2 || got[0].ID != "d1" {
		t.Errorf("docs = %+v", got)
	}

	topK, err := req.Get("top_k")
	if err != nil {
		t.Fatalf("Get(top_k): %v", err)
	}
	if topK.(uint32) != 5 {
		t.Errorf("top_k = %v, want 5", topK)
	}
}

func TestGetBodyFieldPerVariant(t *testing.T) {
	control := &schema.Request{
		RequestID: "c1",
		Control: &schema.ControlRequest{
			Command: "terminate",
			Args:    map[string]any{"grace_seconds": 5},
		},
	}
	req := FromRecord(control, false)

	command, err := req.Get("command")
	if err != nil {
		t.Fatalf("Get(command): %v", err)
	}
	if command.(string) != "terminate" {
		t.Errorf("command = %q", command)
	}

	args, err := req.Get("args")
	if err != nil {
		t.Fatalf("Get(args): %v", err)
	}
	if args.(map[string]any)["grace_seconds"] != 5 {
		t.Errorf("args = %+v", args)
	}
}

func TestGetBodyFieldNotOnActiveVariant(t *testing.T) {
	// "command" exists only on the control variant; the active body
	// here is search.
	req := FromRecord(sampleRecord(), true)

	_, err := req.Get("command")
	var unknown *UnknownFieldError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want *UnknownFieldError", err)
	}
	if unknown.Name != "command" {
		t.Errorf("Name = %q, want \"command\"", unknown.Name)
	}
}

func TestGetUnknownFieldRejected(t *testing.T) {
	req := FromRecord(sampleRecord(), true)

	_, err := req.Get("no_such_field")
	var unknown *UnknownFieldError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want *UnknownFieldError", err)
	}
	if unknown.Name != "no_such_field" {
		t.Errorf("Name = %q", unknown.Name)
	}
}

func TestGetBodyFieldWithoutBody(t *testing.T) {
	req := FromRecord(&schema.Request{RequestID: "r"}, false)

	_, err := req.Get("docs")
	var unknown *UnknownFieldError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want *UnknownFieldError", err)
	}
}

func TestGetMaterializesOnce(t *testing.T) {
	data, envelope := wireBytes(t, sampleRecord(), compress.LZ4)
	req := FromBytes(data, envelope)

	first, err := req.Get("docs")
	if err != nil {
		t.Fatalf("first Get: %v", err)
	}
	second, err := req.Get("docs")
	if err != nil {
		t.Fatalf("second Get: %v", err)
	}
	// Same backing array: both reads observe the same materialized
	// record rather than re-parsing.
	if &first.([]schema.Document)[0] != &second.([]schema.Document)[0] {
		t.Error("two reads returned documents from different records")
	}
}

func TestSetScalarFields(t *testing.T) {
	req := FromRecord(sampleRecord(), true)

	if err := req.Set("request_id", "ffffffffffffffffffffffffffffffff"); err != nil {
		t.Fatalf("Set(request_id): %v", err)
	}
	id, _ := req.Get("request_id")
	if id.(string) != "ffffffffffffffffffffffffffffffff" {
		t.Errorf("request_id = %q after Set", id)
	}

	if err := req.Set("top_k", uint32(20)); err != nil {
		t.Fatalf("Set(top_k, uint32): %v", err)
	}
	if err := req.Set("top_k", 30); err != nil {
		t.Fatalf("Set(top_k, int): %v", err)
	}
	topK, _ := req.Get("top_k")
	if topK.(uint32) != 30 {
		t.Errorf("top_k = %v, want 30", topK)
	}

	if err := req.Set("status", &schema.Status{Code: 1, Description: "ok"}); err != nil {
		t.Fatalf("Set(status): %v", err)
	}
}

func TestSetTypeMismatch(t *testing.T) {
	req := FromRecord(sampleRecord(), true)

	err := req.Set("request_id", 42)
	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error = %v, want *TypeMismatchError", err)
	}
	if mismatch.Kind != "int" {
		t.Errorf("Kind = %q, want \"int\"", mismatch.Kind)
	}

	if err := req.Set("top_k", -1); !errors.As(err, &mismatch) {
		t.Errorf("Set(top_k, -1) error = %v, want *TypeMismatchError", err)
	}
}

func TestSetCollectionRejected(t *testing.T) {
	req := FromRecord(sampleRecord(), true)

	for _, name := range []string{"docs", "groundtruths", "queryset"} {
		if err := req.Set(name, []schema.Document{}); !errors.Is(err, ErrNotAssignable) {
			t.Errorf("Set(%q) error = %v, want ErrNotAssignable", name, err)
		}
	}
}

func TestSetUnknownFieldRejected(t *testing.T) {
	req := FromRecord(sampleRecord(), true)

	err := req.Set("no_such_field", "value")
	var unknown *UnknownFieldError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want *UnknownFieldError", err)
	}
}

func TestGetSetsTouched(t *testing.T) {
	data, envelope := wireBytes(t, sampleRecord(), compress.None)
	req := FromBytes(data, envelope)

	if req.Touched() {
		t.Fatal("touched before access")
	}
	if _, err := req.Get("request_id"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !req.Touched() {
		t.Error("Get did not set touched")
	}
}
