// Copyright 2026 The Jina Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"strings"
	"testing"
)

// sampleRecord is a representative wire record using json struct tags
// (the convention for schema types, relying on fxamacker's fallback).
type sampleRecord struct {
	RequestID string         `json:"request_id"`
	TopK      int            `json:"top_k,omitempty"`
	Tags      map[string]any `json:"tags,omitempty"`
}

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	original := sampleRecord{
		RequestID: "8f14e45fceea167a5a36dedd4bea2543",
		TopK:      10,
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Marshal produced empty output")
	}

	var decoded sampleRecord
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if decoded.RequestID != original.RequestID || decoded.TopK != original.TopK {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", decoded, original)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	record := sampleRecord{
		RequestID: "abc",
		Tags:      map[string]any{"zebra": "z", "alpha": "a", "mid": 3},
	}

	first, err := Marshal(record)
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}
	second, err := Marshal(record)
	if err != nil {
		t.Fatalf("second Marshal: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("deterministic encoding violated: %x != %x", first, second)
	}
}

func TestAnyTargetDecodesToStringKeyedMap(t *testing.T) {
	data, err := Marshal(map[string]any{"command": "flush", "args": map[string]any{"force": true}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded any
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	top, ok := decoded.(map[string]any)
	if !ok {
		t.Fatalf("decoded type = %T, want map[string]any", decoded)
	}
	if _, ok := top["args"].(map[string]any); !ok {
		t.Errorf("nested map type = %T, want map[string]any", top["args"])
	}
}

func TestEncoderDecoderStreamRoundtrip(t *testing.T) {
	records := []sampleRecord{
		{RequestID: "one", TopK: 1},
		{RequestID: "two", TopK: 2},
		{RequestID: "three"},
	}

	var buffer bytes.Buffer
	encoder := NewEncoder(&buffer)
	for i, record := range records {
		if err := encoder.Encode(record); err != nil {
			t.Fatalf("Encode record %d: %v", i, err)
		}
	}

	decoder := NewDecoder(&buffer)
	for i, want := range records {
		var got sampleRecord
		if err := decoder.Decode(&got); err != nil {
			t.Fatalf("Decode record %d: %v", i, err)
		}
		if got.RequestID != want.RequestID || got.TopK != want.TopK {
			t.Errorf("record %d: got %+v, want %+v", i, got, want)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	original := sampleRecord{
		RequestID: "clone-me",
		TopK:      5,
		Tags:      map[string]any{"weight": "heavy", "nested": map[string]any{"depth": int64(2)}},
	}

	copied, err := Clone(original)
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	if copied.RequestID != original.RequestID || copied.TopK != original.TopK {
		t.Errorf("clone mismatch: got %+v, want %+v", copied, original)
	}

	copied.Tags["weight"] = "light"
	copied.Tags["nested"].(map[string]any)["depth"] = int64(9)
	if original.Tags["weight"] != "heavy" {
		t.Error("mutating clone's map leaked into the original")
	}
	if original.Tags["nested"].(map[string]any)["depth"] != int64(2) {
		t.Error("mutating clone's nested map leaked into the original")
	}
}

func TestDiagnose(t *testing.T) {
	data, err := Marshal(sampleRecord{RequestID: "diag"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	notation, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if !strings.Contains(notation, "request_id") {
		t.Errorf("diagnostic notation missing field name: %s", notation)
	}
}
