// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"testing"
)

type sampleManifest struct {
	Name    string `cbor:"name"`
	Version string `cbor:"version"`
	Count   int    `cbor:"count"`
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	original := sampleManifest{
		Name:    "skylift-sa",
		Version: "2.1.23",
		Count:   7,
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Marshal produced empty output")
	}

	var decoded sampleManifest
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != original {
		t.Errorf("round trip: got %+v, want %+v", decoded, original)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	// Deterministic encoding is what makes install idempotence
	// checks byte-honest: the same logical archive must serialize
	// identically every time.
	value := map[string]any{"b": 2, "a": 1, "c": []string{"x", "y"}}

	first, err := Marshal(value)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	second, err := Marshal(value)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("Marshal is not deterministic")
	}
}

func TestUnmarshalIgnoresUnknownFields(t *testing.T) {
	// A newer build may add archive fields. An older build must
	// still decode the fields it knows.
	extended := map[string]any{
		"name":      "skylift-sa",
		"version":   "3.0.0",
		"count":     1,
		"new_field": "from the future",
	}
	data, err := Marshal(extended)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded sampleManifest
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Name != "skylift-sa" || decoded.Version != "3.0.0" || decoded.Count != 1 {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestUnmarshalAnyUsesStringKeyMaps(t *testing.T) {
	data, err := Marshal(map[string]any{"key": "value"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded any
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	asMap, ok := decoded.(map[string]any)
	if !ok {
		t.Fatalf("decoded any is %T, want map[string]any", decoded)
	}
	if asMap["key"] != "value" {
		t.Errorf("decoded map = %v", asMap)
	}
}
