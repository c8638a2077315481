package model

import (
	"reflect"
	"testing"
)

func TestStringListRoundTrip(t *testing.T) {
	cases := [][]string{
		{},
		{"Leather Interior", "Targa Top"},
		{"single"},
		{`with "quotes"`, "comma, separated", "brackets [x] {y}", "back\\slash"},
		{"", "empty element kept"},
	}

	for _, items := range cases {
		encoded, err := StringList(items).Value()
		if err != nil {
			t.Fatalf("Value(%v): %v", items, err)
		}

		var decoded StringList
		if err := decoded.Scan(encoded); err != nil {
			t.Fatalf("Scan(%v): %v", encoded, err)
		}

		if !reflect.DeepEqual([]string(decoded), items) {
			t.Fatalf("round trip mismatch: got %v, want %v", decoded, items)
		}
	}
}

func TestStringListEmptyEncodesToMarker(t *testing.T) {
	for _, l := range []StringList{nil, {}} {
		v, err := l.Value()
		if err != nil {
			t.Fatalf("Value: %v", err)
		}
		if v != "[]" {
			t.Fatalf("expected empty-array marker, got %v", v)
		}
	}
}

func TestStringListScanNull(t *testing.T) {
	l := StringList{"stale"}
	if err := l.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if len(l) != 0 {
		t.Fatalf("expected empty list from NULL, got %v", l)
	}
}

func TestStringListScanSources(t *testing.T) {
	var fromString StringList
	if err := fromString.Scan(`["a","b"]`); err != nil {
		t.Fatalf("Scan(string): %v", err)
	}
	if !reflect.DeepEqual([]string(fromString), []string{"a", "b"}) {
		t.Fatalf("unexpected list from string source: %v", fromString)
	}

	var fromBytes StringList
	if err := fromBytes.Scan([]byte(`["c"]`)); err != nil {
		t.Fatalf("Scan([]byte): %v", err)
	}
	if !reflect.DeepEqual([]string(fromBytes), []string{"c"}) {
		t.Fatalf("unexpected list from bytes source: %v", fromBytes)
	}

	var fromEmpty StringList
	if err := fromEmpty.Scan(""); err != nil {
		t.Fatalf("Scan(empty): %v", err)
	}
	if len(fromEmpty) != 0 {
		t.Fatalf("expected empty list from empty text, got %v", fromEmpty)
	}

	var l StringList
	if err := l.Scan(42); err == nil {
		t.Fatalf("expected error for unsupported source type")
	}
}
