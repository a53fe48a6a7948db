package models

import (
	"reflect"
	"testing"
)

func TestStringListScan(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  StringList
	}{
		{"json array bytes", []byte(`["a","b"]`), StringList{"a", "b"}},
		{"json array string", `["x"]`, StringList{"x"}},
		{"plain string", "https://example.com/img.jpeg", StringList{"https://example.com/img.jpeg"}},
		{"empty column", "", StringList{}},
		{"nil column", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			if err := got.Scan(tt.value); err != nil {
				t.Fatalf("Scan(%v): %v", tt.value, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Scan(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestStringListScanRejectsNonText(t *testing.T) {
	var got StringList
	if err := got.Scan(42); err == nil {
		t.Fatal("expected an error for a non-text column")
	}
}

func TestStringListValue(t *testing.T) {
	v, err := StringList{"a", "b"}.Value()
	if err != nil {
		t.Fatalf("Value(): %v", err)
	}
	if v != `["a","b"]` {
		t.Errorf("Value() = %v, want [\"a\",\"b\"]", v)
	}

	v, err = StringList(nil).Value()
	if err != nil {
		t.Fatalf("Value(): %v", err)
	}
	if v != "[]" {
		t.Errorf("Value() = %v, want []", v)
	}
}
