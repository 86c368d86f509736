package protocol

import (
	"strings"
	"testing"
)

func TestEncodeDecodeDamages_RoundTrip(t *testing.T) {
	t.Parallel()

	in := []Damage{
		{X: 0.25, Y: 0.5, Type: "scratch", Note: "driver door"},
		{X: 0.9, Y: 0.1, Type: "dent", Note: ""},
	}

	raw, err := EncodeDamages(in)
	if err != nil {
		t.Fatalf("EncodeDamages error: %v", err)
	}

	out, err := DecodeDamages(raw)
	if err != nil {
		t.Fatalf("DecodeDamages error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 damages, got %d", len(out))
	}
	if out[0] != in[0] || out[1] != in[1] {
		t.Fatalf("round trip mismatch: %+v vs %+v", out, in)
	}
}

func TestEncodeDamages_NilEncodesAsEmptyArray(t *testing.T) {
	t.Parallel()

	raw, err := EncodeDamages(nil)
	if err != nil {
		t.Fatalf("EncodeDamages error: %v", err)
	}
	if raw != "[]" {
		t.Fatalf("expected [], got %q", raw)
	}
}

func TestEncodeDamages_PreservesUnicode(t *testing.T) {
	t.Parallel()

	raw, err := EncodeDamages([]Damage{{Type: "rysa", Note: "przedni błotnik"}})
	if err != nil {
		t.Fatalf("EncodeDamages error: %v", err)
	}
	if !strings.Contains(raw, "przedni błotnik") {
		t.Fatalf("unicode note was escaped: %q", raw)
	}
	if strings.Contains(raw, `\u`) {
		t.Fatalf("expected no unicode escapes, got %q", raw)
	}
}

func TestDecodeDamages_Empty(t *testing.T) {
	t.Parallel()

	out, err := DecodeDamages("")
	if err != nil {
		t.Fatalf("DecodeDamages error: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty list, got %v", out)
	}
}

func TestDecodeDamages_Malformed(t *testing.T) {
	t.Parallel()

	out, err := DecodeDamages("{not json")
	if err == nil {
		t.Fatalf("expected error for malformed input")
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("expected usable empty list, got %v", out)
	}
}

func TestDecodeDamages_JSONNull(t *testing.T) {
	t.Parallel()

	out, err := DecodeDamages("null")
	if err != nil {
		t.Fatalf("DecodeDamages error: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty list for null, got %v", out)
	}
}
