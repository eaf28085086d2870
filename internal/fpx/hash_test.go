package fpx

import "testing"

func TestComputeHash_Deterministic(t *testing.T) {
	attrs := AttributeMap{"user_agent": "Mozilla/5.0", "language": "en-US", "screen": "1920x1080"}
	a := ComputeHash(attrs)
	b := ComputeHash(attrs)
	if a != b {
		t.Fatalf("hash not deterministic: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
}

func TestComputeHash_KeyInsensitive(t *testing.T) {
	// Only values participate, so swapping which key holds which value
	// does not change the digest.
	a := ComputeHash(AttributeMap{"a": "x", "b": "y"})
	b := ComputeHash(AttributeMap{"b": "x", "a": "y"})
	if a != b {
		t.Fatalf("expected identical digests, got %s vs %s", a, b)
	}
}

func TestComputeHash_ValueSensitive(t *testing.T) {
	a := ComputeHash(AttributeMap{"a": "x"})
	b := ComputeHash(AttributeMap{"a": "z"})
	if a == b {
		t.Fatal("different values must produce different digests")
	}
}

func TestComputeHash_EmptyMap(t *testing.T) {
	a := ComputeHash(AttributeMap{})
	b := ComputeHash(nil)
	if a != b {
		t.Fatalf("empty and nil maps must agree: %s vs %s", a, b)
	}
}

func TestComputeHash_MixedTypes(t *testing.T) {
	attrs := AttributeMap{
		"bool":   true,
		"int":    float64(42),
		"null":   nil,
		"nested": map[string]any{"k": "v"},
	}
	a := ComputeHash(attrs)
	b := ComputeHash(attrs)
	if a != b {
		t.Fatalf("mixed-type hash not deterministic: %s vs %s", a, b)
	}
}

func TestEncodeDecodeData(t *testing.T) {
	if EncodeData(nil) != nil {
		t.Fatal("nil map must encode to nil")
	}
	if EncodeData(AttributeMap{}) != nil {
		t.Fatal("empty map must encode to nil")
	}
	enc := EncodeData(AttributeMap{"k": "v"})
	if enc == nil {
		t.Fatal("non-empty map must encode")
	}
	dec := DecodeData(enc)
	if dec["k"] != "v" {
		t.Fatalf("round trip lost data: %v", dec)
	}

	bad := `{"not json`
	if DecodeData(&bad) != nil {
		t.Fatal("malformed payload must decode to nil")
	}
	if DecodeData(nil) != nil {
		t.Fatal("nil payload must decode to nil")
	}
}
