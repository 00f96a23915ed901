package encoding

import (
	"errors"
	"strings"
	"testing"
)

// testFields implements Encodable and Decodable for testing.
type testFields struct {
	Type string
	Name string
	Flag bool
}

func (p testFields) EncodeFields() map[string]any {
	return map[string]any{
		"t":    p.Type,
		"name": p.Name,
		"flag": p.Flag,
	}
}

func (p *testFields) DecodeFields(m map[string]any) error {
	if v, ok := m["t"].(string); ok {
		p.Type = v
	}
	if v, ok := m["name"].(string); ok {
		p.Name = v
	}
	if v, ok := m["flag"].(bool); ok {
		p.Flag = v
	}
	return nil
}

func TestNewEncoder(t *testing.T) {
	// Should work with any key length (derives 32-byte key)
	if _, err := NewEncoder([]byte("short")); err != nil {
		t.Fatalf("NewEncoder with short key failed: %v", err)
	}

	if _, err := NewEncoder([]byte("this-is-a-32-byte-key-for-hmac!!")); err != nil {
		t.Fatalf("NewEncoder with 32-byte key failed: %v", err)
	}

	if _, err := NewEncoder(nil); err == nil {
		t.Fatal("NewEncoder with empty key should fail")
	}
}

func TestRoundTrip(t *testing.T) {
	enc, err := NewEncoder([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	original := testFields{Type: "palette", Name: "slider", Flag: true}

	token, err := enc.Encode(original)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !strings.Contains(token, ".") {
		t.Fatalf("token %q should be payload.signature", token)
	}

	var decoded testFields
	if err := enc.Decode(token, &decoded); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded != original {
		t.Errorf("decoded = %+v, want %+v", decoded, original)
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	enc, _ := NewEncoder([]byte("test-key"))

	a, _ := enc.Encode(testFields{Type: "canvas", Name: "x"})
	b, _ := enc.Encode(testFields{Type: "canvas", Name: "x"})
	if a != b {
		t.Errorf("same fields produced different tokens: %q vs %q", a, b)
	}
}

func TestTamperedToken(t *testing.T) {
	enc, _ := NewEncoder([]byte("test-key"))

	token, err := enc.Encode(testFields{Type: "palette", Name: "button"})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	_, sig, _ := strings.Cut(token, ".")
	other, _ := enc.Encode(testFields{Type: "palette", Name: "slider"})
	otherPayload, _, _ := strings.Cut(other, ".")

	var decoded testFields
	err = enc.Decode(otherPayload+"."+sig, &decoded)
	if !errors.Is(err, ErrSignatureInvalid) {
		t.Errorf("swapped payload: got %v, want ErrSignatureInvalid", err)
	}
}

func TestWrongKey(t *testing.T) {
	enc1, _ := NewEncoder([]byte("key-one"))
	enc2, _ := NewEncoder([]byte("key-two"))

	token, _ := enc1.Encode(testFields{Name: "a"})

	var decoded testFields
	if err := enc2.Decode(token, &decoded); !errors.Is(err, ErrSignatureInvalid) {
		t.Errorf("got %v, want ErrSignatureInvalid", err)
	}
}

func TestMalformedTokens(t *testing.T) {
	enc, _ := NewEncoder([]byte("test-key"))

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"no separator", "abcdef"},
		{"bad payload base64", "!!!.abcd"},
		{"bad signature base64", "YWJj.!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var decoded testFields
			err := enc.Decode(tt.token, &decoded)
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Decode(%q) = %v, want ErrInvalidFormat", tt.token, err)
			}
		})
	}
}
