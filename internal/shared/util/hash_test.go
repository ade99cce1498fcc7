package util

import "testing"

func TestHashDocument(t *testing.T) {
	doc := []byte("%PDF-1.7 sample bytes")
	got := HashDocument(doc)
	if got != HashDocument(doc) {
		t.Fatalf("expected stable hash, got %s", got)
	}
	if got == HashDocument([]byte("other")) {
		t.Fatalf("distinct payloads should not collide")
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("hash contains non-hex character: %c", ch)
		}
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
}
