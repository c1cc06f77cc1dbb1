package identity

import (
	"regexp"
	"testing"
)

var hexPattern = regexp.MustCompile(`^[0-9a-f]{128}$`)

func TestHasher_Deterministic(t *testing.T) {
	h := NewHasher("pepper")

	first := h.Hash("correct")
	second := h.Hash("correct")
	if first != second {
		t.Fatalf("same input produced different digests: %s vs %s", first, second)
	}
}

func TestHasher_LowercaseHexSHA512(t *testing.T) {
	h := NewHasher("pepper")

	digest := h.Hash("correct")
	if !hexPattern.MatchString(digest) {
		t.Fatalf("digest is not 128 lowercase hex chars: %q", digest)
	}
}

func TestHasher_SaltChangesDigest(t *testing.T) {
	if NewHasher("a").Hash("correct") == NewHasher("b").Hash("correct") {
		t.Fatalf("different salts produced identical digests")
	}
}

func TestHasher_InputChangesDigest(t *testing.T) {
	h := NewHasher("pepper")
	if h.Hash("correct") == h.Hash("wrong") {
		t.Fatalf("different inputs produced identical digests")
	}
}
