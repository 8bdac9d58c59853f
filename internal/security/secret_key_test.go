package security

import (
	"strings"
	"testing"
)

func TestGenerateSecretKey(t *testing.T) {
	t.Parallel()

	if _, err := GenerateSecretKey(MinSecretKeyLength - 1); err == nil {
		t.Fatal("expected short key length to fail")
	}

	first, err := GenerateSecretKey(DefaultSecretKeyLength)
	if err != nil {
		t.Fatalf("generate secret key: %v", err)
	}
	if len(first) != DefaultSecretKeyLength {
		t.Fatalf("expected %d characters, got %d", DefaultSecretKeyLength, len(first))
	}
	for _, char := range first {
		if !strings.ContainsRune(secretKeyAlphabet, char) {
			t.Fatalf("secret key contains %q outside alphabet", char)
		}
	}

	second, err := GenerateSecretKey(DefaultSecretKeyLength)
	if err != nil {
		t.Fatalf("generate second secret key: %v", err)
	}
	if first == second {
		t.Fatal("expected two generated keys to differ")
	}
}

func TestRandomStringSingleCharacterAlphabet(t *testing.T) {
	t.Parallel()

	got, err := randomString(8, "X")
	if err != nil {
		t.Fatalf("randomString: %v", err)
	}
	if got != strings.Repeat("X", 8) {
		t.Fatalf("expected XXXXXXXX, got %q", got)
	}
}
