package format

import (
	"math/rand"
	"strings"
	"testing"
)

// TestValidNIT_FuzzRandomStrings throws random byte strings at ValidNIT and
// requires only that it never panics and that it rejects anything other
// than "CF" whose trimmed length is outside 2–13 characters. This is the NIT half of spec.md §8's "NIT/CUI fuzz (random
// strings → predicates)" suite.
func TestValidNIT_FuzzRandomStrings(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))
	alphabet := "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ -"

	for i := 0; i < 500; i++ {
		n := rng.Intn(20)
		var b strings.Builder
		for j := 0; j < n; j++ {
			b.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		s := b.String()

		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("ValidNIT(%q) panicked: %v", s, r)
				}
			}()
			got := ValidNIT(s)
			trimmed := strings.ToUpper(strings.TrimSpace(s))
			if trimmed != "CF" && (len(trimmed) < 2 || len(trimmed) > 13) && got {
				t.Errorf("ValidNIT(%q) = true, want false for malformed-length input", s)
			}
		}()
	}
}

// TestValidNIT_FuzzCorrectDigitsAlwaysValidate generates random digit
// prefixes of every admissible length, derives the correct check digit for
// each, and requires ValidNIT to accept the result and reject every other
// terminal character for that same prefix.
func TestValidNIT_FuzzCorrectDigitsAlwaysValidate(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 200; i++ {
		length := 1 + rng.Intn(12)
		var b strings.Builder
		for j := 0; j < length; j++ {
			b.WriteByte(byte('0' + rng.Intn(10)))
		}
		prefix := b.String()

		nit, ok := nitWithCheckDigit(prefix)
		if !ok {
			t.Fatalf("nitWithCheckDigit(%q) failed unexpectedly", prefix)
		}
		if !ValidNIT(nit) {
			t.Errorf("ValidNIT(%q) = false, want true for a correctly computed check digit", nit)
		}

		for _, terminal := range "0123456789K" {
			candidate := prefix + string(terminal)
			if candidate == nit {
				continue
			}
			if ValidNIT(candidate) {
				t.Errorf("ValidNIT(%q) = true, want false: only %q has the correct check digit for prefix %q", candidate, nit, prefix)
			}
		}
	}
}

// TestValidCUI_FuzzRandomStrings mirrors the NIT fuzz suite for CUIs: random
// strings must never panic, and anything not exactly 13 digits must be
// rejected.
func TestValidCUI_FuzzRandomStrings(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(3))
	alphabet := "0123456789ABCabc -"

	for i := 0; i < 500; i++ {
		n := rng.Intn(20)
		var b strings.Builder
		for j := 0; j < n; j++ {
			b.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		s := b.String()

		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("ValidCUI(%q) panicked: %v", s, r)
				}
			}()
			got := ValidCUI(s)
			if len(s) != 13 && got {
				t.Errorf("ValidCUI(%q) = true, want false for a non-13-character input", s)
			}
		}()
	}
}

// TestValidCUI_FuzzCorrectDigitsAlwaysValidate mirrors the NIT equivalent:
// random 8-digit prefixes get the correct check digit computed and
// inserted at index 8 (cuiWithCheckDigit appends the fixed suffix "0101"),
// and ValidCUI must accept the result and reject it once bumpCheckDigit
// has changed that digit.
func TestValidCUI_FuzzCorrectDigitsAlwaysValidate(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(4))

	for i := 0; i < 200; i++ {
		var prefix strings.Builder
		for j := 0; j < 8; j++ {
			prefix.WriteByte(byte('0' + rng.Intn(10)))
		}

		cui, ok := cuiWithCheckDigit(prefix.String())
		if !ok {
			t.Fatalf("cuiWithCheckDigit failed unexpectedly for prefix %q", prefix.String())
		}
		if !ValidCUI(cui) {
			t.Errorf("ValidCUI(%q) = false, want true for a correctly computed check digit", cui)
		}

		corrupted := bumpCheckDigit(cui)
		if corrupted != cui && ValidCUI(corrupted) {
			t.Errorf("ValidCUI(%q) = true, want false after corrupting the check digit", corrupted)
		}
	}
}
