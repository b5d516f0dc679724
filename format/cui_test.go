package format

import "testing"

func TestValidCUI_WrongLength(t *testing.T) {
	t.Parallel()
	cases := []string{"", "123", "123456789012", "12345678901234"}
	for _, c := range cases {
		if ValidCUI(c) {
			t.Errorf("expected %q (wrong length) to be invalid", c)
		}
	}
}

func TestValidCUI_NonDigits(t *testing.T) {
	t.Parallel()
	if ValidCUI("12345678A012D") {
		t.Error("expected non-digit CUI to be invalid")
	}
}

func TestValidCUI_CheckDigitRoundTrip(t *testing.T) {
	t.Parallel()

	for _, prefix := range []string{"12345678", "00000001", "99999999"} {
		cui, ok := cuiWithCheckDigit(prefix)
		if !ok {
			t.Fatalf("could not construct CUI for prefix %q", prefix)
		}
		if !ValidCUI(cui) {
			t.Errorf("expected %q to be valid", cui)
		}
		bumped := bumpCheckDigit(cui)
		if ValidCUI(bumped) {
			t.Errorf("expected %q (check digit bumped) to be invalid", bumped)
		}
	}
}

func cuiWithCheckDigit(prefix string) (string, bool) {
	if len(prefix) != 8 {
		return "", false
	}
	sum := 0
	for i := 0; i < 8; i++ {
		c := prefix[i]
		if c < '0' || c > '9' {
			return "", false
		}
		sum += int(c-'0') * cuiMultipliers[i]
	}
	check := (sum * 10) % 11
	if check == 10 {
		check = 0
	}
	// departamento/municipio suffix is opaque to the check digit, so any
	// 4 digits after it keep the CUI well-formed.
	return prefix + string(byte('0'+check)) + "0101", true
}

func bumpCheckDigit(s string) string {
	d := s[8]
	next := byte('0' + (int(d-'0')+1)%10)
	return s[:8] + string(next) + s[9:]
}
