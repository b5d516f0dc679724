package format

var cuiMultipliers = [8]int{2, 3, 4, 5, 6, 7, 8, 9}

// ValidCUI reports whether s is a well-formed Guatemalan CUI (Código Único
// de Identificación) with a correct check digit, per spec.md §4.B.
//
// Shape: exactly 13 digits. The 9th digit is the check digit, computed
// over the first 8 digits: s = Σ digit_i × m_i with multipliers
// [2,3,4,5,6,7,8,9]; c = (s × 10) mod 11; the expected check digit is 0 if
// c = 10, else c.
func ValidCUI(s string) bool {
	if len(s) != 13 {
		return false
	}
	var digits [13]int
	for i := 0; i < 13; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		digits[i] = int(c - '0')
	}
	sum := 0
	for i := 0; i < 8; i++ {
		sum += digits[i] * cuiMultipliers[i]
	}
	c := (sum * 10) % 11
	expected := c
	if c == 10 {
		expected = 0
	}
	return digits[8] == expected
}
