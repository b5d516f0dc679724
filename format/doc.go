// Package format holds pure predicates over strings and monetary values:
// NIT and CUI check digits, UUID v4 shape, and monetary bounds/rounding.
// The predicates return a bool, ParseUUIDv4 returns an error alongside
// the parsed UUID, and Round2/Round6 return decimals; none of them panics
// on malformed input, per spec.md §4.B "Failure returns false — no
// exceptions."
package format
