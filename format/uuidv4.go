package format

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// uuidV4Pattern matches the canonical hyphenated form with version nibble
// 4 and variant nibble in {8,9,a,b}, case-insensitive.
var uuidV4Pattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-4[0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

// ValidUUIDv4 reports whether s is a canonical UUID v4 string, tolerating
// surrounding whitespace. The regex check matches spec.md §4.B's stated
// shape; it is cross-checked against google/uuid's own Version/Variant
// accessors so the two implementations can never silently disagree.
func ValidUUIDv4(s string) bool {
	s = strings.TrimSpace(s)
	if !uuidV4Pattern.MatchString(s) {
		return false
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return u.Version() == 4 && (u.Variant() == uuid.RFC4122)
}

// ParseUUIDv4 parses s as a UUID v4, returning an error if it is malformed
// or not version 4.
func ParseUUIDv4(s string) (uuid.UUID, error) {
	u, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, err
	}
	if u.Version() != 4 {
		return uuid.Nil, errNotV4
	}
	return u, nil
}

var errNotV4 = uuidVersionError{}

type uuidVersionError struct{}

func (uuidVersionError) Error() string { return "format: uuid is not version 4" }
