package felcert

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/rkingkong/validor-fel-sat-gt/config"
	"github.com/rkingkong/validor-fel-sat-gt/format"
	"github.com/rkingkong/validor-fel-sat-gt/registry"
	"github.com/rkingkong/validor-fel-sat-gt/rules"
)

// serieNumeroModulus bounds the numero derived from the authorization
// UUID to the 9-digit field SAT's authorization number occupies.
const serieNumeroModulus = 999_999_999

// runGroupUUID covers the authorization UUID's shape and its derived
// serie/numero pair. spec.md §4.F group 8, §3 invariant 5.
//
// The teacher has no UUID rule of its own; this group is a pure function
// shaped like the other groups: a version/variant check of the UUID plus
// the serie/numero reconstruction FEL layers on top.
func runGroupUUID(doc *Document, reg registry.Registry, cfg config.Options) []Finding {
	var findings []Finding

	if doc.AuthorizationID == nil {
		return findings
	}

	if !format.ValidUUIDv4(doc.AuthorizationID.String()) {
		return []Finding{findingFromRule(rules.R_3_12_5_1,
			fmt.Sprintf("el UUID de autorización %q no tiene forma de UUID v4", doc.AuthorizationID.String()))}
	}

	expectedSerie, expectedNumero := deriveSerieNumero(*doc.AuthorizationID)

	if doc.Serie != expectedSerie {
		f := findingFromRule(rules.R_3_12_6_1,
			"la serie declarada no coincide con la derivada del UUID de autorización")
		f.Expected = expectedSerie
		f.Actual = doc.Serie
		findings = append(findings, f)
	}

	if doc.Numero != expectedNumero {
		f := findingFromRule(rules.R_3_12_7_1,
			"el número declarado no coincide con el derivado del UUID de autorización")
		f.Expected = strconv.FormatUint(expectedNumero, 10)
		f.Actual = strconv.FormatUint(doc.Numero, 10)
		findings = append(findings, f)
	}

	return findings
}

// deriveSerieNumero reconstructs the serie and numero SAT assigns from
// an authorization UUID: serie is the first 8 hex characters of the
// UUID's compact (no-hyphen) form, uppercased; numero is the next 8 hex
// characters, interpreted as a base-16 integer and reduced modulo
// serieNumeroModulus.
func deriveSerieNumero(u uuid.UUID) (serie string, numero uint64) {
	hex := strings.ReplaceAll(u.String(), "-", "")
	serie = strings.ToUpper(hex[0:8])
	n, _ := strconv.ParseUint(hex[8:16], 16, 64)
	numero = n % serieNumeroModulus
	return serie, numero
}
