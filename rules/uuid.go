package rules

// Rule group 8 — UUID / Serie / Numero: presence, shape, and derivation
// consistency. spec.md §4.F group 8, §3 invariant 5.

var (
	R_3_12_5_1 = Rule{
		Code:        "3.12.5.1",
		Category:    GeneralPart4,
		Severity:    Reject,
		SATLevel:    Certificador,
		Fields:      []string{"authorization_id"},
		Description: `El identificador de autorización debe tener forma de UUID v4.`,
	}
	R_3_12_6_1 = Rule{
		Code:        "3.12.6.1",
		Category:    GeneralPart4,
		Severity:    Reject,
		SATLevel:    Certificador,
		Fields:      []string{"authorization_id", "serie"},
		Description: `serie debe ser igual a uppercase(hex(authorization_id)[0..7]).`,
	}
	R_3_12_7_1 = Rule{
		Code:        "3.12.7.1",
		Category:    GeneralPart4,
		Severity:    Reject,
		SATLevel:    Certificador,
		Fields:      []string{"authorization_id", "numero"},
		Description: `numero debe ser igual a int(hex(authorization_id)[8..15], 16) mod 999_999_999.`,
	}
)
