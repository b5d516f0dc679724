package rules

// Rule group 7 — Signatures: structural presence of the two expected
// signature blocks. Cryptographic verification is outside the core.
// spec.md §4.F group 7.

var (
	R_2_21_1_1 = Rule{
		Code:        "2.21.1.1",
		Category:    GeneralPart4,
		Severity:    Reject,
		SATLevel:    Certificador,
		Fields:      []string{"signatures"},
		Description: `El documento debe portar un bloque de firma estructural con rol EMISOR.`,
	}
	R_2_21_1_2 = Rule{
		Code:        "2.21.1.2",
		Category:    GeneralPart4,
		Severity:    Reject,
		SATLevel:    Certificador,
		Fields:      []string{"signatures"},
		Description: `El documento debe portar un bloque de firma estructural con rol CERTIFICADOR.`,
	}
)
