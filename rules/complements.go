package rules

// Rule group 5 — Complements: mandatory complements per flag, and
// per-complement field validation. spec.md §4.F group 5.

var (
	R_2_2_5_2 = Rule{
		Code:        "2.2.5.2",
		Category:    ComplementValidation,
		Severity:    Reject,
		SATLevel:    Certificador,
		Fields:      []string{"type", "is_export", "complements"},
		Description: `Los documentos de exportación (salvo NDEB y NCRE) deben incluir el complemento EXPORTACION.`,
	}
	R_2_4_1_1 = Rule{
		Code:        "2.4.1.1",
		Category:    ComplementValidation,
		Severity:    Reject,
		SATLevel:    Certificador,
		Fields:      []string{"complements"},
		Description: `El código INCOTERM del complemento EXPORTACION debe pertenecer al conjunto cerrado INCOTERMS 2020.`,
	}
	R_2_4_2_1 = Rule{
		Code:        "2.4.2.1",
		Category:    ComplementValidation,
		Severity:    Reject,
		SATLevel:    Certificador,
		Fields:      []string{"complements"},
		Description: `Las referencias UUID dentro de un complemento deben tener forma de UUID v4.`,
	}
)
