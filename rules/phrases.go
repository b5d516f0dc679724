package rules

// Rule group 4 — Phrases: mandatory phrase presence and scenario-code
// admissibility. spec.md §4.F group 4.

var (
	R_2_6_1_1 = Rule{
		Code:        "2.6.1.1",
		Category:    PhraseValidation,
		Severity:    InformError,
		SATLevel:    Certificador,
		Fields:      []string{"phrases"},
		Description: `Toda frase declarada debe tener un código de escenario admisible para su tipo de frase.`,
	}
	R_2_6_1_6 = Rule{
		Code:        "2.6.1.6",
		Category:    PhraseValidation,
		Severity:    InformError,
		SATLevel:    Certificador,
		Fields:      []string{"type", "is_export", "phrases"},
		Description: `Los documentos de exportación de tipo FACT, FCAM, NDEB o NCRE deben incluir la frase tipo 4 con escenario 1.`,
	}
)
