package rules

// Rule group 3 — Taxes: per tax kind, unit-code range and tax-amount
// computation. spec.md §4.F group 3, §3 invariant 7.

var (
	R_2_7_1_1 = Rule{
		Code:        "2.7.1.1",
		Category:    TaxSpecific,
		Severity:    Reject,
		SATLevel:    Certificador,
		Fields:      []string{"taxes.unit_code"},
		Description: `El código de unidad gravable de cada impuesto debe pertenecer al conjunto definido para su tipo en el catálogo.`,
	}
	R_2_7_4_1 = Rule{
		Code:        "2.7.4.1",
		Category:    TaxSpecific,
		Severity:    Reject,
		SATLevel:    Certificador,
		Fields:      []string{"taxes.taxable_amount", "taxes.tax_amount"},
		Description: `Para impuesto IVA con unit_code = 1, tax_amount debe ser igual a round2(taxable_amount × 0.12); con unit_code = 2, tax_amount debe ser 0.`,
	}
)
