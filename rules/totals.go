package rules

// Rule group 6 — Totals: grand-total reconstruction, CF amount cap.
// spec.md §4.F group 6, §3 invariants 3 and 6.

var (
	R_2_19_2_1 = Rule{
		Code:        "2.19.2.1",
		Category:    GeneralPart3,
		Severity:    Reject,
		SATLevel:    Certificador,
		Fields:      []string{"grand_total", "items.total"},
		Description: `grand_total debe ser igual a la suma de item.total dentro de la tolerancia monetaria; debe ser no negativo.`,
	}
	R_2_2_4_11 = Rule{
		Code:        "2.2.4.11",
		Category:    GeneralPart3,
		Severity:    Reject,
		SATLevel:    Certificador,
		Fields:      []string{"receptor_id_kind", "grand_total", "currency"},
		Description: `Para documentos de tipo factura con receptor CF, grand_total debe ser menor a 2500.00 GTQ (o su equivalente convertido).`,
	}
)
