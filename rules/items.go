package rules

// Rule group 2 — Items: item-count caps per document class, per-item price
// computation, discount bounds, good-vs-service constraints. spec.md §4.F
// group 2, §3 invariants 1, 2 and 4.

var (
	R_2_3_1_1 = Rule{
		Code:        "2.3.1.1",
		Category:    GeneralPart2,
		Severity:    Reject,
		SATLevel:    Certificador,
		Fields:      []string{"is_public_show", "items"},
		Description: `Los documentos con bandera de espectáculo público deben tener exactamente un ítem.`,
	}
	R_2_3_1_2 = Rule{
		Code:        "2.3.1.2",
		Category:    GeneralPart2,
		Severity:    Reject,
		SATLevel:    Certificador,
		Fields:      []string{"type", "items"},
		Description: `Los documentos CIVA admiten a lo sumo dos ítems.`,
	}
	R_2_3_2_1 = Rule{
		Code:        "2.3.2.1",
		Category:    GeneralPart2,
		Severity:    Reject,
		SATLevel:    Certificador,
		Fields:      []string{"items.line_number"},
		Description: `Los números de línea de los ítems deben formar la secuencia 1..N sin huecos.`,
	}
	R_2_3_3_1 = Rule{
		Code:        "2.3.3.1",
		Category:    GeneralPart2,
		Severity:    Reject,
		SATLevel:    Certificador,
		Fields:      []string{"items.price", "items.quantity", "items.unit_price"},
		Description: `El precio de cada ítem debe ser igual a round2(cantidad × precio_unitario), dentro de la tolerancia monetaria configurada.`,
	}
	R_2_3_4_1 = Rule{
		Code:        "2.3.4.1",
		Category:    GeneralPart2,
		Severity:    Reject,
		SATLevel:    Certificador,
		Fields:      []string{"items.discount", "items.other_discount", "items.price"},
		Description: `El descuento de cada ítem no debe exceder el precio; el descuento adicional no debe exceder precio − descuento.`,
	}
	R_2_3_8_1 = Rule{
		Code:        "2.3.8.1",
		Category:    GeneralPart2,
		Severity:    Reject,
		SATLevel:    Certificador,
		Fields:      []string{"type", "items.kind"},
		Description: `Los tipos de documento agrícola FACA, FCCA, FAAE y FCAE solo admiten ítems de tipo bien (kind = B).`,
	}
	R_2_3_8_2 = Rule{
		Code:        "2.3.8.2",
		Category:    GeneralPart2,
		Severity:    Reject,
		SATLevel:    Certificador,
		Fields:      []string{"is_public_show", "items.kind"},
		Description: `Los documentos con bandera de espectáculo público requieren que el ítem sea un servicio (kind = S).`,
	}
)
