package rules

// Rule group 1 — General Part 1: emission date/time, emisor identity,
// establishment activity, receptor identity, export/public-show/currency
// coherence. Runs first; spec.md §4.F group 1.

var (
	R_2_2_1_1 = Rule{
		Code:        "2.2.1.1",
		Category:    GeneralPart1,
		Severity:    InformError,
		SATLevel:    Certificador,
		Fields:      []string{"emission_timestamp", "certification_timestamp"},
		Description: `Para tipos de documento distintos de CIVA/CAIS, (fecha_certificacion − fecha_emision) no debe exceder 5 días.`,
	}
	R_2_2_1_2 = Rule{
		Code:        "2.2.1.2",
		Category:    GeneralPart1,
		Severity:    InformError,
		SATLevel:    Certificador,
		Fields:      []string{"emission_timestamp", "certification_timestamp"},
		Description: `La fecha de emisión no debe exceder el último día calendario del mes de certificación.`,
	}
	R_2_2_2_1 = Rule{
		Code:        "2.2.2.1",
		Category:    GeneralPart1,
		Severity:    Reject,
		SATLevel:    Certificador,
		Fields:      []string{"emisor_nit"},
		Description: `El NIT del emisor debe tener un dígito verificador válido.`,
	}
	R_2_2_2_2 = Rule{
		Code:        "2.2.2.2",
		Category:    GeneralPart1,
		Severity:    Reject,
		SATLevel:    Certificador,
		Fields:      []string{"emisor_nit"},
		Description: `El NIT del emisor debe existir y estar activo en el registro de contribuyentes (RTU).`,
	}
	R_2_2_3_1 = Rule{
		Code:        "2.2.3.1",
		Category:    GeneralPart1,
		Severity:    Reject,
		SATLevel:    Certificador,
		Fields:      []string{"establishment_code"},
		Description: `El establecimiento del emisor debe estar activo en la fecha de emisión.`,
	}
	R_2_2_4_1 = Rule{
		Code:        "2.2.4.1",
		Category:    GeneralPart1,
		Severity:    Reject,
		SATLevel:    Certificador,
		Fields:      []string{"receptor_id", "receptor_id_kind"},
		Description: `El identificador del receptor debe ser coherente con su tipo declarado (NIT, CUI, EXT o CF).`,
	}
	R_2_2_5_1 = Rule{
		Code:        "2.2.5.1",
		Category:    GeneralPart1,
		Severity:    Reject,
		SATLevel:    Certificador,
		Fields:      []string{"type", "is_export"},
		Description: `Los tipos de documento NABN, RDON, RECI, FESP, CIVA y CAIS no pueden marcarse como exportación.`,
	}
	R_2_2_6_1 = Rule{
		Code:        "2.2.6.1",
		Category:    GeneralPart1,
		Severity:    Reject,
		SATLevel:    Certificador,
		Fields:      []string{"type", "is_public_show"},
		Description: `La bandera de espectáculo público solo es válida en los tipos FACT, FCAM, FPEQ, FCAP, FAPE y FCPE.`,
	}
	R_2_2_7_1 = Rule{
		Code:        "2.2.7.1",
		Category:    GeneralPart1,
		Severity:    Reject,
		SATLevel:    Certificador,
		Fields:      []string{"currency"},
		Description: `La moneda del documento debe ser un código ISO-4217 reconocido.`,
	}
)
