package catalog

import "github.com/shopspring/decimal"

// TaxKind is the closed set of tax kinds a DTE line or document may carry.
type TaxKind string

const (
	IVA                   TaxKind = "IVA"
	PETROLEO              TaxKind = "PETROLEO"
	TURISMO_HOSPEDAJE     TaxKind = "TURISMO_HOSPEDAJE"
	TURISMO_PASAJES       TaxKind = "TURISMO_PASAJES"
	TIMBRE_PRENSA         TaxKind = "TIMBRE_PRENSA"
	BOMBEROS              TaxKind = "BOMBEROS"
	TASA_MUNICIPAL        TaxKind = "TASA_MUNICIPAL"
	BEBIDAS_ALCOHOLICAS   TaxKind = "BEBIDAS_ALCOHOLICAS"
	TABACO                TaxKind = "TABACO"
	CEMENTO               TaxKind = "CEMENTO"
	BEBIDAS_NO_ALCOHOLICAS TaxKind = "BEBIDAS_NO_ALCOHOLICAS"
	TARIFA_PORTUARIA      TaxKind = "TARIFA_PORTUARIA"
)

// RuleStatus records whether a tax kind has a defined rule battery. Some
// catalog entries (turismo, bomberos, cemento) are documented per spec.md
// §9 Open Question (c) without an implemented rule — walking that boundary
// honestly (instead of inventing a rule) is the point of this field.
type RuleStatus int

const (
	RulesDefined RuleStatus = iota
	NoRulesDefined
)

// TaxConfig is one catalog entry for a tax kind: its stable SAT code, legal
// basis, whether it contributes to the document grand total, and (where
// defined) its gravable unit codes with names and rates.
type TaxConfig struct {
	Kind        TaxKind
	Code        int // stable SAT numeric code, e.g. IVA -> 1
	Name        string
	LegalBasis  string
	AddsToTotal bool
	Status      RuleStatus
	// Units is the gravable-unit-code table for this kind, keyed by the
	// unit code carried on the document's Tax.UnitCode. IVA's is {1: 12%,
	// 2: 0%} per spec.md §3 invariant 7.
	Units map[int]TaxUnit
}

// TaxUnit names one gravable unit within a tax kind and its rate, where the
// kind uses a flat percentage rate (IVA). Kinds with a per-unit fixed
// amount (PETROLEO, TIMBRE_PRENSA, ...) leave Rate zero and are not rule-
// checked per RuleStatus.
type TaxUnit struct {
	Code int
	Name string
	Rate decimal.Decimal
}

// TaxConfigs is the full closed-set table, keyed by kind.
var TaxConfigs = map[TaxKind]TaxConfig{
	IVA: {
		Kind: IVA, Code: 1, Name: "Impuesto al Valor Agregado",
		LegalBasis: "Decreto 27-92", AddsToTotal: true, Status: RulesDefined,
		Units: map[int]TaxUnit{
			1: {1, "Tasa general", decimal.NewFromInt(12)},
			2: {2, "Exento / tasa cero", decimal.Zero},
		},
	},
	PETROLEO: {
		Kind: PETROLEO, Code: 2, Name: "Impuesto a la Distribución de Petróleo",
		LegalBasis: "Decreto 38-92", AddsToTotal: true, Status: NoRulesDefined,
	},
	TURISMO_HOSPEDAJE: {
		Kind: TURISMO_HOSPEDAJE, Code: 3, Name: "Impuesto de Turismo - Hospedaje",
		LegalBasis: "Decreto 25-74", AddsToTotal: true, Status: NoRulesDefined,
	},
	TURISMO_PASAJES: {
		Kind: TURISMO_PASAJES, Code: 4, Name: "Impuesto de Turismo - Pasajes",
		LegalBasis: "Decreto 25-74", AddsToTotal: true, Status: NoRulesDefined,
	},
	TIMBRE_PRENSA: {
		Kind: TIMBRE_PRENSA, Code: 5, Name: "Timbre de Prensa",
		LegalBasis: "Decreto 3-68", AddsToTotal: true, Status: NoRulesDefined,
	},
	BOMBEROS: {
		Kind: BOMBEROS, Code: 6, Name: "Tasa Bomberos",
		LegalBasis: "Ley orgánica de Bomberos", AddsToTotal: true, Status: NoRulesDefined,
	},
	TASA_MUNICIPAL: {
		Kind: TASA_MUNICIPAL, Code: 7, Name: "Tasa Municipal",
		LegalBasis: "Código Municipal", AddsToTotal: true, Status: NoRulesDefined,
	},
	BEBIDAS_ALCOHOLICAS: {
		Kind: BEBIDAS_ALCOHOLICAS, Code: 8, Name: "Impuesto a Bebidas Alcohólicas",
		LegalBasis: "Decreto 21-2004", AddsToTotal: true, Status: NoRulesDefined,
	},
	TABACO: {
		Kind: TABACO, Code: 9, Name: "Impuesto al Tabaco",
		LegalBasis: "Decreto 61-77", AddsToTotal: true, Status: NoRulesDefined,
	},
	CEMENTO: {
		Kind: CEMENTO, Code: 10, Name: "Impuesto al Cemento",
		LegalBasis: "Decreto 79-2000", AddsToTotal: true, Status: NoRulesDefined,
	},
	BEBIDAS_NO_ALCOHOLICAS: {
		Kind: BEBIDAS_NO_ALCOHOLICAS, Code: 11, Name: "Impuesto a Bebidas no Alcohólicas",
		LegalBasis: "Decreto 190-2000", AddsToTotal: true, Status: NoRulesDefined,
	},
	TARIFA_PORTUARIA: {
		Kind: TARIFA_PORTUARIA, Code: 12, Name: "Tarifa Portuaria",
		LegalBasis: "Decreto 20-2006", AddsToTotal: true, Status: NoRulesDefined,
	},
}

// IVARate returns the flat percentage rate for an IVA unit code, and
// whether the code is recognized.
func IVARate(unitCode int) (decimal.Decimal, bool) {
	unit, ok := TaxConfigs[IVA].Units[unitCode]
	if !ok {
		return decimal.Zero, false
	}
	return unit.Rate, true
}
