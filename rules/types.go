// Package rules holds the stable metadata for every business rule the FEL
// validation engine can fire: its rulebook code, category, severity, and
// the SAT tier at which it is contractually defined to apply.
//
// Mirrors the teacher library's rules.Rule{Code, Fields, Description} shape
// (github.com/speedata/einvoice/rules), generalized with the two axes
// spec.md §4.F's diagnostic model adds: Severity and SATLevel.
package rules

// Category is one of the eight rule groups spec.md §4.F runs in fixed
// order.
type Category string

const (
	GeneralPart1        Category = "GENERAL_PART1"
	GeneralPart2        Category = "GENERAL_PART2"
	TaxSpecific         Category = "TAX_SPECIFIC"
	DTETypeSpecific     Category = "DTE_TYPE_SPECIFIC"
	PhraseValidation    Category = "PHRASE_VALIDATION"
	ComplementValidation Category = "COMPLEMENT_VALIDATION"
	GeneralPart3        Category = "GENERAL_PART3"
	GeneralPart4        Category = "GENERAL_PART4"
)

// Severity is the severity a rule fires at — it drives pipeline gating per
// spec.md §4.F.
type Severity string

const (
	Reject         Severity = "REJECT"
	InformError    Severity = "INFORM_ERROR"
	InformWarning  Severity = "INFORM_WARNING"
)

// SATLevel records at which tier the rule would fire: this certifying
// system, or one of the two downstream SAT validation tiers.
type SATLevel string

const (
	Certificador SATLevel = "CERTIFICADOR"
	SAT1         SATLevel = "SAT1"
	SAT2         SATLevel = "SAT2"
)

// Rule is one business rule from the FEL rulebook (Documento Técnico
// Informático para certificadores del Régimen FEL / FEL Reglas y
// Validaciones v1.7.9).
type Rule struct {
	Code        string   // rulebook code, e.g. "2.2.4.11"
	Category    Category
	Severity    Severity
	SATLevel    SATLevel
	Fields      []string // affected document fields, for diagnostics
	Description string   // human-readable requirement text (Spanish)
}
