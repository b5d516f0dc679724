// Package rules contains the FEL business rule catalog: one Rule var per
// rulebook code, grouped one file per validation group in the order
// spec.md §4.F runs them.
//
// # Authorship
//
// Unlike the teacher package this one is descended from, these vars are
// not generated from a machine-readable schematron — the FEL rulebook
// (Reglas y Validaciones del Régimen FEL, Acuerdo de Directorio SAT) is a
// published PDF, not structured data, so there is no go:generate source
// and no cmd/genrules equivalent here. Each Rule below is hand-authored
// against the rulebook text and kept in sync by hand when the rulebook
// version changes (see catalog.RulebookVersion).
//
// # Usage
//
//	import "github.com/rkingkong/validor-fel-sat-gt/rules"
//
//	findings = append(findings, findingFromRule(rules.R_2_2_2_1, "emisor NIT inválido"))
package rules
