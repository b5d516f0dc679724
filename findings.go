package felcert

import (
	"time"

	"github.com/rkingkong/validor-fel-sat-gt/rules"
)

// Finding is one diagnostic produced by a rule group, per spec.md §4.F's
// diagnostic model. Mirrors the teacher's SemanticError{Rule, InvFields,
// Text} shape, generalized with the two axes FEL certification needs:
// Severity (gates certification) and Category (orchestration group).
type Finding struct {
	Code            string         `json:"code"`
	Message         string         `json:"message"`
	Severity        rules.Severity `json:"severity"`
	Category        rules.Category `json:"category,omitempty"`
	SATLevel        rules.SATLevel `json:"sat_level,omitempty"`
	XPath           string         `json:"xpath,omitempty"`
	Field           string         `json:"field,omitempty"`
	Expected        string         `json:"expected,omitempty"`
	Actual          string         `json:"actual,omitempty"`
	RulebookVersion string         `json:"rulebook_version,omitempty"`
}

func findingFromRule(r rules.Rule, message string) Finding {
	return Finding{
		Code:     r.Code,
		Message:  message,
		Severity: r.Severity,
		Category: r.Category,
		SATLevel: r.SATLevel,
	}
}

// systemFinding synthesizes a SYSTEM_<GROUP> REJECT finding from a
// recovered panic, per spec.md §4.F's "Policy" and §7 plane 3.
func systemFinding(group, detail string) Finding {
	return Finding{
		Code:     "SYSTEM_" + group,
		Message:  "error interno del grupo de reglas " + group + ": " + detail,
		Severity: rules.Reject,
		Category: rules.GeneralPart1,
		SATLevel: rules.Certificador,
	}
}

// Verdict is the aggregate result of validating one document, per
// spec.md §6.
type Verdict struct {
	IsValid      bool
	Errors       []Finding
	Warnings     []Finding
	RulesApplied []string
	ValidatedAt  time.Time
	DocumentType string
	SchemaUsed   string
}

// buildVerdict partitions findings into Errors (REJECT) and Warnings
// (INFORM_ERROR, INFORM_WARNING); IsValid is computed, never stored
// independently, so it can never drift from the finding list (spec.md
// §6: "is_valid is true iff errors is empty").
func buildVerdict(findings []Finding, docType string, schemaUsed string, validatedAt time.Time, rulebookVersion string) *Verdict {
	v := &Verdict{
		DocumentType: docType,
		SchemaUsed:   schemaUsed,
		ValidatedAt:  validatedAt,
	}
	applied := map[string]bool{}
	for _, f := range findings {
		f.RulebookVersion = rulebookVersion
		switch f.Severity {
		case rules.Reject:
			v.Errors = append(v.Errors, f)
		default:
			v.Warnings = append(v.Warnings, f)
		}
		if f.Code != "" && !applied[f.Code] {
			applied[f.Code] = true
			v.RulesApplied = append(v.RulesApplied, f.Code)
		}
	}
	v.IsValid = len(v.Errors) == 0
	return v
}
