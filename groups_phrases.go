package felcert

import (
	"github.com/rkingkong/validor-fel-sat-gt/catalog"
	"github.com/rkingkong/validor-fel-sat-gt/config"
	"github.com/rkingkong/validor-fel-sat-gt/registry"
	"github.com/rkingkong/validor-fel-sat-gt/rules"
)

var exportPhraseTypes = map[catalog.DocumentType]bool{
	catalog.FACT: true, catalog.FCAM: true, catalog.NDEB: true, catalog.NCRE: true,
}

// runGroupPhrases covers presence of mandatory phrase types and
// scenario-code admissibility. spec.md §4.F group 4.
//
// Grounded on the teacher's check_peppol.go closed-set membership
// dispatch, generalized from PEPPOL profile codes to (phrase type,
// scenario) admissibility pairs.
func runGroupPhrases(doc *Document, reg registry.Registry, cfg config.Options) []Finding {
	var findings []Finding

	findings = append(findings, checkScenarioAdmissibility(doc)...)
	findings = append(findings, checkExportPhrasePresence(doc)...)

	return findings
}

// checkScenarioAdmissibility implements rule 2.6.1.1.
func checkScenarioAdmissibility(doc *Document) []Finding {
	var findings []Finding
	for _, p := range doc.Phrases {
		if !catalog.ScenarioAdmissible(p.Type, p.Scenario) {
			f := findingFromRule(rules.R_2_6_1_1, "el escenario declarado no es admisible para el tipo de frase")
			f.Expected = "escenario admisible"
			findings = append(findings, f)
		}
	}
	return findings
}

// checkExportPhrasePresence implements rule 2.6.1.6.
func checkExportPhrasePresence(doc *Document) []Finding {
	if !doc.IsExport || !exportPhraseTypes[doc.Type] {
		return nil
	}
	if !doc.HasPhrase(catalog.PhraseExportacionRegimen, 1) {
		return []Finding{findingFromRule(rules.R_2_6_1_6,
			"los documentos de exportación de este tipo deben incluir la frase tipo 4 con escenario 1")}
	}
	return nil
}
