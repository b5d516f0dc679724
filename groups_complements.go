package felcert

import (
	"fmt"

	"github.com/rkingkong/validor-fel-sat-gt/catalog"
	"github.com/rkingkong/validor-fel-sat-gt/config"
	"github.com/rkingkong/validor-fel-sat-gt/format"
	"github.com/rkingkong/validor-fel-sat-gt/registry"
	"github.com/rkingkong/validor-fel-sat-gt/rules"
)

var exportExemptTypes = map[catalog.DocumentType]bool{
	catalog.NDEB: true, catalog.NCRE: true,
}

// runGroupComplements covers mandatory complements per flag and
// per-complement field validation. spec.md §4.F group 5.
//
// Grounded on the teacher's check_vat_export.go flag-gated mandatory-
// block check, generalized from a VAT-breakdown block to the
// EXPORTACION complement block and its INCOTERM/reference-UUID fields.
func runGroupComplements(doc *Document, reg registry.Registry, cfg config.Options) []Finding {
	var findings []Finding

	findings = append(findings, checkExportComplementPresence(doc)...)
	findings = append(findings, checkComplementFields(doc)...)

	return findings
}

// checkExportComplementPresence implements rule 2.2.5.2.
func checkExportComplementPresence(doc *Document) []Finding {
	if !doc.IsExport || exportExemptTypes[doc.Type] {
		return nil
	}
	if !doc.HasComplement(ComplementExportacion) {
		return []Finding{findingFromRule(rules.R_2_2_5_2,
			"los documentos de exportación deben incluir el complemento EXPORTACION")}
	}
	return nil
}

// checkComplementFields implements rules 2.4.1.1 and 2.4.2.1.
func checkComplementFields(doc *Document) []Finding {
	var findings []Finding
	for _, c := range doc.Complements {
		if c.Type == ComplementExportacion && c.Incoterm != "" && !catalog.IncotermValid(c.Incoterm) {
			findings = append(findings, findingFromRule(rules.R_2_4_1_1,
				fmt.Sprintf("el código INCOTERM %q no pertenece al conjunto INCOTERMS 2020", c.Incoterm)))
		}
		if c.RefUUID != "" && !format.ValidUUIDv4(c.RefUUID) {
			findings = append(findings, findingFromRule(rules.R_2_4_2_1,
				fmt.Sprintf("la referencia UUID %q no tiene forma de UUID v4", c.RefUUID)))
		}
	}
	return findings
}
