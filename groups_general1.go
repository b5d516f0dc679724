package felcert

import (
	"context"
	"fmt"
	"time"

	"github.com/rkingkong/validor-fel-sat-gt/catalog"
	"github.com/rkingkong/validor-fel-sat-gt/config"
	"github.com/rkingkong/validor-fel-sat-gt/format"
	"github.com/rkingkong/validor-fel-sat-gt/registry"
	"github.com/rkingkong/validor-fel-sat-gt/rules"
)

// runGroupGeneral1 covers emission date/time, emisor NIT and registry
// state, establishment activity, receptor identity, export/public-show/
// currency coherence. spec.md §4.F group 1.
//
// Grounded on the teacher's check.go coherence checks (BR-CO-*): a loop
// of independent pure predicates, each appending to the finding slice,
// generalized from cross-field arithmetic checks to cross-field
// closed-set and registry-backed checks.
func runGroupGeneral1(doc *Document, reg registry.Registry, cfg config.Options) []Finding {
	var findings []Finding

	if !doc.Type.Known() {
		findings = append(findings, Finding{
			Code:     "ERR_002",
			Message:  fmt.Sprintf("tipo de documento desconocido: %q", doc.Type),
			Severity: rules.Reject,
		})
		return findings
	}

	findings = append(findings, checkEmissionWindow(doc)...)
	findings = append(findings, checkEmisorNIT(doc, reg)...)
	findings = append(findings, checkEstablishmentActive(doc, reg)...)
	findings = append(findings, checkReceptorIdentity(doc, reg)...)
	findings = append(findings, checkExportCoherence(doc)...)
	findings = append(findings, checkPublicShowCoherence(doc)...)
	findings = append(findings, checkCurrencyCoherence(doc)...)

	return findings
}

// checkEmissionWindow implements rules 2.2.1.1 and 2.2.1.2.
func checkEmissionWindow(doc *Document) []Finding {
	var findings []Finding
	if doc.CertificationTimestamp == nil {
		return findings
	}
	cert := *doc.CertificationTimestamp

	if doc.Type != catalog.CIVA && doc.Type != catalog.CAIS {
		days := int(cert.Sub(doc.EmissionTimestamp).Hours() / 24)
		if days > 5 {
			findings = append(findings, findingFromRule(rules.R_2_2_1_1,
				fmt.Sprintf("la emisión precede en %d días a la certificación, excede el máximo de 5", days)))
		}
	}

	lastDayOfCertMonth := time.Date(cert.Year(), cert.Month()+1, 1, 0, 0, 0, 0, cert.Location()).Add(-time.Nanosecond)
	if doc.EmissionTimestamp.After(lastDayOfCertMonth) {
		findings = append(findings, findingFromRule(rules.R_2_2_1_2,
			"la fecha de emisión excede el último día calendario del mes de certificación"))
	}
	return findings
}

// checkEmisorNIT implements rule 2.2.2.1/2.2.2.2.
func checkEmisorNIT(doc *Document, reg registry.Registry) []Finding {
	var findings []Finding
	if !format.ValidNIT(doc.EmisorNIT) {
		findings = append(findings, findingFromRule(rules.R_2_2_2_1,
			fmt.Sprintf("el NIT del emisor %q tiene un dígito verificador inválido", doc.EmisorNIT)))
		return findings
	}
	if reg == nil {
		return findings
	}
	tp, err := reg.GetTaxpayer(context.Background(), doc.EmisorNIT)
	if err != nil {
		return []Finding{registryUnavailableFinding(err)}
	}
	if tp == nil || tp.Status != registry.StatusActive {
		findings = append(findings, findingFromRule(rules.R_2_2_2_2,
			fmt.Sprintf("el NIT del emisor %q no está activo en el RTU", doc.EmisorNIT)))
	}
	return findings
}

// checkEstablishmentActive implements rule 2.2.3.1.
func checkEstablishmentActive(doc *Document, reg registry.Registry) []Finding {
	if reg == nil || doc.EstablishmentCode == "" {
		return nil
	}
	active, err := reg.EstablishmentActive(context.Background(), doc.EmisorNIT, doc.EstablishmentCode, doc.EmissionTimestamp.Format(time.RFC3339))
	if err != nil {
		return []Finding{registryUnavailableFinding(err)}
	}
	if !active {
		return []Finding{findingFromRule(rules.R_2_2_3_1,
			fmt.Sprintf("el establecimiento %q no está activo en la fecha de emisión", doc.EstablishmentCode))}
	}
	return nil
}

// checkReceptorIdentity implements rule 2.2.4.1.
func checkReceptorIdentity(doc *Document, reg registry.Registry) []Finding {
	switch doc.ReceptorIDKind {
	case ReceptorCF:
		return nil
	case ReceptorNIT:
		if !format.ValidNIT(doc.ReceptorID) {
			return []Finding{findingFromRule(rules.R_2_2_4_1,
				fmt.Sprintf("el NIT del receptor %q es inválido", doc.ReceptorID))}
		}
	case ReceptorCUI:
		if !format.ValidCUI(doc.ReceptorID) {
			return []Finding{findingFromRule(rules.R_2_2_4_1,
				fmt.Sprintf("el CUI del receptor %q es inválido", doc.ReceptorID))}
		}
		if reg != nil {
			p, err := reg.ValidateCUI(context.Background(), doc.ReceptorID)
			if err != nil {
				return []Finding{registryUnavailableFinding(err)}
			}
			if p == nil || !p.Valid {
				return []Finding{findingFromRule(rules.R_2_2_4_1,
					fmt.Sprintf("el CUI del receptor %q no es válido en RENAP", doc.ReceptorID))}
			}
		}
	}
	return nil
}

// checkExportCoherence implements rule 2.2.5.1.
func checkExportCoherence(doc *Document) []Finding {
	if doc.IsExport && catalog.ExportForbidden(doc.Type) {
		return []Finding{findingFromRule(rules.R_2_2_5_1,
			fmt.Sprintf("el tipo de documento %s no puede marcarse como exportación", doc.Type))}
	}
	return nil
}

// checkPublicShowCoherence implements rule 2.2.6.1.
func checkPublicShowCoherence(doc *Document) []Finding {
	if doc.IsPublicShow && !catalog.PublicShowAllowed(doc.Type) {
		return []Finding{findingFromRule(rules.R_2_2_6_1,
			fmt.Sprintf("el tipo de documento %s no admite la bandera de espectáculo público", doc.Type))}
	}
	return nil
}

// checkCurrencyCoherence implements rule 2.2.7.1.
func checkCurrencyCoherence(doc *Document) []Finding {
	if doc.Currency != "" && !catalog.CurrencyRecognized(doc.Currency) {
		return []Finding{findingFromRule(rules.R_2_2_7_1,
			fmt.Sprintf("la moneda %q no es un código ISO-4217 reconocido", doc.Currency))}
	}
	return nil
}

// registryUnavailableFinding translates a registry I/O failure into the
// transient engine-level finding spec.md §4.C demands, distinct from a
// registry's negative answer.
func registryUnavailableFinding(err error) Finding {
	return Finding{
		Code:     "REGISTRY_UNAVAILABLE",
		Message:  fmt.Sprintf("el registro no está disponible: %v", err),
		Severity: rules.Reject,
	}
}
