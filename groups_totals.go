package felcert

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rkingkong/validor-fel-sat-gt/config"
	"github.com/rkingkong/validor-fel-sat-gt/format"
	"github.com/rkingkong/validor-fel-sat-gt/registry"
	"github.com/rkingkong/validor-fel-sat-gt/rules"
)

// runGroupTotals covers grand-total reconstruction and the CF purchase
// cap. spec.md §4.F group 6, §3 invariants 3 and 6.
//
// Grounded on the teacher's calculate.go UpdateTotals (LineTotal summed
// from each line's Total field) and check.go's BR-CO-10 tolerance
// comparison, generalized from a single invoice-total reconciliation to
// FEL's per-item-total reconstruction and the CF-specific overflow cap.
func runGroupTotals(doc *Document, reg registry.Registry, cfg config.Options) []Finding {
	var findings []Finding

	findings = append(findings, checkGrandTotal(doc, cfg)...)
	findings = append(findings, checkCFAmountCap(doc, cfg)...)

	return findings
}

// checkGrandTotal implements invariant 3 (rule 2.19.2.1): the grand
// total must equal the sum of item totals, within tolerance, and must
// itself be a non-negative amount within the document model's money
// bounds.
func checkGrandTotal(doc *Document, cfg config.Options) []Finding {
	if !format.MoneyInBounds(doc.GrandTotal) {
		f := findingFromRule(rules.R_2_19_2_1,
			"el gran total está fuera del rango de montos permitido")
		f.Expected = fmt.Sprintf("[%s, %s]", format.MinMoney.StringFixed(2), format.MaxMoney.StringFixed(2))
		f.Actual = doc.GrandTotal.StringFixed(2)
		return []Finding{f}
	}

	sum := decimal.Zero
	for _, it := range doc.Items {
		sum = sum.Add(it.Total)
	}
	expected := format.Round2(sum)

	if !format.WithinTolerance(expected, doc.GrandTotal, cfg.MonetaryTolerance) {
		f := findingFromRule(rules.R_2_19_2_1,
			"el gran total no coincide con la suma de los totales de línea")
		f.Expected = expected.StringFixed(2)
		f.Actual = doc.GrandTotal.StringFixed(2)
		return []Finding{f}
	}
	return nil
}

// checkCFAmountCap implements invariant 6 (rule 2.2.4.11): a document
// issued to the generic "Consumidor Final" receptor must stay strictly
// below the configured ceiling; a total equal to it is rejected. Amounts in a currency other than GTQ need an
// exchange rate this engine does not have; per the adopted resolution
// of spec.md's open question, that case is reported as an informational
// warning instead of silently skipped or rejected outright.
func checkCFAmountCap(doc *Document, cfg config.Options) []Finding {
	if doc.ReceptorIDKind != ReceptorCF || !doc.IsInvoiceClass() {
		return nil
	}

	if doc.Currency != "" && doc.Currency != "GTQ" {
		return []Finding{{
			Code:     "CF_FX_RATE_UNAVAILABLE",
			Message:  fmt.Sprintf("no se puede verificar el tope de consumidor final en moneda %s sin tipo de cambio", doc.Currency),
			Severity: rules.InformWarning,
			Category: rules.GeneralPart3,
		}}
	}

	if doc.GrandTotal.LessThan(cfg.MaxCFAmountGTQ) {
		return nil
	}

	f := findingFromRule(rules.R_2_2_4_11,
		fmt.Sprintf("el monto para consumidor final alcanza o excede el tope de Q%s", cfg.MaxCFAmountGTQ.StringFixed(2)))
	f.Expected = fmt.Sprintf("< %s", cfg.MaxCFAmountGTQ.StringFixed(2))
	f.Actual = doc.GrandTotal.StringFixed(2)
	return []Finding{f}
}
