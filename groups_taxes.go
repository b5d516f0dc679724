package felcert

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rkingkong/validor-fel-sat-gt/catalog"
	"github.com/rkingkong/validor-fel-sat-gt/config"
	"github.com/rkingkong/validor-fel-sat-gt/format"
	"github.com/rkingkong/validor-fel-sat-gt/registry"
	"github.com/rkingkong/validor-fel-sat-gt/rules"
)

var ivaRate12 = decimal.RequireFromString("0.12")

// runGroupTaxes covers, per tax kind, unit-code range and tax-amount
// computation. spec.md §4.F group 3, §3 invariant 7.
//
// Grounded on the teacher's check_vat_standard.go/check_vat_zero.go
// (category-code dispatch, basis×rate recompute compared with
// tolerance), generalized from a single VAT category-code axis to the
// FEL tax-kind catalog with its per-kind unit tables.
func runGroupTaxes(doc *Document, reg registry.Registry, cfg config.Options) []Finding {
	var findings []Finding
	for _, tx := range doc.Taxes {
		findings = append(findings, checkTaxUnitCode(tx)...)
		if tx.Kind == catalog.IVA {
			findings = append(findings, checkIVAAmount(tx, cfg)...)
		}
	}
	return findings
}

// checkTaxUnitCode implements rule 2.7.1.1.
func checkTaxUnitCode(tx Tax) []Finding {
	cfgEntry, ok := catalog.TaxConfigs[tx.Kind]
	if !ok || cfgEntry.Status == catalog.NoRulesDefined {
		return nil
	}
	if _, ok := cfgEntry.Units[tx.UnitCode]; !ok {
		return []Finding{findingFromRule(rules.R_2_7_1_1,
			fmt.Sprintf("el código de unidad %d no es válido para el impuesto %s", tx.UnitCode, tx.Kind))}
	}
	return nil
}

// checkIVAAmount implements invariant 7 and rule 2.7.4.1.
func checkIVAAmount(tx Tax, cfg config.Options) []Finding {
	var expected decimal.Decimal
	switch tx.UnitCode {
	case 1:
		expected = format.Round2(tx.TaxableAmount.Mul(ivaRate12))
	case 2:
		expected = decimal.Zero
	default:
		return nil // caught by checkTaxUnitCode
	}
	if !format.WithinTolerance(expected, tx.TaxAmount, cfg.MonetaryTolerance) {
		f := findingFromRule(rules.R_2_7_4_1, "el monto de IVA no coincide con el cálculo esperado")
		f.Expected = expected.StringFixed(2)
		f.Actual = tx.TaxAmount.StringFixed(2)
		return []Finding{f}
	}
	return nil
}
