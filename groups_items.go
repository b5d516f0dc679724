package felcert

import (
	"fmt"

	"github.com/rkingkong/validor-fel-sat-gt/catalog"
	"github.com/rkingkong/validor-fel-sat-gt/config"
	"github.com/rkingkong/validor-fel-sat-gt/format"
	"github.com/rkingkong/validor-fel-sat-gt/registry"
	"github.com/rkingkong/validor-fel-sat-gt/rules"
)

// runGroupItems covers item-count caps per document class, per-item
// price computation, discount bounds, and good-vs-service constraints.
// spec.md §4.F group 2, §3 invariants 1, 2 and 4.
//
// Grounded on the teacher's check_vat_standard.go per-line loop with
// tolerance comparison, generalized from VAT-rate recomputation to
// price/discount recomputation.
func runGroupItems(doc *Document, reg registry.Registry, cfg config.Options) []Finding {
	var findings []Finding

	findings = append(findings, checkItemCountCaps(doc)...)
	findings = append(findings, checkLineNumberSequence(doc)...)

	for i := range doc.Items {
		findings = append(findings, checkItemPrice(doc.Items[i], cfg)...)
		findings = append(findings, checkItemDiscounts(doc.Items[i])...)
	}

	findings = append(findings, checkGoodsVsServices(doc)...)

	return findings
}

// checkItemCountCaps implements rules 2.3.1.1 and 2.3.1.2.
func checkItemCountCaps(doc *Document) []Finding {
	var findings []Finding
	if doc.IsPublicShow && len(doc.Items) != 1 {
		findings = append(findings, findingFromRule(rules.R_2_3_1_1,
			fmt.Sprintf("los documentos con espectáculo público deben tener exactamente un ítem, se encontraron %d", len(doc.Items))))
	}
	if doc.Type == catalog.CIVA && len(doc.Items) > 2 {
		findings = append(findings, findingFromRule(rules.R_2_3_1_2,
			fmt.Sprintf("los documentos CIVA admiten a lo sumo dos ítems, se encontraron %d", len(doc.Items))))
	}
	return findings
}

// checkLineNumberSequence implements invariant 4 (rule 2.3.2.1).
func checkLineNumberSequence(doc *Document) []Finding {
	seen := map[int]bool{}
	for _, it := range doc.Items {
		seen[it.LineNumber] = true
	}
	for n := 1; n <= len(doc.Items); n++ {
		if !seen[n] {
			return []Finding{findingFromRule(rules.R_2_3_2_1,
				fmt.Sprintf("los números de línea deben formar 1..%d sin huecos; falta la línea %d", len(doc.Items), n))}
		}
	}
	return nil
}

// checkItemPrice implements invariant 1 (rule 2.3.3.1).
func checkItemPrice(it Item, cfg config.Options) []Finding {
	expected := format.Round2(it.Quantity.Mul(it.UnitPrice))
	if !format.WithinTolerance(expected, it.Price, cfg.MonetaryTolerance) {
		f := findingFromRule(rules.R_2_3_3_1,
			fmt.Sprintf("línea %d: el precio no coincide con cantidad × precio_unitario", it.LineNumber))
		f.Expected = expected.StringFixed(2)
		f.Actual = it.Price.StringFixed(2)
		return []Finding{f}
	}
	return nil
}

// checkItemDiscounts implements invariant 2 (rule 2.3.4.1).
func checkItemDiscounts(it Item) []Finding {
	var findings []Finding
	if it.Discount.GreaterThan(it.Price) {
		findings = append(findings, findingFromRule(rules.R_2_3_4_1,
			fmt.Sprintf("línea %d: el descuento excede el precio", it.LineNumber)))
	}
	if it.OtherDiscount.GreaterThan(it.Price.Sub(it.Discount)) {
		findings = append(findings, findingFromRule(rules.R_2_3_4_1,
			fmt.Sprintf("línea %d: el descuento adicional excede precio − descuento", it.LineNumber)))
	}
	return findings
}

// checkGoodsVsServices implements rules 2.3.8.1 and 2.3.8.2.
func checkGoodsVsServices(doc *Document) []Finding {
	var findings []Finding

	if doc.Type.HasClass(catalog.ClassAgricultural) {
		for _, it := range doc.Items {
			if it.Kind != ItemGood {
				findings = append(findings, findingFromRule(rules.R_2_3_8_1,
					fmt.Sprintf("línea %d: los documentos agrícolas solo admiten bienes (kind = B)", it.LineNumber)))
			}
		}
	}

	if doc.IsPublicShow {
		for _, it := range doc.Items {
			if it.Kind != ItemService {
				findings = append(findings, findingFromRule(rules.R_2_3_8_2,
					fmt.Sprintf("línea %d: los documentos con espectáculo público requieren servicios (kind = S)", it.LineNumber)))
			}
		}
	}

	return findings
}
