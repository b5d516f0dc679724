package felcert

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rkingkong/validor-fel-sat-gt/catalog"
	"github.com/rkingkong/validor-fel-sat-gt/config"
)

func TestCheckGrandTotal_SumReconstruction(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	doc := &Document{
		Items: []Item{
			{Total: decimal.RequireFromString("100.00")},
			{Total: decimal.RequireFromString("12.00")},
		},
	}
	doc.GrandTotal = decimal.RequireFromString("112.00")
	if hasCode(checkGrandTotal(doc, cfg), "2.19.2.1") {
		t.Error("expected no 2.19.2.1 when grand_total matches the sum of item totals")
	}

	doc.GrandTotal = decimal.RequireFromString("112.02")
	if !hasCode(checkGrandTotal(doc, cfg), "2.19.2.1") {
		t.Error("expected 2.19.2.1 once grand_total is perturbed beyond tolerance")
	}
}

func TestCheckGrandTotal_RejectsNegativeAmount(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	doc := &Document{
		Items: []Item{{Total: decimal.RequireFromString("-5.00")}},
	}
	doc.GrandTotal = decimal.RequireFromString("-5.00")
	if !hasCode(checkGrandTotal(doc, cfg), "2.19.2.1") {
		t.Error("expected 2.19.2.1 for a negative grand_total")
	}
}

func TestCheckCFAmountCap_NonInvoiceClassExempt(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	doc := &Document{
		ReceptorIDKind: ReceptorCF,
		GrandTotal:     decimal.RequireFromString("5000.00"),
	}
	// doc.Type is the zero value, not a recognized invoice-class type.
	if hasCode(checkCFAmountCap(doc, cfg), "2.2.4.11") {
		t.Error("expected no 2.2.4.11 for a document outside the invoice class")
	}
}

func TestCheckCFAmountCap_NonGTQWithoutRate(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	doc := &Document{
		Type:           catalog.FACT,
		ReceptorIDKind: ReceptorCF,
		Currency:       "USD",
		GrandTotal:     decimal.RequireFromString("100.00"),
	}
	findings := checkCFAmountCap(doc, cfg)
	if !hasCode(findings, "CF_FX_RATE_UNAVAILABLE") {
		t.Error("expected CF_FX_RATE_UNAVAILABLE for a non-GTQ CF document with no configured rate")
	}
}
