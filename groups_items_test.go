package felcert

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rkingkong/validor-fel-sat-gt/catalog"
	"github.com/rkingkong/validor-fel-sat-gt/config"
)

func TestCheckItemCountCaps_CIVA(t *testing.T) {
	t.Parallel()
	doc := &Document{
		Type: catalog.CIVA,
		Items: []Item{
			{LineNumber: 1}, {LineNumber: 2}, {LineNumber: 3},
		},
	}
	if !hasCode(checkItemCountCaps(doc), "2.3.1.2") {
		t.Error("expected 2.3.1.2 for a CIVA document with more than two items")
	}
}

func TestCheckLineNumberSequence_GapDetected(t *testing.T) {
	t.Parallel()
	doc := &Document{Items: []Item{{LineNumber: 1}, {LineNumber: 3}}}
	if !hasCode(checkLineNumberSequence(doc), "2.3.2.1") {
		t.Error("expected 2.3.2.1 when line numbers skip a value")
	}
}

func TestCheckLineNumberSequence_NoGap(t *testing.T) {
	t.Parallel()
	doc := &Document{Items: []Item{{LineNumber: 2}, {LineNumber: 1}}}
	if hasCode(checkLineNumberSequence(doc), "2.3.2.1") {
		t.Error("expected no 2.3.2.1 for a contiguous 1..n sequence regardless of order")
	}
}

func TestCheckItemPrice_Mismatch(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	it := Item{
		LineNumber: 1,
		Quantity:   decimal.RequireFromString("3"),
		UnitPrice:  decimal.RequireFromString("10.00"),
		Price:      decimal.RequireFromString("31.00"),
	}
	findings := checkItemPrice(it, cfg)
	if !hasCode(findings, "2.3.3.1") {
		t.Fatal("expected 2.3.3.1 for a price that doesn't match quantity * unit_price")
	}
	for _, f := range findings {
		if f.Expected != "30.00" || f.Actual != "31.00" {
			t.Errorf("expected/actual = %q/%q, want 30.00/31.00", f.Expected, f.Actual)
		}
	}
}

func TestCheckItemDiscounts_ExceedsPrice(t *testing.T) {
	t.Parallel()
	it := Item{
		LineNumber: 1,
		Price:      decimal.RequireFromString("100.00"),
		Discount:   decimal.RequireFromString("150.00"),
	}
	if !hasCode(checkItemDiscounts(it), "2.3.4.1") {
		t.Error("expected 2.3.4.1 when discount exceeds price")
	}
}

func TestCheckItemDiscounts_OtherDiscountExceedsRemainder(t *testing.T) {
	t.Parallel()
	it := Item{
		LineNumber:    1,
		Price:         decimal.RequireFromString("100.00"),
		Discount:      decimal.RequireFromString("40.00"),
		OtherDiscount: decimal.RequireFromString("70.00"),
	}
	if !hasCode(checkItemDiscounts(it), "2.3.4.1") {
		t.Error("expected 2.3.4.1 when other_discount exceeds price - discount")
	}
}

func TestCheckGoodsVsServices_AgriculturalRequiresGoods(t *testing.T) {
	t.Parallel()
	doc := &Document{
		Type:  catalog.FACA,
		Items: []Item{{LineNumber: 1, Kind: ItemService}},
	}
	if !hasCode(checkGoodsVsServices(doc), "2.3.8.1") {
		t.Error("expected 2.3.8.1 when an agricultural document carries a service line")
	}
}
