package felcert

import (
	"testing"

	"github.com/rkingkong/validor-fel-sat-gt/catalog"
)

func TestCheckTaxUnitCode_UnknownUnit(t *testing.T) {
	t.Parallel()
	tx := Tax{Kind: catalog.IVA, UnitCode: 9}
	if !hasCode(checkTaxUnitCode(tx), "2.7.1.1") {
		t.Error("expected 2.7.1.1 for an IVA unit_code outside {1, 2}")
	}
}

func TestCheckTaxUnitCode_NoRulesDefinedKindSkipped(t *testing.T) {
	t.Parallel()
	tx := Tax{Kind: catalog.PETROLEO, UnitCode: 9}
	if hasCode(checkTaxUnitCode(tx), "2.7.1.1") {
		t.Error("expected no finding for a tax kind without a defined rule battery")
	}
}
