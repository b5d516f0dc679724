package felcert

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rkingkong/validor-fel-sat-gt/catalog"
	"github.com/rkingkong/validor-fel-sat-gt/config"
)

func hasCode(findings []Finding, code string) bool {
	for _, f := range findings {
		if f.Code == code {
			return true
		}
	}
	return false
}

// Scenario 1: CF overflow. The cap is strict "<": 2500.00 itself rejects.
func TestBoundary_CFOverflow(t *testing.T) {
	t.Parallel()
	cfg := config.Default()

	over := &Document{
		Type:           catalog.FACT,
		ReceptorIDKind: ReceptorCF,
		Currency:       "GTQ",
		GrandTotal:     decimal.RequireFromString("2500.00"),
	}
	findings := checkCFAmountCap(over, cfg)
	if !hasCode(findings, "2.2.4.11") {
		t.Error("expected 2.2.4.11 for grand_total = 2500.00 (strict <)")
	}

	under := &Document{
		Type:           catalog.FACT,
		ReceptorIDKind: ReceptorCF,
		Currency:       "GTQ",
		GrandTotal:     decimal.RequireFromString("2499.99"),
	}
	if hasCode(checkCFAmountCap(under, cfg), "2.2.4.11") {
		t.Error("expected no 2.2.4.11 for grand_total = 2499.99")
	}
}

// Scenario 2: IVA miscalculation.
func TestBoundary_IVAMiscalculation(t *testing.T) {
	t.Parallel()
	cfg := config.Default()

	tx := Tax{
		Kind:          catalog.IVA,
		UnitCode:      1,
		TaxableAmount: decimal.RequireFromString("1000.00"),
		TaxAmount:     decimal.RequireFromString("120.00"),
	}
	if hasCode(checkIVAAmount(tx, cfg), "2.7.4.1") {
		t.Error("expected no 2.7.4.1 for a correctly computed tax_amount")
	}

	tx.TaxAmount = decimal.RequireFromString("121.00")
	findings := checkIVAAmount(tx, cfg)
	if !hasCode(findings, "2.7.4.1") {
		t.Fatal("expected 2.7.4.1 for a mismatched tax_amount")
	}
	for _, f := range findings {
		if f.Code == "2.7.4.1" {
			if f.Expected != "120.00" || f.Actual != "121.00" {
				t.Errorf("expected/actual = %q/%q, want 120.00/121.00", f.Expected, f.Actual)
			}
		}
	}
}

// Scenario 3: late emission.
func TestBoundary_LateEmission(t *testing.T) {
	t.Parallel()

	emission := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	certification := time.Date(2024, 1, 7, 9, 0, 0, 0, time.UTC)

	fact := &Document{
		Type:                   catalog.FACT,
		EmissionTimestamp:      emission,
		CertificationTimestamp: &certification,
	}
	if !hasCode(checkEmissionWindow(fact), "2.2.1.1") {
		t.Error("expected 2.2.1.1 for a FACT emitted 6 days before certification")
	}

	civa := &Document{
		Type:                   catalog.CIVA,
		EmissionTimestamp:      emission,
		CertificationTimestamp: &certification,
	}
	if hasCode(checkEmissionWindow(civa), "2.2.1.1") {
		t.Error("expected no 2.2.1.1 for a CIVA document, exempt from the 5-day window")
	}
}

// Scenario 4: export without complement.
func TestBoundary_ExportWithoutComplement(t *testing.T) {
	t.Parallel()

	doc := &Document{Type: catalog.FACT, IsExport: true}
	if !hasCode(checkExportComplementPresence(doc), "2.2.5.2") {
		t.Error("expected 2.2.5.2 for an export document without the EXPORTACION complement")
	}

	doc.Complements = []Complement{{Type: ComplementExportacion}}
	if hasCode(checkExportComplementPresence(doc), "2.2.5.2") {
		t.Error("expected 2.2.5.2 to clear once the EXPORTACION complement is present")
	}

	if !hasCode(checkExportPhrasePresence(doc), "2.6.1.6") {
		t.Error("expected 2.6.1.6 for an export FACT without phrase {type=4, scenario=1}")
	}
	doc.Phrases = []Phrase{{Type: catalog.PhraseExportacionRegimen, Scenario: 1}}
	if hasCode(checkExportPhrasePresence(doc), "2.6.1.6") {
		t.Error("expected 2.6.1.6 to clear once phrase {type=4, scenario=1} is present")
	}
}

// Scenario 5: public-show constraints.
func TestBoundary_PublicShowConstraints(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Type:         catalog.FACT,
		IsPublicShow: true,
		Items:        []Item{{LineNumber: 1, Kind: ItemGood}},
	}
	if !hasCode(checkGoodsVsServices(doc), "2.3.8.2") {
		t.Error("expected 2.3.8.2 when a public-show document's item is a good")
	}

	doc.Items[0].Kind = ItemService
	if hasCode(checkGoodsVsServices(doc), "2.3.8.2") {
		t.Error("expected 2.3.8.2 to clear once the item is a service")
	}

	doc.Items = append(doc.Items, Item{LineNumber: 2, Kind: ItemService})
	if !hasCode(checkItemCountCaps(doc), "2.3.1.1") {
		t.Error("expected 2.3.1.1 once a public-show document carries a second item")
	}
}

// Scenario 6: UUID derivation, using the serie/numero formula spec.md §3
// invariant 5 states. The document's own mismatching serie must surface
// 3.12.6.1 with the derived value as Expected.
func TestBoundary_UUIDDerivation(t *testing.T) {
	t.Parallel()

	u := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	wantSerie, wantNumero := deriveSerieNumero(u)
	if wantSerie != "550E8400" {
		t.Errorf("derived serie = %q, want 550E8400", wantSerie)
	}

	doc := &Document{
		AuthorizationID: &u,
		Serie:           "WRONGSER",
		Numero:          wantNumero,
	}
	findings := runGroupUUID(doc, nil, config.Default())
	if !hasCode(findings, "3.12.6.1") {
		t.Fatal("expected 3.12.6.1 for a mismatching serie")
	}
	for _, f := range findings {
		if f.Code == "3.12.6.1" && f.Expected != wantSerie {
			t.Errorf("3.12.6.1 Expected = %q, want %q", f.Expected, wantSerie)
		}
	}

	doc.Serie = wantSerie
	if hasCode(runGroupUUID(doc, nil, config.Default()), "3.12.6.1") {
		t.Error("expected 3.12.6.1 to clear once serie matches the derived value")
	}
}
