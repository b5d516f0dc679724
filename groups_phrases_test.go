package felcert

import (
	"testing"

	"github.com/rkingkong/validor-fel-sat-gt/catalog"
)

func TestCheckScenarioAdmissibility_UnrecognizedScenario(t *testing.T) {
	t.Parallel()
	doc := &Document{Phrases: []Phrase{{Type: catalog.PhraseExportacion, Scenario: 99}}}
	if !hasCode(checkScenarioAdmissibility(doc), "2.6.1.1") {
		t.Error("expected 2.6.1.1 for a scenario code not in the admissibility table")
	}
}

func TestCheckScenarioAdmissibility_RecognizedScenario(t *testing.T) {
	t.Parallel()
	doc := &Document{Phrases: []Phrase{{Type: catalog.PhraseExportacion, Scenario: 1}}}
	if hasCode(checkScenarioAdmissibility(doc), "2.6.1.1") {
		t.Error("expected no 2.6.1.1 for a recognized (type, scenario) pair")
	}
}

func TestCheckExportPhrasePresence_NonExportType(t *testing.T) {
	t.Parallel()
	doc := &Document{Type: catalog.RECI, IsExport: true}
	if hasCode(checkExportPhrasePresence(doc), "2.6.1.6") {
		t.Error("expected no 2.6.1.6 for a document type outside the export-phrase set")
	}
}
