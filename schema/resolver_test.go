package schema

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rkingkong/validor-fel-sat-gt/catalog"
)

func TestResolveName_Cancellation(t *testing.T) {
	t.Parallel()
	if got := ResolveName(catalog.FACT, true); got != cancellationSchemaName {
		t.Errorf("ResolveName with isCancellation=true = %q, want %q", got, cancellationSchemaName)
	}
}

func TestResolveName_ByDocumentType(t *testing.T) {
	t.Parallel()
	if got := ResolveName(catalog.FACT, false); got != "GT_Documento-0.10.0" {
		t.Errorf("ResolveName(FACT, false) = %q, want GT_Documento-0.10.0", got)
	}
}

func TestResolver_ParsesOncePerName(t *testing.T) {
	t.Parallel()
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"><xs:element name="GTDocumento"/></xs:schema>`))
	}))
	defer srv.Close()

	cache := NewCache(t.TempDir(), srv.URL, time.Hour, nil)
	resolver := NewResolver(cache)

	doc1, _, err := resolver.Resolve(context.Background(), "GT_Documento-0.10.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc2, _, err := resolver.Resolve(context.Background(), "GT_Documento-0.10.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc1 != doc2 {
		t.Error("expected the same parsed *etree.Document instance from repeated Resolve calls")
	}
}
