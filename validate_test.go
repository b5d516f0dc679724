package felcert

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/rkingkong/validor-fel-sat-gt/config"
	"github.com/rkingkong/validor-fel-sat-gt/registry"
)

// validXML is a minimal well-formed DTE that projects into a known-good
// Document (no registry, no schema resolver configured).
const validXML = `<?xml version="1.0" encoding="UTF-8"?>
<dte:SAT xmlns:dte="http://www.sat.gob.gt/dte/fel/0.2.0">
  <dte:DTE>
    <dte:DatosEmision>
      <dte:DatosGenerales Tipo="FACT" CodigoMoneda="GTQ" Exp="NO" FechaHoraEmision="2024-01-01T09:00:00-06:00"/>
      <dte:Emisor NITEmisor="12345679" CodigoEstablecimiento="1"/>
      <dte:Receptor NITReceptor="CF"/>
      <dte:Items>
        <dte:Item NumeroLinea="1" BienOServicio="B">
          <dte:Cantidad>1</dte:Cantidad>
          <dte:PrecioUnitario>100.00</dte:PrecioUnitario>
          <dte:Precio>100.00</dte:Precio>
          <dte:Descuento>0</dte:Descuento>
          <dte:OtroDescuento>0</dte:OtroDescuento>
          <dte:Total>100.00</dte:Total>
          <dte:Impuestos>
            <dte:Impuesto UnidadGravable="1">
              <dte:NombreCorto>IVA</dte:NombreCorto>
              <dte:MontoGravable>100.00</dte:MontoGravable>
              <dte:MontoImpuesto>12.00</dte:MontoImpuesto>
            </dte:Impuesto>
          </dte:Impuestos>
        </dte:Item>
      </dte:Items>
      <dte:Totales>
        <dte:GranTotal>100.00</dte:GranTotal>
      </dte:Totales>
    </dte:DatosEmision>
  </dte:DTE>
</dte:SAT>`

func TestValidate_MalformedXMLYieldsERR002(t *testing.T) {
	t.Parallel()
	verdict, err := Validate(context.Background(), []byte("not xml at all <<<"))
	if err != nil {
		t.Fatalf("Validate returned an error instead of a verdict: %v", err)
	}
	if verdict.IsValid {
		t.Error("expected malformed input to be invalid")
	}
	if !hasCode(verdict.Errors, "ERR_002") {
		t.Error("expected ERR_002 for malformed XML")
	}
}

func TestValidate_Determinism(t *testing.T) {
	t.Parallel()
	v1, err1 := Validate(context.Background(), []byte(validXML))
	v2, err2 := Validate(context.Background(), []byte(validXML))
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	v1.ValidatedAt = v2.ValidatedAt // clock is not part of the determinism contract
	if diff := cmp.Diff(v1, v2, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("two runs over identical input diverged (-first +second):\n%s", diff)
	}
}

func TestValidate_CancellationBeforeStart(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	verdict, err := Validate(ctx, []byte(validXML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hasCode(verdict.Errors, "CANCELLED") {
		t.Error("expected a CANCELLED finding for a pre-cancelled context")
	}
}

func TestValidate_RegistryUnavailableSurfacesAsFinding(t *testing.T) {
	t.Parallel()
	reg := registry.NewStaticRegistry()
	reg.Unavailable = true

	verdict, err := Validate(context.Background(), []byte(validXML), WithRegistry(reg))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hasCode(verdict.Errors, "REGISTRY_UNAVAILABLE") {
		t.Error("expected REGISTRY_UNAVAILABLE when the registry fails, not a negative finding")
	}
}

func TestRunGroupSafely_RecoversPanic(t *testing.T) {
	t.Parallel()
	panicking := func(doc *Document, reg registry.Registry, opts config.Options) []Finding {
		panic("boom")
	}
	findings := runGroupSafely("FAKE", panicking, &Document{}, nil, config.Default())
	if !hasCode(findings, "SYSTEM_FAKE") {
		t.Error("expected a recovered panic to surface as a SYSTEM_FAKE finding")
	}
}
