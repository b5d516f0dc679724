package felcert

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/speedata/cxpath"

	"github.com/rkingkong/validor-fel-sat-gt/catalog"
)

const nsDTE = "http://www.sat.gob.gt/dte/fel/0.2.0"

// ProjectDocument parses dteXML into the normalized Document Projection
// of §3. Unknown elements are ignored; missing required elements do not
// fail projection — they surface later as business-rule findings
// (spec.md §4.E). Only malformed XML or non-UTF-8 input returns an
// error here, which the caller turns into ERR_002.
//
// Grounded on the teacher's parseCII/parseCIISupplyChainTradeTransaction
// walk (one parse helper per substructure, cxpath.Context.Eval/Each),
// generalized from the CII/UBL namespace pair to the single FEL DTE
// namespace.
func ProjectDocument(dteXML []byte) (*Document, error) {
	ctx, err := cxpath.NewFromReader(bytes.NewReader(dteXML))
	if err != nil {
		return nil, fmt.Errorf("parser_dte: %w", err)
	}
	ctx.SetNamespace("dte", nsDTE)

	root := ctx.Root()
	dte := root.Eval("//dte:SAT/dte:DTE/dte:DatosEmision")

	doc := &Document{}
	parseDatosGenerales(dte.Eval("dte:DatosGenerales"), doc)
	parseEmisor(dte.Eval("dte:Emisor"), doc)
	parseReceptor(dte.Eval("dte:Receptor"), doc)
	parseItems(dte.Eval("dte:Items"), doc)
	parseTotales(dte.Eval("dte:Totales"), doc)
	parseFrases(dte.Eval("dte:Frases"), doc)
	parseComplementos(root.Eval("//dte:SAT/dte:DTE/dte:Complementos"), doc)
	parseAutorizacion(root.Eval("//dte:SAT/dte:DTE/dte:DatosCertificacion"), doc)
	parseFirmas(root, doc)

	return doc, nil
}

// parseTree reparses the same bytes into an *etree.Document for the
// schema validator, which operates structurally rather than through
// cxpath's typed evaluation.
func parseTree(xml []byte) (*etree.Document, error) {
	d := etree.NewDocument()
	if err := d.ReadFromBytes(xml); err != nil {
		return nil, err
	}
	return d, nil
}

func parseDatosGenerales(ctx *cxpath.Context, doc *Document) {
	doc.Type = catalog.DocumentType(ctx.Eval("@Tipo").String())
	doc.Currency = ctx.Eval("@CodigoMoneda").String()
	doc.IsExport = ctx.Eval("@Exp").String() == "SI"
	doc.EmissionTimestamp, _ = parseDteTime(ctx, "@FechaHoraEmision")
}

func parseDteTime(ctx *cxpath.Context, path string) (time.Time, error) {
	s := ctx.Eval(path).String()
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

func parseEmisor(ctx *cxpath.Context, doc *Document) {
	doc.EmisorNIT = ctx.Eval("@NITEmisor").String()
	doc.EstablishmentCode = ctx.Eval("@CodigoEstablecimiento").String()
	doc.IsPublicShow = ctx.Eval("@AfiliacionIVA").String() == "ESPECTACULO"
}

func parseReceptor(ctx *cxpath.Context, doc *Document) {
	idKind := ctx.Eval("@TipoEspecial").String()
	nit := ctx.Eval("@NITReceptor").String()
	switch {
	case nit == "CF" || nit == "":
		doc.ReceptorIDKind = ReceptorCF
		doc.ReceptorID = "CF"
	case idKind == "CUI":
		doc.ReceptorIDKind = ReceptorCUI
		doc.ReceptorID = nit
	case idKind == "EXT":
		doc.ReceptorIDKind = ReceptorEXT
		doc.ReceptorID = nit
	default:
		doc.ReceptorIDKind = ReceptorNIT
		doc.ReceptorID = nit
	}
}

func parseItems(ctx *cxpath.Context, doc *Document) {
	for item := range ctx.Each("dte:Item") {
		var it Item
		it.LineNumber = int(item.Eval("@NumeroLinea").Int())
		it.Kind = ItemKind(item.Eval("@BienOServicio").String())
		it.Quantity = mustDecimal(item.Eval("dte:Cantidad").String())
		it.UnitPrice = mustDecimal(item.Eval("dte:PrecioUnitario").String())
		it.Price = mustDecimal(item.Eval("dte:Precio").String())
		it.Discount = mustDecimal(item.Eval("dte:Descuento").String())
		it.OtherDiscount = mustDecimal(item.Eval("dte:OtroDescuento").String())
		it.Total = mustDecimal(item.Eval("dte:Total").String())
		it.UOM = item.Eval("@UnidadMedida").String()
		it.Description = item.Eval("dte:Descripcion").String()
		it.ProductCode = item.Eval("dte:CodigoBienoServicio").String()

		for taxItem := range item.Eval("dte:Impuestos").Each("dte:Impuesto") {
			var tx Tax
			tx.Kind = catalog.TaxKind(taxItem.Eval("dte:NombreCorto").String())
			tx.UnitCode = int(taxItem.Eval("@UnidadGravable").Int())
			tx.TaxableAmount = mustDecimal(taxItem.Eval("dte:MontoGravable").String())
			tx.TaxAmount = mustDecimal(taxItem.Eval("dte:MontoImpuesto").String())
			doc.Taxes = append(doc.Taxes, tx)
		}

		doc.Items = append(doc.Items, it)
	}
}

func parseTotales(ctx *cxpath.Context, doc *Document) {
	doc.Total = mustDecimal(ctx.Eval("dte:GranTotal").String())
	doc.GrandTotal = doc.Total
}

func parseFrases(ctx *cxpath.Context, doc *Document) {
	for f := range ctx.Each("dte:Frase") {
		var p Phrase
		p.Type = catalog.PhraseType(f.Eval("@TipoFrase").Int())
		p.Scenario = int(f.Eval("@TipoEscenario").Int())
		doc.Phrases = append(doc.Phrases, p)
	}
}

func parseComplementos(ctx *cxpath.Context, doc *Document) {
	for c := range ctx.Each("dte:Complemento") {
		var comp Complement
		comp.Type = ComplementType(c.Eval("@NombreComplemento").String())
		comp.Incoterm = c.Eval(".//dte:INCOTERM").String()
		comp.RefUUID = c.Eval(".//dte:UUID").String()
		doc.Complements = append(doc.Complements, comp)
	}
}

func parseAutorizacion(ctx *cxpath.Context, doc *Document) {
	raw := ctx.Eval("@NumeroAutorizacion").String()
	if raw == "" {
		return
	}
	if u, err := uuid.Parse(raw); err == nil {
		doc.AuthorizationID = &u
	}
	if t, err := parseDteTime(ctx, "@FechaHoraCertificacion"); err == nil && !t.IsZero() {
		doc.CertificationTimestamp = &t
	}
	doc.Serie = ctx.Eval("dte:NumeroAutorizacion/@Serie").String()
	doc.Numero, _ = strconv.ParseUint(ctx.Eval("dte:NumeroAutorizacion/@Numero").String(), 10, 64)
}

func parseFirmas(ctx *cxpath.Context, doc *Document) {
	for sig := range ctx.Each("//dte:Signature") {
		role := sig.Eval("@Id").String()
		var r SignatureRole
		switch {
		case role == "SignatureCertificador":
			r = SignatureCertificador
		default:
			r = SignatureEmisor
		}
		doc.Signatures = append(doc.Signatures, SignatureDescriptor{Role: r})
	}
}

func mustDecimal(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
