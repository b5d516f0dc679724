// Package felcert is a certification-authority validation engine for
// Guatemala's FEL (Factura Electrónica en Línea) electronic tax
// invoices: it combines XSD schema validation with a ~200-rule business
// engine to turn a submitted DTE into a severity-graded diagnostic
// verdict.
package felcert

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rkingkong/validor-fel-sat-gt/catalog"
)

// ReceptorIDKind is the closed set of identifier kinds a receptor may
// carry.
type ReceptorIDKind string

const (
	ReceptorNIT ReceptorIDKind = "NIT"
	ReceptorCUI ReceptorIDKind = "CUI"
	ReceptorEXT ReceptorIDKind = "EXT"
	ReceptorCF  ReceptorIDKind = "CF"
)

// ItemKind distinguishes a good from a service line item.
type ItemKind string

const (
	ItemGood    ItemKind = "B"
	ItemService ItemKind = "S"
)

// ComplementType is the closed set of structured complement blocks a DTE
// may carry.
type ComplementType string

const (
	ComplementExportacion           ComplementType = "EXPORTACION"
	ComplementRetencFacturaEspecial ComplementType = "RETENC_FACTURA_ESPECIAL"
	ComplementAbonosFacturaCambiaria ComplementType = "ABONOS_FACTURA_CAMBIARIA"
	ComplementReferenciasNota       ComplementType = "REFERENCIAS_NOTA"
	ComplementCobroCuentaAjena      ComplementType = "COBRO_CUENTA_AJENA"
	ComplementEspectaculosPublicos  ComplementType = "ESPECTACULOS_PUBLICOS"
	ComplementReferenciasConstancia ComplementType = "REFERENCIAS_CONSTANCIA"
	ComplementMediosPago            ComplementType = "MEDIOS_PAGO"
	ComplementDecreto312022         ComplementType = "DECRETO_31_2022"
	ComplementOrganizacionesPoliticas ComplementType = "ORGANIZACIONES_POLITICAS"
	ComplementTrasladoMercancias    ComplementType = "TRASLADO_MERCANCIAS"
)

// SignatureRole distinguishes the two expected signature blocks.
type SignatureRole string

const (
	SignatureEmisor       SignatureRole = "EMISOR"
	SignatureCertificador SignatureRole = "CERTIFICADOR"
)

// Item is one line item of a DTE. Mirrors the teacher's InvoiceLine shape
// (GrossPrice/NetPrice/BilledQuantity/Total), narrowed to the fields
// spec.md §3 names and re-keyed to FEL terminology.
type Item struct {
	LineNumber    int // 1-indexed, unique, no gaps
	Kind          ItemKind
	Quantity      decimal.Decimal // 6 decimals
	UnitPrice     decimal.Decimal // 6 decimals
	Price         decimal.Decimal // 2 decimals
	Discount      decimal.Decimal
	OtherDiscount decimal.Decimal
	Total         decimal.Decimal // 2 decimals
	UOM           string
	Description   string
	ProductCode   string
}

// Tax is one tax line attached to an item or to the document, mirroring
// the teacher's TradeTax shape (BasisAmount/CalculatedAmount) generalized
// to the FEL tax-kind catalog.
type Tax struct {
	Kind            catalog.TaxKind
	TaxableAmount   decimal.Decimal
	UnitCode        int
	UnitQuantity    decimal.Decimal
	TaxAmount       decimal.Decimal
	TotalTaxAmount  decimal.Decimal
}

// Phrase is one legal clause (frase) attached to the document.
type Phrase struct {
	Type              catalog.PhraseType
	Scenario          int
	ResolutionNumber  string
	ResolutionDate    time.Time
	Text              string
}

// Complement is a structured extension block; its payload is opaque to
// the engine except for the fields named explicitly in spec.md §4.F
// group 5 (INCOTERM, reference UUIDs).
type Complement struct {
	Type     ComplementType
	Incoterm string
	RefUUID  string
	Fields   map[string]string
}

// SignatureDescriptor records the structural presence of a signature
// block; cryptographic verification happens outside this engine.
type SignatureDescriptor struct {
	Role      SignatureRole
	Algorithm string
	SignedAt  time.Time
}

// Document is the normalized Document Projection every rule reads
// (spec.md §3). It is immutable once built: the engine neither mutates
// nor retains it beyond a single validation call, so unlike the
// teacher's Invoice (which accumulates Violations on the struct itself),
// findings are always returned by Validate, never stored here.
type Document struct {
	Type                 catalog.DocumentType
	EmissionTimestamp    time.Time
	CertificationTimestamp *time.Time
	Currency             string
	IsExport             bool
	IsPublicShow         bool
	ReceptorID           string
	ReceptorIDKind       ReceptorIDKind
	EmisorNIT            string
	EstablishmentCode    string
	Total                decimal.Decimal
	GrandTotal           decimal.Decimal
	AuthorizationID      *uuid.UUID
	Serie                string
	Numero               uint64

	Items       []Item
	Taxes       []Tax
	Phrases     []Phrase
	Complements []Complement
	Signatures  []SignatureDescriptor
}

// HasComplement reports whether the document carries a complement of
// type t.
func (d *Document) HasComplement(t ComplementType) bool {
	for _, c := range d.Complements {
		if c.Type == t {
			return true
		}
	}
	return false
}

// HasPhrase reports whether the document carries a phrase with the given
// type and scenario.
func (d *Document) HasPhrase(t catalog.PhraseType, scenario int) bool {
	for _, p := range d.Phrases {
		if p.Type == t && p.Scenario == scenario {
			return true
		}
	}
	return false
}

// HasSignature reports whether the document carries a structural
// signature block for role.
func (d *Document) HasSignature(role SignatureRole) bool {
	for _, s := range d.Signatures {
		if s.Role == role {
			return true
		}
	}
	return false
}

// IsInvoiceClass reports whether the document's type belongs to the
// invoice class (spec.md rule 2.2.4.11 gates on this).
func (d *Document) IsInvoiceClass() bool {
	return d.Type.HasClass(catalog.ClassInvoice)
}
