package catalog

// Incoterms is the closed INCOTERMS 2020 set recognized in the EXPORTACION
// complement (spec.md §3 Complement, §4.F group 5).
var Incoterms = map[string]string{
	"EXW": "Ex Works",
	"FCA": "Free Carrier",
	"CPT": "Carriage Paid To",
	"CIP": "Carriage and Insurance Paid To",
	"DAP": "Delivered At Place",
	"DPU": "Delivered at Place Unloaded",
	"DDP": "Delivered Duty Paid",
	"FAS": "Free Alongside Ship",
	"FOB": "Free On Board",
	"CFR": "Cost and Freight",
	"CIF": "Cost, Insurance and Freight",
}

// IncotermValid reports whether code is a recognized INCOTERMS 2020 code.
func IncotermValid(code string) bool {
	_, ok := Incoterms[code]
	return ok
}

// ProductSubsidyCodes is the closed set of product-subsidy codes SAT
// recognizes on export/subsidy-linked line items. Supplements spec.md §4.A,
// which names the table without enumerating it.
var ProductSubsidyCodes = map[string]string{
	"001": "Combustible subsidiado",
	"002": "Fertilizante subsidiado",
	"003": "Medicamento genérico",
	"004": "Canasta básica",
}

// ProductSubsidyCodeValid reports whether code is in the recognized set.
func ProductSubsidyCodeValid(code string) bool {
	_, ok := ProductSubsidyCodes[code]
	return ok
}

// EstablishmentClassification is the closed set of establishment types SAT
// registers against an emisor's establishment code.
type EstablishmentClassification string

const (
	EstablishmentMatriz    EstablishmentClassification = "MATRIZ"
	EstablishmentSucursal  EstablishmentClassification = "SUCURSAL"
	EstablishmentBodega    EstablishmentClassification = "BODEGA"
	EstablishmentAgencia   EstablishmentClassification = "AGENCIA"
)

// EstablishmentClassifications is the display-name table for the
// classification set above.
var EstablishmentClassifications = map[EstablishmentClassification]string{
	EstablishmentMatriz:   "Casa matriz",
	EstablishmentSucursal: "Sucursal",
	EstablishmentBodega:   "Bodega",
	EstablishmentAgencia:  "Agencia",
}
