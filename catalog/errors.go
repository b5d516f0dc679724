package catalog

// ErrorCode is one of the surface codes of spec.md §6, shared with the
// persistence/boundary layer so findings and SAT responses correlate.
type ErrorCode string

const (
	ERR_001 ErrorCode = "ERR_001" // schema validation error
	ERR_002 ErrorCode = "ERR_002" // malformed XML
	ERR_101 ErrorCode = "ERR_101" // invalid date range
	ERR_102 ErrorCode = "ERR_102" // invalid NIT
	ERR_103 ErrorCode = "ERR_103" // invalid amounts
	ERR_104 ErrorCode = "ERR_104" // invalid tax calculation
	ERR_201 ErrorCode = "ERR_201" // invalid credentials (boundary)
	ERR_202 ErrorCode = "ERR_202" // token expired (boundary)
	ERR_301 ErrorCode = "ERR_301" // SAT API error (boundary)
	ERR_302 ErrorCode = "ERR_302" // SAT rejection (boundary)
	ERR_401 ErrorCode = "ERR_401" // persistence error (boundary)
	ERR_402 ErrorCode = "ERR_402" // signature error (boundary)
)

// ERROR_MESSAGES carries the Spanish-language message template for each
// surface code this core actually emits (ERR_001..ERR_104); the boundary
// codes (ERR_2xx/3xx/4xx) are listed for completeness of the taxonomy but
// are never produced by this core — they belong to the collaborators named
// in spec.md §6.
var ERROR_MESSAGES = map[ErrorCode]string{
	ERR_001: "El documento no cumple con el esquema XSD requerido.",
	ERR_002: "El XML está mal formado o no pudo ser interpretado.",
	ERR_101: "El rango de fechas del documento no es válido.",
	ERR_102: "El NIT proporcionado no es válido.",
	ERR_103: "Los montos del documento no son válidos.",
	ERR_104: "El cálculo de impuestos del documento es incorrecto.",
	ERR_201: "Credenciales inválidas.",
	ERR_202: "El token de acceso ha expirado.",
	ERR_301: "Error de comunicación con la API de SAT.",
	ERR_302: "SAT rechazó el documento.",
	ERR_401: "Error al persistir el documento.",
	ERR_402: "Error de firma electrónica.",
}

// RulebookVersion is the version string surfaced on every Finding for
// audit (spec.md §4.A: "the rulebook version string is surfaced in
// findings for audit").
const RulebookVersion = "FEL-Reglas-y-Validaciones-v1.7.9"
