// Package registry defines the capability interfaces the business rule
// engine uses to consult the taxpayer registry (RTU) and the national
// persons registry (RENAP), plus an HTTP implementation and an in-memory
// fake for tests.
//
// Grounded on the capability-interface pattern spec.md §9 prescribes
// ("replace the ad-hoc client objects with a small capability interface")
// and on the pluggable-HTTP-client shape of go-suretax's client.
package registry

import "context"

// TaxpayerStatus is the RTU affiliation status of a taxpayer.
type TaxpayerStatus string

const (
	StatusActive    TaxpayerStatus = "ACTIVE"
	StatusInactive  TaxpayerStatus = "INACTIVE"
	StatusSuspended TaxpayerStatus = "SUSPENDED"
)

// PersonStatus is the RENAP status of a natural person.
type PersonStatus string

const (
	PersonActive   PersonStatus = "ACTIVE"
	PersonDeceased PersonStatus = "DECEASED"
)

// Taxpayer is the RTU record for a NIT.
type Taxpayer struct {
	Status          TaxpayerStatus
	IVAAffiliation  string // GEN, PEQ, AGR, AGENT, ...
	ISRAffiliation  string // REG, OPT, ...
}

// Person is the RENAP record for a CUI.
type Person struct {
	Valid  bool
	Status PersonStatus
	Name   string
}

// NitLookup answers questions about a taxpayer's NIT registration.
type NitLookup interface {
	NitExists(ctx context.Context, nit string) (bool, error)
	GetTaxpayer(ctx context.Context, nit string) (*Taxpayer, error)
}

// EstablishmentLookup answers whether an emisor's establishment was active
// on a given date.
type EstablishmentLookup interface {
	EstablishmentActive(ctx context.Context, nit, code string, atDate string) (bool, error)
}

// CuiLookup answers questions about a natural person's CUI registration.
type CuiLookup interface {
	ValidateCUI(ctx context.Context, cui string) (*Person, error)
}

// Registry composes the three capability interfaces the engine consumes.
// Implementations distinguish a registry's *negative* answer (taxpayer
// does not exist, CUI invalid) from *unavailable* (the call itself
// failed) — callers must propagate the error in the latter case rather
// than treat it as a negative answer.
type Registry interface {
	NitLookup
	EstablishmentLookup
	CuiLookup
}

// ErrUnavailable is returned (wrapped) when a registry call could not
// complete — timeout, connection failure, non-2xx response not
// attributable to a negative answer. The engine translates this into a
// REGISTRY_UNAVAILABLE REJECT finding, never a negative answer.
var ErrUnavailable = registryError("registry: unavailable")

type registryError string

func (e registryError) Error() string { return string(e) }
