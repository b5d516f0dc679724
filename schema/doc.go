// Package schema resolves a document type to its XSD, loads it through a
// time-bounded on-disk cache, and performs a structural validation pass
// against an in-memory XML tree.
//
// Grounded on adrianodrix-sped-nfe-go's validation.XSDValidator (in-process
// schema memoization under sync.RWMutex, structural element-presence
// check via etree) and certificate.CertificateCache (TTL'd entries,
// sha256-keyed, atomic-write discipline), generalized from Brazilian NFe
// schemas to FEL DTE schemas and from an in-memory-only cache to the
// disk-backed cache spec.md §4.D requires.
package schema
