package felcert

import (
	"github.com/rkingkong/validor-fel-sat-gt/config"
	"github.com/rkingkong/validor-fel-sat-gt/registry"
	"github.com/rkingkong/validor-fel-sat-gt/rules"
)

// runGroupSignatures covers structural presence of the two mandatory
// signature blocks. spec.md §4.F group 7.
//
// The teacher delegates signing out and has no signature-block rule of
// its own; this group is shaped like the other pure-function groups
// (loop-and-append over independent predicates) directly from spec.md
// §4.F group 7's description. Cryptographic verification stays outside
// this engine, as that section specifies.
func runGroupSignatures(doc *Document, reg registry.Registry, cfg config.Options) []Finding {
	var findings []Finding

	if !doc.HasSignature(SignatureEmisor) {
		findings = append(findings, findingFromRule(rules.R_2_21_1_1,
			"falta la firma del emisor"))
	}
	if !doc.HasSignature(SignatureCertificador) {
		findings = append(findings, findingFromRule(rules.R_2_21_1_2,
			"falta la firma del certificador"))
	}

	return findings
}
