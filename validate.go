package felcert

import (
	"context"
	"fmt"
	"time"

	"github.com/rkingkong/validor-fel-sat-gt/config"
	"github.com/rkingkong/validor-fel-sat-gt/registry"
	"github.com/rkingkong/validor-fel-sat-gt/schema"
)

// Option configures a single Validate call.
type Option func(*validateState)

type validateState struct {
	opts     config.Options
	registry registry.Registry
	resolver *schema.Resolver
	isCancel bool
}

// WithOptions overrides the default configuration options.
func WithOptions(o config.Options) Option {
	return func(s *validateState) { s.opts = o }
}

// WithRegistry supplies the registry capability implementation. Without
// one, the registry lookups (emisor NIT/establishment/receptor CUI) are
// skipped and add no finding; the format checks on those identifiers
// still run.
func WithRegistry(r registry.Registry) Option {
	return func(s *validateState) { s.registry = r }
}

// WithSchemaResolver supplies the schema resolver used for stage D. Without
// one, schema validation is skipped and no schema finding is attached;
// only a resolver makes the verdict cover schema conformance.
func WithSchemaResolver(r *schema.Resolver) Option {
	return func(s *validateState) { s.resolver = r }
}

// WithCancellation marks the document under validation as a cancellation
// (anulación), selecting the dedicated cancellation schema.
func WithCancellation() Option {
	return func(s *validateState) { s.isCancel = true }
}

// Validate runs the full pipeline: schema validation, document
// projection, then the eight business-rule groups in fixed order,
// producing an aggregate Verdict. It never panics past this boundary: a
// panic inside a rule group is recovered into a synthetic SYSTEM_<GROUP>
// REJECT finding (spec.md §4.F "Policy", §7 plane 3).
func Validate(ctx context.Context, xml []byte, opts ...Option) (*Verdict, error) {
	state := &validateState{opts: config.Default()}
	for _, o := range opts {
		o(state)
	}

	var findings []Finding

	if err := ctx.Err(); err != nil {
		return buildVerdict([]Finding{cancelledFinding()}, "", "", time.Now(), state.opts.RulebookVersion), nil
	}

	doc, schemaFindings, schemaUsed, err := stageSchemaAndProject(ctx, xml, state)
	if err != nil {
		return nil, err
	}
	findings = append(findings, schemaFindings...)

	if doc != nil {
		findings = append(findings, runGroups(ctx, doc, state)...)
	}

	return buildVerdict(findings, string(documentTypeOf(doc)), schemaUsed, time.Now(), state.opts.RulebookVersion), nil
}

func documentTypeOf(doc *Document) string {
	if doc == nil {
		return ""
	}
	return string(doc.Type)
}

func cancelledFinding() Finding {
	return Finding{
		Code:     "CANCELLED",
		Message:  "la validación fue cancelada antes de completarse",
		Severity: "REJECT",
	}
}

// stageSchemaAndProject runs components E and D: document projection
// first (the schema name depends on the projected document type), then
// schema validation if a resolver was supplied. Malformed XML, a schema
// that cannot be loaded, or a fatal schema violation returns a nil
// document, so no rule group runs.
func stageSchemaAndProject(ctx context.Context, xml []byte, state *validateState) (*Document, []Finding, string, error) {
	var findings []Finding
	var schemaUsed string

	doc, perr := ProjectDocument(xml)
	if perr != nil {
		return nil, []Finding{{
			Code:     "ERR_002",
			Message:  fmt.Sprintf("el XML está mal formado o no pudo ser interpretado: %v", perr),
			Severity: "REJECT",
		}}, "", nil
	}

	if state.resolver != nil {
		name := schema.ResolveName(doc.Type, state.isCancel)
		schemaUsed = name
		schemaDoc, stale, serr := state.resolver.Resolve(ctx, name)
		if serr != nil {
			return nil, []Finding{{
				Code:     "SCHEMA_LOAD_ERROR",
				Message:  fmt.Sprintf("no fue posible cargar el esquema %q: %v", name, serr),
				Severity: "REJECT",
			}}, name, nil
		}
		if stale {
			findings = append(findings, Finding{
				Code:     "SCHEMA_STALE_FALLBACK",
				Message:  fmt.Sprintf("se usó una copia obsoleta del esquema %q tras fallar la actualización", name),
				Severity: "INFORM_WARNING",
			})
		}
		xmlTree, xerr := parseTree(xml)
		if xerr == nil {
			fatal := false
			for _, v := range schema.Validate(xmlTree, schemaDoc) {
				f := Finding{
					Code:     v.Code,
					Message:  v.Message,
					XPath:    v.XPath,
					Severity: "INFORM_ERROR",
				}
				if v.Fatal {
					f.Severity = "REJECT"
					fatal = true
				}
				findings = append(findings, f)
			}
			if fatal {
				return nil, findings, name, nil
			}
		}
	}

	return doc, findings, schemaUsed, nil
}

// runGroups runs the eight fixed-order rule groups, recovering any panic
// into a synthetic SYSTEM_<GROUP> finding so the remaining groups still
// run (spec.md §4.F "Policy").
func runGroups(ctx context.Context, doc *Document, state *validateState) []Finding {
	type namedGroup struct {
		name string
		run  func(*Document, registry.Registry, config.Options) []Finding
	}
	groups := []namedGroup{
		{"GENERAL1", runGroupGeneral1},
		{"ITEMS", runGroupItems},
		{"TAXES", runGroupTaxes},
		{"PHRASES", runGroupPhrases},
		{"COMPLEMENTS", runGroupComplements},
		{"TOTALS", runGroupTotals},
		{"SIGNATURES", runGroupSignatures},
		{"UUID", runGroupUUID},
	}

	var findings []Finding
	for _, g := range groups {
		if err := ctx.Err(); err != nil {
			findings = append(findings, cancelledFinding())
			return findings
		}
		findings = append(findings, runGroupSafely(g.name, g.run, doc, state.registry, state.opts)...)
	}
	return findings
}

func runGroupSafely(name string, run func(*Document, registry.Registry, config.Options) []Finding, doc *Document, reg registry.Registry, opts config.Options) (result []Finding) {
	defer func() {
		if r := recover(); r != nil {
			result = []Finding{systemFinding(name, fmt.Sprint(r))}
		}
	}()
	return run(doc, reg, opts)
}
