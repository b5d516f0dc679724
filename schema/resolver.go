package schema

import (
	"context"
	"fmt"
	"sync"

	"github.com/beevik/etree"

	"github.com/rkingkong/validor-fel-sat-gt/catalog"
)

// schemaNames maps a document type to its XSD resource name. All DTE
// classes share the main document schema; cancellations use a dedicated
// one (spec.md §4.D.1).
var schemaNames = map[catalog.DocumentType]string{}

func init() {
	for dt := range catalog.DocumentTypes {
		schemaNames[dt] = "GT_Documento-0.10.0"
	}
}

const cancellationSchemaName = "GT_Anulacion-0.10.0"

// ResolveName returns the XSD resource name for a document type. isCancellation
// selects the dedicated cancellation schema regardless of dt.
func ResolveName(dt catalog.DocumentType, isCancellation bool) string {
	if isCancellation {
		return cancellationSchemaName
	}
	if name, ok := schemaNames[dt]; ok {
		return name
	}
	return "GT_Documento-0.10.0"
}

// parsedEntry memoizes a parsed schema document; loaded exactly once per
// process lifetime per name (spec.md §4.D.3, §5: "populated once per
// schema name; lookups guarded so only one parse occurs").
type parsedEntry struct {
	once sync.Once
	doc  *etree.Document
	err  error
}

// Resolver loads and memoizes parsed XSD documents backed by a Cache.
type Resolver struct {
	cache *Cache

	mu      sync.Mutex
	parsed  map[string]*parsedEntry
}

// NewResolver builds a Resolver over cache.
func NewResolver(cache *Cache) *Resolver {
	return &Resolver{cache: cache, parsed: map[string]*parsedEntry{}}
}

// Resolve returns the parsed schema for name, fetching/refreshing through
// the cache and parsing at most once per process lifetime. staleFallback
// is true if a stale cached copy was used because a refresh fetch failed.
func (r *Resolver) Resolve(ctx context.Context, name string) (doc *etree.Document, staleFallback bool, err error) {
	content, stale, err := r.cache.Get(ctx, name)
	if err != nil {
		return nil, false, err
	}

	r.mu.Lock()
	entry, ok := r.parsed[name]
	if !ok {
		entry = &parsedEntry{}
		r.parsed[name] = entry
	}
	r.mu.Unlock()

	entry.once.Do(func() {
		d := etree.NewDocument()
		if perr := d.ReadFromBytes(content); perr != nil {
			entry.err = fmt.Errorf("schema resolver: parse %q: %w", name, perr)
			return
		}
		entry.doc = d
	})
	if entry.err != nil {
		return nil, false, entry.err
	}
	return entry.doc, stale, nil
}
