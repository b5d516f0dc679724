// Package catalog holds the static, versioned data the FEL validation
// engine reads: document types, tax configurations, phrase scenarios,
// currencies, INCOTERMS, product-subsidy codes, establishment
// classifications, and the error-code taxonomy.
//
// Everything here is data. No function in this package can fail, and none
// of them depend on an external lookup — that is the job of package
// registry. Changes to these tables are versioned; see RulebookVersion.
package catalog
