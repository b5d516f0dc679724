package schema

import (
	"fmt"

	"github.com/beevik/etree"
)

// Violation is one schema-validation defect, translated to a finding by
// the caller with a stable error code (ERR_001 schema, ERR_002 malformed
// XML) plus XPath and line/column when available (spec.md §4.D.4).
type Violation struct {
	Code    string
	Message string
	XPath   string
	Line    int // 0 when unavailable
	Column  int // 0 when unavailable
	Fatal   bool
}

// Validate performs a structural check of xmlDoc's root element and its
// immediate children against schemaDoc's declared elements. This mirrors
// adrianodrix-sped-nfe-go's validateXMLStructure (root-element-presence
// check over //xs:element[@name]), extended one level to immediate
// children since the FEL schema's top-level GTDocumento wrapper carries
// no useful signal on its own.
func Validate(xmlDoc, schemaDoc *etree.Document) []Violation {
	var violations []Violation

	xmlRoot := xmlDoc.Root()
	if xmlRoot == nil {
		return []Violation{{
			Code:    "ERR_002",
			Message: "el documento XML no tiene elemento raíz",
			Fatal:   true,
		}}
	}
	schemaRoot := schemaDoc.Root()
	if schemaRoot == nil {
		return []Violation{{
			Code:    "ERR_001",
			Message: "el esquema XSD no tiene elemento raíz",
			Fatal:   true,
		}}
	}

	declared := declaredElementNames(schemaRoot)
	if !declared[xmlRoot.Tag] {
		violations = append(violations, Violation{
			Code:    "ERR_001",
			Message: fmt.Sprintf("elemento raíz '%s' no declarado en el esquema", xmlRoot.Tag),
			XPath:   "/" + xmlRoot.Tag,
			Fatal:   true,
		})
		return violations
	}

	for _, child := range xmlRoot.ChildElements() {
		if !declared[child.Tag] {
			violations = append(violations, Violation{
				Code:    "ERR_001",
				Message: fmt.Sprintf("elemento '%s' no declarado en el esquema", child.Tag),
				XPath:   fmt.Sprintf("/%s/%s", xmlRoot.Tag, child.Tag),
			})
		}
	}

	return violations
}

func declaredElementNames(schemaRoot *etree.Element) map[string]bool {
	names := map[string]bool{}
	elements := schemaRoot.FindElements("//xs:element[@name]")
	if len(elements) == 0 {
		elements = schemaRoot.FindElements("//element[@name]")
	}
	for _, el := range elements {
		if name := el.SelectAttrValue("name", ""); name != "" {
			names[name] = true
		}
	}
	return names
}
