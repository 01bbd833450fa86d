package fundxml

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// fundScope is the mandatory second-level element beneath which every
// container and field lookup is resolved.
const fundScope = "fundo"

// Extract collects one row per occurrence of container beneath the fundo
// scope and one column per field name, in the given order. Occurrences and
// fields are matched at any depth, in document order. A field absent from
// an occurrence yields an empty cell, never an error, so every column has
// exactly one value per row.
//
// A document without the fundo scope is a *StructureError. Zero occurrences
// of container is a *NotFoundError; callers wanting the empty-table reading
// can build one with NewTable(fields) when they see it.
func Extract(doc *Document, container string, fields []string) (*Table, error) {
	if doc == nil || doc.tree == nil {
		return nil, fmt.Errorf("nil document")
	}
	if container == "" {
		return nil, fmt.Errorf("container tag must not be empty")
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("at least one field name is required")
	}

	root := doc.tree.Root()
	if root == nil {
		return nil, &StructureError{Tag: fundScope}
	}
	fund := root.SelectElement(fundScope)
	if fund == nil {
		return nil, &StructureError{Tag: fundScope}
	}

	containerPath, err := compileTagPath(container)
	if err != nil {
		return nil, fmt.Errorf("container tag %q: %w", container, err)
	}
	fieldPaths := make([]etree.Path, len(fields))
	for i, field := range fields {
		if fieldPaths[i], err = compileTagPath(field); err != nil {
			return nil, fmt.Errorf("field name %q: %w", field, err)
		}
	}

	occurrences := fund.FindElementsPath(containerPath)
	if len(occurrences) == 0 {
		return nil, &NotFoundError{Tag: container}
	}

	table := NewTable(fields)
	row := make([]string, len(fields))
	for _, occ := range occurrences {
		for i := range fields {
			el := occ.FindElementPath(fieldPaths[i])
			if el == nil {
				// Field absent in this occurrence: keep the column aligned
				// with an empty cell.
				row[i] = ""
				continue
			}
			row[i] = cleanText(el)
		}
		if err := table.Append(row...); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// ExtractFile loads the XML file at path and extracts container occurrences
// into a table. See Extract for semantics.
func ExtractFile(path, container string, fields ...string) (*Table, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Extract(doc, container, fields)
}

// compileTagPath builds a descendant search path for a single tag name.
func compileTagPath(tag string) (etree.Path, error) {
	return etree.CompilePath(".//" + tag)
}

// cleanText concatenates every character-data fragment in the element's
// subtree, in document order with no added separator, then trims surrounding
// whitespace. Tags contribute nothing; <coupom><valor>5.5</valor></coupom>
// yields "5.5".
func cleanText(el *etree.Element) string {
	var sb strings.Builder
	var walk func(*etree.Element)
	walk = func(e *etree.Element) {
		for _, child := range e.Child {
			switch c := child.(type) {
			case *etree.CharData:
				sb.WriteString(c.Data)
			case *etree.Element:
				walk(c)
			}
		}
	}
	walk(el)
	return strings.TrimSpace(sb.String())
}
