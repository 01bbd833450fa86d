package fundxml

import (
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// Document is a parsed position file. It is read-only after construction:
// extraction walks the tree but never mutates it.
type Document struct {
	tree *etree.Document
	path string
}

// Load reads and parses the XML file at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	tree, err := parseTree(f)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &Document{tree: tree, path: path}, nil
}

// Parse parses an XML document from r.
func Parse(r io.Reader) (*Document, error) {
	tree, err := parseTree(r)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return &Document{tree: tree}, nil
}

// Path returns the source file path, or "" for documents parsed from a reader.
func (d *Document) Path() string { return d.path }

func parseTree(r io.Reader) (*etree.Document, error) {
	doc := etree.NewDocument()
	// Position files are declared ISO-8859-1 about as often as UTF-8.
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, err
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("document has no root element")
	}
	return doc, nil
}
