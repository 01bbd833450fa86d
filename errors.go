package fundxml

import "fmt"

// LoadError reports a source file that could not be read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ParseError reports malformed XML. The wrapped decoder error carries
// position info when available.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse xml: %v", e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// StructureError reports a document missing the mandatory scaffolding tag.
type StructureError struct {
	Tag string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("expected container %q not found", e.Tag)
}

// NotFoundError reports zero occurrences of the requested container tag.
type NotFoundError struct {
	Tag string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no occurrences of tag %q", e.Tag)
}
