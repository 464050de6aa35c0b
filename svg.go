package svg

import (
	"fmt"
	"io"

	"github.com/beevik/etree"
)

// Document is an SVG file held as a mutable element tree. Scripts edit it
// in place; Snapshot and Restore give batch level rollback.
type Document struct {
	Name string
	doc  *etree.Document
}

// NewDocument returns a document with an empty svg root element.
func NewDocument(name string) *Document {
	doc := etree.NewDocument()
	root := doc.CreateElement("svg")
	root.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	return &Document{Name: name, doc: doc}
}

// ParseSvg parses an SVG string into a Document
func ParseSvg(str string, name string) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(str); err != nil {
		return nil, fmt.Errorf("ParseSvg Error: %w", err)
	}
	return newDocument(doc, name)
}

// ParseSvgFromReader parses a Document from an io.Reader
func ParseSvgFromReader(r io.Reader, name string) (*Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("ParseSvg Error: %w", err)
	}
	return newDocument(doc, name)
}

// ReadFile loads the SVG file at path.
func ReadFile(path string) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return newDocument(doc, path)
}

func newDocument(doc *etree.Document, name string) (*Document, error) {
	if doc.Root() == nil {
		return nil, fmt.Errorf("ParseSvg Error: %s has no root element", name)
	}
	return &Document{Name: name, doc: doc}, nil
}

// Root returns the top level svg element.
func (d *Document) Root() *etree.Element {
	return d.doc.Root()
}

// ElementByID returns the first element below the root, the root included,
// whose id attribute equals id, or nil.
func (d *Document) ElementByID(id string) *etree.Element {
	return FindByID(d.Root(), id)
}

// FindByID searches el and its descendants, depth first in document order.
func FindByID(el *etree.Element, id string) *etree.Element {
	if el == nil {
		return nil
	}
	if el.SelectAttrValue("id", "") == id {
		return el
	}
	for _, c := range el.ChildElements() {
		if found := FindByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// FindByTag returns every element below el, el included, with the given
// local tag name, whatever its namespace prefix.
func FindByTag(el *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	if el == nil {
		return out
	}
	if el.Tag == tag {
		out = append(out, el)
	}
	for _, c := range el.ChildElements() {
		out = append(out, FindByTag(c, tag)...)
	}
	return out
}

// Path returns a builder bound to the path element with the given id.
func (d *Document) Path(id string) (*Builder, error) {
	el := d.ElementByID(id)
	if el == nil {
		return nil, fmt.Errorf("no element with id %q in %s", id, d.Name)
	}
	return FromElement(el)
}

// Snapshot returns a deep copy of the document.
func (d *Document) Snapshot() *Document {
	return &Document{Name: d.Name, doc: d.doc.Copy()}
}

// Restore replaces the content of d with a copy of snapshot. Elements
// obtained from d before the call no longer belong to it.
func (d *Document) Restore(snapshot *Document) {
	d.doc = snapshot.doc.Copy()
}

// String serializes the document.
func (d *Document) String() string {
	s, err := d.doc.WriteToString()
	if err != nil {
		return ""
	}
	return s
}

// WriteTo writes the document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return d.doc.WriteTo(w)
}

// WriteFile writes the document to path.
func (d *Document) WriteFile(path string) error {
	if err := d.doc.WriteToFile(path); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}

// Indent reformats the document with the given number of spaces per level.
// Zero leaves the layout untouched.
func (d *Document) Indent(spaces int) {
	if spaces > 0 {
		d.doc.Indent(spaces)
	}
}

// Equal reports whether two documents serialize identically.
func (d *Document) Equal(other *Document) bool {
	return d.String() == other.String()
}
