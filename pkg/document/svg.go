package document

import (
	"bytes"
	"io"

	"github.com/beevik/etree"

	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/errors"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/filesystem"
)

// SVG is a Document backed by an etree XML tree.
type SVG struct {
	doc *etree.Document
}

var (
	_ Document = (*SVG)(nil)
	_ Indenter = (*SVG)(nil)
)

// Parse decodes an XML document.
func Parse(data []byte) (*SVG, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.PreserveCData = true
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrTemplateLoad, "failed to parse template")
	}
	if doc.Root() == nil {
		return nil, errors.New(errors.ErrTemplateLoad, "template has no root element")
	}
	return &SVG{doc: doc}, nil
}

// Load reads and parses the template at path.
func Load(fsys filesystem.FS, path string) (*SVG, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateLoad, "cannot read template %s", path).
			WithDetail("path", path)
	}
	svg, err := Parse(data)
	if err != nil {
		if exportErr, ok := err.(*errors.ExportError); ok {
			exportErr.WithDetail("path", path)
		}
		return nil, err
	}
	return svg, nil
}

// Clone returns a deep copy of the document.
func (s *SVG) Clone() Document {
	return &SVG{doc: s.doc.Copy()}
}

// Walk visits every element in document order.
func (s *SVG) Walk(fn func(Node)) {
	for _, child := range s.doc.ChildElements() {
		walkElement(child, fn)
	}
}

func walkElement(e *etree.Element, fn func(Node)) {
	fn(&element{e: e})
	for _, child := range e.ChildElements() {
		walkElement(child, fn)
	}
}

// WriteTo serializes the document to w.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	return s.doc.WriteTo(w)
}

// Bytes serializes the document.
func (s *SVG) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Indent re-indents the document with the given number of spaces.
func (s *SVG) Indent(spaces int) {
	s.doc.Indent(spaces)
}

// RootTag returns the name of the root element.
func (s *SVG) RootTag() string {
	return s.doc.Root().FullTag()
}

// element adapts an etree element to Node.
type element struct {
	e *etree.Element
}

func (n *element) Tag() string {
	return n.e.FullTag()
}

// Texts includes the bodies of comments directly under the element.
func (n *element) Texts() []string {
	var texts []string
	for _, tok := range n.e.Child {
		if data := textOf(tok); data != nil {
			texts = append(texts, *data)
		}
	}
	return texts
}

func (n *element) SetText(i int, value string) {
	for _, tok := range n.e.Child {
		data := textOf(tok)
		if data == nil {
			continue
		}
		if i == 0 {
			*data = value
			return
		}
		i--
	}
}

// textOf returns the editable text of a character data or comment token.
func textOf(tok etree.Token) *string {
	switch t := tok.(type) {
	case *etree.CharData:
		return &t.Data
	case *etree.Comment:
		return &t.Data
	}
	return nil
}

func (n *element) Attrs() []Attr {
	attrs := make([]Attr, len(n.e.Attr))
	for i, a := range n.e.Attr {
		attrs[i] = Attr{Key: a.FullKey(), Value: a.Value}
	}
	return attrs
}

func (n *element) SetAttr(key, value string) {
	for i := range n.e.Attr {
		if n.e.Attr[i].FullKey() == key {
			n.e.Attr[i].Value = value
			return
		}
	}
	n.e.CreateAttr(key, value)
}
