// Package document defines the template document capability used by the
// export pipeline and provides an etree-backed implementation for SVG and
// other XML documents.
//
// The pipeline never mutates a loaded template. Each output is produced
// from a deep Clone, rewritten through Walk and serialized with WriteTo.
package document

import "io"

// Attr is one attribute of a node. Key includes the namespace prefix when
// there is one ("xlink:href").
type Attr struct {
	Key   string
	Value string
}

// Node is a single element of a Document.
type Node interface {
	// Tag returns the element name including its prefix.
	Tag() string
	// Texts returns the character data and comment segments directly
	// under the node, in document order.
	Texts() []string
	// SetText replaces the i-th segment returned by Texts.
	SetText(i int, value string)
	// Attrs returns the node's attributes in document order.
	Attrs() []Attr
	// SetAttr sets the value of an attribute, creating it when absent.
	SetAttr(key, value string)
}

// Document is a tree of nodes that can be cloned and serialized.
type Document interface {
	// Clone returns a deep copy sharing no mutable state with the receiver.
	Clone() Document
	// Walk calls fn for every element node in document order.
	Walk(fn func(Node))
	// WriteTo serializes the document.
	WriteTo(w io.Writer) (int64, error)
}

// Indenter is implemented by documents that can re-indent themselves
// before serialization.
type Indenter interface {
	Indent(spaces int)
}
