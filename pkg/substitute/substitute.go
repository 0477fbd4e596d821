// Package substitute rewrites {{key}} placeholders in template documents.
//
// Keys are matched after trimming and case folding, the same normalization
// applied to column headers. A placeholder without a matching value is left
// in place. Inserted values are never scanned again, so a value that itself
// looks like a placeholder is written out verbatim.
package substitute

import (
	"regexp"
	"strings"

	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/document"
	"github.com/csabourin/inkscape-plugin-CSVColumnExporter/pkg/table"
)

var placeholder = regexp.MustCompile(`\{\{([^{}]*)\}\}`)

// Values resolves normalized placeholder keys. table.Row implements it.
type Values interface {
	Lookup(key string) (string, bool)
}

// String replaces every placeholder in s that has a value.
func String(s string, values Values) string {
	if !strings.Contains(s, "{{") {
		return s
	}
	return placeholder.ReplaceAllStringFunc(s, func(match string) string {
		key := table.Normalize(match[2 : len(match)-2])
		if v, ok := values.Lookup(key); ok {
			return v
		}
		return match
	})
}

// Stats counts the strings a Document pass rewrote.
type Stats struct {
	Texts int
	Attrs int
}

// Changed is the total number of rewritten strings.
func (s Stats) Changed() int {
	return s.Texts + s.Attrs
}

// Document applies String to every text segment and attribute value of
// doc. Element names and structure are left alone.
func Document(doc document.Document, values Values) Stats {
	var stats Stats
	doc.Walk(func(n document.Node) {
		for _, attr := range n.Attrs() {
			if out := String(attr.Value, values); out != attr.Value {
				n.SetAttr(attr.Key, out)
				stats.Attrs++
			}
		}
		for i, text := range n.Texts() {
			if out := String(text, values); out != text {
				n.SetText(i, out)
				stats.Texts++
			}
		}
	})
	return stats
}

// Placeholders lists the distinct normalized keys referenced by doc, in
// order of first appearance.
func Placeholders(doc document.Document) []string {
	seen := make(map[string]struct{})
	var keys []string
	collect := func(s string) {
		for _, m := range placeholder.FindAllStringSubmatch(s, -1) {
			key := table.Normalize(m[1])
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	doc.Walk(func(n document.Node) {
		for _, attr := range n.Attrs() {
			collect(attr.Value)
		}
		for _, text := range n.Texts() {
			collect(text)
		}
	})
	return keys
}
