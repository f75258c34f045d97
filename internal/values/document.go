package values

import (
	"strings"

	"github.com/imamik/c8values/internal/wizard"
)

type nodeKind int

const (
	mappingNode nodeKind = iota
	scalarNode
	listNode
)

type node struct {
	key      string
	kind     nodeKind
	value    string
	entries  []wizard.Field
	children []*node
}

// child returns the child named key, appending it when missing. The first
// call for a key fixes its position among its siblings.
func (n *node) child(key string) *node {
	for _, c := range n.children {
		if c.key == key {
			return c
		}
	}
	c := &node{key: key}
	n.children = append(n.children, c)
	return c
}

// Document is an ordered key tree rendered as YAML-shaped text. Every key
// appears once: later writes under an existing key nest into it.
// Values are written verbatim, without quoting or escaping.
type Document struct {
	root node
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Set writes a scalar at a dot-separated path, creating parents as needed.
func (d *Document) Set(path, value string) {
	n := d.walk(path)
	n.kind = scalarNode
	n.value = value
	n.entries = nil
	n.children = nil
}

// SetList writes a name/value sequence at a dot-separated path.
func (d *Document) SetList(path string, entries []wizard.Field) {
	n := d.walk(path)
	n.kind = listNode
	n.entries = append([]wizard.Field(nil), entries...)
	n.value = ""
	n.children = nil
}

// Empty reports whether nothing has been written.
func (d *Document) Empty() bool {
	return len(d.root.children) == 0
}

// Keys returns the top-level keys in emission order.
func (d *Document) Keys() []string {
	keys := make([]string, len(d.root.children))
	for i, c := range d.root.children {
		keys[i] = c.key
	}
	return keys
}

// String renders the document with two-space indentation.
func (d *Document) String() string {
	var b strings.Builder
	d.root.write(&b, 0)
	return b.String()
}

func (d *Document) walk(path string) *node {
	n := &d.root
	for _, key := range strings.Split(path, ".") {
		if n.kind != mappingNode {
			n.kind = mappingNode
			n.value = ""
			n.entries = nil
		}
		n = n.child(key)
	}
	return n
}

func (n *node) write(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, c := range n.children {
		b.WriteString(indent)
		b.WriteString(c.key)
		b.WriteString(":")

		switch c.kind {
		case scalarNode:
			if c.value != "" {
				b.WriteString(" ")
				b.WriteString(c.value)
			}
			b.WriteString("\n")
		case listNode:
			b.WriteString("\n")
			for _, e := range c.entries {
				b.WriteString(indent + "  - name: " + e.Name + "\n")
				b.WriteString(indent + "    value: " + e.Value + "\n")
			}
		default:
			b.WriteString("\n")
			c.write(b, depth+1)
		}
	}
}
