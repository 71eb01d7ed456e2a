// Package doctree models the rich-text documentation tree this tool consumes.
//
// The external build pipeline hands us one pre-parsed content block per
// documented symbol. The node kinds form a closed set; all dispatch is over
// Kind rather than reflection.
package doctree

import "strings"

// Kind enumerates the node variants the pipeline can emit.
type Kind int

const (
	// KindText is a raw text leaf.
	KindText Kind = iota
	// KindParagraph groups inline children into one flow block.
	KindParagraph
	// KindInline is generic inline markup (emphasis and friends).
	KindInline
	// KindLiteral is inline code / a literal span.
	KindLiteral
	// KindReference is a cross-reference with a target identifier.
	KindReference
	// KindFieldList holds KindField children.
	KindFieldList
	// KindField is one (name, body) pair inside a field list.
	KindField
	// KindFieldName is the label of a field.
	KindFieldName
	// KindFieldBody is the content of a field.
	KindFieldBody
	// KindAdmonition is a titled callout block; Title carries the heading.
	KindAdmonition
	// KindSeeAlso is a see-also block.
	KindSeeAlso
	// KindBlock is one documented object (a nested "desc" in the source
	// tree); BlockType carries the object kind, Domain the source domain.
	KindBlock
	// KindSignature is the signature line of a block.
	KindSignature
	// KindAnnotation is a type annotation attached to a signature.
	KindAnnotation
	// KindContent is the body of a block.
	KindContent
)

// Node is one node of the documentation tree.
type Node struct {
	Kind      Kind
	Text      string   // KindText payload
	Target    string   // KindReference target identifier
	Title     string   // KindAdmonition title
	Domain    string   // KindBlock source domain (e.g. "py")
	BlockType string   // KindBlock object kind (e.g. "attribute")
	Module    string   // KindBlock / KindSignature owning module
	FullName  string   // KindBlock / KindSignature fully qualified name
	IDs       []string // KindSignature stable identifiers
	Children  []*Node
}

// NewText returns a text leaf.
func NewText(text string) *Node { return &Node{Kind: KindText, Text: text} }

// New returns an empty node of the given kind.
func New(kind Kind) *Node { return &Node{Kind: kind} }

// Append adds children and returns the node for chaining.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// AsText concatenates all raw text beneath the node, ignoring markup.
func (n *Node) AsText() string {
	var sb strings.Builder
	n.writeText(&sb)
	return sb.String()
}

func (n *Node) writeText(sb *strings.Builder) {
	if n.Kind == KindText {
		sb.WriteString(n.Text)
		return
	}
	for _, c := range n.Children {
		c.writeText(sb)
	}
}

// FirstChild returns the first direct child of the given kind, or nil.
func (n *Node) FirstChild(kind Kind) *Node {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// HasChild reports whether any direct child has the given kind.
func (n *Node) HasChild(kind Kind) bool { return n.FirstChild(kind) != nil }

// IsInline reports whether the node may appear inside a type declaration.
// Block-level nodes inside a type field would produce invalid output and are
// filtered out by the field-list parser.
func (n *Node) IsInline() bool {
	switch n.Kind {
	case KindText, KindInline, KindLiteral, KindReference:
		return true
	}
	return false
}
