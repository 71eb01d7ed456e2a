package doctree

import "strings"

// Render converts a rich-text node to portable plain text.
//
// Text leaves pass through as-is. Cross-references resolve to their display
// text; when a reference carries a literal child, that literal is surfaced.
// Block-level children are joined with newlines. Sigil stripping and
// union-type splitting are deliberately not done here; that policy belongs to
// the field data normalizer.
func Render(n *Node) string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case KindText:
		return n.Text
	case KindReference:
		if lit := n.FirstChild(KindLiteral); lit != nil {
			return lit.AsText()
		}
		if len(n.Children) > 0 {
			return renderInline(n.Children)
		}
		return n.Target
	case KindLiteral, KindInline, KindFieldName, KindAnnotation:
		return renderInline(n.Children)
	case KindParagraph:
		return renderInline(n.Children)
	default:
		parts := make([]string, 0, len(n.Children))
		for _, c := range n.Children {
			if s := Render(c); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "\n")
	}
}

func renderInline(children []*Node) string {
	var sb strings.Builder
	for _, c := range children {
		sb.WriteString(Render(c))
	}
	return sb.String()
}
