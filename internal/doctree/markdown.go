package doctree

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// fieldLine matches docstring field markers such as ":param int x: the value".
var fieldLine = regexp.MustCompile(`^:([^:]+):\s*(.*)$`)

// ParseDocstring parses a Markdown docstring into a doctree content node.
//
// Paragraphs whose first line is a ":label: body" field marker become field
// lists; everything else becomes paragraphs with inline markup mapped onto
// the doctree variants (code span -> literal, link -> reference, emphasis ->
// inline). Continuation lines that do not open a new field attach to the
// previous field's body.
func ParseDocstring(source []byte) (*Node, error) {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(source))

	content := New(KindContent)
	for block := root.FirstChild(); block != nil; block = block.NextSibling() {
		switch b := block.(type) {
		case *gmast.Paragraph:
			lines := blockLines(b, source)
			if len(lines) > 0 && fieldLine.MatchString(lines[0]) {
				content.Append(parseFieldLines(lines))
				continue
			}
			para := New(KindParagraph)
			convertInlines(b, source, para)
			content.Append(para)
		case *gmast.Heading:
			para := New(KindParagraph)
			convertInlines(b, source, para)
			content.Append(para)
		case *gmast.FencedCodeBlock, *gmast.CodeBlock:
			lit := New(KindLiteral)
			lit.Append(NewText(strings.Join(blockLines(block, source), "\n")))
			content.Append(New(KindParagraph).Append(lit))
		default:
			para := New(KindParagraph)
			para.Append(NewText(strings.Join(blockLines(block, source), "\n")))
			content.Append(para)
		}
	}
	return content, nil
}

// parseFieldLines turns consecutive ":label: body" lines into a field list.
func parseFieldLines(lines []string) *Node {
	list := New(KindFieldList)
	var cur *Node // current KindFieldBody paragraph text node
	for _, line := range lines {
		if m := fieldLine.FindStringSubmatch(line); m != nil {
			name := New(KindFieldName).Append(NewText(m[1]))
			bodyText := NewText(m[2])
			body := New(KindFieldBody).Append(New(KindParagraph).Append(bodyText))
			list.Append(New(KindField).Append(name, body))
			cur = bodyText
			continue
		}
		if cur != nil {
			cur.Text += "\n" + strings.TrimSpace(line)
		}
	}
	return list
}

// blockLines extracts the raw source lines of a block node.
func blockLines(n gmast.Node, source []byte) []string {
	segments := n.Lines()
	if segments == nil {
		return nil
	}
	lines := make([]string, 0, segments.Len())
	for i := 0; i < segments.Len(); i++ {
		seg := segments.At(i)
		lines = append(lines, strings.TrimRight(string(seg.Value(source)), "\n"))
	}
	return lines
}

// convertInlines maps goldmark inline children onto doctree nodes.
func convertInlines(n gmast.Node, source []byte, parent *Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *gmast.Text:
			parent.Append(NewText(string(node.Segment.Value(source))))
			if node.SoftLineBreak() || node.HardLineBreak() {
				parent.Append(NewText("\n"))
			}
		case *gmast.String:
			parent.Append(NewText(string(node.Value)))
		case *gmast.CodeSpan:
			lit := New(KindLiteral)
			convertInlines(node, source, lit)
			parent.Append(lit)
		case *gmast.Emphasis:
			inline := New(KindInline)
			convertInlines(node, source, inline)
			parent.Append(inline)
		case *gmast.Link:
			ref := &Node{Kind: KindReference, Target: string(node.Destination)}
			convertInlines(node, source, ref)
			parent.Append(ref)
		case *gmast.AutoLink:
			url := string(node.URL(source))
			ref := &Node{Kind: KindReference, Target: url}
			ref.Append(NewText(url))
			parent.Append(ref)
		default:
			convertInlines(node, source, parent)
		}
	}
}
