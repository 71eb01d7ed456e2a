package fields

import (
	"strings"
	"unicode"

	"git.home.luguber.info/inful/docfxgen/internal/doctree"
)

// Item is one (argument, content) pair collected under an entry.
type Item struct {
	Arg     string
	Content []*doctree.Node
}

// Entry is one parsed field-list entry. Unrecognized fields survive as
// passthrough entries (Desc == nil) with a capitalized label; they are never
// dropped.
type Entry struct {
	Desc        *Descriptor
	Items       []Item
	Passthrough *doctree.Node
}

// TypeTable maps group name -> argument name -> declared-type content,
// populated from ":type x:" style fields and the combined ":param Type x:"
// syntax.
type TypeTable map[string]map[string][]*doctree.Node

func (t TypeTable) put(group, arg string, content []*doctree.Node) {
	if t[group] == nil {
		t[group] = make(map[string][]*doctree.Node)
	}
	t[group][arg] = content
}

// Lookup returns the declared type content for an argument, if any.
func (t TypeTable) Lookup(group, arg string) ([]*doctree.Node, bool) {
	content, ok := t[group][arg]
	return content, ok
}

// Parse walks a field-list node and collects entries plus the type table.
//
// Grouped kinds accumulate all occurrences into one shared entry; singular
// kinds produce one entry per occurrence. Unknown labels and argument
// presence mismatches degrade to capitalized passthrough entries.
func Parse(fieldList *doctree.Node, typemap Typemap) ([]Entry, TypeTable) {
	var entries []Entry
	groupIndices := map[string]int{}
	types := TypeTable{}

	for _, field := range fieldList.Children {
		if field.Kind != doctree.KindField || len(field.Children) < 2 {
			continue
		}
		fieldName := field.Children[0]
		fieldBody := field.Children[1]

		label := fieldName.AsText()
		fieldType, fieldArg := splitLabel(label)

		schema, known := typemap[fieldType]
		if !known || schema.desc.HasArg != (fieldArg != "") {
			// Unknown label or argument mismatch: capitalize and keep the
			// field verbatim rather than losing author content.
			newLabel := capitalize(fieldType)
			if fieldArg != "" {
				newLabel += " " + fieldArg
			}
			renamed := doctree.New(doctree.KindField).Append(
				doctree.New(doctree.KindFieldName).Append(doctree.NewText(newLabel)),
				fieldBody,
			)
			entries = append(entries, Entry{Passthrough: renamed})
			continue
		}
		desc := schema.desc

		content := bodyContent(fieldBody)

		if schema.isTypeField {
			// Only inline nodes are legal inside a type declaration.
			inline := make([]*doctree.Node, 0, len(content))
			for _, n := range content {
				if n.IsInline() {
					inline = append(inline, n)
				}
			}
			if len(inline) > 0 {
				types.put(desc.Name, fieldArg, inline)
			}
			continue
		}

		// Combined ":param TypeName argname:" syntax.
		if desc.Typed {
			if argType, argName, ok := cutSpace(fieldArg); ok && argName != "" {
				types.put(desc.Name, argName, []*doctree.Node{doctree.NewText(argType)})
				fieldArg = argName
			}
		}

		// Wrap the body in one inline container so consumers see a single
		// renderable content node per item.
		translatable := doctree.New(doctree.KindInline).Append(content...)
		item := Item{Arg: fieldArg, Content: []*doctree.Node{translatable}}
		if desc.Grouped {
			if idx, ok := groupIndices[desc.Name]; ok {
				entries[idx].Items = append(entries[idx].Items, item)
			} else {
				groupIndices[desc.Name] = len(entries)
				entries = append(entries, Entry{Desc: desc, Items: []Item{item}})
			}
		} else {
			entries = append(entries, Entry{Desc: desc, Items: []Item{item}})
		}
	}

	return entries, types
}

// splitLabel separates a field label into its kind token and argument.
func splitLabel(label string) (fieldType, fieldArg string) {
	fieldType, fieldArg, _ = cutSpace(strings.TrimSpace(label))
	return fieldType, fieldArg
}

// cutSpace splits s around its first whitespace run. Labels may be separated
// by tabs or multiple spaces, not just a single space.
func cutSpace(s string) (before, after string, found bool) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, "", false
	}
	return s[:i], strings.TrimSpace(s[i:]), true
}

// bodyContent unwraps a single-paragraph field body to its inline children;
// multi-paragraph bodies contribute their blocks directly.
func bodyContent(body *doctree.Node) []*doctree.Node {
	if len(body.Children) == 1 && body.Children[0].Kind == doctree.KindParagraph {
		return body.Children[0].Children
	}
	return body.Children
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
