package fields

import (
	"regexp"
	"strings"

	"git.home.luguber.info/inful/docfxgen/internal/doctree"
	"git.home.luguber.info/inful/docfxgen/internal/model"
)

// unionSep matches the "A or B" separator in declared types, tolerating a
// newline after "or".
var unionSep = regexp.MustCompile(` or[ \n]`)

// SplitTypeUnion splits declared-type text into its union alternatives,
// stripping one leading reference sigil (@ exact-match, ~ fuzzy-match) and any
// trailing newline from each candidate.
func SplitTypeUnion(s string) []string {
	var out []string
	for _, part := range unionSep.Split(s, -1) {
		if strings.HasPrefix(part, "@") || strings.HasPrefix(part, "~") {
			part = part[1:]
		}
		part = strings.TrimRight(part, "\n")
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

// Normalize consumes parsed entries plus the type table and produces the
// normalized syntax schema. rawFieldList is the unparsed field-list node; it
// is scanned independently for "Raises" cross-references, which may duplicate
// typed exception entries (duplicates are kept, see the raises scan below).
func Normalize(entries []Entry, types TypeTable, rawFieldList *doctree.Node) *model.Syntax {
	syntax := &model.Syntax{}

	for _, entry := range entries {
		if entry.Desc == nil {
			continue // passthrough field, no schema contribution
		}
		switch entry.Desc.Name {
		case GroupExceptions:
			for _, item := range entry.Items {
				syntax.Exceptions = append(syntax.Exceptions, model.Exception{
					Type:        item.Arg,
					Description: firstContentText(item),
				})
			}
		case GroupReturnType:
			for _, item := range entry.Items {
				for _, node := range item.Content {
					rendered := doctree.Render(node)
					if rendered == "" {
						continue
					}
					if syntax.Return == nil {
						syntax.Return = &model.Return{}
					}
					syntax.Return.Type = append(syntax.Return.Type, SplitTypeUnion(rendered)...)
				}
			}
		case GroupReturnValue:
			for _, item := range entry.Items {
				if rendered := firstContentText(item); rendered != "" {
					if syntax.Return == nil {
						syntax.Return = &model.Return{}
					}
					syntax.Return.Description = rendered
				}
			}
		case GroupParameter, GroupVariable:
			for _, item := range entry.Items {
				param := model.Parameter{
					ID:          item.Arg,
					Description: firstContentText(item),
				}
				if declared, ok := types.Lookup(entry.Desc.Name, item.Arg); ok {
					var sb strings.Builder
					for _, n := range declared {
						sb.WriteString(doctree.Render(n))
					}
					param.Type = SplitTypeUnion(sb.String())
				}
				if entry.Desc.Name == GroupParameter {
					syntax.Parameters = append(syntax.Parameters, param)
				} else {
					syntax.Variables = append(syntax.Variables, param)
				}
			}
		}
	}

	// The raw block may carry an already-transformed "Raises" field whose
	// paragraphs reference exception types. These contribute type-only
	// entries and may duplicate typed exception entries above; duplicates
	// are not collapsed (known limitation inherited from the schema).
	if rawFieldList != nil {
		for _, exc := range raisesReferences(rawFieldList) {
			syntax.Exceptions = append(syntax.Exceptions, exc)
		}
	}

	return syntax
}

// raisesReferences scans a raw field list for a "Raises" field and collects
// the reference target of every paragraph carrying a literal-annotated
// cross-reference.
func raisesReferences(fieldList *doctree.Node) []model.Exception {
	var out []model.Exception
	for _, field := range fieldList.Children {
		if field.Kind != doctree.KindField || len(field.Children) < 2 {
			continue
		}
		if field.Children[0].AsText() != "Raises" {
			continue
		}
		for _, child := range field.Children[1].Children {
			if child.Kind != doctree.KindParagraph {
				continue
			}
			ref := child.FirstChild(doctree.KindReference)
			if ref == nil || !ref.HasChild(doctree.KindLiteral) {
				continue
			}
			out = append(out, model.Exception{Type: ref.Target})
		}
	}
	return out
}

func firstContentText(item Item) string {
	if len(item.Content) == 0 {
		return ""
	}
	return doctree.Render(item.Content[0])
}
