package build

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/docfxgen/internal/doctree"
	"git.home.luguber.info/inful/docfxgen/internal/fields"
	"git.home.luguber.info/inful/docfxgen/internal/logfields"
	"git.home.luguber.info/inful/docfxgen/internal/model"
)

// ErrDomainMismatch marks a content block from a foreign documentation
// domain; the symbol is skipped with a diagnostic, never fatally.
var ErrDomainMismatch = errors.New("content block from foreign domain")

const (
	// contentDomain is the only documentation domain this pipeline accepts.
	contentDomain = "py"
	// enumBasesMarker is the exact summary text identifying an enum class
	// body; nested attributes then become member records.
	enumBasesMarker = "Bases: enum.Enum"
	// basesPrefix starts base-class boilerplate paragraphs, which never
	// belong in a summary.
	basesPrefix = "Bases: "
)

// ContentData is the result of transforming one documented content block:
// the assembled summary, the normalized syntax schema, auxiliary blocks, and
// any attribute records captured from nested bodies. UID is the join key: a
// record absorbs the content data only when its own uid matches.
type ContentData struct {
	UID        string
	Summary    string
	Syntax     *model.Syntax
	SeeAlso    string
	Example    string
	Attributes []*model.Record
}

// TransformContent walks a symbol's content block and extracts everything the
// record builder merges into the final record. The external rendering
// pipeline invokes this explicitly; nothing is captured through shared state.
func (s *Session) TransformContent(block *doctree.Node) (*ContentData, error) {
	if block == nil || block.Kind != doctree.KindBlock {
		return nil, fmt.Errorf("expected a content block node")
	}
	if block.Domain != contentDomain {
		return nil, fmt.Errorf("%w: %q", ErrDomainMismatch, block.Domain)
	}

	sig := block.FirstChild(doctree.KindSignature)
	content := block.FirstChild(doctree.KindContent)

	module := block.Module
	fullName := block.FullName
	if sig != nil {
		if sig.Module != "" {
			module = sig.Module
		}
		if sig.FullName != "" {
			fullName = sig.FullName
		}
	}
	shortName := lastSegment(fullName)

	uid := ""
	if sig != nil && len(sig.IDs) > 0 {
		uid = sig.IDs[0]
	}
	if uid == "" {
		uid = fmt.Sprintf("%s.%s", module, shortName)
		slog.Warn("Non-standard id", logfields.UID(uid), logfields.Module(module))
	}

	data := &ContentData{UID: uid}
	if content == nil {
		return data, nil
	}

	isEnum := isEnumClassContent(content)
	var summary []string
	for _, child := range content.Children {
		switch child.Kind {
		case doctree.KindBlock:
			// Nested documented objects are not recursed into; attribute
			// bodies are captured, everything else is left to its own event.
			if child.BlockType == string(KindAttribute) {
				data.Attributes = append(data.Attributes, captureAttributes(child, isEnum)...)
			}
		case doctree.KindFieldList:
			entries, types := fields.Parse(child, s.typemap)
			data.Syntax = fields.Normalize(entries, types, child)
		case doctree.KindSeeAlso:
			data.SeeAlso = doctree.Render(child)
		case doctree.KindAdmonition:
			if strings.Contains(child.Title, "Example") {
				data.Example = doctree.Render(child)
				continue
			}
			appendSummary(&summary, doctree.Render(child))
		default:
			appendSummary(&summary, doctree.Render(child))
		}
	}
	data.Summary = strings.Join(summary, "\n")
	return data, nil
}

// appendSummary accumulates summary text, eliding base-class boilerplate.
func appendSummary(summary *[]string, text string) {
	if strings.HasPrefix(text, basesPrefix) {
		return
	}
	*summary = append(*summary, text)
}

// isEnumClassContent reports whether a class body declares enumeration base.
func isEnumClassContent(content *doctree.Node) bool {
	if len(content.Children) == 0 {
		return false
	}
	first := content.Children[0]
	return first.Kind == doctree.KindParagraph && first.AsText() == enumBasesMarker
}

// captureAttributes extracts attribute records from a nested attribute block.
// Only signatures carrying a type annotation are captured. Inside an enum
// class the attribute becomes a member record whose return type points back
// at the enclosing class (the uid truncated at its last separator); otherwise
// it becomes an ordinary attribute with a class back-reference.
func captureAttributes(attrBlock *doctree.Node, enumClass bool) []*model.Record {
	var out []*model.Record
	for _, item := range attrBlock.Children {
		if item.Kind != doctree.KindSignature || !item.HasChild(doctree.KindAnnotation) {
			continue
		}
		if len(item.IDs) == 0 {
			continue
		}
		curUID := item.IDs[0]
		parent := curUID
		if i := strings.LastIndex(curUID, "."); i >= 0 {
			parent = curUID[:i]
		}
		name := lastSegment(curUID)
		if len(item.Children) > 0 && item.Children[0].Kind != doctree.KindAnnotation {
			name = item.Children[0].AsText()
		}

		mapped, _ := model.MappedType(string(KindAttribute))
		rec := &model.Record{
			UID:      curUID,
			Kind:     string(KindAttribute),
			Type:     mapped,
			Name:     name,
			FullName: curUID,
			Module:   item.Module,
			Langs:    []string{"python"},
			Syntax:   &model.Syntax{Content: item.AsText()},
		}
		if enumClass {
			rec.ID = name
			rec.Parent = parent
			rec.Syntax.Return = &model.Return{Type: []string{parent}}
		} else {
			rec.Class = parent
		}
		out = append(out, rec)
	}
	return out
}
