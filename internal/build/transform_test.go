package build

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docfxgen/internal/doctree"
)

// classBlockWithAttribute builds the content block of a class whose body
// nests one annotated attribute, optionally marked as an enum class.
func classBlockWithAttribute(t *testing.T, classUID, attrUID string, enum bool) *doctree.Node {
	t.Helper()

	module, _, ok := splitOwnerModuleOnly(classUID)
	require.True(t, ok)

	attrSig := &doctree.Node{
		Kind:   doctree.KindSignature,
		Module: module,
		IDs:    []string{attrUID},
	}
	attrSig.Append(
		doctree.NewText(lastSegment(attrUID)),
		doctree.New(doctree.KindAnnotation).Append(doctree.NewText(" = 1")),
	)
	attrBlock := &doctree.Node{Kind: doctree.KindBlock, Domain: "py", BlockType: "attribute"}
	attrBlock.Append(attrSig)

	content := doctree.New(doctree.KindContent)
	if enum {
		content.Append(doctree.New(doctree.KindParagraph).Append(doctree.NewText("Bases: enum.Enum")))
	} else {
		content.Append(doctree.New(doctree.KindParagraph).Append(doctree.NewText("A color.")))
	}
	content.Append(attrBlock)

	sig := &doctree.Node{
		Kind:     doctree.KindSignature,
		Module:   module,
		FullName: classUID,
		IDs:      []string{classUID},
	}
	sig.Append(doctree.NewText(lastSegment(classUID)))

	block := &doctree.Node{
		Kind:      doctree.KindBlock,
		Domain:    "py",
		BlockType: "class",
		Module:    module,
		FullName:  classUID,
	}
	block.Append(sig, content)
	return block
}

func splitOwnerModuleOnly(name string) (module, short string, ok bool) {
	_, module, ok = splitOwner(KindClass, name)
	return module, lastSegment(name), ok
}

func TestTransformContent_SummarySkipsBasesParagraph(t *testing.T) {
	s := testSession(t)

	block, err := docstringBlock(EventSpec{
		Kind:      string(KindClass),
		Name:      "pkg.Foo",
		Docstring: "Bases: pkg.Base\n\nA useful class.\n\nMore detail.\n",
	})
	require.NoError(t, err)

	data, err := s.TransformContent(block)
	require.NoError(t, err)
	require.Equal(t, "A useful class.\nMore detail.", data.Summary)
	require.Equal(t, "pkg.Foo", data.UID)
}

func TestTransformContent_ForeignDomain(t *testing.T) {
	s := testSession(t)
	block := &doctree.Node{Kind: doctree.KindBlock, Domain: "c", FullName: "x.Foo"}
	_, err := s.TransformContent(block)
	require.ErrorIs(t, err, ErrDomainMismatch)
}

func TestTransformContent_NonStandardIDFallback(t *testing.T) {
	s := testSession(t)

	sig := &doctree.Node{Kind: doctree.KindSignature, Module: "pkg", FullName: "pkg.Foo"}
	block := &doctree.Node{Kind: doctree.KindBlock, Domain: "py", Module: "pkg", FullName: "pkg.Foo"}
	block.Append(sig, doctree.New(doctree.KindContent))

	data, err := s.TransformContent(block)
	require.NoError(t, err)
	require.Equal(t, "pkg.Foo", data.UID) // synthesized {module}.{short_name}
}

func TestTransformContent_SeeAlsoAndExample(t *testing.T) {
	s := testSession(t)

	content := doctree.New(doctree.KindContent).Append(
		doctree.New(doctree.KindParagraph).Append(doctree.NewText("Summary.")),
		doctree.New(doctree.KindSeeAlso).Append(
			doctree.New(doctree.KindParagraph).Append(doctree.NewText("pkg.other")),
		),
		&doctree.Node{
			Kind:  doctree.KindAdmonition,
			Title: "Example usage",
			Children: []*doctree.Node{
				doctree.New(doctree.KindParagraph).Append(doctree.NewText("foo.bar(1)")),
			},
		},
	)
	block := &doctree.Node{Kind: doctree.KindBlock, Domain: "py", Module: "pkg", FullName: "pkg.Foo", IDs: []string{"pkg.Foo"}}
	sig := &doctree.Node{Kind: doctree.KindSignature, Module: "pkg", FullName: "pkg.Foo", IDs: []string{"pkg.Foo"}}
	block.Append(sig, content)

	data, err := s.TransformContent(block)
	require.NoError(t, err)
	require.Equal(t, "Summary.", data.Summary)
	require.Equal(t, "pkg.other", data.SeeAlso)
	require.Equal(t, "foo.bar(1)", data.Example)
}

func TestTransformContent_OrdinaryAttributeCapture(t *testing.T) {
	s := testSession(t)
	block := classBlockWithAttribute(t, "pkg.Config", "pkg.Config.timeout", false)

	data, err := s.TransformContent(block)
	require.NoError(t, err)
	require.Len(t, data.Attributes, 1)

	attr := data.Attributes[0]
	require.Equal(t, "pkg.Config.timeout", attr.UID)
	require.Equal(t, "pkg.Config", attr.Class)
	require.Empty(t, attr.Parent)
	require.Equal(t, []string{"python"}, attr.Langs)
	require.Equal(t, "attribute", attr.Kind)
	require.NotNil(t, attr.Syntax)
	require.NotEmpty(t, attr.Syntax.Content)
	require.Nil(t, attr.Syntax.Return)
}

func TestTransformContent_EnumMemberCapture(t *testing.T) {
	s := testSession(t)
	block := classBlockWithAttribute(t, "pkg.Color", "pkg.Color.RED", true)

	data, err := s.TransformContent(block)
	require.NoError(t, err)
	require.Len(t, data.Attributes, 1)

	member := data.Attributes[0]
	require.Equal(t, "pkg.Color.RED", member.UID)
	require.Equal(t, "pkg.Color", member.Parent)
	require.Equal(t, "RED", member.ID)
	require.Empty(t, member.Class)
	require.NotNil(t, member.Syntax.Return)
	require.Equal(t, []string{"pkg.Color"}, member.Syntax.Return.Type)
}

func TestTransformContent_AttributeWithoutAnnotationIgnored(t *testing.T) {
	s := testSession(t)

	attrSig := &doctree.Node{Kind: doctree.KindSignature, IDs: []string{"pkg.Foo.x"}}
	attrSig.Append(doctree.NewText("x"))
	attrBlock := &doctree.Node{Kind: doctree.KindBlock, Domain: "py", BlockType: "attribute"}
	attrBlock.Append(attrSig)

	content := doctree.New(doctree.KindContent).Append(attrBlock)
	sig := &doctree.Node{Kind: doctree.KindSignature, Module: "pkg", FullName: "pkg.Foo", IDs: []string{"pkg.Foo"}}
	block := &doctree.Node{Kind: doctree.KindBlock, Domain: "py", Module: "pkg", FullName: "pkg.Foo"}
	block.Append(sig, content)

	data, err := s.TransformContent(block)
	require.NoError(t, err)
	require.Empty(t, data.Attributes)
}

func TestTransformContent_LastFieldListWins(t *testing.T) {
	s := testSession(t)

	makeList := func(arg, desc string) *doctree.Node {
		return doctree.New(doctree.KindFieldList).Append(
			doctree.New(doctree.KindField).Append(
				doctree.New(doctree.KindFieldName).Append(doctree.NewText("param "+arg)),
				doctree.New(doctree.KindFieldBody).Append(
					doctree.New(doctree.KindParagraph).Append(doctree.NewText(desc)),
				),
			),
		)
	}
	content := doctree.New(doctree.KindContent).Append(
		makeList("x", "first"),
		makeList("y", "second"),
	)
	sig := &doctree.Node{Kind: doctree.KindSignature, Module: "pkg", FullName: "pkg.f", IDs: []string{"pkg.f"}}
	block := &doctree.Node{Kind: doctree.KindBlock, Domain: "py", Module: "pkg", FullName: "pkg.f"}
	block.Append(sig, content)

	data, err := s.TransformContent(block)
	require.NoError(t, err)
	require.Len(t, data.Syntax.Parameters, 1)
	require.Equal(t, "y", data.Syntax.Parameters[0].ID)
}
