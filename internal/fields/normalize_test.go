package fields

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docfxgen/internal/doctree"
)

func TestSplitTypeUnion(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"int or str", []string{"int", "str"}},
		{"~mypkg.Foo", []string{"mypkg.Foo"}},
		{"@mypkg.Bar\n", []string{"mypkg.Bar"}},
		{"int", []string{"int"}},
		{"~a.B or\n@c.D", []string{"a.B", "c.D"}},
		{"", nil},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, SplitTypeUnion(tc.in), "input %q", tc.in)
	}
}

func TestNormalize_Parameters(t *testing.T) {
	list := fieldList(
		field("param int x", "the x value"),
		field("param y", "the y value"),
	)
	entries, types := Parse(list, DefaultTypemap())
	syntax := Normalize(entries, types, list)

	require.Len(t, syntax.Parameters, 2)
	require.Equal(t, "x", syntax.Parameters[0].ID)
	require.Equal(t, []string{"int"}, syntax.Parameters[0].Type)
	require.Equal(t, "the x value", syntax.Parameters[0].Description)
	require.Equal(t, "y", syntax.Parameters[1].ID)
	require.Empty(t, syntax.Parameters[1].Type)
}

func TestNormalize_ParameterUnionType(t *testing.T) {
	list := fieldList(
		field("param x", "the x value"),
		field("type x", "int or ~mypkg.Foo"),
	)
	entries, types := Parse(list, DefaultTypemap())
	syntax := Normalize(entries, types, list)

	require.Equal(t, []string{"int", "mypkg.Foo"}, syntax.Parameters[0].Type)
}

func TestNormalize_Variables(t *testing.T) {
	list := fieldList(
		field("ivar count", "how many"),
		field("vartype count", "int or str"),
	)
	entries, types := Parse(list, DefaultTypemap())
	syntax := Normalize(entries, types, list)

	require.Len(t, syntax.Variables, 1)
	require.Equal(t, "count", syntax.Variables[0].ID)
	require.Equal(t, []string{"int", "str"}, syntax.Variables[0].Type)
	require.Empty(t, syntax.Parameters)
}

func TestNormalize_ReturnTypeAccumulates(t *testing.T) {
	list := fieldList(
		field("rtype", "str or bytes"),
		field("rtype", "@mypkg.Result"),
	)
	entries, types := Parse(list, DefaultTypemap())
	syntax := Normalize(entries, types, list)

	require.NotNil(t, syntax.Return)
	require.Equal(t, []string{"str", "bytes", "mypkg.Result"}, syntax.Return.Type)
}

func TestNormalize_ReturnValueLastWins(t *testing.T) {
	list := fieldList(
		field("returns", "first description"),
		field("returns", "second description"),
	)
	entries, types := Parse(list, DefaultTypemap())
	syntax := Normalize(entries, types, list)

	require.NotNil(t, syntax.Return)
	require.Equal(t, "second description", syntax.Return.Description)
}

func TestNormalize_Exceptions(t *testing.T) {
	list := fieldList(field("raises ValueError", "on bad value"))
	entries, types := Parse(list, DefaultTypemap())
	syntax := Normalize(entries, types, list)

	require.Len(t, syntax.Exceptions, 1)
	require.Equal(t, "ValueError", syntax.Exceptions[0].Type)
	require.Equal(t, "on bad value", syntax.Exceptions[0].Description)
}

func TestNormalize_RaisesReferenceScan(t *testing.T) {
	// An already-transformed "Raises" field whose paragraph carries a
	// literal-annotated cross-reference contributes a type-only entry.
	ref := &doctree.Node{Kind: doctree.KindReference, Target: "mypkg.BadInput"}
	ref.Append(doctree.New(doctree.KindLiteral).Append(doctree.NewText("BadInput")))
	raises := doctree.New(doctree.KindField).Append(
		doctree.New(doctree.KindFieldName).Append(doctree.NewText("Raises")),
		doctree.New(doctree.KindFieldBody).Append(
			doctree.New(doctree.KindParagraph).Append(ref),
		),
	)
	list := fieldList(field("raises BadInput", "when input is bad"), raises)

	entries, types := Parse(list, DefaultTypemap())
	syntax := Normalize(entries, types, list)

	// Duplicates are kept: one typed entry plus one scanned reference.
	require.Len(t, syntax.Exceptions, 2)
	require.Equal(t, "BadInput", syntax.Exceptions[0].Type)
	require.Equal(t, "mypkg.BadInput", syntax.Exceptions[1].Type)
	require.Empty(t, syntax.Exceptions[1].Description)
}

func TestNormalize_EmptyFieldListYieldsEmptySyntax(t *testing.T) {
	list := fieldList()
	entries, types := Parse(list, DefaultTypemap())
	syntax := Normalize(entries, types, list)
	require.True(t, syntax.IsEmpty())
}

func TestNormalize_PassthroughContributesNothing(t *testing.T) {
	list := fieldList(field("custom note", "free text"))
	entries, types := Parse(list, DefaultTypemap())
	syntax := Normalize(entries, types, list)
	require.True(t, syntax.IsEmpty())
}
