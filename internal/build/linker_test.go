package build

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docfxgen/internal/model"
)

func TestLinkChildren_MethodAttachesToOwningClass(t *testing.T) {
	reg := model.NewRegistry()
	foo := &model.Record{UID: "pkg.Foo", Kind: "class", Module: "pkg", Children: []string{}}
	bar := &model.Record{UID: "pkg.Bar", Kind: "class", Module: "pkg", Children: []string{}}
	reg.Append("pkg", foo)
	reg.Append("pkg", bar)

	method := &model.Record{UID: "pkg.Bar.run", Kind: "method", Module: "pkg", Class: "pkg.Bar"}
	reg.Append("pkg", method)
	linkChildren(reg, method)

	require.Empty(t, foo.Children)
	require.Equal(t, []string{"pkg.Bar.run"}, bar.Children)
}

func TestLinkChildren_FirstMatchOnly(t *testing.T) {
	reg := model.NewRegistry()
	mod := &model.Record{UID: "pkg", Kind: "module", Module: "pkg", Children: []string{}}
	// Two module records with the same module name: only the first in
	// insertion order receives the child.
	dup := &model.Record{UID: "pkg(dup)", Kind: "module", Module: "pkg", Children: []string{}}
	reg.Append("pkg", mod)
	reg.Append("pkg", dup)

	cls := &model.Record{UID: "pkg.Foo", Kind: "class", Module: "pkg", Children: []string{}}
	reg.Append("pkg", cls)
	linkChildren(reg, cls)

	require.Equal(t, []string{"pkg.Foo"}, mod.Children)
	require.Empty(t, dup.Children)
}

func TestLinkChildren_FunctionAttachesToGlobalHolder(t *testing.T) {
	reg := model.NewRegistry()
	mod := &model.Record{UID: "pkg", Kind: "module", Module: "pkg", Children: []string{}}
	holder := globalHolder("pkg", "pkg")
	reg.Append("pkg", mod)
	reg.Append("pkg", holder)

	fn := &model.Record{UID: "pkg.run", Kind: "function", Module: "pkg"}
	reg.Append("pkg", fn)
	linkChildren(reg, fn)

	require.Equal(t, []string{"pkg.run"}, holder.Children)
	require.Empty(t, mod.Children)
}

func TestLinkChildren_ExceptionAttachesToModule(t *testing.T) {
	reg := model.NewRegistry()
	mod := &model.Record{UID: "pkg", Kind: "module", Module: "pkg", Children: []string{}}
	reg.Append("pkg", mod)

	exc := &model.Record{UID: "pkg.BadInput", Kind: "exception", Module: "pkg"}
	reg.Append("pkg", exc)
	linkChildren(reg, exc)

	require.Equal(t, []string{"pkg.BadInput"}, mod.Children)
}

func TestLinkChildren_NoMatchIsNotAnError(t *testing.T) {
	reg := model.NewRegistry()
	orphan := &model.Record{UID: "pkg.Foo.bar", Kind: "method", Module: "pkg", Class: "pkg.Foo"}
	reg.Append("pkg", orphan)
	linkChildren(reg, orphan)
	// No class record exists yet; the method simply stays parentless.
}
