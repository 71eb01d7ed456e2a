// Package build assembles the documentation object model: it consumes one
// discovery event per documented symbol, normalizes the docstring field data,
// links records into their parents, resolves inheritance chains, and drains
// the resulting registry into per-module documents.
package build

import "git.home.luguber.info/inful/docfxgen/internal/doctree"

// Kind is the raw discovery kind of a documented symbol.
type Kind string

const (
	KindModule    Kind = "module"
	KindClass     Kind = "class"
	KindMethod    Kind = "method"
	KindFunction  Kind = "function"
	KindAttribute Kind = "attribute"
	KindException Kind = "exception"
)

// ObjectRef exposes what the external pipeline knows about the underlying
// source object of a symbol.
type ObjectRef interface {
	FullName() string
	// Source resolves the absolute source file path and starting line.
	Source() (path string, line int, ok bool)
}

// ClassRef is implemented by object references that expose base types. The
// inheritance resolver only runs for objects with this capability.
type ClassRef interface {
	ObjectRef
	Bases() []ObjectRef
}

// Event is one discovery notification from the external build pipeline.
// Contract: module and class events must be emitted before their members'
// events; the hierarchy linker depends on parents already being registered.
type Event struct {
	Kind    Kind
	Name    string // fully qualified name
	Object  ObjectRef
	Options map[string]any
	// Lines are the summary lines extracted by the pipeline.
	Lines []string
	// Content is the pre-parsed docstring block (doctree.KindBlock),
	// optional.
	Content *doctree.Node
}
