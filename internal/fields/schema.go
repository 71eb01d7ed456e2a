// Package fields parses semi-structured docstring field lists (":param x:",
// ":returns:", ":raises:") into the normalized syntax schema.
package fields

// Descriptor describes one logical field group: how entries under its labels
// are collected and whether they can carry type information.
type Descriptor struct {
	// Name is the canonical group name (parameter, variable, returnvalue,
	// returntype, exceptions).
	Name string
	// HasArg reports whether the field label must carry an argument
	// (":param x:" vs ":returns:"). A presence mismatch demotes the field to
	// a passthrough entry.
	HasArg bool
	// Grouped fields accumulate all their occurrences into one shared entry.
	Grouped bool
	// Typed fields additionally support the combined ":param TypeName x:"
	// label syntax.
	Typed bool
}

// Canonical group names.
const (
	GroupParameter   = "parameter"
	GroupVariable    = "variable"
	GroupReturnValue = "returnvalue"
	GroupReturnType  = "returntype"
	GroupExceptions  = "exceptions"
)

// schemaEntry associates a label with its descriptor; type-carrying labels
// (":type x:", ":vartype x:") populate the type table instead of producing a
// content entry.
type schemaEntry struct {
	desc        *Descriptor
	isTypeField bool
}

// Typemap maps recognized field labels to their behavior.
type Typemap map[string]schemaEntry

var (
	paramDesc = &Descriptor{Name: GroupParameter, HasArg: true, Grouped: true, Typed: true}
	varDesc   = &Descriptor{Name: GroupVariable, HasArg: true, Grouped: true, Typed: true}
	rvalDesc  = &Descriptor{Name: GroupReturnValue, HasArg: false}
	rtypeDesc = &Descriptor{Name: GroupReturnType, HasArg: false}
	raiseDesc = &Descriptor{Name: GroupExceptions, HasArg: true, Grouped: true}
)

// DefaultTypemap returns the label schema for Python-style docstring fields.
func DefaultTypemap() Typemap {
	tm := Typemap{}
	add := func(desc *Descriptor, labels ...string) {
		for _, l := range labels {
			tm[l] = schemaEntry{desc: desc}
		}
	}
	addType := func(desc *Descriptor, labels ...string) {
		for _, l := range labels {
			tm[l] = schemaEntry{desc: desc, isTypeField: true}
		}
	}
	add(paramDesc, "param", "parameter", "arg", "argument", "keyword", "kwarg", "kwparam")
	addType(paramDesc, "type", "paramtype", "kwtype")
	add(varDesc, "var", "ivar", "cvar")
	addType(varDesc, "vartype")
	add(rvalDesc, "returns", "return")
	add(rtypeDesc, "rtype")
	add(raiseDesc, "raises", "raise", "except", "exception")
	return tm
}
