package model

// Mapped type categories expected by the DocFX schema. Raw symbol kinds are
// normalized through MappedType before serialization.
const (
	TypeNamespace = "Namespace"
	TypeClass     = "Class"
	TypeMethod    = "Method"
	TypeProperty  = "Property"
)

// mappedTypes normalizes raw discovery kinds to DocFX categories. Exceptions
// and attributes have no native category, so they borrow Class and Property.
var mappedTypes = map[string]string{
	"method":    TypeMethod,
	"function":  TypeMethod,
	"module":    TypeNamespace,
	"class":     TypeClass,
	"exception": TypeClass,
	"attribute": TypeProperty,
}

// MappedType returns the DocFX category for a raw discovery kind. Unknown
// kinds map to themselves so downstream tooling can still see them.
func MappedType(kind string) (string, bool) {
	mapped, ok := mappedTypes[kind]
	if !ok {
		return kind, false
	}
	return mapped, true
}

// Remote identifies where a source file lives in version control.
type Remote struct {
	Path   string
	Branch string
	Repo   string
}

// Source locates a symbol in its source tree.
type Source struct {
	Remote    Remote
	ID        string
	Path      string
	StartLine int
}

// Parameter documents one parameter or variable of a callable.
type Parameter struct {
	ID          string
	Type        []string
	Description string
}

// Exception documents one raised error type.
type Exception struct {
	Type        string
	Description string
}

// Return documents a callable's return contract. Type holds the union
// alternatives after "or"-splitting.
type Return struct {
	Type        []string
	Description string
}

// Syntax holds the normalized field data attached to a record. Empty members
// are elided at serialization; the schema never emits empty containers.
type Syntax struct {
	Content    string
	Parameters []Parameter
	Variables  []Parameter
	Exceptions []Exception
	Return     *Return
}

// IsEmpty reports whether the syntax block carries no data at all.
func (s *Syntax) IsEmpty() bool {
	if s == nil {
		return true
	}
	return s.Content == "" && len(s.Parameters) == 0 && len(s.Variables) == 0 &&
		len(s.Exceptions) == 0 && (s.Return == nil || (len(s.Return.Type) == 0 && s.Return.Description == ""))
}

// Record is the normalized representation of one documented entity. A record
// is created once per discovery event and afterwards mutated in place only by
// the hierarchy linker (Children) and the inheritance resolver (Inheritance).
type Record struct {
	UID      string
	Kind     string // raw discovery kind
	Type     string // mapped DocFX category
	Name     string
	FullName string
	Module   string
	Class    string // owning class, methods/attributes only
	Parent   string // enum members only
	ID       string // enum members only
	Summary  string
	SeeAlso  string
	Example  string
	Langs    []string
	Source   *Source
	Syntax   *Syntax

	// Children is non-nil only on module/class-kind records; a non-nil empty
	// list still serializes, a nil list does not.
	Children []string

	// Inheritance is non-nil only when the underlying object exposes bases.
	Inheritance []string
}

// HasChildren reports whether the record owns a child list (module/class kinds).
func (r *Record) HasChildren() bool { return r.Children != nil }

// ToMap flattens the record into the serialization schema. Keys that are
// conditional in the schema (class, children, inheritance, langs, syntax) are
// present only when the record carries them.
func (r *Record) ToMap() map[string]any {
	m := map[string]any{
		"uid":      r.UID,
		"type":     r.Type,
		"_type":    r.Kind,
		"name":     r.Name,
		"fullName": r.FullName,
		"module":   r.Module,
		"summary":  r.Summary,
	}
	if r.Source != nil {
		m["source"] = map[string]any{
			"remote": map[string]any{
				"path":   r.Source.Remote.Path,
				"branch": r.Source.Remote.Branch,
				"repo":   r.Source.Remote.Repo,
			},
			"id":        r.Source.ID,
			"path":      r.Source.Path,
			"startLine": r.Source.StartLine,
		}
	}
	if r.Class != "" {
		m["class"] = r.Class
	}
	if r.Parent != "" {
		m["parent"] = r.Parent
	}
	if r.ID != "" {
		m["id"] = r.ID
	}
	if r.SeeAlso != "" {
		m["seealso"] = r.SeeAlso
	}
	if r.Example != "" {
		m["example"] = r.Example
	}
	if len(r.Langs) > 0 {
		m["langs"] = append([]string(nil), r.Langs...)
	}
	if r.Children != nil {
		m["children"] = append([]string(nil), r.Children...)
	}
	if r.Inheritance != nil {
		m["inheritance"] = append([]string(nil), r.Inheritance...)
	}
	if !r.Syntax.IsEmpty() {
		m["syntax"] = r.Syntax.toMap()
	}
	return m
}

func (s *Syntax) toMap() map[string]any {
	m := map[string]any{}
	if s.Content != "" {
		m["content"] = s.Content
	}
	if len(s.Parameters) > 0 {
		m["parameters"] = paramMaps(s.Parameters)
	}
	if len(s.Variables) > 0 {
		m["variables"] = paramMaps(s.Variables)
	}
	if len(s.Exceptions) > 0 {
		exs := make([]any, 0, len(s.Exceptions))
		for _, e := range s.Exceptions {
			em := map[string]any{"type": e.Type}
			if e.Description != "" {
				em["description"] = e.Description
			}
			exs = append(exs, em)
		}
		m["exceptions"] = exs
	}
	if s.Return != nil && (len(s.Return.Type) > 0 || s.Return.Description != "") {
		rm := map[string]any{}
		if len(s.Return.Type) > 0 {
			rm["type"] = toAnySlice(s.Return.Type)
		}
		if s.Return.Description != "" {
			rm["description"] = s.Return.Description
		}
		m["return"] = rm
	}
	return m
}

func paramMaps(params []Parameter) []any {
	out := make([]any, 0, len(params))
	for _, p := range params {
		pm := map[string]any{"id": p.ID}
		if len(p.Type) > 0 {
			pm["type"] = toAnySlice(p.Type)
		}
		if p.Description != "" {
			pm["description"] = p.Description
		}
		out = append(out, pm)
	}
	return out
}

func toAnySlice(ss []string) []any {
	out := make([]any, 0, len(ss))
	for _, s := range ss {
		out = append(out, s)
	}
	return out
}
