package model

// Registry is the sole mutable shared state of a build: an append-ordered map
// from module name to the records belonging to that module. Insertion order
// within a module's list is load-bearing for the hierarchy linker's
// first-match semantics. The registry lives for exactly one build session and
// is drained by the serializer at the end.
type Registry struct {
	order   []string
	modules map[string][]*Record
}

func NewRegistry() *Registry {
	return &Registry{modules: make(map[string][]*Record)}
}

// Append adds a record to the given module's list, registering the module on
// first use.
func (r *Registry) Append(module string, rec *Record) {
	if _, ok := r.modules[module]; !ok {
		r.order = append(r.order, module)
	}
	r.modules[module] = append(r.modules[module], rec)
}

// Module returns the live record slice for a module. Callers may mutate the
// records in place (linker, inheritance resolver) but must not reorder them.
func (r *Registry) Module(module string) []*Record {
	return r.modules[module]
}

// Has reports whether the module has been registered.
func (r *Registry) Has(module string) bool {
	_, ok := r.modules[module]
	return ok
}

// Modules returns module names in first-insertion order.
func (r *Registry) Modules() []string {
	return append([]string(nil), r.order...)
}

// Len returns the total record count across all modules.
func (r *Registry) Len() int {
	n := 0
	for _, recs := range r.modules {
		n += len(recs)
	}
	return n
}
