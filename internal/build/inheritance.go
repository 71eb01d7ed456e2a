package build

import "git.home.luguber.info/inful/docfxgen/internal/model"

// resolveInheritance flattens the full ancestor chain of a class-like object
// into the record's inheritance list, depth-first over declared bases.
//
// A per-call visited set keyed by fully qualified name guards against base
// cycles and collapses repeated diamond ancestors to their first occurrence.
func resolveInheritance(rec *model.Record, obj ObjectRef) {
	cls, ok := obj.(ClassRef)
	if !ok || cls == nil {
		return
	}
	// The presence of the key distinguishes "no bases" from "not a class".
	if rec.Inheritance == nil {
		rec.Inheritance = []string{}
	}
	visited := make(map[string]bool)
	var walk func(ClassRef)
	walk = func(c ClassRef) {
		for _, base := range c.Bases() {
			name := base.FullName()
			if visited[name] {
				continue
			}
			visited[name] = true
			rec.Inheritance = append(rec.Inheritance, name)
			if bc, ok := base.(ClassRef); ok {
				walk(bc)
			}
		}
	}
	walk(cls)
}
