package build

import "git.home.luguber.info/inful/docfxgen/internal/model"

// linkChildren scans the record's module list in insertion order and appends
// the record's uid to the first matching parent's children list. First match
// wins: a new record is inserted under at most one parent even when several
// candidates exist. No match is not an error; the module record itself and
// uncovered kinds legitimately stay parentless.
func linkChildren(reg *model.Registry, rec *model.Record) {
	for _, candidate := range reg.Module(rec.Module) {
		switch {
		// Methods and attributes attach to their owning class.
		case (rec.Kind == string(KindMethod) || rec.Kind == string(KindAttribute)) &&
			candidate.Kind == string(KindClass) && candidate.UID == rec.Class:
		// Free functions attach to the synthetic Global holder.
		case rec.Kind == string(KindFunction) &&
			candidate.Kind == string(KindClass) && candidate.Name == rec.Module+".Global":
		// Classes and exceptions attach to their module.
		case (rec.Kind == string(KindClass) || rec.Kind == string(KindException)) &&
			candidate.Kind == string(KindModule) && candidate.Module == rec.Module:
		default:
			continue
		}
		candidate.Children = append(candidate.Children, rec.UID)
		return
	}
}
