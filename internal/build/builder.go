package build

import (
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/docfxgen/internal/logfields"
	"git.home.luguber.info/inful/docfxgen/internal/model"
)

// splitOwner computes the owning class and module for a symbol by kind.
// ok is false for kinds outside the discovery taxonomy.
func splitOwner(kind Kind, name string) (class, module string, ok bool) {
	allButLast := func(n int) string {
		parts := strings.Split(name, ".")
		if len(parts) <= n {
			return ""
		}
		return strings.Join(parts[:len(parts)-n], ".")
	}
	switch kind {
	case KindFunction, KindException, KindClass:
		return "", allButLast(1), true
	case KindMethod, KindAttribute:
		return allButLast(1), allButLast(2), true
	case KindModule:
		return "", name, true
	default:
		return "", "", false
	}
}

// buildRecord constructs the normalized record for a discovery event.
func (s *Session) buildRecord(class, module string, ev Event) *model.Record {
	mapped, known := model.MappedType(string(ev.Kind))
	if !known {
		slog.Warn("No type mapping for symbol kind", logfields.Kind(string(ev.Kind)), logfields.Symbol(ev.Name))
	}

	shortName := lastSegment(ev.Name)
	rec := &model.Record{
		UID:      ev.Name,
		Kind:     string(ev.Kind),
		Type:     mapped,
		Name:     shortName,
		FullName: ev.Name,
		Module:   module,
		Summary:  strings.Join(ev.Lines, "\n"),
	}
	if class != "" {
		rec.Class = class
	}
	if ev.Kind == KindClass || ev.Kind == KindModule {
		rec.Children = []string{}
	}
	if ev.Object != nil {
		if path, line, ok := ev.Object.Source(); ok {
			rel := s.relativeSourcePath(path)
			rec.Source = &model.Source{
				Remote: model.Remote{
					Path:   rel,
					Branch: s.vcs.Branch,
					Repo:   s.vcs.Repo,
				},
				ID:        shortName,
				Path:      rel,
				StartLine: line,
			}
		}
	}
	return rec
}

// relativeSourcePath rewrites an absolute source path relative to the
// configured source root.
func (s *Session) relativeSourcePath(path string) string {
	root := s.cfg.SourceRoot
	if root == "" {
		return path
	}
	rel := strings.TrimPrefix(path, root)
	return strings.TrimPrefix(rel, "/")
}

// globalHolderSummary is the fixed summary of the synthetic holder class.
const globalHolderSummary = "Proxy object to hold module level functions"

// globalHolder manufactures the synthetic class record that owns a module's
// free functions. It is appended right after the module's own record and is
// never merged with a real class of the same name.
func globalHolder(module, fullName string) *model.Record {
	return &model.Record{
		UID:      module + ".Global",
		Kind:     string(KindClass),
		Type:     model.TypeClass,
		Name:     module + ".Global",
		FullName: fullName,
		Module:   module,
		Summary:  globalHolderSummary,
		Langs:    []string{"python"},
		Children: []string{},
	}
}

func lastSegment(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}
