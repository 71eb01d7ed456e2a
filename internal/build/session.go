package build

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docfxgen/internal/config"
	"git.home.luguber.info/inful/docfxgen/internal/fields"
	"git.home.luguber.info/inful/docfxgen/internal/gitmeta"
	"git.home.luguber.info/inful/docfxgen/internal/logfields"
	"git.home.luguber.info/inful/docfxgen/internal/metrics"
	"git.home.luguber.info/inful/docfxgen/internal/model"
	"git.home.luguber.info/inful/docfxgen/internal/serialize"
)

// Session owns the mutable state of one documentation build: the symbol
// registry, the per-run version-control annotation, and the field schema.
// It is constructed at build start, fed one event per discovered symbol in
// pipeline order, and drained by Finish. Sessions are single-threaded.
type Session struct {
	cfg      *config.Config
	registry *model.Registry
	typemap  fields.Typemap
	vcs      gitmeta.Info
	vcsSet   bool
	recorder metrics.Recorder
	id       string
	started  time.Time
}

// Option configures a session.
type Option func(*Session)

// WithRecorder injects a metrics recorder (noop by default).
func WithRecorder(r metrics.Recorder) Option {
	return func(s *Session) { s.recorder = r }
}

// WithVCSInfo overrides version-control resolution with fixed metadata.
func WithVCSInfo(info gitmeta.Info) Option {
	return func(s *Session) { s.vcs, s.vcsSet = info, true }
}

// NewSession validates the configuration and prepares the build state.
// Configuration errors are fatal and abort the run before any processing;
// a failed version-control lookup only degrades the source annotations.
func NewSession(cfg *config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		cfg:      cfg,
		registry: model.NewRegistry(),
		typemap:  fields.DefaultTypemap(),
		recorder: metrics.NoopRecorder{},
		id:       uuid.NewString(),
		started:  time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if !s.vcsSet {
		info, err := gitmeta.Resolve(cfg.RepoPath)
		if err != nil {
			slog.Warn("Version-control metadata unavailable", logfields.Path(cfg.RepoPath), logfields.Error(err))
		} else {
			s.vcs = info
		}
	}
	slog.Info("Build session started", logfields.BuildID(s.id), logfields.Path(cfg.Output), logfields.Format(string(cfg.Format)))
	return s, nil
}

// Registry exposes the live registry (tests and the serializer use it).
func (s *Session) Registry() *model.Registry { return s.registry }

// ProcessSymbol handles one discovery event: it builds the record, inserts it
// into the registry, links it under its parent, and resolves inheritance.
// All per-symbol failures are recoverable; the event is skipped with a
// diagnostic and processing continues.
func (s *Session) ProcessSymbol(ev Event) error {
	class, module, ok := splitOwner(ev.Kind, ev.Name)
	if !ok {
		slog.Warn("Unknown symbol kind", logfields.Kind(string(ev.Kind)), logfields.Symbol(ev.Name))
		s.recorder.IncSymbolDropped(metrics.ReasonUnknownKind)
		return nil
	}
	if module == "" {
		slog.Warn("Symbol has no resolvable module", logfields.Kind(string(ev.Kind)), logfields.Symbol(ev.Name))
		s.recorder.IncSymbolDropped(metrics.ReasonUnknownKind)
		return nil
	}

	rec := s.buildRecord(class, module, ev)

	var content *ContentData
	if ev.Content != nil {
		cd, err := s.TransformContent(ev.Content)
		if err != nil {
			if errors.Is(err, ErrDomainMismatch) {
				slog.Info("Skipping foreign domain object", logfields.Symbol(ev.Name), logfields.Error(err))
				s.recorder.IncSymbolDropped(metrics.ReasonDomainSkip)
				return nil
			}
			slog.Warn("Docstring transform failed", logfields.Symbol(ev.Name), logfields.Error(err))
			s.recorder.IncSymbolDropped(metrics.ReasonBuildFailure)
			return nil
		}
		content = cd
	}

	// Content data is keyed by the transform uid; it only enriches the record
	// it was extracted for. A mismatch (signature carries a foreign id) leaves
	// the record bare, while captured attributes still land under their own
	// uids below.
	if content != nil && content.UID == rec.UID {
		if rec.Summary == "" {
			rec.Summary = content.Summary
		}
		if !content.Syntax.IsEmpty() {
			rec.Syntax = content.Syntax
		}
		rec.SeeAlso = content.SeeAlso
		rec.Example = content.Example
	}

	s.registry.Append(module, rec)
	if ev.Kind == KindModule {
		s.registry.Append(module, globalHolder(module, ev.Name))
	}
	linkChildren(s.registry, rec)
	resolveInheritance(rec, ev.Object)

	if content != nil {
		for _, attr := range content.Attributes {
			if attr.Module == "" {
				attr.Module = module
			}
			s.registry.Append(attr.Module, attr)
			linkChildren(s.registry, attr)
		}
	}

	s.recorder.IncSymbolProcessed(string(ev.Kind))
	return nil
}

// Finish drains the registry into the output directory and records the build
// duration.
func (s *Session) Finish() error {
	writer := serialize.NewWriter(s.cfg.Output, s.cfg.Format, s.recorder)
	if err := writer.Write(s.registry); err != nil {
		return fmt.Errorf("serialize build output: %w", err)
	}
	d := time.Since(s.started)
	s.recorder.ObserveBuildDuration(d)
	slog.Info("Build session finished", logfields.BuildID(s.id), logfields.Count(s.registry.Len()), slog.Duration("elapsed", d))
	return nil
}
