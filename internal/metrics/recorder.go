package metrics

import "time"

// Drop reason labels for the dropped-symbols counter.
const (
	ReasonUnknownKind  = "unknown_kind"
	ReasonDomainSkip   = "domain_mismatch"
	ReasonBuildFailure = "build_failure"
)

// Recorder defines observability hooks for the build pipeline. Implementations
// may forward to Prometheus; the noop default allows optional injection.
type Recorder interface {
	IncSymbolProcessed(kind string)
	IncSymbolDropped(reason string)
	IncModuleWritten()
	ObserveBuildDuration(d time.Duration)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncSymbolProcessed(string)          {}
func (NoopRecorder) IncSymbolDropped(string)            {}
func (NoopRecorder) IncModuleWritten()                  {}
func (NoopRecorder) ObserveBuildDuration(time.Duration) {}
