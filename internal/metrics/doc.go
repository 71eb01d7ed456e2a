// Package metrics provides observability hooks for the generation pipeline.
//
// It implements the Null Object pattern: components receive a Recorder
// through dependency injection and default to NoopRecorder, so no nil checks
// are needed anywhere. The Prometheus implementation is activated only when a
// metrics listen address is configured.
package metrics
