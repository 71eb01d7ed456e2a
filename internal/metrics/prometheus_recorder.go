package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry      *prom.Registry
	symbols       *prom.CounterVec
	dropped       *prom.CounterVec
	modules       prom.Counter
	buildDuration prom.Histogram
}

// NewPrometheusRecorder constructs and registers the pipeline metrics on the
// given registry (a fresh one when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{registry: reg}
	pr.symbols = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "docfxgen",
		Name:      "symbols_processed_total",
		Help:      "Discovery events processed, by raw symbol kind",
	}, []string{"kind"})
	pr.dropped = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "docfxgen",
		Name:      "symbols_dropped_total",
		Help:      "Discovery events dropped, by reason",
	}, []string{"reason"})
	pr.modules = prom.NewCounter(prom.CounterOpts{
		Namespace: "docfxgen",
		Name:      "modules_written_total",
		Help:      "Module documents written to the output directory",
	})
	pr.buildDuration = prom.NewHistogram(prom.HistogramOpts{
		Namespace: "docfxgen",
		Name:      "build_duration_seconds",
		Help:      "Total build duration",
		Buckets:   prom.DefBuckets,
	})
	reg.MustRegister(pr.symbols, pr.dropped, pr.modules, pr.buildDuration)
	return pr
}

func (r *PrometheusRecorder) IncSymbolProcessed(kind string) {
	r.symbols.WithLabelValues(kind).Inc()
}

func (r *PrometheusRecorder) IncSymbolDropped(reason string) {
	r.dropped.WithLabelValues(reason).Inc()
}

func (r *PrometheusRecorder) IncModuleWritten() { r.modules.Inc() }

func (r *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	r.buildDuration.Observe(d.Seconds())
}

// Handler exposes the registry for scraping.
func (r *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
