// Package metrics counts import and cache outcomes with Prometheus
// collectors on a private registry.
package metrics

import (
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.trai.ch/onto/internal/core/domain"
	"go.trai.ch/onto/internal/core/ports"
)

var _ ports.Metrics = (*Recorder)(nil)

// Recorder implements ports.Metrics.
type Recorder struct {
	registry *prometheus.Registry

	imports        *prometheus.CounterVec
	importDuration prometheus.Histogram
	cacheLookups   *prometheus.CounterVec
	cacheWrites    *prometheus.CounterVec
}

// New creates a Recorder with its own registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		imports: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "onto_imports_total",
			Help: "Finished import jobs by outcome",
		}, []string{"outcome"}),
		importDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "onto_import_duration_seconds",
			Help:    "Wall time of one import job",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 120},
		}),
		cacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "onto_cache_lookups_total",
			Help: "Graph cache reads by result",
		}, []string{"result"}),
		cacheWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "onto_cache_writes_total",
			Help: "Graph cache writes by result",
		}, []string{"result"}),
	}
}

// Registry exposes the collectors, for tests and exporters.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveImport records one finished job.
func (r *Recorder) ObserveImport(status domain.JobStatus, d time.Duration) {
	r.imports.WithLabelValues(string(status)).Inc()
	r.importDuration.Observe(d.Seconds())
}

// CacheLookup records one cache read.
func (r *Recorder) CacheLookup(result string) {
	r.cacheLookups.WithLabelValues(result).Inc()
}

// CacheWrite records one cache write.
func (r *Recorder) CacheWrite(result string) {
	r.cacheWrites.WithLabelValues(result).Inc()
}

// Flush writes the registry in the text exposition format to path, for the
// node exporter textfile collector. An empty path is a no-op.
func (r *Recorder) Flush(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return domain.Fail(domain.ErrMetricsWriteFailed, err, "create textfile directory", "path", path)
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return domain.Fail(domain.ErrMetricsWriteFailed, err, "write textfile", "path", path)
	}
	return nil
}
