package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Creation provenance labels.
const (
	SourceDirect = "direct"
	SourceIMDB   = "imdb"
)

// Recorder is the counter contract the movie service depends on, so tests
// can plug in a fake without a Prometheus registry.
type Recorder interface {
	MovieCreated(source string)
}

// PrometheusRecorder implements Recorder with a process-wide CounterVec.
// Prometheus counters are safe for concurrent increment from in-flight
// requests; the value is never reset for the process lifetime.
type PrometheusRecorder struct {
	moviesCreated *prometheus.CounterVec
}

// NewPrometheusRecorder creates the recorder and registers its collectors
// with the given registry.
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	r := &PrometheusRecorder{
		moviesCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "movies_created_total",
				Help: "Total number of movies created, labeled by creation source.",
			},
			[]string{"source"},
		),
	}

	reg.MustRegister(r.moviesCreated)

	// Pre-register both label values so the scrape shows zeroed series
	// before the first creation.
	r.moviesCreated.WithLabelValues(SourceDirect)
	r.moviesCreated.WithLabelValues(SourceIMDB)

	return r
}

func (r *PrometheusRecorder) MovieCreated(source string) {
	r.moviesCreated.WithLabelValues(source).Inc()
}
