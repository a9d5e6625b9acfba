package corpus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the generation counters exposed on the metrics endpoint.
type Metrics struct {
	ClassesRendered prometheus.Counter
	RecordsWritten  prometheus.Counter
	Failures        prometheus.Counter
}

// NewMetrics registers the corpus counters on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ClassesRendered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "semverbal",
			Subsystem: "corpus",
			Name:      "classes_rendered_total",
			Help:      "Classes rendered into corpus records.",
		}),
		RecordsWritten: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "semverbal",
			Subsystem: "corpus",
			Name:      "records_written_total",
			Help:      "JSONL records written.",
		}),
		Failures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "semverbal",
			Subsystem: "corpus",
			Name:      "class_failures_total",
			Help:      "Classes skipped because rendering failed.",
		}),
	}
}
