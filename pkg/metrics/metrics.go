// Package metrics provides Prometheus metrics for agent dispatch and the knowledge base.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// dispatchTotal counts agent dispatches.
	// Labels:
	//   - target: agent target id
	//   - outcome: "success", "unrecognized_format", "reported_failure", "transport_exception"
	dispatchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_dispatch_total",
			Help: "Total number of agent dispatches by outcome",
		},
		[]string{"target", "outcome"},
	)

	// dispatchDuration records round-trip latency of agent dispatches.
	dispatchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agent_dispatch_duration_seconds",
			Help:    "Duration of agent dispatches in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120},
		},
		[]string{"target"},
	)

	// envelopeShapesTotal counts which envelope layout the normalizer matched.
	envelopeShapesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_envelope_shapes_total",
			Help: "Total number of normalized envelopes by recognized shape",
		},
		[]string{"shape"},
	)

	// staleResultsTotal counts results discarded because a newer request was issued.
	staleResultsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_stale_results_total",
			Help: "Total number of superseded results discarded by the state store",
		},
		[]string{"stream"},
	)

	// knowledgeBaseOpsTotal counts knowledge-base operations.
	// Labels:
	//   - op: "list", "upload", "delete"
	//   - status: "success", "failed", "error"
	knowledgeBaseOpsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "knowledge_base_operations_total",
			Help: "Total number of knowledge-base operations by status",
		},
		[]string{"op", "status"},
	)
)

func init() {
	prometheus.MustRegister(dispatchTotal)
	prometheus.MustRegister(dispatchDuration)
	prometheus.MustRegister(envelopeShapesTotal)
	prometheus.MustRegister(staleResultsTotal)
	prometheus.MustRegister(knowledgeBaseOpsTotal)
}

// RecordDispatch records one finished dispatch
func RecordDispatch(target, outcome string, durationSeconds float64) {
	dispatchTotal.WithLabelValues(target, outcome).Inc()
	dispatchDuration.WithLabelValues(target).Observe(durationSeconds)
}

// RecordEnvelopeShape records the layout a response envelope was recognized as
func RecordEnvelopeShape(shape string) {
	envelopeShapesTotal.WithLabelValues(shape).Inc()
}

// RecordStaleResult records a discarded superseded result
func RecordStaleResult(stream string) {
	staleResultsTotal.WithLabelValues(stream).Inc()
}

// RecordKnowledgeBaseOp records a knowledge-base operation
func RecordKnowledgeBaseOp(op, status string) {
	knowledgeBaseOpsTotal.WithLabelValues(op, status).Inc()
}
