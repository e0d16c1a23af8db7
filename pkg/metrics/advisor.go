package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the advisor Recommend HTTP handler
	AdvisorRecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "advisor_recommend_latency_seconds",
		Help:    "Latency of the skin advisor recommendations handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendations served
	AdvisorRecommendRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "advisor_recommend_requests_total",
		Help: "Total number of advisor recommend requests",
	})

	// Analysis ingestions (vision score uploads)
	AnalysisIngestTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "advisor_analysis_ingest_total",
		Help: "Total number of skin analysis records ingested",
	})
)

func Init() {
	prometheus.MustRegister(
		AdvisorRecommendLatency,
		AdvisorRecommendRequests,
		AnalysisIngestTotal,
	)
}
