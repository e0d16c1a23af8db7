package advisor

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	AdvisorRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_runs_total",
			Help: "Count of completed advisor runs by weather source.",
		},
		[]string{"env_source"},
	)
)

func init() {
	prometheus.MustRegister(AdvisorRunsTotal)
}
