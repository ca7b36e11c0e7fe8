package batch

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts batch outcomes. A nil *Metrics records nothing.
type Metrics struct {
	solutions  *prometheus.CounterVec
	iterations *prometheus.HistogramVec
}

// NewMetrics creates the batch metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		solutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "geodesic",
			Name:      "solutions_total",
			Help:      "The total number of solved problems by outcome",
		}, []string{"problem", "outcome"}),
		iterations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "geodesic",
			Name:      "iterations",
			Help:      "The number of fixed point iterations per problem",
			Buckets:   []float64{1, 2, 3, 4, 5, 8, 13, 21, 50, 200},
		}, []string{"problem"}),
	}
	reg.MustRegister(m.solutions, m.iterations)
	return m
}

func (m *Metrics) observe(problem, outcome string, iterations int) {
	if m == nil {
		return
	}
	m.solutions.WithLabelValues(problem, outcome).Inc()
	if iterations > 0 {
		m.iterations.WithLabelValues(problem).Observe(float64(iterations))
	}
}
