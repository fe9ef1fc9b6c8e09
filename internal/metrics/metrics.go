package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"profitPlan/internal/lp"
	"profitPlan/internal/production"
)

var durationBuckets = []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}

// Metrics — набор метрик одного запуска в собственном реестре.
type Metrics struct {
	Registry *prometheus.Registry

	solves      *prometheus.CounterVec
	solveTime   *prometheus.HistogramVec
	objective   prometheus.Gauge
	utilization *prometheus.GaugeVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "profitplan_solves_total",
			Help: "Number of LP solves by backend and solver status",
		}, []string{"backend", "status"}),
		solveTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "profitplan_solve_duration_seconds",
			Help:    "Wall time of the delegated LP solve",
			Buckets: durationBuckets,
		}, []string{"backend"}),
		objective: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "profitplan_total_profit",
			Help: "Objective value of the last optimal plan",
		}),
		utilization: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "profitplan_machine_utilization_ratio",
			Help: "Used time over available time per machine in the last optimal plan",
		}, []string{"machine"}),
	}
	m.Registry.MustRegister(m.solves, m.solveTime, m.objective, m.utilization)
	return m
}

func (m *Metrics) ObserveSolve(backend string, status lp.Status, d time.Duration, objective float64) {
	m.solves.WithLabelValues(backend, status.String()).Inc()
	m.solveTime.WithLabelValues(backend).Observe(d.Seconds())
	if status == lp.Optimal {
		m.objective.Set(objective)
	}
}

func (m *Metrics) ObserveUsage(usage []production.Usage) {
	for _, u := range usage {
		m.utilization.WithLabelValues(u.Machine).Set(u.Utilization)
	}
}

// WriteTextfile сохраняет метрики в формате textfile-коллектора node_exporter.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
