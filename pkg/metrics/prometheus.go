package metrics

import (
	"fmt"

	"InsiderPull/internal/domain/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	queriesTotal *prometheus.CounterVec
	recordsTotal *prometheus.CounterVec
	errorsTotal  *prometheus.CounterVec
	latency      *prometheus.HistogramVec
	flow         *prometheus.GaugeVec
	trades       prometheus.Gauge
	lastRun      prometheus.Gauge
}

// New creates a recorder whose collectors are registered on reg.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		queriesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insiderpull_entity_queries_total",
				Help: "Registry entities processed, by outcome",
			},
			[]string{"outcome"},
		),
		recordsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insiderpull_records_total",
				Help: "Disclosure records seen, by stage",
			},
			[]string{"stage"},
		),
		errorsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insiderpull_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		latency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "insiderpull_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		flow: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "insiderpull_report_amount_krw",
				Help: "Summary amounts of the last report",
			},
			[]string{"side"},
		),
		trades: f.NewGauge(prometheus.GaugeOpts{
			Name: "insiderpull_report_trades",
			Help: "Trade count of the last report",
		}),
		lastRun: f.NewGauge(prometheus.GaugeOpts{
			Name: "insiderpull_last_report_timestamp_seconds",
			Help: "Unix time the last report summary was recorded",
		}),
	}
}

// RecordQuery counts one entity outcome (ok, skipped, failed).
func (r *Recorder) RecordQuery(outcome string) {
	r.queriesTotal.WithLabelValues(outcome).Inc()
}

func (r *Recorder) RecordRecords(stage string, n int) {
	r.recordsTotal.WithLabelValues(stage).Add(float64(n))
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

func (r *Recorder) RecordSummary(s models.Summary) {
	r.flow.WithLabelValues("buy").Set(float64(s.TotalBuy))
	r.flow.WithLabelValues("sell").Set(float64(s.TotalSell))
	r.flow.WithLabelValues("net").Set(float64(s.NetAmount))
	r.trades.Set(float64(s.TotalTrades))
	r.lastRun.SetToCurrentTime()
}

// Push sends everything in g to a Pushgateway under job. Collection runs are
// short-lived, so they push instead of being scraped.
func Push(url, job string, g prometheus.Gatherer) error {
	if err := push.New(url, job).Gatherer(g).Push(); err != nil {
		return fmt.Errorf("push metrics: %w", err)
	}
	return nil
}
