package server

import (
	"context"

	"InsiderPull/internal/domain/models"
	"InsiderPull/internal/usecase"
	applogger "InsiderPull/pkg/logger"
	"InsiderPull/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// PushConfig points a collection run at a Pushgateway. An empty URL disables
// the push.
type PushConfig struct {
	URL      string
	Job      string
	Gatherer prometheus.Gatherer
}

// Runner executes one collection run.
type Runner struct {
	pipeline *usecase.ReportPipeline
	push     PushConfig
	log      *applogger.Logger
}

func NewRunner(pipeline *usecase.ReportPipeline, push PushConfig, log *applogger.Logger) *Runner {
	return &Runner{pipeline: pipeline, push: push, log: log}
}

// Run collects, publishes and then pushes run metrics. A failed push is
// logged and does not fail the run.
func (r *Runner) Run(ctx context.Context) (*models.Snapshot, error) {
	snap, err := r.pipeline.Run(ctx)
	r.pushMetrics()
	return snap, err
}

func (r *Runner) pushMetrics() {
	if r.push.URL == "" || r.push.Gatherer == nil {
		return
	}
	if err := metrics.Push(r.push.URL, r.push.Job, r.push.Gatherer); err != nil {
		r.log.Warn("metrics push failed", applogger.String("url", r.push.URL), applogger.Error(err))
		return
	}
	r.log.Debug("metrics pushed", applogger.String("job", r.push.Job))
}
