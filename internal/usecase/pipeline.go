package usecase

import (
	"context"
	"fmt"
	"time"

	"InsiderPull/internal/domain/models"
	drepo "InsiderPull/internal/domain/repository"
	"InsiderPull/pkg/logger"
	"InsiderPull/pkg/util"

	"github.com/google/uuid"
)

// ReportPipeline runs collect -> aggregate -> build -> publish once.
type ReportPipeline struct {
	collector *Collector
	builder   *ReportBuilder
	primary   drepo.SnapshotSink
	secondary []drepo.SnapshotSink
	metrics   drepo.Metrics
	log       *logger.Logger
	now       func() time.Time
}

// NewReportPipeline wires the stages. A failing primary sink fails the run;
// secondary sinks are best effort.
func NewReportPipeline(
	collector *Collector,
	builder *ReportBuilder,
	primary drepo.SnapshotSink,
	secondary []drepo.SnapshotSink,
	metrics drepo.Metrics,
	log *logger.Logger,
) *ReportPipeline {
	return &ReportPipeline{
		collector: collector,
		builder:   builder,
		primary:   primary,
		secondary: secondary,
		metrics:   metrics,
		log:       log,
		now:       time.Now,
	}
}

func (p *ReportPipeline) Run(ctx context.Context) (*models.Snapshot, error) {
	runID := uuid.NewString()
	log := p.log.With(logger.String("run_id", runID))
	start := time.Now()

	coll, err := p.collector.Collect(ctx)
	if err != nil {
		return nil, err
	}

	agg := Aggregate(coll.Records)
	report := p.builder.Build(coll.Records, agg)
	p.metrics.RecordSummary(report.Summary)

	snap := &models.Snapshot{
		RunID:       runID,
		CollectedAt: p.now(),
		Report:      report,
		Records:     coll.Records,
		Collection:  coll,
	}

	if err := p.save(ctx, p.primary, snap); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	for _, s := range p.secondary {
		if err := p.save(ctx, s, snap); err != nil {
			log.Error("snapshot sink failed", logger.String("sink", s.Name()), logger.Error(err))
		}
	}

	for _, f := range coll.Failures() {
		log.Warn("entity excluded after query failure",
			logger.String("stock_code", f.StockCode),
			logger.String("name", f.Name),
			logger.Error(f.Err),
		)
	}
	log.Info("insider report published",
		logger.Int("trades", report.Summary.TotalTrades),
		logger.Int64("net_amount", report.Summary.NetAmount),
		logger.String("net", util.FormatEok(report.Summary.NetAmount)),
		logger.String("sentiment", string(report.Summary.Sentiment)),
		logger.Int("failed_entities", coll.Failed()),
		logger.Duration("elapsed_ms", time.Since(start)),
	)
	return snap, nil
}

func (p *ReportPipeline) save(ctx context.Context, s drepo.SnapshotSink, snap *models.Snapshot) error {
	start := time.Now()
	err := s.Save(ctx, snap)
	p.metrics.RecordLatency("sink_"+s.Name(), time.Since(start).Seconds())
	if err != nil {
		p.metrics.RecordError("sink_" + s.Name())
	}
	return err
}
