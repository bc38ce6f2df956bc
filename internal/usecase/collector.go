package usecase

import (
	"context"
	"fmt"
	"time"

	"InsiderPull/internal/domain/models"
	drepo "InsiderPull/internal/domain/repository"
	"InsiderPull/pkg/logger"
	"InsiderPull/pkg/util"
)

const progressEvery = 10

// Collector queries the disclosure source for every registry entity and
// returns the normalized records that fall inside the window.
type Collector struct {
	registry   *models.Registry
	directory  drepo.CorpDirectory
	source     drepo.DisclosureSource
	prices     drepo.PriceSource
	pacer      drepo.Pacer
	metrics    drepo.Metrics
	log        *logger.Logger
	windowDays int
	now        func() time.Time
}

func NewCollector(
	registry *models.Registry,
	directory drepo.CorpDirectory,
	source drepo.DisclosureSource,
	prices drepo.PriceSource,
	pacer drepo.Pacer,
	metrics drepo.Metrics,
	log *logger.Logger,
	windowDays int,
) *Collector {
	return &Collector{
		registry:   registry,
		directory:  directory,
		source:     source,
		prices:     prices,
		pacer:      pacer,
		metrics:    metrics,
		log:        log,
		windowDays: windowDays,
		now:        time.Now,
	}
}

// Collect runs one pass over the registry. Only a failure to load the corp
// code directory (or cancellation) aborts the pass; per-entity query errors
// are recorded in the returned outcomes.
func (c *Collector) Collect(ctx context.Context) (*models.Collection, error) {
	start := time.Now()
	codes, err := c.directory.Load(ctx)
	c.metrics.RecordLatency("corp_directory", time.Since(start).Seconds())
	if err != nil {
		c.metrics.RecordError("corp_directory")
		return nil, fmt.Errorf("load corp codes: %w", err)
	}

	out := &models.Collection{
		WindowStart: util.WindowStart(c.now(), c.windowDays),
		Records:     make([]models.Record, 0),
		Outcomes:    make([]models.EntityOutcome, 0, len(c.registry.Entities)),
	}
	total := len(c.registry.Entities)
	c.log.Info("collecting insider disclosures",
		logger.Int("entities", total),
		logger.String("window_start", out.WindowStart),
	)

	for i, e := range c.registry.Entities {
		if i > 0 && i%progressEvery == 0 {
			c.log.Info("collection progress", logger.Int("done", i), logger.Int("total", total))
		}

		oc, recs, err := c.collectEntity(ctx, e, codes, out.WindowStart)
		if err != nil {
			return nil, err
		}
		out.Outcomes = append(out.Outcomes, oc)
		out.Records = append(out.Records, recs...)
	}

	c.metrics.RecordRecords("fetched", out.Fetched())
	c.metrics.RecordRecords("retained", len(out.Records))
	c.log.Info("collection finished",
		logger.Int("records", len(out.Records)),
		logger.Int("fetched", out.Fetched()),
		logger.Int("succeeded", out.Succeeded()),
		logger.Int("skipped", out.Skipped()),
		logger.Int("failed", out.Failed()),
	)
	return out, nil
}

// collectEntity returns a non-nil error only when ctx is done.
func (c *Collector) collectEntity(ctx context.Context, e models.Entity, codes map[string]string, windowStart string) (models.EntityOutcome, []models.Record, error) {
	oc := models.EntityOutcome{StockCode: e.StockCode, Name: e.Name}

	corp, ok := codes[e.StockCode]
	if !ok {
		oc.Status = models.OutcomeSkipped
		c.metrics.RecordQuery(string(models.OutcomeSkipped))
		c.log.Info("no corp code for entity, skipping",
			logger.String("stock_code", e.StockCode),
			logger.String("name", e.Name),
		)
		return oc, nil, nil
	}
	oc.CorpCode = corp

	if err := c.pacer.Wait(ctx); err != nil {
		return oc, nil, fmt.Errorf("collection interrupted: %w", err)
	}

	start := time.Now()
	raws, err := c.source.MajorStock(ctx, corp)
	c.metrics.RecordLatency("majorstock", time.Since(start).Seconds())
	if err != nil {
		if ctx.Err() != nil {
			return oc, nil, fmt.Errorf("collection interrupted: %w", ctx.Err())
		}
		oc.Status = models.OutcomeFailed
		oc.Err = err
		c.metrics.RecordQuery(string(models.OutcomeFailed))
		c.metrics.RecordError("majorstock")
		c.log.Warn("disclosure query failed",
			logger.String("stock_code", e.StockCode),
			logger.String("corp_code", corp),
			logger.Error(err),
		)
		return oc, nil, nil
	}

	price := c.prices.PriceOf(e.StockCode)
	recs := make([]models.Record, 0, len(raws))
	for _, raw := range raws {
		r := NormalizeDisclosure(raw, e, corp, price)
		if util.InWindow(r.ReportDate, windowStart) {
			recs = append(recs, r)
		}
	}

	oc.Status = models.OutcomeOK
	oc.Fetched = len(raws)
	oc.Retained = len(recs)
	c.metrics.RecordQuery(string(models.OutcomeOK))
	c.log.Debug("entity collected",
		logger.String("stock_code", e.StockCode),
		logger.Int("fetched", oc.Fetched),
		logger.Int("retained", oc.Retained),
	)
	return oc, recs, nil
}
