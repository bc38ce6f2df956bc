package usecase

import (
	"context"
	"errors"
	"sync"

	"InsiderPull/internal/domain/models"
)

type fakeDirectory struct {
	codes map[string]string
	err   error
}

func (f *fakeDirectory) Load(context.Context) (map[string]string, error) {
	return f.codes, f.err
}

type fakeSource struct {
	mu      sync.Mutex
	byCorp  map[string][]models.RawDisclosure
	errs    map[string]error
	queried []string
}

func (f *fakeSource) MajorStock(_ context.Context, corpCode string) ([]models.RawDisclosure, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queried = append(f.queried, corpCode)
	if err := f.errs[corpCode]; err != nil {
		return nil, err
	}
	return f.byCorp[corpCode], nil
}

type countingPacer struct{ calls int }

func (p *countingPacer) Wait(ctx context.Context) error {
	p.calls++
	return ctx.Err()
}

type fakeMetrics struct {
	queries map[string]int
	records map[string]int
	errors  map[string]int
	summary *models.Summary
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{queries: map[string]int{}, records: map[string]int{}, errors: map[string]int{}}
}

func (m *fakeMetrics) RecordQuery(outcome string)        { m.queries[outcome]++ }
func (m *fakeMetrics) RecordRecords(stage string, n int) { m.records[stage] += n }
func (m *fakeMetrics) RecordError(kind string)           { m.errors[kind]++ }
func (m *fakeMetrics) RecordLatency(string, float64)     {}
func (m *fakeMetrics) RecordSummary(s models.Summary)    { m.summary = &s }

type fakeSink struct {
	name  string
	err   error
	saved []*models.Snapshot
}

func (s *fakeSink) Name() string { return s.name }

func (s *fakeSink) Save(_ context.Context, snap *models.Snapshot) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, snap)
	return nil
}

var errUpstream = errors.New("upstream unavailable")

func buy(code, sector string, amount int64) models.Record {
	return models.Record{StockCode: code, CorpName: code, Sector: sector, TradeType: models.DirectionBuy, Amount: amount, ReportDate: "20240102"}
}

func sell(code, sector string, amount int64) models.Record {
	return models.Record{StockCode: code, CorpName: code, Sector: sector, TradeType: models.DirectionSell, Amount: amount, ReportDate: "20240102"}
}
