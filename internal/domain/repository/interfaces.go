package repository

import (
	"context"

	"InsiderPull/internal/domain/models"
)

// CorpDirectory resolves listing codes to source-system corp codes.
type CorpDirectory interface {
	Load(ctx context.Context) (map[string]string, error)
}

// DisclosureSource returns the raw insider filings of one corp code.
type DisclosureSource interface {
	MajorStock(ctx context.Context, corpCode string) ([]models.RawDisclosure, error)
}

type PriceSource interface {
	PriceOf(stockCode string) int64
}

// Pacer spaces consecutive upstream queries.
type Pacer interface {
	Wait(ctx context.Context) error
}

// SnapshotSink persists or publishes a finished run.
type SnapshotSink interface {
	Name() string
	Save(ctx context.Context, s *models.Snapshot) error
}

// ReportReader serves the latest published report.
type ReportReader interface {
	Latest(ctx context.Context) (*models.Report, error)
}

type Metrics interface {
	RecordQuery(outcome string)
	RecordRecords(stage string, n int)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
	RecordSummary(s models.Summary)
}
