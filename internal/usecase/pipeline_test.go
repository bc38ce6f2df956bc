package usecase

import (
	"context"
	"errors"
	"testing"

	"InsiderPull/internal/domain/models"
	drepo "InsiderPull/internal/domain/repository"
	"InsiderPull/pkg/logger"
)

func newTestPipeline(primary *fakeSink, secondary []drepo.SnapshotSink, m *fakeMetrics) *ReportPipeline {
	src := &fakeSource{byCorp: map[string][]models.RawDisclosure{
		"C1": {{ReportDate: "20240320", Reporter: "a", Reason: "장내매수", SharesChange: "100"}},
	}}
	dir := &fakeDirectory{codes: map[string]string{"005930": "C1"}}
	col := newTestCollector(src, dir, &countingPacer{}, m)
	return NewReportPipeline(col, NewReportBuilder("3M", DefaultReportLimits()), primary, secondary, m, logger.Nop())
}

func TestPipelinePublishesSnapshot(t *testing.T) {
	primary := &fakeSink{name: "file"}
	secondary := &fakeSink{name: "kafka"}
	m := newFakeMetrics()

	snap, err := newTestPipeline(primary, []drepo.SnapshotSink{secondary}, m).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if snap.RunID == "" {
		t.Fatalf("snapshot needs a run id")
	}
	if len(primary.saved) != 1 || len(secondary.saved) != 1 {
		t.Fatalf("both sinks should receive the snapshot")
	}
	if snap.Report.Summary.TotalBuy != 100*72_000 {
		t.Fatalf("unexpected total buy %d", snap.Report.Summary.TotalBuy)
	}
	if m.summary == nil || m.summary.TotalTrades != 1 {
		t.Fatalf("summary metrics not recorded")
	}
}

func TestPipelinePrimarySinkFailureFailsRun(t *testing.T) {
	primary := &fakeSink{name: "file", err: errors.New("disk full")}
	if _, err := newTestPipeline(primary, nil, newFakeMetrics()).Run(context.Background()); err == nil {
		t.Fatalf("expected primary sink failure to fail the run")
	}
}

func TestPipelineSecondarySinkFailureIsTolerated(t *testing.T) {
	primary := &fakeSink{name: "file"}
	broken := &fakeSink{name: "clickhouse", err: errors.New("connection refused")}
	m := newFakeMetrics()

	if _, err := newTestPipeline(primary, []drepo.SnapshotSink{broken}, m).Run(context.Background()); err != nil {
		t.Fatalf("secondary failure must not fail the run: %v", err)
	}
	if m.errors["sink_clickhouse"] != 1 {
		t.Fatalf("secondary failure should be counted, got %v", m.errors)
	}
}
