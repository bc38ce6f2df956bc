package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"InsiderPull/internal/domain/models"
)

func TestRenderSummary(t *testing.T) {
	snap := &models.Snapshot{
		RunID: "run-1",
		Report: &models.Report{
			LastUpdated: "2024-03-31 09:00",
			Summary: models.Summary{
				TotalBuy:    1_200_000_000,
				TotalSell:   300_000_000,
				NetAmount:   900_000_000,
				TotalTrades: 5,
				Sentiment:   models.SentimentOf(900_000_000),
			},
		},
		Collection: &models.Collection{
			WindowStart: "20240101",
			Outcomes: []models.EntityOutcome{
				{StockCode: "005930", Name: "삼성전자", Status: models.OutcomeOK, Fetched: 3},
				{StockCode: "000660", Name: "SK하이닉스", Status: models.OutcomeFailed, Err: errors.New("timeout")},
			},
		},
	}

	out := renderSummary(snap, "data/insider.json")
	for _, want := range []string{"run-1", "12억", "3억", "9억", "data/insider.json", "1 ok, 0 skipped, 1 failed", "000660", "timeout"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "insiderpull ") {
		t.Fatalf("unexpected version output %q", buf.String())
	}
}

func TestCollectRequiresCredential(t *testing.T) {
	t.Setenv("DART_API_KEY", "")
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"collect", "--config", "../../config/config.yaml"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected missing credential error")
	}
}
