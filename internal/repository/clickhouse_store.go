package repository

import (
	"context"
	"fmt"

	"InsiderPull/internal/domain/models"
	pkgch "InsiderPull/pkg/clickhouse"
)

// ClickHouseSnapshotStore keeps the full retained record set of the latest
// run in a ClickHouse table. Each run replaces the previous rows.
type ClickHouseSnapshotStore struct {
	ch       *pkgch.Client
	database string
	table    string
}

func NewClickHouseSnapshotStore(ch *pkgch.Client, database, table string) *ClickHouseSnapshotStore {
	return &ClickHouseSnapshotStore{ch: ch, database: database, table: table}
}

func (s *ClickHouseSnapshotStore) Name() string { return "clickhouse" }

// Init creates the database and table when missing.
func (s *ClickHouseSnapshotStore) Init(ctx context.Context) error {
	return s.ch.InitSchema(ctx, SnapshotSchema(s.database, s.table))
}

func (s *ClickHouseSnapshotStore) Save(ctx context.Context, snap *models.Snapshot) error {
	if _, err := s.ch.DB().ExecContext(ctx, "TRUNCATE TABLE IF EXISTS "+s.qualified()); err != nil {
		return fmt.Errorf("truncate %s: %w", s.qualified(), err)
	}
	rows := snapshotRows(snap)
	if err := s.ch.InsertBatch(ctx, s.insertSQL(), rows); err != nil {
		return fmt.Errorf("insert %s: %w", s.qualified(), err)
	}
	return nil
}

func (s *ClickHouseSnapshotStore) qualified() string {
	return s.database + "." + s.table
}

func (s *ClickHouseSnapshotStore) insertSQL() string {
	return "INSERT INTO " + s.qualified() + ` (
		run_id, collected_at, stock_code, corp_code, corp_name, sector,
		report_date, insider_name, position, change_reason,
		shares_before, shares_after, shares_change, trade_type, price, amount
	)`
}

// SnapshotSchema returns the DDL for the records table.
func SnapshotSchema(database, table string) []string {
	return []string{
		"CREATE DATABASE IF NOT EXISTS " + database,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.%s (
			run_id        String,
			collected_at  DateTime,
			stock_code    LowCardinality(String),
			corp_code     String,
			corp_name     String,
			sector        LowCardinality(String),
			report_date   String,
			insider_name  String,
			position      String,
			change_reason String,
			shares_before Int64,
			shares_after  Int64,
			shares_change Int64,
			trade_type    LowCardinality(String),
			price         Int64,
			amount        Int64
		) ENGINE = MergeTree
		ORDER BY (stock_code, report_date)`, database, table),
	}
}

func snapshotRows(snap *models.Snapshot) [][]interface{} {
	rows := make([][]interface{}, 0, len(snap.Records))
	for _, r := range snap.Records {
		rows = append(rows, []interface{}{
			snap.RunID, snap.CollectedAt, r.StockCode, r.CorpCode, r.CorpName, r.Sector,
			r.ReportDate, r.InsiderName, r.Position, r.ChangeReason,
			r.SharesBefore, r.SharesAfter, r.SharesChange, string(r.TradeType), r.Price, r.Amount,
		})
	}
	return rows
}
