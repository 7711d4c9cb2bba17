package service

import (
	"fmt"
	"time"

	"github.com/hance08/tankhah/internal/calendar"
	"github.com/hance08/tankhah/internal/config"
	"github.com/hance08/tankhah/internal/export"
	"github.com/hance08/tankhah/internal/ledger"
	"github.com/hance08/tankhah/internal/log"
	"github.com/hance08/tankhah/internal/model"
	"github.com/hance08/tankhah/internal/store"
)

// ReportService reads a fresh snapshot on every call and derives the requested view
// from it. Nothing is cached between calls.
type ReportService struct {
	repo   store.Repository
	agg    *ledger.Aggregator
	config *config.Config
	logger *log.Logger
	clock  func() time.Time
}

type Dashboard struct {
	Count            int
	Totals           ledger.Totals
	Accounts         []ledger.AccountBalance
	Categories       []ledger.CategoryTotal
	Weekly           []ledger.WeeklyBucket
	WeeklyByCategory []ledger.WeeklyCategoryBucket
	Undated          []string
}

func NewReportService(repo store.Repository, agg *ledger.Aggregator, cfg *config.Config, logger *log.Logger, clock func() time.Time) *ReportService {
	return &ReportService{repo: repo, agg: agg, config: cfg, logger: logger, clock: clock}
}

func (rs *ReportService) Aggregator() *ledger.Aggregator {
	return rs.agg
}

func (rs *ReportService) Today() calendar.Date {
	return calendar.Today(rs.clock(), rs.agg.Calendar())
}

// CurrentMonth is the zero-based month of today, the default month selection.
func (rs *ReportService) CurrentMonth() int {
	return rs.Today().Month - 1
}

func (rs *ReportService) Dashboard() Dashboard {
	txs := rs.repo.Snapshot()
	now := rs.clock()

	d := Dashboard{
		Count:            len(txs),
		Totals:           rs.agg.Totals(txs),
		Accounts:         rs.agg.AccountBalances(txs),
		Categories:       rs.agg.CategoryTotals(txs),
		Weekly:           rs.agg.Weekly(txs, now),
		WeeklyByCategory: rs.agg.WeeklyByCategory(txs, now),
		Undated:          rs.agg.Undated(txs),
	}

	if len(d.Undated) > 0 {
		rs.logger.Debug("transactions left out of date buckets",
			log.FieldView, "dashboard",
			log.FieldCount, len(d.Undated),
		)
	}
	return d
}

func (rs *ReportService) Monthly() []ledger.MonthlyBucket {
	return rs.agg.Monthly(rs.repo.Snapshot())
}

func (rs *ReportService) MonthDetail(month int) ledger.MonthDetail {
	rs.logger.Debug("month detail", log.FieldMonth, month)
	return rs.agg.MonthDetail(rs.repo.Snapshot(), month)
}

func (rs *ReportService) Search(q ledger.Query) []model.Transaction {
	return rs.agg.Filter(rs.repo.Snapshot(), q)
}

func (rs *ReportService) ExportRows() []ledger.ExportRow {
	return rs.agg.ExportRows(rs.repo.Snapshot())
}

// ExportCSV writes the whole collection to <dir>/<prefix>-<year>.csv and returns the path.
func (rs *ReportService) ExportCSV(dir string, year int) (string, error) {
	loc := rs.agg.Locale()
	rows := rs.ExportRows()

	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.Record())
	}

	name := export.FileName(rs.config.Export.Prefix, year)
	path, err := export.ToDir(dir, name, loc.ExportHeader(), records)
	if err != nil {
		rs.logger.Error("export failed", log.FieldPath, dir, log.FieldError, err.Error())
		return "", fmt.Errorf("failed to export transactions: %w", err)
	}

	rs.logger.Info("transactions exported", log.FieldPath, path, log.FieldCount, len(records))
	return path, nil
}
