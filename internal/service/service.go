package service

import (
	"time"

	"github.com/hance08/tankhah/internal/config"
	"github.com/hance08/tankhah/internal/ledger"
	"github.com/hance08/tankhah/internal/log"
	"github.com/hance08/tankhah/internal/reference"
	"github.com/hance08/tankhah/internal/store"
)

type Service struct {
	Ledger    *LedgerService
	Report    *ReportService
	Config    *config.Config
	Reference reference.Tables
}

// NewService wires both services over one repository. clock may be nil, meaning time.Now.
func NewService(repo store.Repository, ref reference.Tables, cfg *config.Config, logger *log.Logger, clock func() time.Time) *Service {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = log.Discard()
	}

	agg := ledger.New(ref, cfg.CalendarSystem(), cfg.Locale())

	return &Service{
		Ledger:    NewLedgerService(repo, ref, cfg, logger.WithComponent(log.ComponentLedger)),
		Report:    NewReportService(repo, agg, cfg, logger.WithComponent(log.ComponentReport), clock),
		Config:    cfg,
		Reference: ref,
	}
}
