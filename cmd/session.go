package cmd

import (
	"github.com/hance08/tankhah/internal/constants"
	"github.com/hance08/tankhah/internal/errhandler"
	"github.com/hance08/tankhah/internal/ledger"
	"github.com/hance08/tankhah/internal/log"
	"github.com/hance08/tankhah/internal/service"
	"github.com/hance08/tankhah/internal/ui"
	"github.com/hance08/tankhah/internal/ui/prompts"
	"github.com/pterm/pterm"
)

// sessionRunner drives the interactive menu. The selected month and the list search
// persist between actions; every view is recomputed from the current collection.
type sessionRunner struct {
	svc    *service.Service
	logger *log.Logger

	month  int
	search string
	filter string
}

func (r *sessionRunner) Run() error {
	logger := r.logger.WithComponent(log.ComponentSession)
	r.month = r.svc.Report.CurrentMonth()
	r.filter = constants.FilterAll

	if err := (&dashboardRunner{svc: r.svc}).Run(); err != nil {
		return err
	}

	last := prompts.ActionDashboard
	for {
		ui.Separator()
		action, err := prompts.PromptMenu(last)
		if err != nil {
			if errhandler.IsCancelled(err) {
				return nil
			}
			return err
		}
		if action == prompts.ActionQuit {
			return nil
		}
		last = action

		logger.Debug("session action", log.FieldView, action)

		if err := r.dispatch(action); err != nil {
			if errhandler.IsCancelled(err) {
				pterm.Warning.Println("Operation Cancelled")
				continue
			}
			logger.Warn("action failed", log.FieldView, action, log.FieldError, err.Error())
			pterm.Error.Println(capitalize(err.Error()))
		}
	}
}

func (r *sessionRunner) dispatch(action string) error {
	agg := r.svc.Report.Aggregator()

	switch action {
	case prompts.ActionDashboard:
		return (&dashboardRunner{svc: r.svc}).Run()

	case prompts.ActionMonthly:
		month, err := prompts.PromptMonth(agg.Locale(), agg.Calendar(), r.month)
		if err != nil {
			return err
		}
		r.month = month
		return (&monthlyRunner{svc: r.svc, flags: &monthlyFlags{Month: month + 1, Year: r.svc.Config.Ledger.Year}}).Run()

	case prompts.ActionList:
		search, filter, err := prompts.PromptSearch(agg.Locale(), r.search, r.filter)
		if err != nil {
			return err
		}
		r.search, r.filter = search, filter
		return (&listRunner{svc: r.svc, flags: &listFlags{Search: search, Type: filter, Limit: constants.DefaultListCap}}).Run()

	case prompts.ActionAdd:
		return (&addRunner{svc: r.svc, flags: &addFlags{}}).Run()

	case prompts.ActionDelete:
		return r.delete()

	case prompts.ActionExport:
		return (&exportRunner{svc: r.svc, flags: &exportFlags{Dir: r.svc.Config.Export.Dir, Year: r.svc.Config.Ledger.Year}}).Run()

	case prompts.ActionPrint:
		view, err := prompts.PromptSelect("View to print:", []prompts.Option{
			{Label: "Dashboard", Value: viewDashboard},
			{Label: "Monthly report", Value: viewMonthly},
			{Label: "Transactions", Value: viewList},
		}, viewDashboard)
		if err != nil {
			return err
		}
		return (&printRunner{svc: r.svc, flags: &printFlags{View: view, Month: r.month + 1}}).Run()
	}
	return nil
}

func (r *sessionRunner) delete() error {
	txs := r.svc.Report.Search(ledger.Query{Type: ledger.FilterAll})
	if len(txs) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	id, err := prompts.PromptSelect("Transaction to delete:", prompts.TransactionOptions(txs, r.svc.Report.Aggregator()), "")
	if err != nil {
		return err
	}
	return (&deleteRunner{svc: r.svc, flags: &deleteFlags{}}).Run(id)
}
