package cmd

import (
	"github.com/hance08/tankhah/internal/service"
	"github.com/hance08/tankhah/internal/ui/views"
	"github.com/spf13/cobra"
)

type dashboardRunner struct {
	svc *service.Service
}

func NewDashboardCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show totals, account balances, category totals and the last 7 days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &dashboardRunner{svc: svc}
			return runner.Run()
		},
	}
}

func (r *dashboardRunner) Run() error {
	return views.RenderDashboard(
		r.svc.Report.Dashboard(),
		r.svc.Report.Aggregator(),
		r.svc.Config.Ledger.Year,
	)
}
