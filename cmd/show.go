package cmd

import (
	"github.com/hance08/tankhah/internal/service"
	"github.com/hance08/tankhah/internal/ui/views"
	"github.com/spf13/cobra"
)

type showRunner struct {
	svc *service.Service
}

func NewShowCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "show <transaction-id>",
		Short: "Show transaction details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &showRunner{svc: svc}
			return runner.Run(args[0])
		},
	}
}

func (r *showRunner) Run(id string) error {
	tx, err := r.svc.Ledger.Get(id)
	if err != nil {
		return err
	}

	return views.RenderTransactionDetail(tx, r.svc.Report.Aggregator())
}
