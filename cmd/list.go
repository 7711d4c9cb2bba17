package cmd

import (
	"github.com/hance08/tankhah/internal/constants"
	"github.com/hance08/tankhah/internal/ledger"
	"github.com/hance08/tankhah/internal/service"
	"github.com/hance08/tankhah/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Search string
	Type   string
	Limit  int
}

type listRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List, search and filter transactions",
		Long: `List transactions newest first.

The search term matches the description (ignoring case) or the displayed amount.`,
		Example: `  # Everything
  tankhah list

  # Expenses whose description mentions lunch
  tankhah list --search ناهار --type expense

  # No limit
  tankhah list --limit 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{svc: svc, flags: flags}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Search, "search", "s", "", "Search term")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", constants.FilterAll, "Type filter: all, deposit or expense")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", constants.DefaultListCap, "Maximum number of transactions to display (0 for all)")

	return cmd
}

func (r *listRunner) Run() error {
	filter, err := ledger.ParseFilterType(r.flags.Type)
	if err != nil {
		return err
	}

	txs := r.svc.Report.Search(ledger.Query{Search: r.flags.Search, Type: filter})

	if r.flags.Search != "" || filter != ledger.FilterAll {
		pterm.Info.Printf("Search: %q, type: %s\n", r.flags.Search, filter)
	}

	items := views.NewTransactionListItems(txs, r.svc.Report.Aggregator())
	return views.NewTransactionListView().Render(items, r.flags.Limit)
}
