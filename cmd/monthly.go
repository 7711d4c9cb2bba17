package cmd

import (
	"fmt"

	"github.com/hance08/tankhah/internal/constants"
	"github.com/hance08/tankhah/internal/service"
	"github.com/hance08/tankhah/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type monthlyFlags struct {
	Month int
	Year  int
}

type monthlyRunner struct {
	svc   *service.Service
	flags *monthlyFlags
}

func NewMonthlyCmd(svc *service.Service) *cobra.Command {
	flags := &monthlyFlags{}

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Show the twelve-month report and the detail of one month",
		Long: `Show deposits and expenses for each of the twelve months, followed by the
transactions and category totals of the selected month.

Months are matched on the month part of the date only, whatever the year.`,
		Example: `  # Current month
  tankhah monthly

  # Third month (Khordad in the Jalali calendar)
  tankhah monthly --month 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &monthlyRunner{svc: svc, flags: flags}
			return runner.Run()
		},
	}

	cmd.Flags().IntVarP(&flags.Month, "month", "m", 0, "Month to detail (1-12), default is the current month")
	cmd.Flags().IntVarP(&flags.Year, "year", "y", svc.Config.Ledger.Year, "Year shown in the report title")

	return cmd
}

// month returns the zero-based month to detail.
func (r *monthlyRunner) month() (int, error) {
	if r.flags.Month == 0 {
		return r.svc.Report.CurrentMonth(), nil
	}
	if r.flags.Month < 1 || r.flags.Month > constants.MonthsInYear {
		return 0, fmt.Errorf("invalid month %d (must be 1-12)", r.flags.Month)
	}
	return r.flags.Month - 1, nil
}

func (r *monthlyRunner) Run() error {
	month, err := r.month()
	if err != nil {
		return err
	}

	agg := r.svc.Report.Aggregator()
	if err := views.RenderMonthly(r.svc.Report.Monthly(), agg, r.flags.Year); err != nil {
		return err
	}

	pterm.Println()
	return views.RenderMonthDetail(r.svc.Report.MonthDetail(month), agg)
}
