package cmd

import (
	"github.com/hance08/tankhah/internal/constants"
	"github.com/hance08/tankhah/internal/service"
	"github.com/hance08/tankhah/internal/ui/prompts"
	"github.com/hance08/tankhah/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type addFlags struct {
	Desc     string
	Amount   string
	Type     string
	Account  string
	Category string
	Date     string
}

type addRunner struct {
	svc   *service.Service
	flags *addFlags
	cmd   *cobra.Command
}

func NewAddCmd(svc *service.Service) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new transaction",
		Long: `Add a deposit or an expense to the petty-cash book.

Amounts are entered in toman. Use flags for quick entry or run without flags for the
interactive form.`,
		Example: `  # Interactive form
  tankhah add

  # Quick mode with flags
  tankhah add --type expense --amount 150000 --account saman_shahin --category lunch --desc "ناهار"

  # Deposit on a given date
  tankhah add --type deposit --amount 2000000 --date 1403/02/01 --desc "واریز"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Desc, "desc", "d", "", "Transaction description")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Amount in toman (e.g., 150000 or 1,250)")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", constants.TypeExpense, "Transaction type: deposit or expense")
	cmd.Flags().StringVar(&flags.Account, "account", constants.DefaultAccountID, "Bank account id")
	cmd.Flags().StringVar(&flags.Category, "category", constants.DefaultCategoryID, "Expense category id (ignored for deposits)")
	cmd.Flags().StringVar(&flags.Date, "date", "", "Transaction date (YYYY/MM/DD), default is today")

	return cmd
}

func (r *addRunner) Run() error {
	var input service.TransactionInput
	var err error

	hasFlags := r.cmd != nil && (r.cmd.Flags().Changed("desc") || r.cmd.Flags().Changed("amount"))

	if hasFlags {
		input = r.flagsInput()
	} else {
		input, err = r.interactiveInput()
		if err != nil {
			return err
		}
	}

	tx, err := r.svc.Ledger.Create(input)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Transaction created successfully! (ID: %s)\n", tx.ID)

	return views.RenderTransactionSummary(tx, r.svc.Report.Dashboard().Totals, r.svc.Report.Aggregator())
}

func (r *addRunner) flagsInput() service.TransactionInput {
	date := r.flags.Date
	if date == "" {
		date = r.svc.Report.Today().String()
	}

	return service.TransactionInput{
		Date:        date,
		Amount:      r.flags.Amount,
		Type:        r.flags.Type,
		BankAccount: r.flags.Account,
		Description: r.flags.Desc,
		Category:    r.flags.Category,
	}
}

func (r *addRunner) interactiveInput() (service.TransactionInput, error) {
	agg := r.svc.Report.Aggregator()

	return prompts.PromptTransactionForm(
		r.svc.Reference,
		agg.Locale(),
		agg.Calendar(),
		prompts.NewFormDefaults(r.svc.Report.Today()),
	)
}
