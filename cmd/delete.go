package cmd

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/hance08/tankhah/internal/service"
	"github.com/hance08/tankhah/internal/ui"
	"github.com/hance08/tankhah/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type deleteFlags struct {
	Yes bool
}

type deleteRunner struct {
	svc   *service.Service
	flags *deleteFlags
}

func NewDeleteCmd(svc *service.Service) *cobra.Command {
	flags := &deleteFlags{}

	cmd := &cobra.Command{
		Use:   "delete <transaction-id>",
		Short: "Delete a transaction",
		Long:  `Delete a transaction from the book. This action cannot be undone.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &deleteRunner{svc: svc, flags: flags}
			return runner.Run(args[0])
		},
	}

	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (r *deleteRunner) Run(id string) error {
	tx, err := r.svc.Ledger.Get(id)
	if err != nil {
		pterm.Warning.Printf("Nothing to delete: no transaction with ID %s\n", id)
		return nil
	}

	if err := views.RenderTransactionDeletePreview(tx, r.svc.Report.Aggregator()); err != nil {
		return err
	}

	if !r.flags.Yes {
		var confirmation bool
		confirmPrompt := &survey.Confirm{
			Message: "Do you want to delete this transaction?",
			Default: false,
		}
		if err := survey.AskOne(confirmPrompt, &confirmation, ui.IconOption()); err != nil {
			return err
		}

		if !confirmation {
			pterm.Info.Println("Deletion cancelled")
			return nil
		}
	}

	r.svc.Ledger.Delete(id)
	views.RenderTransactionDeleteSuccess(id)
	return nil
}
