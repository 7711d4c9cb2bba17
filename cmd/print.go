package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hance08/tankhah/internal/constants"
	"github.com/hance08/tankhah/internal/service"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const (
	viewDashboard = "dashboard"
	viewMonthly   = "monthly"
	viewList      = "list"
)

type printFlags struct {
	View  string
	Out   string
	Month int
}

type printRunner struct {
	svc   *service.Service
	flags *printFlags
}

func NewPrintCmd(svc *service.Service) *cobra.Command {
	flags := &printFlags{}

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print a view without colours, for paper or a file",
		Example: `  # Print the dashboard
  tankhah print

  # Save the monthly report of the second month
  tankhah print --view monthly --month 2 --out report.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &printRunner{svc: svc, flags: flags}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.View, "view", "v", viewDashboard, "View to print: dashboard, monthly or list")
	cmd.Flags().StringVarP(&flags.Out, "out", "o", "", "Write to this file instead of the terminal")
	cmd.Flags().IntVarP(&flags.Month, "month", "m", 0, "Month to detail in the monthly view (1-12)")

	return cmd
}

func (r *printRunner) Run() error {
	render, err := r.renderer()
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if r.flags.Out != "" {
		path, err := expandPath(r.flags.Out)
		if err != nil {
			return err
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	restore := redirectOutput(out)
	err = render()
	restore()
	if err != nil {
		return err
	}

	if r.flags.Out != "" {
		pterm.Success.Printf("Saved %s view to %s\n", r.flags.View, r.flags.Out)
	}
	return nil
}

// redirectOutput sends pterm output, prefix printers included, to w with styling off.
// The returned func puts everything back.
func redirectOutput(w io.Writer) func() {
	info, warning, success := pterm.Info, pterm.Warning, pterm.Success

	pterm.DisableStyling()
	pterm.SetDefaultOutput(w)
	pterm.Info.Writer = w
	pterm.Warning.Writer = w
	pterm.Success.Writer = w

	return func() {
		pterm.Info, pterm.Warning, pterm.Success = info, warning, success
		pterm.SetDefaultOutput(os.Stdout)
		pterm.EnableStyling()
	}
}

func (r *printRunner) renderer() (func() error, error) {
	switch strings.ToLower(r.flags.View) {
	case viewDashboard:
		return (&dashboardRunner{svc: r.svc}).Run, nil
	case viewMonthly:
		runner := &monthlyRunner{svc: r.svc, flags: &monthlyFlags{Month: r.flags.Month, Year: r.svc.Config.Ledger.Year}}
		return runner.Run, nil
	case viewList:
		runner := &listRunner{svc: r.svc, flags: &listFlags{Type: constants.FilterAll}}
		return runner.Run, nil
	default:
		return nil, fmt.Errorf("unknown view '%s' (must be dashboard, monthly or list)", r.flags.View)
	}
}
