package cmd

import (
	"github.com/hance08/tankhah/internal/service"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type exportFlags struct {
	Dir  string
	Year int
}

type exportRunner struct {
	svc   *service.Service
	flags *exportFlags
}

func NewExportCmd(svc *service.Service) *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all transactions to a CSV file",
		Long: `Write every transaction to <dir>/<prefix>-<year>.csv.

The file starts with a UTF-8 byte order mark so spreadsheet applications show the
Persian text correctly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &exportRunner{svc: svc, flags: flags}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Dir, "dir", "d", svc.Config.Export.Dir, "Directory to write the file to")
	cmd.Flags().IntVarP(&flags.Year, "year", "y", svc.Config.Ledger.Year, "Year used in the file name")

	return cmd
}

func (r *exportRunner) Run() error {
	dir, err := expandPath(r.flags.Dir)
	if err != nil {
		return err
	}

	path, err := r.svc.Report.ExportCSV(dir, r.flags.Year)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Exported %d transactions to %s\n", r.svc.Ledger.Count(), path)
	return nil
}
