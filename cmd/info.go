package cmd

import (
	"github.com/hance08/tankhah/internal/app"
	"github.com/hance08/tankhah/internal/service"
	"github.com/hance08/tankhah/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	svc *service.Service
}

func NewInfoCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, calendar, locale and session details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				svc: svc,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	c := r.svc.Config

	configPath := c.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	exportDir, _ := expandPath(c.Export.Dir)

	items := views.SystemInfoItem{
		ConfigPath:   configPath,
		AppDataDir:   appDataDirOrUnknown(),
		Calendar:     string(c.CalendarSystem()),
		Locale:       string(c.Locale().Code),
		Year:         c.Ledger.Year,
		Seeded:       c.Ledger.Seed,
		Transactions: r.svc.Ledger.Count(),
		ExportDir:    exportDir,
		LogLevel:     c.Log.Level,
	}

	return views.RenderSystemInfo(items)
}

func appDataDirOrUnknown() string {
	dir, err := app.DataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
