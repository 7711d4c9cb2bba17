package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath   string
	AppDataDir   string
	Calendar     string
	Locale       string
	Year         int
	Seeded       bool
	Transactions int
	ExportDir    string
	LogLevel     string
}

func SystemInfoRows(data SystemInfoItem) pterm.TableData {
	seed := pterm.Green("Sample transactions")
	if !data.Seeded {
		seed = pterm.Gray("Empty")
	}

	return pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"AppData Directory", data.AppDataDir},
		{"Calendar", data.Calendar},
		{"Locale", data.Locale},
		{"Ledger Year", pterm.Sprint(data.Year)},
		{"Session Start", seed},
		{"Transactions", pterm.Sprint(data.Transactions)},
		{"Export Directory", data.ExportDir},
		{"Log Level", data.LogLevel},
	}
}

func RenderSystemInfo(data SystemInfoItem) error {
	return pterm.DefaultTable.WithData(SystemInfoRows(data)).Render()
}
