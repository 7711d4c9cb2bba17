package prompts

import (
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/hance08/tankhah/internal/calendar"
	"github.com/hance08/tankhah/internal/constants"
	"github.com/hance08/tankhah/internal/locale"
)

var errRequired = errors.New("this field is required")

// Menu actions of the interactive session.
const (
	ActionDashboard = "dashboard"
	ActionMonthly   = "monthly"
	ActionList      = "list"
	ActionAdd       = "add"
	ActionDelete    = "delete"
	ActionExport    = "export"
	ActionPrint     = "print"
	ActionQuit      = "quit"
)

func MenuOptions() []Option {
	return []Option{
		{Label: "Dashboard", Value: ActionDashboard},
		{Label: "Monthly report", Value: ActionMonthly},
		{Label: "Transactions (search and filter)", Value: ActionList},
		{Label: "Add transaction", Value: ActionAdd},
		{Label: "Delete transaction", Value: ActionDelete},
		{Label: "Export CSV", Value: ActionExport},
		{Label: "Print view", Value: ActionPrint},
		{Label: "Quit", Value: ActionQuit},
	}
}

func PromptMenu(last string) (string, error) {
	if last == "" {
		last = ActionDashboard
	}
	return PromptSelect("What would you like to do?", MenuOptions(), last)
}

// PromptMonth returns a zero-based month index.
func PromptMonth(loc locale.Locale, sys calendar.System, current int) (int, error) {
	month := current

	opts := make([]huh.Option[int], 0, constants.MonthsInYear)
	for i, name := range loc.MonthNames(sys) {
		opts = append(opts, huh.NewOption(name, i))
	}
	err := huh.NewSelect[int]().
		Title("Month:").
		Options(opts...).
		Value(&month).
		Run()
	return month, err
}

// PromptSearch asks for the search term and type filter of the transaction list.
func PromptSearch(loc locale.Locale, term, filter string) (string, string, error) {
	if filter == "" {
		filter = constants.FilterAll
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Search (description or amount, empty for all):").
				Value(&term),
			huh.NewSelect[string]().
				Title("Type:").
				Options(toHuh(FilterOptions(loc))...).
				Value(&filter),
		),
	)

	err := form.Run()
	return term, filter, err
}
