package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/tankhah/internal/calendar"
	"github.com/hance08/tankhah/internal/constants"
	"github.com/hance08/tankhah/internal/locale"
	"github.com/hance08/tankhah/internal/reference"
	"github.com/hance08/tankhah/internal/service"
)

// FormDefaults preselects the add form: today's date, the first bank account and the
// miscellaneous category.
type FormDefaults struct {
	Date     calendar.Date
	Account  string
	Category string
	Type     string
}

func NewFormDefaults(today calendar.Date) FormDefaults {
	return FormDefaults{
		Date:     today,
		Account:  constants.DefaultAccountID,
		Category: constants.DefaultCategoryID,
		Type:     constants.TypeExpense,
	}
}

// PromptTransactionForm runs the add form. The category group is only shown for expenses.
func PromptTransactionForm(ref reference.Tables, loc locale.Locale, sys calendar.System, def FormDefaults) (service.TransactionInput, error) {
	in := service.TransactionInput{
		Type:        def.Type,
		BankAccount: def.Account,
		Category:    def.Category,
	}
	validDate := DateValidator(sys)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Transaction type:").
				Options(toHuh(TypeOptions(loc))...).
				Value(&in.Type),
			huh.NewInput().
				Title("Date (YYYY/MM/DD):").
				Placeholder(def.Date.String()).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					return validDate(s)
				}).
				Value(&in.Date),
			huh.NewInput().
				Title("Amount (toman):").
				Validate(AmountValidator).
				Value(&in.Amount),
			huh.NewSelect[string]().
				Title("Bank account:").
				Options(toHuh(AccountOptions(ref.Accounts()))...).
				Value(&in.BankAccount),
			huh.NewInput().
				Title("Description:").
				CharLimit(constants.MaxDescriptionLen).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errRequired
					}
					return nil
				}).
				Value(&in.Description),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category:").
				Options(toHuh(CategoryOptions(ref.Categories()))...).
				Value(&in.Category),
		).WithHideFunc(func() bool { return in.Type != constants.TypeExpense }),
	)

	if err := form.Run(); err != nil {
		return service.TransactionInput{}, err
	}

	if strings.TrimSpace(in.Date) == "" {
		in.Date = def.Date.String()
	}
	if in.Type != constants.TypeExpense {
		in.Category = ""
	}
	return in, nil
}

func toHuh(options []Option) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		opts = append(opts, huh.NewOption(o.Label, o.Value))
	}
	return opts
}
