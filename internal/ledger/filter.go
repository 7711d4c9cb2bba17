package ledger

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hance08/tankhah/internal/calendar"
	"github.com/hance08/tankhah/internal/constants"
	"github.com/hance08/tankhah/internal/model"
	"github.com/hance08/tankhah/internal/utils"
)

type FilterType string

const (
	FilterAll     FilterType = constants.FilterAll
	FilterDeposit FilterType = constants.TypeDeposit
	FilterExpense FilterType = constants.TypeExpense
)

func ParseFilterType(s string) (FilterType, error) {
	switch f := FilterType(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterDeposit, FilterExpense:
		return f, nil
	default:
		return "", fmt.Errorf("invalid type filter '%s' (must be all, deposit or expense)", s)
	}
}

func (f FilterType) matches(t model.TxType) bool {
	return f == "" || f == FilterAll || string(f) == string(t)
}

type Query struct {
	Search string
	Type   FilterType
}

// Filter keeps transactions whose description contains the search term (ignoring case)
// or whose displayed amount contains it literally, narrowed to the requested type.
// The result is sorted newest first; equal dates keep their collection order and
// unparseable dates go last.
func (a *Aggregator) Filter(txs []model.Transaction, q Query) []model.Transaction {
	term := strings.ToLower(q.Search)

	type dated struct {
		tx   model.Transaction
		date calendar.Date
		ok   bool
	}

	matched := make([]dated, 0, len(txs))
	for _, tx := range txs {
		if !q.Type.matches(tx.Type) {
			continue
		}
		if !strings.Contains(strings.ToLower(tx.Description), term) &&
			!strings.Contains(utils.FormatCoarse(tx.Amount, a.loc), q.Search) {
			continue
		}
		d, err := calendar.Parse(tx.Date, a.cal)
		matched = append(matched, dated{tx: tx, date: d, ok: err == nil})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].ok != matched[j].ok {
			return matched[i].ok
		}
		return calendar.Compare(matched[i].date, matched[j].date) > 0
	})

	out := make([]model.Transaction, len(matched))
	for i, m := range matched {
		out[i] = m.tx
	}
	return out
}
