package model

import (
	"fmt"
	"strings"

	"github.com/hance08/tankhah/internal/constants"
)

type TxType string

const (
	TxDeposit TxType = constants.TypeDeposit
	TxExpense TxType = constants.TypeExpense
)

func (t TxType) Valid() bool {
	return t == TxDeposit || t == TxExpense
}

// ParseTxType accepts the type names case-insensitively.
func ParseTxType(s string) (TxType, error) {
	t := TxType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("invalid transaction type '%s' (must be deposit or expense)", s)
	}
	return t, nil
}

// Transaction is a single ledger entry. Amount is kept in the fine unit (rial).
type Transaction struct {
	ID          string
	Date        string
	Amount      int64
	Type        TxType
	BankAccount string
	Description string
	Category    string
}

func (t Transaction) IsDeposit() bool { return t.Type == TxDeposit }
func (t Transaction) IsExpense() bool { return t.Type == TxExpense }
