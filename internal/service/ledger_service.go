package service

import (
	"fmt"

	"github.com/hance08/tankhah/internal/calendar"
	"github.com/hance08/tankhah/internal/config"
	"github.com/hance08/tankhah/internal/log"
	"github.com/hance08/tankhah/internal/model"
	"github.com/hance08/tankhah/internal/reference"
	"github.com/hance08/tankhah/internal/store"
	"github.com/hance08/tankhah/internal/utils"
)

// LedgerService owns the mutations of the transaction collection.
type LedgerService struct {
	repo   store.Repository
	ref    reference.Tables
	config *config.Config
	logger *log.Logger
}

func NewLedgerService(repo store.Repository, ref reference.Tables, cfg *config.Config, logger *log.Logger) *LedgerService {
	return &LedgerService{repo: repo, ref: ref, config: cfg, logger: logger}
}

// Create validates the input, converts the coarse amount into the storage unit and adds
// the transaction at the front of the collection.
// It validates that:
// 1. All required fields are present and the type is deposit or expense
// 2. The date parses in the configured calendar
// 3. The bank account and, for expenses, the category exist
func (ls *LedgerService) Create(input TransactionInput) (model.Transaction, error) {
	in := input.normalized()

	if err := ValidateInput(in); err != nil {
		ls.logger.Warn("transaction rejected", log.FieldError, err.Error())
		return model.Transaction{}, err
	}

	txType, err := model.ParseTxType(in.Type)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	date, err := calendar.Parse(in.Date, ls.config.CalendarSystem())
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	amount, err := utils.ToFine(in.Amount)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, ok := ls.ref.Account(in.BankAccount); !ok {
		return model.Transaction{}, fmt.Errorf("%w: bank account '%s'", ErrInvalidReference, in.BankAccount)
	}

	category := ""
	if txType == model.TxExpense {
		if _, ok := ls.ref.Category(in.Category); !ok {
			return model.Transaction{}, fmt.Errorf("%w: category '%s'", ErrInvalidReference, in.Category)
		}
		category = in.Category
	}

	tx, err := ls.repo.Create(model.Transaction{
		Date:        date.String(),
		Amount:      amount,
		Type:        txType,
		BankAccount: in.BankAccount,
		Description: in.Description,
		Category:    category,
	})
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}

	ls.logger.Info("transaction created",
		log.FieldTxID, tx.ID,
		log.FieldTxType, string(tx.Type),
		log.FieldAmountFine, tx.Amount,
		log.FieldAccount, tx.BankAccount,
	)
	return tx, nil
}

// Delete removes a transaction. A missing id leaves the collection as it is.
func (ls *LedgerService) Delete(id string) bool {
	removed := ls.repo.Delete(id)
	if removed {
		ls.logger.Info("transaction deleted", log.FieldTxID, id)
	} else {
		ls.logger.Debug("delete ignored, no such transaction", log.FieldTxID, id)
	}
	return removed
}

func (ls *LedgerService) Get(id string) (model.Transaction, error) {
	return ls.repo.Get(id)
}

func (ls *LedgerService) All() []model.Transaction {
	return ls.repo.Snapshot()
}

func (ls *LedgerService) Count() int {
	return ls.repo.Len()
}
