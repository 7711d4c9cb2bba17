package store

import "errors"

var (
	ErrTransactionExists = errors.New("transaction already exists")
	ErrRecordNotFound    = errors.New("record not found")
)
