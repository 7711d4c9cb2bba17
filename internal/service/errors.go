package service

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid transaction input")
	ErrInvalidReference = errors.New("unknown reference")
)
