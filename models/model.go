package models

import (
	"errors"

	"github.com/venueops/cashbook/config"
)

var (
	ErrTransactionConflict = errors.New("serial counter conflict, retries exhausted")
	ErrAuthorization       = errors.New("approver is not the account owner")
	ErrMirrorFailed        = errors.New("receipt persisted but distribution mirror failed")
)

func Migrate() error {
	return config.DataBase.AutoMigrate(
		&Member{},
		&MoneyReceipt{},
		&Account{},
		&AccountTransaction{},
		&SerialCounter{},
	)
}
