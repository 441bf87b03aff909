package models

import (
	"errors"

	"github.com/jackc/pgconn"
	"github.com/venueops/cashbook/config"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ReceiptsCounter = "receipts"

const SerialRetryBudget = 5

type SerialCounter struct {
	Name  string `json:"name" gorm:"primaryKey"`
	Value int64  `json:"value"`
}

// NextSerial increments the named counter under a row lock and returns the
// new value. Two concurrent callers can never observe the same value; a
// conflicting commit is retried up to SerialRetryBudget times before the
// call fails with ErrTransactionConflict.
func NextSerial(name string) (int64, error) {
	var value int64

	for i := 0; i < SerialRetryBudget; i++ {
		err := config.DataBase.Transaction(func(tx *gorm.DB) error {
			var counter SerialCounter

			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where(SerialCounter{Name: name}).
				FirstOrCreate(&counter).Error; err != nil {
				return err
			}

			counter.Value += 1
			value = counter.Value

			return tx.Save(&counter).Error
		})

		if err == nil {
			return value, nil
		}

		if !retryableSerialError(err) {
			return 0, err
		}

		config.Logger.Warnf("Serial counter %s conflict, retrying (%d): %v", name, i+1, err)
	}

	return 0, ErrTransactionConflict
}

// CurrentSerial reads the counter without advancing it.
func CurrentSerial(name string) (int64, error) {
	var counter SerialCounter

	err := config.DataBase.First(&counter, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}

	return counter.Value, err
}

// 40001 serialization_failure, 40P01 deadlock_detected, 23505 two first
// calls racing the counter insert (the retry then finds the row)
func retryableSerialError(err error) bool {
	var pg_err *pgconn.PgError

	if errors.As(err, &pg_err) {
		switch pg_err.Code {
		case "40001", "40P01", "23505":
			return true
		}
	}

	return false
}
