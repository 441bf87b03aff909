package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/venueops/cashbook/config"
	"github.com/venueops/cashbook/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountTransaction is one entry in an account's distribution ledger.
// Created once; the only permitted mutation is approval denied -> approved.
type AccountTransaction struct {
	ID            uint                `json:"id" gorm:"primaryKey"`
	AccountID     string              `json:"account_id" gorm:"index"`
	Amount        decimal.Decimal     `json:"amount" gorm:"type:numeric"`
	Direction     types.Direction     `json:"direction"`
	Approval      types.ApprovalState `json:"approval"`
	Description   string              `json:"description"`
	ReceiverEmail string              `json:"receiver_email"`
	IssuerEmail   string              `json:"issuer_email"`
	ReceiptSerial string              `json:"receipt_serial"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func (t *AccountTransaction) SignedAmount() decimal.Decimal {
	if t.Direction == types.DirectionDebit {
		return t.Amount.Neg()
	}

	return t.Amount
}

func (t *AccountTransaction) Approved() bool {
	return t.Approval == types.StateApproved
}

type AccountTransactionJSON struct {
	ID            uint                `json:"id"`
	AccountID     string              `json:"account_id"`
	Amount        decimal.Decimal     `json:"amount"`
	Direction     types.Direction     `json:"direction"`
	Approval      types.ApprovalState `json:"approval"`
	Description   string              `json:"description"`
	ReceiptSerial string              `json:"receipt_serial,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

func (t *AccountTransaction) ToJSON() AccountTransactionJSON {
	return AccountTransactionJSON{
		ID:            t.ID,
		AccountID:     t.AccountID,
		Amount:        t.Amount,
		Direction:     t.Direction,
		Approval:      t.Approval,
		Description:   t.Description,
		ReceiptSerial: t.ReceiptSerial,
		CreatedAt:     t.CreatedAt,
	}
}

// ApproveBy applies the approval decision in place: only the account's
// registered owner may approve, and an already approved entry is left
// untouched. A rejected decision never mutates the entry.
func (t *AccountTransaction) ApproveBy(account *Account, approver *Member) error {
	if !approver.OwnsAccount(account) {
		return ErrAuthorization
	}

	if t.Approved() {
		return nil
	}

	t.Approval = types.StateApproved

	return nil
}

// ApproveTransaction moves a denied entry to approved under a row lock.
func ApproveTransaction(accountID string, txnID uint, approver *Member) (*AccountTransaction, error) {
	var txn AccountTransaction

	err := config.DataBase.Transaction(func(tx *gorm.DB) error {
		var account Account

		if err := tx.First(&account, "id = ?", accountID).Error; err != nil {
			return err
		}

		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("account_id = ?", accountID).
			First(&txn, txnID).Error; err != nil {
			return err
		}

		if err := txn.ApproveBy(&account, approver); err != nil {
			return err
		}

		return tx.Save(&txn).Error
	})

	if err != nil {
		return nil, err
	}

	PublishLedgerEvent(types.LedgerPayloadMessage{
		Action:    types.ActionTransactionApproved,
		AccountID: accountID,
	})

	return &txn, nil
}
