package models

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/venueops/cashbook/config"
	"github.com/venueops/cashbook/mq_client"
	"github.com/venueops/cashbook/types"
	"gorm.io/gorm"
)

// MoneyReceipt is a money-in/money-out voucher. The serial is issued once
// from the receipts counter and never changes; the only mutable field is
// Approval, through the receipt acceptance flow.
type MoneyReceipt struct {
	ID           string                `json:"id" gorm:"primaryKey"`
	Serial       string                `json:"serial" gorm:"uniqueIndex"`
	SerialNum    int64                 `json:"serial_num"`
	Amount       decimal.Decimal       `json:"amount" gorm:"type:numeric"`
	Direction    types.Direction       `json:"direction"`
	Mode         types.PaymentMode     `json:"mode"`
	PartyName    string                `json:"party_name"`
	PartyContact string                `json:"party_contact"`
	Particular   string                `json:"particular"`
	CashTo       string                `json:"cash_to"`
	Approval     types.ReceiptApproval `json:"approval"`
	Bucket       string                `json:"bucket" gorm:"index"`
	ReceiptDate  time.Time             `json:"receipt_date"`
	CreatedAt    time.Time             `json:"created_at"`
}

// MonthBucket is the month-year storage bucket a receipt date falls in.
func MonthBucket(t time.Time) string {
	return t.Format("01-2006")
}

func SerialString(n int64) string {
	return "V" + strconv.FormatInt(n, 10)
}

func (r *MoneyReceipt) SignedAmount() decimal.Decimal {
	if r.Direction == types.DirectionDebit {
		return r.Amount.Neg()
	}

	return r.Amount
}

// SubmitReceipt issues a serial, persists the receipt and, for cash mode,
// mirrors the movement into the cash_to account's distribution ledger. The
// mirror runs after the receipt commit; when it fails the receipt stays
// behind without its offsetting entry and the caller gets ErrMirrorFailed
// (see AuditSerials for the continuity check).
func SubmitReceipt(member *Member, receipt *MoneyReceipt) error {
	serial, err := NextSerial(ReceiptsCounter)
	if err != nil {
		return err
	}

	if receipt.ReceiptDate.IsZero() {
		receipt.ReceiptDate = time.Now()
	}

	receipt.ID = uuid.NewString()
	receipt.SerialNum = serial
	receipt.Serial = SerialString(serial)
	receipt.Approval = types.ReceiptPending
	receipt.Bucket = MonthBucket(receipt.ReceiptDate)

	if err := config.DataBase.Create(receipt).Error; err != nil {
		return err
	}

	receipt.TriggerEvent(member)

	if receipt.Mode != types.ModeCash {
		return nil
	}

	if err := receipt.mirrorDistribution(member); err != nil {
		config.Logger.Errorf("Receipt %s persisted but mirror to %s failed: %v", receipt.Serial, receipt.CashTo, err.Error())
		return ErrMirrorFailed
	}

	return nil
}

func (r *MoneyReceipt) mirrorDistribution(member *Member) error {
	return config.DataBase.Transaction(func(tx *gorm.DB) error {
		account, err := FindOrCreateAccount(tx, r.CashTo)
		if err != nil {
			return err
		}

		approval := types.StateDenied
		if account.AutoApprove {
			approval = types.StateApproved
		}

		txn := &AccountTransaction{
			Amount:        r.Amount,
			Direction:     r.Direction,
			Approval:      approval,
			Description:   r.Particular,
			ReceiverEmail: account.OwnerEmail,
			IssuerEmail:   member.Email,
			ReceiptSerial: r.Serial,
		}

		return account.Append(tx, txn)
	})
}

// AcceptReceipt moves a receipt's approval from "no" to "accepted".
// Idempotent; this flow is independent from account transaction approval.
func AcceptReceipt(id string) (*MoneyReceipt, error) {
	var receipt MoneyReceipt

	err := config.DataBase.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&receipt, "id = ?", id).Error; err != nil {
			return err
		}

		if receipt.Approval == types.ReceiptAccepted {
			return nil
		}

		receipt.Approval = types.ReceiptAccepted

		return tx.Save(&receipt).Error
	})

	return &receipt, err
}

func (r *MoneyReceipt) TriggerEvent(member *Member) {
	payload_message, _ := json.Marshal(r)

	mq_client.EnqueueEvent("private", member.UID, "receipt", payload_message)
	PublishLedgerEvent(types.LedgerPayloadMessage{
		Action:    types.ActionReceiptCreated,
		ReceiptID: r.ID,
		AccountID: r.CashTo,
	})
}

// AuditSerials compares the counter value with the highest issued serial.
// The counter may run ahead of the ledger (a crash between issuance and
// first use), never behind it.
func AuditSerials() (int64, int64, error) {
	counter, err := CurrentSerial(ReceiptsCounter)
	if err != nil {
		return 0, 0, err
	}

	var issued int64
	row := config.DataBase.Model(&MoneyReceipt{}).Select("COALESCE(MAX(serial_num), 0)").Row()
	if err := row.Scan(&issued); err != nil {
		return 0, 0, err
	}

	return counter, issued, nil
}
