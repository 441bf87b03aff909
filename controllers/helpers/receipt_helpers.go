package helpers

import (
	"errors"
	"time"

	"github.com/gookit/validate"
	"github.com/shopspring/decimal"

	"github.com/venueops/cashbook/models"
	"github.com/venueops/cashbook/types"
)

type CreateReceiptParams struct {
	Amount       decimal.Decimal   `json:"amount" form:"amount"`
	Direction    types.Direction   `json:"direction" form:"direction" validate:"required|VaildateDirection"`
	Mode         types.PaymentMode `json:"mode" form:"mode" validate:"required|VaildateMode"`
	PartyName    string            `json:"party_name" form:"party_name" validate:"required"`
	PartyContact string            `json:"party_contact" form:"party_contact"`
	Particular   string            `json:"particular" form:"particular" validate:"required"`
	CashTo       string            `json:"cash_to" form:"cash_to"`
	ReceiptDate  string            `json:"receipt_date" form:"receipt_date" validate:"VaildateReceiptDate"`
}

func (p CreateReceiptParams) Messages() map[string]string {
	invalid_message := "ledger.receipt.invalid_{field}"

	return validate.MS{
		"required":            invalid_message,
		"VaildateDirection":   invalid_message,
		"VaildateMode":        invalid_message,
		"VaildateReceiptDate": invalid_message,
	}
}

// an absent amount decodes to the zero decimal and never reaches the tag
// validators, so amounts are checked in CreateReceipt
func (p CreateReceiptParams) VaildateAmount() bool {
	return p.Amount.IsPositive()
}

func (p CreateReceiptParams) VaildateDirection(Direction types.Direction) bool {
	return Direction == types.DirectionCredit || Direction == types.DirectionDebit
}

func (p CreateReceiptParams) VaildateMode(Mode types.PaymentMode) bool {
	switch Mode {
	case types.ModeCash, types.ModeBank, types.ModeCard, types.ModeCheque:
		return true
	}

	return false
}

// an empty cash_to never reaches the tag validators, so the cash-mode rule
// is enforced in the receipts controller. The target must carry a known
// account type or its mirror would fall outside every subtotal.
func (p CreateReceiptParams) VaildateCashTo() bool {
	if p.Mode != types.ModeCash {
		return true
	}

	if len(p.CashTo) == 0 {
		return false
	}

	_, account_type := models.ParseAccountID(p.CashTo)

	return models.ValidAccountType(account_type)
}

func (p CreateReceiptParams) VaildateReceiptDate(ReceiptDate string) bool {
	if len(ReceiptDate) == 0 {
		return true
	}

	_, err := time.Parse("2006-01-02", ReceiptDate)

	return err == nil
}

func (p CreateReceiptParams) BuildReceipt() *models.MoneyReceipt {
	receipt := &models.MoneyReceipt{
		Amount:       p.Amount,
		Direction:    p.Direction,
		Mode:         p.Mode,
		PartyName:    p.PartyName,
		PartyContact: p.PartyContact,
		Particular:   p.Particular,
		CashTo:       p.CashTo,
	}

	if len(p.ReceiptDate) > 0 {
		receipt.ReceiptDate, _ = time.Parse("2006-01-02", p.ReceiptDate)
	}

	return receipt
}

// ReceiptErrorStatus maps a failed submit to its HTTP status and error
// code. A serial conflict rejects before any write and the caller may
// retry; a mirror failure means the receipt itself was persisted.
func ReceiptErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrTransactionConflict):
		return 503, "ledger.serial.conflict"
	case errors.Is(err, models.ErrMirrorFailed):
		return 500, "ledger.receipt.mirror_failed"
	}

	return 500, "server.internal_error"
}
