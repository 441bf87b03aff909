package recon

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/venueops/cashbook/models"
	"github.com/venueops/cashbook/types"
)

func cashReceipt(serial int64, direction types.Direction, amount string, date time.Time) models.MoneyReceipt {
	return models.MoneyReceipt{
		ID:          "r" + models.SerialString(serial),
		Serial:      models.SerialString(serial),
		SerialNum:   serial,
		Amount:      decimal.RequireFromString(amount),
		Direction:   direction,
		Mode:        types.ModeCash,
		PartyName:   "party",
		Particular:  "booking advance",
		Bucket:      models.MonthBucket(date),
		ReceiptDate: date,
	}
}

func account(id string, accountType types.AccountType, autoApprove bool, txns ...models.AccountTransaction) models.Account {
	name, _ := models.ParseAccountID(id)

	return models.Account{
		ID:           id,
		Name:         name,
		Type:         accountType,
		OwnerEmail:   "owner@venue.test",
		AutoApprove:  autoApprove,
		Transactions: txns,
	}
}

func txn(direction types.Direction, amount string, approval types.ApprovalState) models.AccountTransaction {
	return models.AccountTransaction{
		Amount:    decimal.RequireFromString(amount),
		Direction: direction,
		Approval:  approval,
	}
}

func TestReconcileEmpty(t *testing.T) {
	totals := Reconcile(nil, nil, Window{})

	assert.True(t, totals.TotalCash.IsZero())
	assert.True(t, totals.CashInHand.IsZero())
	assert.Empty(t, totals.Accounts)
}

func TestReconcileTotalCashSignedSum(t *testing.T) {
	day := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)

	receipts := []models.MoneyReceipt{
		cashReceipt(1, types.DirectionCredit, "10000", day),
		cashReceipt(2, types.DirectionDebit, "2500", day),
		cashReceipt(3, types.DirectionCredit, "100.50", day),
	}

	totals := Reconcile(receipts, nil, Window{})

	assert.Equal(t, "7600.5", totals.TotalCash.String())
	assert.Equal(t, "7600.5", totals.CashInHand.String())
}

func TestReconcileIgnoresNonCashModes(t *testing.T) {
	day := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)

	bank := cashReceipt(2, types.DirectionCredit, "9999", day)
	bank.Mode = types.ModeBank
	cheque := cashReceipt(3, types.DirectionCredit, "123", day)
	cheque.Mode = types.ModeCheque

	receipts := []models.MoneyReceipt{
		cashReceipt(1, types.DirectionCredit, "500", day),
		bank,
		cheque,
	}

	totals := Reconcile(receipts, nil, Window{})

	assert.Equal(t, "500", totals.TotalCash.String())
}

func TestReconcileNoFloatDrift(t *testing.T) {
	day := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)

	receipts := []models.MoneyReceipt{
		cashReceipt(1, types.DirectionCredit, "0.1", day),
		cashReceipt(2, types.DirectionCredit, "0.1", day),
		cashReceipt(3, types.DirectionCredit, "0.1", day),
	}

	totals := Reconcile(receipts, nil, Window{})

	assert.True(t, totals.TotalCash.Equal(decimal.RequireFromString("0.3")))
}

func TestReconcileDeniedExcludedFromBalance(t *testing.T) {
	accounts := []models.Account{
		account("Locker1-Locker", types.AccountLocker, false,
			txn(types.DirectionCredit, "7000", types.StateApproved),
			txn(types.DirectionCredit, "999999", types.StateDenied),
			txn(types.DirectionDebit, "123456", types.StateDenied),
		),
	}

	totals := Reconcile(nil, accounts, Window{})

	assert.Equal(t, "7000", totals.Balance("Locker1-Locker").String())
	assert.Equal(t, "7000", totals.LockerTotal.String())
	assert.True(t, totals.Pending("Locker1-Locker"))
}

func TestReconcileCashInHandInvariant(t *testing.T) {
	day := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	receipts := []models.MoneyReceipt{
		cashReceipt(1, types.DirectionCredit, "20000", day),
	}

	accounts := []models.Account{
		account("HouseBank-Bank", types.AccountBank, true,
			txn(types.DirectionCredit, "12000", types.StateApproved),
		),
		account("Locker1-Locker", types.AccountLocker, false,
			txn(types.DirectionCredit, "3000", types.StateApproved),
		),
	}

	totals := Reconcile(receipts, accounts, Window{})

	assert.Equal(t, "20000", totals.TotalCash.String())
	assert.Equal(t, "12000", totals.BankTotal.String())
	assert.Equal(t, "3000", totals.LockerTotal.String())
	assert.Equal(t, "5000", totals.CashInHand.String())
}

// Credit receipt mirrored into an auto-approve bank account: totalCash and
// the account balance move together, cash in hand is unchanged.
func TestReconcileScenarioAutoApprovedMirror(t *testing.T) {
	day := time.Date(2026, time.July, 3, 0, 0, 0, 0, time.UTC)

	receipts := []models.MoneyReceipt{
		cashReceipt(1, types.DirectionCredit, "10000", day),
	}

	accounts := []models.Account{
		account("HouseBank-Bank", types.AccountBank, true,
			txn(types.DirectionCredit, "10000", types.StateApproved),
		),
	}

	totals := Reconcile(receipts, accounts, Window{})

	assert.Equal(t, "10000", totals.TotalCash.String())
	assert.Equal(t, "10000", totals.Balance("HouseBank-Bank").String())
	assert.True(t, totals.CashInHand.IsZero())
	assert.False(t, totals.Pending("HouseBank-Bank"))
}

// Debit receipt mirrored into a locker pending the owner's approval: the
// denied entry does not touch the locker balance, cash in hand drops.
func TestReconcileScenarioPendingMirror(t *testing.T) {
	day := time.Date(2026, time.July, 4, 0, 0, 0, 0, time.UTC)

	receipts := []models.MoneyReceipt{
		cashReceipt(1, types.DirectionDebit, "5000", day),
	}

	accounts := []models.Account{
		account("Locker1-Locker", types.AccountLocker, false,
			txn(types.DirectionDebit, "5000", types.StateDenied),
		),
	}

	totals := Reconcile(receipts, accounts, Window{})

	assert.Equal(t, "-5000", totals.TotalCash.String())
	assert.True(t, totals.Balance("Locker1-Locker").IsZero())
	assert.Equal(t, "-5000", totals.CashInHand.String())
	assert.True(t, totals.Pending("Locker1-Locker"))
}

// The owner approves: the locker balance absorbs the debit and cash in hand
// recomputes consistently.
func TestReconcileScenarioApprovedMirror(t *testing.T) {
	day := time.Date(2026, time.July, 4, 0, 0, 0, 0, time.UTC)

	receipts := []models.MoneyReceipt{
		cashReceipt(1, types.DirectionDebit, "5000", day),
	}

	accounts := []models.Account{
		account("Locker1-Locker", types.AccountLocker, false,
			txn(types.DirectionDebit, "5000", types.StateApproved),
		),
	}

	totals := Reconcile(receipts, accounts, Window{})

	assert.Equal(t, "-5000", totals.TotalCash.String())
	assert.Equal(t, "-5000", totals.Balance("Locker1-Locker").String())
	assert.True(t, totals.CashInHand.IsZero())
	assert.False(t, totals.Pending("Locker1-Locker"))
}

func TestReconcileWindowFiltering(t *testing.T) {
	inside := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)
	before := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)
	after := time.Date(2027, time.April, 1, 0, 0, 0, 0, time.UTC)

	receipts := []models.MoneyReceipt{
		cashReceipt(1, types.DirectionCredit, "100", before),
		cashReceipt(2, types.DirectionCredit, "200", inside),
		cashReceipt(3, types.DirectionCredit, "400", after),
	}

	window := FinancialYear(inside)
	totals := Reconcile(receipts, nil, window)

	assert.Equal(t, "200", totals.TotalCash.String())
}

func TestReconcileWindowBoundsInclusive(t *testing.T) {
	from := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.April, 30, 0, 0, 0, 0, time.UTC)

	receipts := []models.MoneyReceipt{
		cashReceipt(1, types.DirectionCredit, "1", from),
		cashReceipt(2, types.DirectionCredit, "2", to),
	}

	totals := Reconcile(receipts, nil, Window{From: from, To: to})

	assert.Equal(t, "3", totals.TotalCash.String())
}

func TestReconcileOrderIndependent(t *testing.T) {
	day := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)

	receipts := []models.MoneyReceipt{
		cashReceipt(1, types.DirectionCredit, "100", day),
		cashReceipt(2, types.DirectionDebit, "30", day),
		cashReceipt(3, types.DirectionCredit, "7", day),
	}

	reversed := []models.MoneyReceipt{receipts[2], receipts[1], receipts[0]}

	accounts := []models.Account{
		account("Locker1-Locker", types.AccountLocker, false,
			txn(types.DirectionCredit, "50", types.StateApproved),
		),
		account("HouseBank-Bank", types.AccountBank, true,
			txn(types.DirectionCredit, "20", types.StateApproved),
		),
	}

	shuffled := []models.Account{accounts[1], accounts[0]}

	a := Reconcile(receipts, accounts, Window{})
	b := Reconcile(reversed, shuffled, Window{})

	assert.True(t, a.TotalCash.Equal(b.TotalCash))
	assert.True(t, a.CashInHand.Equal(b.CashInHand))
	assert.True(t, a.LockerTotal.Equal(b.LockerTotal))
	assert.True(t, a.BankTotal.Equal(b.BankTotal))
	assert.Equal(t, len(a.Accounts), len(b.Accounts))

	// account order is deterministic regardless of input order
	for i := range a.Accounts {
		assert.Equal(t, a.Accounts[i].ID, b.Accounts[i].ID)
	}
}

func TestReconcileIdempotent(t *testing.T) {
	day := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)

	receipts := []models.MoneyReceipt{
		cashReceipt(1, types.DirectionCredit, "100", day),
	}

	accounts := []models.Account{
		account("Locker1-Locker", types.AccountLocker, false,
			txn(types.DirectionCredit, "40", types.StateApproved),
		),
	}

	first := Reconcile(receipts, accounts, Window{})
	second := Reconcile(receipts, accounts, Window{})

	assert.True(t, first.TotalCash.Equal(second.TotalCash))
	assert.True(t, first.CashInHand.Equal(second.CashInHand))
}
