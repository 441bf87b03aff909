package recon

import (
	"time"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
	"github.com/shopspring/decimal"

	"github.com/venueops/cashbook/models"
	"github.com/venueops/cashbook/types"
)

type AccountTotal struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Type    types.AccountType `json:"type"`
	Balance decimal.Decimal   `json:"balance"`
	Pending bool              `json:"pending"`
}

type Totals struct {
	TotalCash   decimal.Decimal `json:"total_cash"`
	LockerTotal decimal.Decimal `json:"locker_total"`
	BankTotal   decimal.Decimal `json:"bank_total"`
	CashInHand  decimal.Decimal `json:"cash_in_hand"`
	Accounts    []AccountTotal  `json:"accounts"`
	Window      Window          `json:"window"`
	ComputedAt  time.Time       `json:"computed_at"`
}

func (t *Totals) Account(id string) (AccountTotal, bool) {
	for _, account := range t.Accounts {
		if account.ID == id {
			return account, true
		}
	}

	return AccountTotal{}, false
}

func (t *Totals) Balance(id string) decimal.Decimal {
	account, _ := t.Account(id)

	return account.Balance
}

func (t *Totals) Pending(id string) bool {
	account, found := t.Account(id)

	return found && account.Pending
}

// Reconcile derives venue-wide totals from full snapshots of the receipt
// and distribution streams. It never keeps running state between calls, so
// repeated or out-of-order snapshot delivery cannot double-count.
func Reconcile(receipts []models.MoneyReceipt, accounts []models.Account, window Window) *Totals {
	totals := &Totals{
		TotalCash:   decimal.Zero,
		LockerTotal: decimal.Zero,
		BankTotal:   decimal.Zero,
		Accounts:    []AccountTotal{},
		Window:      window,
		ComputedAt:  time.Now(),
	}

	for _, receipt := range receipts {
		if receipt.Mode != types.ModeCash {
			continue
		}

		if !window.Contains(receipt.ReceiptDate) {
			continue
		}

		totals.TotalCash = totals.TotalCash.Add(receipt.SignedAmount())
	}

	balances := redblacktree.NewWith(utils.StringComparator)

	for _, account := range accounts {
		balance := decimal.Zero
		pending := false

		for _, txn := range account.Transactions {
			if !txn.Approved() {
				pending = true
				continue
			}

			balance = balance.Add(txn.SignedAmount())
		}

		balances.Put(account.ID, AccountTotal{
			ID:      account.ID,
			Name:    account.Name,
			Type:    account.Type,
			Balance: balance,
			Pending: pending,
		})
	}

	it := balances.Iterator()
	for it.Next() {
		account := it.Value().(AccountTotal)

		switch account.Type {
		case types.AccountLocker:
			totals.LockerTotal = totals.LockerTotal.Add(account.Balance)
		case types.AccountBank:
			totals.BankTotal = totals.BankTotal.Add(account.Balance)
		}

		totals.Accounts = append(totals.Accounts, account)
	}

	totals.CashInHand = totals.TotalCash.Sub(totals.LockerTotal.Add(totals.BankTotal))

	return totals
}
