package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/venueops/cashbook/config"
	"github.com/venueops/cashbook/mq_client"
	"github.com/venueops/cashbook/types"
	"gorm.io/gorm"
)

// Account is a named cash holding point (Bank or Locker). Its id is
// "{Name}-{Type}". Accounts are created lazily on first distribution and
// never deleted.
type Account struct {
	ID          string            `json:"id" gorm:"primaryKey"`
	Name        string            `json:"name"`
	OwnerEmail  string            `json:"owner_email"`
	Type        types.AccountType `json:"type"`
	AutoApprove bool              `json:"auto_approve"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`

	Transactions []AccountTransaction `json:"transactions,omitempty" gorm:"foreignKey:AccountID"`
}

// ParseAccountID splits an account key into name and type. The type is the
// segment after the last dash, the name everything before it.
func ParseAccountID(id string) (string, types.AccountType) {
	idx := strings.LastIndex(id, "-")
	if idx < 0 {
		return id, types.AccountBank
	}

	return id[:idx], id[idx+1:]
}

func ValidAccountType(t types.AccountType) bool {
	return t == types.AccountBank || t == types.AccountLocker
}

func FindOrCreateAccount(tx *gorm.DB, id string) (*Account, error) {
	name, account_type := ParseAccountID(id)

	account := &Account{}

	err := tx.Where(Account{ID: id}).Attrs(Account{
		Name: name,
		Type: account_type,
	}).FirstOrCreate(account).Error

	return account, err
}

func GetAccounts() ([]Account, error) {
	var accounts []Account

	err := config.DataBase.Preload("Transactions").Order("id asc").Find(&accounts).Error

	return accounts, err
}

// Append adds a transaction to the account's ledger. Purely additive; prior
// entries are never edited here.
func (a *Account) Append(tx *gorm.DB, txn *AccountTransaction) error {
	txn.AccountID = a.ID

	if err := tx.Create(txn).Error; err != nil {
		return err
	}

	a.TriggerEvent(txn)

	return nil
}

// Balance sums signed amounts over approved entries only. Denied entries do
// not contribute at all.
func (a *Account) Balance(tx *gorm.DB) decimal.Decimal {
	var txns []AccountTransaction

	tx.Where("account_id = ? AND approval = ?", a.ID, types.StateApproved).Find(&txns)

	balance := decimal.Zero
	for _, txn := range txns {
		balance = balance.Add(txn.SignedAmount())
	}

	return balance
}

func (a *Account) HasPending(tx *gorm.DB) bool {
	var count int64

	tx.Model(&AccountTransaction{}).
		Where("account_id = ? AND approval = ?", a.ID, types.StateDenied).
		Count(&count)

	return count > 0
}

func (a *Account) TriggerEvent(txn *AccountTransaction) {
	payload_message, _ := json.Marshal(txn.ToJSON())

	mq_client.EnqueueEvent("private", a.OwnerEmail, "distribution", payload_message)
	PublishLedgerEvent(types.LedgerPayloadMessage{
		Action:    types.ActionTransactionAppended,
		AccountID: a.ID,
	})
}

type AccountJSON struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Type        types.AccountType `json:"type"`
	AutoApprove bool              `json:"auto_approve"`
	Balance     decimal.Decimal   `json:"balance"`
	Pending     bool              `json:"pending"`
}

func (a *Account) ToJSON(tx *gorm.DB) AccountJSON {
	return AccountJSON{
		ID:          a.ID,
		Name:        a.Name,
		Type:        a.Type,
		AutoApprove: a.AutoApprove,
		Balance:     a.Balance(tx),
		Pending:     a.HasPending(tx),
	}
}

func PublishLedgerEvent(message types.LedgerPayloadMessage) {
	payload, _ := json.Marshal(message)

	if err := config.Nats.Publish("cashbook.ledger", payload); err != nil {
		config.Logger.Errorf("Failed to publish ledger event: %v", err.Error())
	}
}
