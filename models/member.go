package models

import (
	"time"

	"github.com/venueops/cashbook/config"
)

type Member struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Member) OwnedAccounts() []Account {
	var accounts []Account

	config.DataBase.Where("owner_email = ?", m.Email).Find(&accounts)

	return accounts
}

func (m *Member) OwnsAccount(account *Account) bool {
	return len(account.OwnerEmail) > 0 && account.OwnerEmail == m.Email
}
