package helpers

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/venueops/cashbook/models"
	"github.com/venueops/cashbook/types"
)

func TestBuildTransactionAutoApprove(t *testing.T) {
	payload := AppendTransactionParams{
		Amount:      decimal.NewFromInt(700),
		Direction:   types.DirectionCredit,
		Description: "cash moved to house bank",
	}

	member := &models.Member{Email: "clerk@venue.test"}
	house := &models.Account{ID: "HouseBank-Bank", OwnerEmail: "owner@venue.test", AutoApprove: true}
	locker := &models.Account{ID: "Locker1-Locker", OwnerEmail: "owner@venue.test"}

	approved := payload.BuildTransaction(house, member)
	denied := payload.BuildTransaction(locker, member)

	assert.Equal(t, types.StateApproved, approved.Approval)
	assert.Equal(t, types.StateDenied, denied.Approval)
	assert.Equal(t, "clerk@venue.test", denied.IssuerEmail)
	assert.Equal(t, "owner@venue.test", denied.ReceiverEmail)
}

func TestAppendTransactionParamsValidation(t *testing.T) {
	err_src := new(Errors)

	payload := &AppendTransactionParams{
		Amount:      decimal.NewFromInt(-1),
		Direction:   "sideways",
		Description: "",
	}

	Vaildate(payload, err_src)

	assert.Greater(t, err_src.Size(), 0)
	assert.False(t, payload.VaildateAmount())
}

func TestCreateAccountParamsBuildAccount(t *testing.T) {
	payload := CreateAccountParams{
		Name:        "Locker1",
		Type:        types.AccountLocker,
		OwnerEmail:  "owner@venue.test",
		AutoApprove: false,
	}

	account := payload.BuildAccount()

	assert.Equal(t, "Locker1-Locker", account.ID)
	assert.Equal(t, "owner@venue.test", account.OwnerEmail)
	assert.False(t, account.AutoApprove)
}

func TestCreateAccountParamsInvalidType(t *testing.T) {
	err_src := new(Errors)

	Vaildate(&CreateAccountParams{
		Name:       "Drawer",
		Type:       "Drawer",
		OwnerEmail: "owner@venue.test",
	}, err_src)

	assert.Contains(t, err_src.Errors, "ledger.account.invalid_type")
}
