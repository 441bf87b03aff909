package helpers

import (
	"github.com/gookit/validate"
	"github.com/shopspring/decimal"

	"github.com/venueops/cashbook/models"
	"github.com/venueops/cashbook/types"
)

type AppendTransactionParams struct {
	Amount        decimal.Decimal `json:"amount" form:"amount"`
	Direction     types.Direction `json:"direction" form:"direction" validate:"required|VaildateDirection"`
	Description   string          `json:"description" form:"description" validate:"required"`
	ReceiverEmail string          `json:"receiver_email" form:"receiver_email"`
}

func (p AppendTransactionParams) Messages() map[string]string {
	invalid_message := "ledger.transaction.invalid_{field}"

	return validate.MS{
		"required":          invalid_message,
		"VaildateDirection": invalid_message,
	}
}

func (p AppendTransactionParams) VaildateAmount() bool {
	return p.Amount.IsPositive()
}

func (p AppendTransactionParams) VaildateDirection(Direction types.Direction) bool {
	return Direction == types.DirectionCredit || Direction == types.DirectionDebit
}

// BuildTransaction sets the initial approval state from the account policy:
// approved on auto-approve accounts, denied everywhere else until the owner
// signs off.
func (p AppendTransactionParams) BuildTransaction(account *models.Account, member *models.Member) *models.AccountTransaction {
	approval := types.StateDenied
	if account.AutoApprove {
		approval = types.StateApproved
	}

	receiver := p.ReceiverEmail
	if len(receiver) == 0 {
		receiver = account.OwnerEmail
	}

	return &models.AccountTransaction{
		Amount:        p.Amount,
		Direction:     p.Direction,
		Approval:      approval,
		Description:   p.Description,
		ReceiverEmail: receiver,
		IssuerEmail:   member.Email,
	}
}

type CreateAccountParams struct {
	Name        string            `json:"name" form:"name" validate:"required"`
	Type        types.AccountType `json:"type" form:"type" validate:"required|VaildateType"`
	OwnerEmail  string            `json:"owner_email" form:"owner_email" validate:"required"`
	AutoApprove bool              `json:"auto_approve" form:"auto_approve"`
}

func (p CreateAccountParams) Messages() map[string]string {
	return validate.MS{
		"required":     "ledger.account.invalid_{field}",
		"VaildateType": "ledger.account.invalid_type",
	}
}

func (p CreateAccountParams) VaildateType(Type types.AccountType) bool {
	return models.ValidAccountType(Type)
}

func (p CreateAccountParams) BuildAccount() *models.Account {
	return &models.Account{
		ID:          p.Name + "-" + p.Type,
		Name:        p.Name,
		Type:        p.Type,
		OwnerEmail:  p.OwnerEmail,
		AutoApprove: p.AutoApprove,
	}
}
