package types

type Direction = string

var (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

type PaymentMode = string

var (
	ModeCash   PaymentMode = "cash"
	ModeBank   PaymentMode = "bank"
	ModeCard   PaymentMode = "card"
	ModeCheque PaymentMode = "cheque"
)

type AccountType = string

var (
	AccountBank   AccountType = "Bank"
	AccountLocker AccountType = "Locker"
)

type ApprovalState = string

var (
	StateApproved ApprovalState = "approved"
	StateDenied   ApprovalState = "denied"
)

type ReceiptApproval = string

var (
	ReceiptPending  ReceiptApproval = "no"
	ReceiptAccepted ReceiptApproval = "accepted"
)

type PayloadAction = string

var (
	ActionReceiptCreated      PayloadAction = "receipt_created"
	ActionTransactionAppended PayloadAction = "transaction_appended"
	ActionTransactionApproved PayloadAction = "transaction_approved"
	ActionReload              PayloadAction = "reload"
)

type LedgerPayloadMessage struct {
	Action    PayloadAction `json:"action"`
	ReceiptID string        `json:"receipt_id,omitempty"`
	AccountID string        `json:"account_id,omitempty"`
}

type OrderBy = string

var (
	OrderByAsc  OrderBy = "asc"
	OrderByDesc OrderBy = "desc"
)
