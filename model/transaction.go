package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	// TransactionTypeSandbox tags seeded historical transactions.
	TransactionTypeSandbox = "SANDBOX_TAN"
	// ChargePolicyShared is the charge policy applied to seeded transactions.
	ChargePolicyShared = "SHARED"
	// TransactionRequestTypeAccount is the account-to-account transfer type.
	TransactionRequestTypeAccount = "ACCOUNT"
)

// TransactionValue is the amount/currency pair used in transaction payloads.
// Amounts travel as decimal strings.
type TransactionValue struct {
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
}

// TransactionAccount references an account involved in a transaction.
type TransactionAccount struct {
	ID     string `json:"id"`
	BankID string `json:"bank_id,omitempty"`
}

// TransactionDetails carries the descriptive part of a transaction.
type TransactionDetails struct {
	Type        string           `json:"type"`
	Description string           `json:"description"`
	Posted      string           `json:"posted"`
	Completed   string           `json:"completed"`
	Value       TransactionValue `json:"value"`
}

// Transaction is a settled transaction as reported by the sandbox API.
type Transaction struct {
	TransactionID string             `json:"transaction_id"`
	ThisAccount   TransactionAccount `json:"this_account"`
	OtherAccount  TransactionAccount `json:"other_account"`
	Details       TransactionDetails `json:"details"`
}

// TransactionsResponse wraps the transaction list endpoint payload.
type TransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
}

// CreateHistoricalTransactionRequest inserts a backdated, already-settled
// transfer between two accounts at the same bank. Posted and completed carry
// the same timestamp in seeded data.
type CreateHistoricalTransactionRequest struct {
	FromAccountID string           `json:"from_account_id"`
	ToAccountID   string           `json:"to_account_id"`
	Value         TransactionValue `json:"value"`
	Description   string           `json:"description"`
	Posted        string           `json:"posted"`
	Completed     string           `json:"completed"`
	Type          string           `json:"type"`
	ChargePolicy  string           `json:"charge_policy"`
}

func (r *CreateHistoricalTransactionRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FromAccountID, validation.Required),
		validation.Field(&r.ToAccountID, validation.Required,
			validation.NotIn(r.FromAccountID).Error("must differ from the source account")),
		validation.Field(&r.Description, validation.Length(0, MaxDescriptionLength)),
	)
}

// TransactionRequestTo addresses the destination of a transaction request.
// Unlike historical transactions, it may point at a different bank.
type TransactionRequestTo struct {
	BankID    string `json:"bank_id"`
	AccountID string `json:"account_id"`
}

// TransactionRequestDetails carries the value and description of a request.
type TransactionRequestDetails struct {
	Value       TransactionValue `json:"value"`
	Description string           `json:"description"`
}

// TransactionRequest is a live transfer instruction with a lifecycle status.
// The status is reported once and not polled to completion.
type TransactionRequest struct {
	ID      string                    `json:"id"`
	Type    string                    `json:"type"`
	From    TransactionAccount        `json:"from"`
	Details TransactionRequestDetails `json:"details"`
	Status  string                    `json:"status"`
}

// CreateTransactionRequestBody is the payload for issuing a transfer request.
type CreateTransactionRequestBody struct {
	To          TransactionRequestTo `json:"to"`
	Value       TransactionValue     `json:"value"`
	Description string               `json:"description"`
}
