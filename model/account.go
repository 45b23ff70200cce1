package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Balance is a monetary amount with its currency, serialized as strings
// the way the sandbox API expects.
type Balance struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// AccountRouting is a routing entry (scheme/address pair) for an account.
type AccountRouting struct {
	Scheme  string `json:"scheme"`
	Address string `json:"address"`
}

// Account is an account as returned by the sandbox API. List endpoints report
// the identifier as "id" while the create endpoint reports "account_id".
type Account struct {
	AccountID       string           `json:"account_id,omitempty"`
	ID              string           `json:"id,omitempty"`
	BankID          string           `json:"bank_id,omitempty"`
	Label           string           `json:"label"`
	Currency        string           `json:"currency"`
	Balance         Balance          `json:"balance,omitempty"`
	ProductCode     string           `json:"product_code,omitempty"`
	BranchID        string           `json:"branch_id,omitempty"`
	AccountRoutings []AccountRouting `json:"account_routings,omitempty"`
}

// Identifier resolves the account identifier regardless of which field the
// remote system populated.
func (a *Account) Identifier() string {
	if a.AccountID != "" {
		return a.AccountID
	}
	return a.ID
}

// AccountsResponse wraps the account list endpoint payload.
type AccountsResponse struct {
	Accounts []Account `json:"accounts"`
}

// CreateAccountRequest is the payload for creating an account. The balance
// amount must be "0" at creation time; the remote system assigns the id.
type CreateAccountRequest struct {
	Label           string           `json:"label"`
	Currency        string           `json:"currency"`
	Balance         Balance          `json:"balance"`
	UserID          string           `json:"user_id,omitempty"`
	ProductCode     string           `json:"product_code"`
	BranchID        string           `json:"branch_id"`
	AccountRoutings []AccountRouting `json:"account_routings"`
}

func (r *CreateAccountRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Label, validation.Required),
		validation.Field(&r.Currency, validation.Required, validation.Length(3, 3)),
	)
}
