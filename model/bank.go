package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// BankRouting is a routing entry (scheme/address pair) attached to a bank.
type BankRouting struct {
	Scheme  string `json:"scheme"`
	Address string `json:"address"`
}

// Bank is a bank as returned by the sandbox API. Depending on the endpoint
// the identifier arrives as "id" or "bank_id", so both are mapped.
type Bank struct {
	ID           string        `json:"id,omitempty"`
	BankID       string        `json:"bank_id,omitempty"`
	FullName     string        `json:"full_name"`
	ShortName    string        `json:"short_name"`
	Logo         string        `json:"logo,omitempty"`
	Website      string        `json:"website,omitempty"`
	BankRoutings []BankRouting `json:"bank_routings,omitempty"`
}

// Identifier resolves the bank identifier regardless of which field the
// remote system populated.
func (b *Bank) Identifier() string {
	if b.BankID != "" {
		return b.BankID
	}
	return b.ID
}

// BanksResponse wraps the bank list endpoint payload.
type BanksResponse struct {
	Banks []Bank `json:"banks"`
}

// CreateBankRequest is the payload for creating a bank.
type CreateBankRequest struct {
	ID           string        `json:"id"`
	FullName     string        `json:"full_name"`
	ShortName    string        `json:"short_name"`
	Logo         string        `json:"logo"`
	Website      string        `json:"website"`
	BankRoutings []BankRouting `json:"bank_routings"`
}

func (r *CreateBankRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ID, validation.Required),
		validation.Field(&r.FullName, validation.Required),
		validation.Field(&r.ShortName, validation.Required),
	)
}
