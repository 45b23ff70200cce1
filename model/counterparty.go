package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// BespokeField is a free-form key/value tag attached to a counterparty.
type BespokeField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Counterparty is a saved external payee/payer record attached to an account.
type Counterparty struct {
	CounterpartyID             string         `json:"counterparty_id"`
	Name                       string         `json:"name"`
	Description                string         `json:"description"`
	Currency                   string         `json:"currency"`
	OtherAccountRoutingScheme  string         `json:"other_account_routing_scheme"`
	OtherAccountRoutingAddress string         `json:"other_account_routing_address"`
	OtherBankRoutingScheme     string         `json:"other_bank_routing_scheme"`
	OtherBankRoutingAddress    string         `json:"other_bank_routing_address"`
	IsBeneficiary              bool           `json:"is_beneficiary"`
	Bespoke                    []BespokeField `json:"bespoke"`
}

// CounterpartiesResponse wraps the counterparty list endpoint payload.
type CounterpartiesResponse struct {
	Counterparties []Counterparty `json:"counterparties"`
}

// CreateCounterpartyRequest is the full counterparty creation payload. The
// secondary and branch routing fields are required by the remote schema but
// always empty in seeded data.
type CreateCounterpartyRequest struct {
	Name                                string         `json:"name"`
	Description                         string         `json:"description"`
	Currency                            string         `json:"currency"`
	OtherAccountRoutingScheme           string         `json:"other_account_routing_scheme"`
	OtherAccountRoutingAddress          string         `json:"other_account_routing_address"`
	OtherAccountSecondaryRoutingScheme  string         `json:"other_account_secondary_routing_scheme"`
	OtherAccountSecondaryRoutingAddress string         `json:"other_account_secondary_routing_address"`
	OtherBankRoutingScheme              string         `json:"other_bank_routing_scheme"`
	OtherBankRoutingAddress             string         `json:"other_bank_routing_address"`
	OtherBranchRoutingScheme            string         `json:"other_branch_routing_scheme"`
	OtherBranchRoutingAddress           string         `json:"other_branch_routing_address"`
	IsBeneficiary                       bool           `json:"is_beneficiary"`
	Bespoke                             []BespokeField `json:"bespoke"`
}

func (r *CreateCounterpartyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Currency, validation.Required, validation.Length(3, 3)),
		validation.Field(&r.Description, validation.Length(0, MaxDescriptionLength)),
	)
}
