package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Recurrence classifies how often a transaction template fires.
type Recurrence string

const (
	RecurrenceMonthly   Recurrence = "monthly"
	RecurrenceWeekly    Recurrence = "weekly"
	RecurrenceBiweekly  Recurrence = "biweekly"
	RecurrenceQuarterly Recurrence = "quarterly"
)

// OccursOn reports whether a template with this recurrence fires on the given
// day. The predicate is a pure function of the date:
//   - monthly fires on the 1st of each month
//   - weekly fires on Mondays
//   - biweekly fires on the 1st and the 15th
//   - quarterly fires on the 1st of January, April, July and October
func (r Recurrence) OccursOn(day time.Time) bool {
	switch r {
	case RecurrenceMonthly:
		return day.Day() == 1
	case RecurrenceWeekly:
		return day.Weekday() == time.Monday
	case RecurrenceBiweekly:
		return day.Day() == 1 || day.Day() == 15
	case RecurrenceQuarterly:
		return day.Day() == 1 && int(day.Month())%3 == 1
	}
	return false
}

func (r Recurrence) Validate() error {
	return validation.Validate(string(r), validation.Required,
		validation.In(string(RecurrenceMonthly), string(RecurrenceWeekly),
			string(RecurrenceBiweekly), string(RecurrenceQuarterly)))
}

// BankDefinition is a catalog entry for a demo bank. The bank identifier is
// derived at provisioning time as "{prefix}.{suffix}".
type BankDefinition struct {
	Suffix    string
	FullName  string
	ShortName string
	Website   string
}

func (d BankDefinition) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Suffix, validation.Required),
		validation.Field(&d.FullName, validation.Required),
		validation.Field(&d.ShortName, validation.Required),
	)
}

// AccountDefinition is a catalog entry for a demo account.
type AccountDefinition struct {
	Label       string
	ProductCode string
}

func (d AccountDefinition) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Label, validation.Required),
		validation.Field(&d.ProductCode, validation.Required),
	)
}

// Business is a catalog entry for a small business used as counterparty data.
type Business struct {
	Name          string
	Description   string
	Category      string
	Location      string
	AccountNumber string
	BankCode      string
}

func (b Business) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Name, validation.Required),
		validation.Field(&b.AccountNumber, validation.Required),
		validation.Field(&b.BankCode, validation.Required),
	)
}

// CounterpartyRequest maps the business to a counterparty creation payload.
// The description is truncated to the remote system's 36 character limit and
// category/location travel as bespoke tags.
func (b Business) CounterpartyRequest(currency string) CreateCounterpartyRequest {
	return CreateCounterpartyRequest{
		Name:                       b.Name,
		Description:                TruncateDescription(b.Description),
		Currency:                   currency,
		OtherAccountRoutingScheme:  "AccountNumber",
		OtherAccountRoutingAddress: b.AccountNumber,
		OtherBankRoutingScheme:     "BIC",
		OtherBankRoutingAddress:    b.BankCode,
		IsBeneficiary:              true,
		Bespoke: []BespokeField{
			{Key: "category", Value: b.Category},
			{Key: "location", Value: b.Location},
		},
	}
}

// TransactionTemplate describes one recurring synthetic transaction.
type TransactionTemplate struct {
	Description string
	MinAmount   float64
	MaxAmount   float64
	Recurrence  Recurrence
}

func (t TransactionTemplate) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Description, validation.Required),
		validation.Field(&t.MinAmount, validation.Min(0.0).Exclusive()),
		validation.Field(&t.MaxAmount, validation.Min(t.MinAmount)),
		validation.Field(&t.Recurrence),
	)
}

// FXRateDefinition is a directed catalog entry for one FX rate. Forward and
// reverse directions are independent entries; the inverse value is supplied
// explicitly and must be kept consistent with the opposite entry by the data
// author.
type FXRateDefinition struct {
	FromCurrencyCode       string
	ToCurrencyCode         string
	ConversionValue        float64
	InverseConversionValue float64
}

func (d FXRateDefinition) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.FromCurrencyCode, validation.Required, validation.Length(3, 3)),
		validation.Field(&d.ToCurrencyCode, validation.Required, validation.Length(3, 3)),
		validation.Field(&d.ConversionValue, validation.Min(0.0).Exclusive()),
	)
}

// Request builds the upsert payload for this definition at a bank.
func (d FXRateDefinition) Request(bankID, effectiveDate string) CreateFXRateRequest {
	req := CreateFXRateRequest{
		BankID:                 bankID,
		FromCurrencyCode:       d.FromCurrencyCode,
		ToCurrencyCode:         d.ToCurrencyCode,
		ConversionValue:        d.ConversionValue,
		InverseConversionValue: d.InverseConversionValue,
		EffectiveDate:          effectiveDate,
	}
	req.ApplyInverse()
	return req
}

// TransferDefinition addresses one seeded transaction request by index into
// the flattened list of created accounts.
type TransferDefinition struct {
	FromIndex   int
	ToIndex     int
	Amount      float64
	Description string
}
