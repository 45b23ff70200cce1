package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// FXRate is a currency conversion entry at a bank, keyed by
// (bank, source currency, target currency).
type FXRate struct {
	BankID                 string  `json:"bank_id"`
	FromCurrencyCode       string  `json:"from_currency_code"`
	ToCurrencyCode         string  `json:"to_currency_code"`
	ConversionValue        float64 `json:"conversion_value"`
	InverseConversionValue float64 `json:"inverse_conversion_value"`
	EffectiveDate          string  `json:"effective_date"`
}

// CreateFXRateRequest is the upsert payload for an FX rate. The remote system
// creates or overwrites the entry per call; no history is kept.
type CreateFXRateRequest struct {
	BankID                 string  `json:"bank_id"`
	FromCurrencyCode       string  `json:"from_currency_code"`
	ToCurrencyCode         string  `json:"to_currency_code"`
	ConversionValue        float64 `json:"conversion_value"`
	InverseConversionValue float64 `json:"inverse_conversion_value"`
	EffectiveDate          string  `json:"effective_date"`
}

// ApplyInverse fills the inverse conversion value with the reciprocal of the
// conversion value, rounded to six decimal places, when it was not supplied.
func (r *CreateFXRateRequest) ApplyInverse() {
	if r.InverseConversionValue != 0 || r.ConversionValue == 0 {
		return
	}
	inverse := decimal.NewFromInt(1).Div(decimal.NewFromFloat(r.ConversionValue)).Round(6)
	r.InverseConversionValue = inverse.InexactFloat64()
}

func (r *CreateFXRateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.BankID, validation.Required),
		validation.Field(&r.FromCurrencyCode, validation.Required, validation.Length(3, 3)),
		validation.Field(&r.ToCurrencyCode, validation.Required, validation.Length(3, 3)),
		validation.Field(&r.ConversionValue, validation.Required, validation.Min(0.0).Exclusive()),
	)
}
