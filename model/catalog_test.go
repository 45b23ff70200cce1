package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRecurrenceOccursOn(t *testing.T) {
	tests := []struct {
		name       string
		day        time.Time
		recurrence Recurrence
		want       bool
	}{
		{"monthly fires on the 1st", date(2024, time.April, 1), RecurrenceMonthly, true},
		{"monthly quiet mid-month", date(2024, time.April, 15), RecurrenceMonthly, false},
		{"weekly fires on Monday", date(2024, time.April, 8), RecurrenceWeekly, true},
		{"weekly quiet on Tuesday", date(2024, time.April, 9), RecurrenceWeekly, false},
		{"biweekly fires on the 1st", date(2024, time.February, 1), RecurrenceBiweekly, true},
		{"biweekly fires on the 15th", date(2024, time.February, 15), RecurrenceBiweekly, true},
		{"biweekly quiet on the 14th", date(2024, time.February, 14), RecurrenceBiweekly, false},
		{"quarterly fires in April", date(2024, time.April, 1), RecurrenceQuarterly, true},
		{"quarterly fires in January", date(2025, time.January, 1), RecurrenceQuarterly, true},
		{"quarterly fires in July", date(2024, time.July, 1), RecurrenceQuarterly, true},
		{"quarterly fires in October", date(2024, time.October, 1), RecurrenceQuarterly, true},
		{"quarterly quiet in February", date(2024, time.February, 1), RecurrenceQuarterly, false},
		{"quarterly quiet mid-quarter-month", date(2024, time.April, 2), RecurrenceQuarterly, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.recurrence.OccursOn(tt.day))
		})
	}
}

// 2024-04-01 is a Monday, so every class except none fires; 2024-10-01 is a
// Tuesday, so weekly stays quiet while the day-of-month classes fire.
func TestRecurrenceOverlap(t *testing.T) {
	april1 := date(2024, time.April, 1)
	assert.True(t, RecurrenceMonthly.OccursOn(april1))
	assert.True(t, RecurrenceBiweekly.OccursOn(april1))
	assert.True(t, RecurrenceQuarterly.OccursOn(april1))
	assert.True(t, RecurrenceWeekly.OccursOn(april1))

	october1 := date(2024, time.October, 1)
	assert.True(t, RecurrenceMonthly.OccursOn(october1))
	assert.True(t, RecurrenceBiweekly.OccursOn(october1))
	assert.True(t, RecurrenceQuarterly.OccursOn(october1))
	assert.False(t, RecurrenceWeekly.OccursOn(october1))
}

func TestBusinessCounterpartyRequest(t *testing.T) {
	business := Business{
		Name:          "Kalahari Safari Tours",
		Description:   "Wildlife safari and eco-tourism services",
		Category:      "Tourism",
		Location:      "Maun",
		AccountNumber: "BW0001000002",
		BankCode:      "SBICBWGX",
	}

	req := business.CounterpartyRequest("BWP")
	assert.NoError(t, req.Validate())
	assert.Equal(t, "Kalahari Safari Tours", req.Name)
	assert.Len(t, []rune(req.Description), MaxDescriptionLength)
	assert.Equal(t, "AccountNumber", req.OtherAccountRoutingScheme)
	assert.Equal(t, "BW0001000002", req.OtherAccountRoutingAddress)
	assert.Equal(t, "BIC", req.OtherBankRoutingScheme)
	assert.Equal(t, "SBICBWGX", req.OtherBankRoutingAddress)
	assert.True(t, req.IsBeneficiary)
	assert.Equal(t, []BespokeField{
		{Key: "category", Value: "Tourism"},
		{Key: "location", Value: "Maun"},
	}, req.Bespoke)
}

func TestTransactionTemplateValidate(t *testing.T) {
	tpl := TransactionTemplate{
		Description: "Salary deposit",
		MinAmount:   5000,
		MaxAmount:   15000,
		Recurrence:  RecurrenceMonthly,
	}
	assert.NoError(t, tpl.Validate())

	tpl.Recurrence = Recurrence("fortnightly")
	assert.Error(t, tpl.Validate())

	tpl.Recurrence = RecurrenceMonthly
	tpl.MaxAmount = 100
	assert.Error(t, tpl.Validate())
}

func TestFXRateDefinitionRequest(t *testing.T) {
	def := FXRateDefinition{
		FromCurrencyCode:       "BWP",
		ToCurrencyCode:         "USD",
		ConversionValue:        0.074,
		InverseConversionValue: 13.513514,
	}
	req := def.Request("bank.bw", "2024-05-01T00:00:00Z")
	assert.Equal(t, "bank.bw", req.BankID)
	assert.Equal(t, 13.513514, req.InverseConversionValue)
	assert.Equal(t, "2024-05-01T00:00:00Z", req.EffectiveDate)

	// a definition without an explicit inverse falls back to the reciprocal
	bare := FXRateDefinition{FromCurrencyCode: "BWP", ToCurrencyCode: "ZAR", ConversionValue: 1.37}
	assert.InDelta(t, 0.729927, bare.Request("bank.bw", "").InverseConversionValue, 0.000001)
}
