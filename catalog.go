/*
Copyright 2025 Obpseed Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package obpseed

import "github.com/kago-dev/obpseed/model"

// The catalogs below are the fixed demo data a run provisions. They are
// returned as fresh slices so callers and tests can substitute or trim them
// without touching shared state.

// DefaultBanks returns the demo bank catalog. The final bank identifier is
// "{prefix}.{suffix}" where the prefix is derived from the username.
func DefaultBanks() []model.BankDefinition {
	return []model.BankDefinition{
		{
			Suffix:    "commercial.bw",
			FullName:  "Commercial Bank of Botswana",
			ShortName: "CBB",
			Website:   "https://www.cbb.co.bw",
		},
		{
			Suffix:    "savings.bw",
			FullName:  "Botswana Savings Bank",
			ShortName: "BSB",
			Website:   "https://www.bsb.co.bw",
		},
	}
}

// DefaultAccounts returns the per-bank account catalog.
func DefaultAccounts() []model.AccountDefinition {
	return []model.AccountDefinition{
		{Label: "Current Account", ProductCode: "CURRENT"},
		{Label: "Savings Account", ProductCode: "SAVINGS"},
		{Label: "Business Account", ProductCode: "BUSINESS"},
		{Label: "Investment Account", ProductCode: "INVESTMENT"},
		{Label: "Emergency Fund", ProductCode: "SAVINGS"},
	}
}

// DefaultBusinesses returns the small-business catalog used as counterparty
// data. Twenty entries, distributed across the first account of each bank.
func DefaultBusinesses() []model.Business {
	return []model.Business{
		{
			Name:          "Mokolodi Crafts",
			Description:   "Traditional Botswana crafts and artwork",
			Category:      "Retail - Arts & Crafts",
			Location:      "Gaborone",
			AccountNumber: "BW0001000001",
			BankCode:      "FNBBBWGX",
		},
		{
			Name:          "Kalahari Safari Tours",
			Description:   "Wildlife safari and eco-tourism services",
			Category:      "Tourism",
			Location:      "Maun",
			AccountNumber: "BW0001000002",
			BankCode:      "SBICBWGX",
		},
		{
			Name:          "Botho Fresh Produce",
			Description:   "Fresh fruits and vegetables supplier",
			Category:      "Agriculture - Produce",
			Location:      "Francistown",
			AccountNumber: "BW0001000003",
			BankCode:      "BABORWGX",
		},
		{
			Name:          "Tswana Textiles",
			Description:   "Traditional and modern African textiles",
			Category:      "Manufacturing - Textiles",
			Location:      "Gaborone",
			AccountNumber: "BW0001000004",
			BankCode:      "FNBBBWGX",
		},
		{
			Name:          "Okavango Fish Farm",
			Description:   "Sustainable aquaculture and fish supply",
			Category:      "Agriculture - Aquaculture",
			Location:      "Kasane",
			AccountNumber: "BW0001000005",
			BankCode:      "SBICBWGX",
		},
		{
			Name:          "Setswana Solar Solutions",
			Description:   "Solar panel installation and maintenance",
			Category:      "Energy - Renewable",
			Location:      "Gaborone",
			AccountNumber: "BW0001000006",
			BankCode:      "BABORWGX",
		},
		{
			Name:          "Motswana Mobile Repairs",
			Description:   "Mobile phone and electronics repair",
			Category:      "Services - Electronics",
			Location:      "Lobatse",
			AccountNumber: "BW0001000007",
			BankCode:      "FNBBBWGX",
		},
		{
			Name:          "Chobe Leather Goods",
			Description:   "Handcrafted leather products and accessories",
			Category:      "Manufacturing - Leather",
			Location:      "Kasane",
			AccountNumber: "BW0001000008",
			BankCode:      "SBICBWGX",
		},
		{
			Name:          "Gaborone Catering Services",
			Description:   "Event catering and food services",
			Category:      "Food & Beverage",
			Location:      "Gaborone",
			AccountNumber: "BW0001000009",
			BankCode:      "BABORWGX",
		},
		{
			Name:          "Pula Construction Materials",
			Description:   "Building materials and construction supplies",
			Category:      "Construction",
			Location:      "Francistown",
			AccountNumber: "BW0001000010",
			BankCode:      "FNBBBWGX",
		},
		{
			Name:          "Tlokweng Transport Services",
			Description:   "Local freight and logistics services",
			Category:      "Transport & Logistics",
			Location:      "Tlokweng",
			AccountNumber: "BW0001000011",
			BankCode:      "SBICBWGX",
		},
		{
			Name:          "Botswana Beekeepers Cooperative",
			Description:   "Honey production and bee products",
			Category:      "Agriculture - Apiculture",
			Location:      "Palapye",
			AccountNumber: "BW0001000012",
			BankCode:      "BABORWGX",
		},
		{
			Name:          "Maun Auto Mechanics",
			Description:   "Vehicle repair and maintenance services",
			Category:      "Automotive Services",
			Location:      "Maun",
			AccountNumber: "BW0001000013",
			BankCode:      "FNBBBWGX",
		},
		{
			Name:          "Kgalagadi Pottery Studio",
			Description:   "Handmade pottery and ceramics",
			Category:      "Arts & Crafts",
			Location:      "Molepolole",
			AccountNumber: "BW0001000014",
			BankCode:      "SBICBWGX",
		},
		{
			Name:          "Delta Digital Services",
			Description:   "IT support and digital marketing",
			Category:      "Technology Services",
			Location:      "Gaborone",
			AccountNumber: "BW0001000015",
			BankCode:      "BABORWGX",
		},
		{
			Name:          "Serowe Grain Mills",
			Description:   "Grain processing and flour production",
			Category:      "Food Processing",
			Location:      "Serowe",
			AccountNumber: "BW0001000016",
			BankCode:      "FNBBBWGX",
		},
		{
			Name:          "Nata Salt Mining",
			Description:   "Natural salt extraction and processing",
			Category:      "Mining - Salt",
			Location:      "Nata",
			AccountNumber: "BW0001000017",
			BankCode:      "SBICBWGX",
		},
		{
			Name:          "Botswana Beauty Products",
			Description:   "Natural cosmetics and skincare products",
			Category:      "Manufacturing - Cosmetics",
			Location:      "Gaborone",
			AccountNumber: "BW0001000018",
			BankCode:      "BABORWGX",
		},
		{
			Name:          "Jwaneng Jewelry Workshop",
			Description:   "Custom jewelry and diamond polishing",
			Category:      "Manufacturing - Jewelry",
			Location:      "Jwaneng",
			AccountNumber: "BW0001000019",
			BankCode:      "FNBBBWGX",
		},
		{
			Name:          "Moremi Eco Lodge Supplies",
			Description:   "Eco-friendly hospitality supplies",
			Category:      "Hospitality Supplies",
			Location:      "Maun",
			AccountNumber: "BW0001000020",
			BankCode:      "SBICBWGX",
		},
	}
}

// DefaultTransactionTemplates returns the recurring transaction catalog used
// by the history generator.
func DefaultTransactionTemplates() []model.TransactionTemplate {
	return []model.TransactionTemplate{
		{Description: "Salary deposit", MinAmount: 5000, MaxAmount: 15000, Recurrence: model.RecurrenceMonthly},
		{Description: "Rent payment", MinAmount: 2500, MaxAmount: 6000, Recurrence: model.RecurrenceMonthly},
		{Description: "Utility bill payment", MinAmount: 300, MaxAmount: 1200, Recurrence: model.RecurrenceMonthly},
		{Description: "Grocery shopping", MinAmount: 150, MaxAmount: 900, Recurrence: model.RecurrenceWeekly},
		{Description: "Fuel purchase", MinAmount: 200, MaxAmount: 700, Recurrence: model.RecurrenceWeekly},
		{Description: "Airtime top-up", MinAmount: 20, MaxAmount: 150, Recurrence: model.RecurrenceWeekly},
		{Description: "Loan repayment", MinAmount: 800, MaxAmount: 2500, Recurrence: model.RecurrenceBiweekly},
		{Description: "Savings transfer", MinAmount: 500, MaxAmount: 2000, Recurrence: model.RecurrenceBiweekly},
		{Description: "Insurance premium", MinAmount: 900, MaxAmount: 1800, Recurrence: model.RecurrenceQuarterly},
		{Description: "School fees payment", MinAmount: 3000, MaxAmount: 9000, Recurrence: model.RecurrenceQuarterly},
	}
}

// DefaultFXRates returns the directed FX catalog against the base currency.
// Each pair contributes two directed entries. Forward and inverse values are
// authored explicitly and must be kept reciprocal-consistent; nothing in the
// provisioner re-derives one side from the other.
func DefaultFXRates(base string) []model.FXRateDefinition {
	pairs := []struct {
		currency string
		rate     float64 // one base unit expressed in the quote currency
		inverse  float64 // one quote unit expressed in the base currency
	}{
		{"EUR", 0.068, 14.705882},
		{"USD", 0.074, 13.513514},
		{"GBP", 0.058, 17.241379},
		{"ZAR", 1.37, 0.729927},
		{"KES", 11.5, 0.086957},
		{"NGN", 115, 0.008696},
		{"EGP", 2.28, 0.438596},
		{"GHS", 0.92, 1.086957},
		{"TZS", 186, 0.005376},
		{"UGX", 275, 0.003636},
		{"ZMW", 1.88, 0.531915},
		{"NAD", 1.37, 0.729927},
		{"CNY", 0.53, 1.886792},
		{"JPY", 11.1, 0.090090},
		{"CHF", 0.065, 15.384615},
		{"INR", 6.2, 0.161290},
		{"CAD", 0.10, 10.0},
		{"AUD", 0.11, 9.090909},
		{"MWK", 128, 0.007813},
		{"MZN", 4.7, 0.212766},
		{"LSL", 1.37, 0.729927},
		{"SZL", 1.37, 0.729927},
		{"RWF", 100, 0.01},
		{"ETB", 9.1, 0.109890},
		{"MUR", 3.4, 0.294118},
	}

	rates := make([]model.FXRateDefinition, 0, len(pairs)*2)
	for _, p := range pairs {
		rates = append(rates,
			model.FXRateDefinition{
				FromCurrencyCode:       base,
				ToCurrencyCode:         p.currency,
				ConversionValue:        p.rate,
				InverseConversionValue: p.inverse,
			},
			model.FXRateDefinition{
				FromCurrencyCode:       p.currency,
				ToCurrencyCode:         base,
				ConversionValue:        p.inverse,
				InverseConversionValue: p.rate,
			},
		)
	}
	return rates
}

// DefaultTransferRequests returns the transfer catalog issued as live
// transaction requests after history generation. Source and destination
// address accounts by index into the flattened creation-order account list;
// out-of-range indices are skipped.
func DefaultTransferRequests() []model.TransferDefinition {
	return []model.TransferDefinition{
		{FromIndex: 0, ToIndex: 1, Amount: 250.00, Description: "Transfer to savings"},
		{FromIndex: 0, ToIndex: 2, Amount: 1200.50, Description: "Business float top-up"},
		{FromIndex: 1, ToIndex: 3, Amount: 500.00, Description: "Investment contribution"},
		{FromIndex: 2, ToIndex: 0, Amount: 750.25, Description: "Supplier refund"},
		{FromIndex: 3, ToIndex: 4, Amount: 300.00, Description: "Emergency fund top-up"},
		{FromIndex: 5, ToIndex: 6, Amount: 420.75, Description: "Transfer to savings"},
		{FromIndex: 4, ToIndex: 9, Amount: 180.00, Description: "Cross account sweep"},
		{FromIndex: 7, ToIndex: 8, Amount: 999.99, Description: "Month end settlement"},
	}
}

// SandboxActionsEntity returns the dynamic entity definition used to track
// actions performed against the sandbox.
func SandboxActionsEntity() *model.DynamicEntityRequest {
	return &model.DynamicEntityRequest{
		EntityName:        "sandbox_actions",
		HasPersonalEntity: true,
		Schema: map[string]interface{}{
			"description": "Tracks sandbox actions performed by users",
			"required":    []string{"action", "timestamp"},
			"properties": map[string]interface{}{
				"action": map[string]interface{}{
					"type":    "string",
					"example": "created_bank",
				},
				"timestamp": map[string]interface{}{
					"type":    "string",
					"example": "2024-01-15T10:30:00Z",
				},
				"details": map[string]interface{}{
					"type":    "string",
					"example": "Created bank with 5 accounts",
				},
			},
		},
	}
}
