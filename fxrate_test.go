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

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/kago-dev/obpseed/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFXRates_UpsertsCatalog(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	s := newTestSeeder(testConfig())
	banks := []model.Bank{{ID: "kagiso.commercial.bw"}}
	definitions := DefaultFXRates("BWP")[:4]

	httpmock.RegisterResponder(http.MethodGet,
		`=~^http://obp\.test/obp/v6\.0\.0/banks/kagiso\.commercial\.bw/fx/`,
		httpmock.NewStringResponder(http.StatusNotFound, `{"message":"OBP-10018: Fx rate not found"}`))

	var payloads []model.CreateFXRateRequest
	httpmock.RegisterResponder(http.MethodPut,
		testBaseURL+"/obp/v6.0.0/banks/kagiso.commercial.bw/fx",
		func(req *http.Request) (*http.Response, error) {
			var payload model.CreateFXRateRequest
			require.NoError(t, json.NewDecoder(req.Body).Decode(&payload))
			payloads = append(payloads, payload)
			return httpmock.NewJsonResponse(http.StatusCreated, model.FXRate{
				BankID:           payload.BankID,
				FromCurrencyCode: payload.FromCurrencyCode,
				ToCurrencyCode:   payload.ToCurrencyCode,
				ConversionValue:  payload.ConversionValue,
			})
		})

	created := s.CreateFXRates(banks, definitions)
	require.Len(t, created, 4)

	assert.Equal(t, "BWP", payloads[0].FromCurrencyCode)
	assert.Equal(t, "EUR", payloads[0].ToCurrencyCode)
	assert.Equal(t, "EUR", payloads[1].FromCurrencyCode)
	assert.Equal(t, "BWP", payloads[1].ToCurrencyCode)
	for _, payload := range payloads {
		assert.Equal(t, "kagiso.commercial.bw", payload.BankID)
		assert.NotEmpty(t, payload.EffectiveDate)
		assert.NotZero(t, payload.InverseConversionValue)
	}
}

func TestCreateFXRates_SkipsExistingPairs(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	s := newTestSeeder(testConfig())
	banks := []model.Bank{{ID: "kagiso.commercial.bw"}}
	definitions := DefaultFXRates("BWP")[:2]

	// forward pair already present, reverse absent
	httpmock.RegisterResponder(http.MethodGet,
		testBaseURL+"/obp/v6.0.0/banks/kagiso.commercial.bw/fx/BWP/EUR",
		httpmock.NewStringResponder(http.StatusOK,
			`{"bank_id":"kagiso.commercial.bw","from_currency_code":"BWP","to_currency_code":"EUR","conversion_value":0.068}`))
	httpmock.RegisterResponder(http.MethodGet,
		testBaseURL+"/obp/v6.0.0/banks/kagiso.commercial.bw/fx/EUR/BWP",
		httpmock.NewStringResponder(http.StatusNotFound, `{"message":"OBP-10018: Fx rate not found"}`))
	httpmock.RegisterResponder(http.MethodPut,
		testBaseURL+"/obp/v6.0.0/banks/kagiso.commercial.bw/fx",
		httpmock.NewStringResponder(http.StatusCreated,
			`{"bank_id":"kagiso.commercial.bw","from_currency_code":"EUR","to_currency_code":"BWP"}`))

	created := s.CreateFXRates(banks, definitions)
	require.Len(t, created, 1)
	assert.Equal(t, "EUR", created[0].FromCurrencyCode)

	counts := httpmock.GetCallCountInfo()
	assert.Equal(t, 1, counts["PUT "+testBaseURL+"/obp/v6.0.0/banks/kagiso.commercial.bw/fx"])
}

func TestCreateFXRates_ContinuesPastFailure(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	s := newTestSeeder(testConfig())
	banks := []model.Bank{{ID: "kagiso.commercial.bw"}}
	definitions := DefaultFXRates("BWP")[:3]

	httpmock.RegisterResponder(http.MethodGet,
		`=~^http://obp\.test/obp/v6\.0\.0/banks/kagiso\.commercial\.bw/fx/`,
		httpmock.NewStringResponder(http.StatusNotFound, `{"message":"OBP-10018: Fx rate not found"}`))

	calls := 0
	httpmock.RegisterResponder(http.MethodPut,
		testBaseURL+"/obp/v6.0.0/banks/kagiso.commercial.bw/fx",
		func(req *http.Request) (*http.Response, error) {
			calls++
			if calls == 2 {
				return httpmock.NewStringResponse(http.StatusBadRequest, `{"message":"boom"}`), nil
			}
			return httpmock.NewStringResponse(http.StatusCreated, `{"bank_id":"kagiso.commercial.bw"}`), nil
		})

	created := s.CreateFXRates(banks, definitions)
	assert.Len(t, created, 2)
	assert.Equal(t, 3, calls)
}
