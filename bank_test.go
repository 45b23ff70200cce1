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
	"strings"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/kago-dev/obpseed/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBanks_CreatesCatalog(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	s := newTestSeeder(testConfig())

	httpmock.RegisterResponder(http.MethodGet,
		`=~^http://obp\.test/obp/v6\.0\.0/banks/kagiso\.`,
		httpmock.NewStringResponder(http.StatusNotFound, `{"message":"OBP-30001: Bank not found"}`))

	var routings [][]model.BankRouting
	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/obp/v6.0.0/banks",
		func(req *http.Request) (*http.Response, error) {
			var payload model.CreateBankRequest
			require.NoError(t, json.NewDecoder(req.Body).Decode(&payload))
			routings = append(routings, payload.BankRoutings)
			return httpmock.NewJsonResponse(http.StatusCreated, model.Bank{
				ID:       payload.ID,
				FullName: payload.FullName,
			})
		})

	banks := s.CreateBanks("kagiso", DefaultBanks())
	require.Len(t, banks, 2)
	assert.Equal(t, "kagiso.commercial.bw", banks[0].Identifier())
	assert.Equal(t, "kagiso.savings.bw", banks[1].Identifier())

	require.Len(t, routings, 2)
	assert.Equal(t, []model.BankRouting{{Scheme: "BIC", Address: "CBBBWGX"}}, routings[0])
	assert.Equal(t, []model.BankRouting{{Scheme: "BIC", Address: "BSBBWGX"}}, routings[1])
}

func TestCreateBanks_IdempotentAcrossRuns(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	s := newTestSeeder(testConfig())

	httpmock.RegisterResponder(http.MethodGet,
		testBaseURL+"/obp/v6.0.0/banks/kagiso.commercial.bw",
		httpmock.NewStringResponder(http.StatusOK,
			`{"id":"kagiso.commercial.bw","full_name":"Commercial Bank of Botswana"}`))
	httpmock.RegisterResponder(http.MethodGet,
		testBaseURL+"/obp/v6.0.0/banks/kagiso.savings.bw",
		httpmock.NewStringResponder(http.StatusOK,
			`{"id":"kagiso.savings.bw","full_name":"Botswana Savings Bank"}`))

	for run := 0; run < 2; run++ {
		banks := s.CreateBanks("kagiso", DefaultBanks())
		require.Len(t, banks, 2)
		assert.Equal(t, "kagiso.commercial.bw", banks[0].Identifier())
	}

	// existing banks are fetched and reused, never recreated
	counts := httpmock.GetCallCountInfo()
	assert.Zero(t, counts["POST "+testBaseURL+"/obp/v6.0.0/banks"])
}

func TestCreateBanks_ContinuesPastFailure(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	s := newTestSeeder(testConfig())

	httpmock.RegisterResponder(http.MethodGet,
		`=~^http://obp\.test/obp/v6\.0\.0/banks/kagiso\.`,
		httpmock.NewStringResponder(http.StatusNotFound, `{"message":"OBP-30001: Bank not found"}`))

	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/obp/v6.0.0/banks",
		func(req *http.Request) (*http.Response, error) {
			var payload model.CreateBankRequest
			require.NoError(t, json.NewDecoder(req.Body).Decode(&payload))
			if strings.Contains(payload.ID, "commercial") {
				return httpmock.NewStringResponse(http.StatusInternalServerError, `{"message":"boom"}`), nil
			}
			return httpmock.NewJsonResponse(http.StatusCreated, model.Bank{ID: payload.ID})
		})

	banks := s.CreateBanks("kagiso", DefaultBanks())
	require.Len(t, banks, 1)
	assert.Equal(t, "kagiso.savings.bw", banks[0].Identifier())
}
