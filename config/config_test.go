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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "obpseed.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitConfig_FromFile(t *testing.T) {
	path := writeConfigFile(t, `{
		"base_url": "https://sandbox.example.com/",
		"api_version": "v6.0.0",
		"token": "pre-issued-token",
		"sandbox": {"num_banks": 3, "accounts_per_bank": 4}
	}`)

	require.NoError(t, InitConfig(path))
	cnf, err := Fetch()
	require.NoError(t, err)

	// trailing slash is trimmed so URL building stays predictable
	assert.Equal(t, "https://sandbox.example.com", cnf.BaseURL)
	assert.Equal(t, "pre-issued-token", cnf.Token)
	assert.Equal(t, 3, cnf.Sandbox.NumBanks)
	assert.Equal(t, 4, cnf.Sandbox.AccountsPerBank)
}

func TestInitConfig_Defaults(t *testing.T) {
	path := writeConfigFile(t, `{"token": "tok"}`)

	require.NoError(t, InitConfig(path))
	cnf, err := Fetch()
	require.NoError(t, err)

	assert.Equal(t, DEFAULT_BASE_URL, cnf.BaseURL)
	assert.Equal(t, DEFAULT_API_VERSION, cnf.APIVersion)
	assert.Equal(t, 2, cnf.Sandbox.NumBanks)
	assert.Equal(t, 5, cnf.Sandbox.AccountsPerBank)
	assert.Equal(t, "Botswana", cnf.Sandbox.Country)
	assert.Equal(t, "BWP", cnf.Sandbox.Currency)
	assert.Equal(t, 6, cnf.History.Months)
	assert.Equal(t, 100, cnf.History.RequestDelayMs)
	assert.Equal(t, 60, cnf.History.RateLimitCooldownSec)
}

func TestInitConfig_EnvOverride(t *testing.T) {
	path := writeConfigFile(t, `{"token": "tok", "sandbox": {"currency": "BWP"}}`)

	t.Setenv("OBP_BASE_URL", "http://obp.internal:8080")
	t.Setenv("OBP_CURRENCY", "ZAR")
	t.Setenv("OBP_HISTORY_MONTHS", "12")

	require.NoError(t, InitConfig(path))
	cnf, err := Fetch()
	require.NoError(t, err)

	assert.Equal(t, "http://obp.internal:8080", cnf.BaseURL)
	assert.Equal(t, "ZAR", cnf.Sandbox.Currency)
	assert.Equal(t, 12, cnf.History.Months)
}

func TestInitConfig_LoadsWithoutCredentials(t *testing.T) {
	// a token may still arrive as a command-line argument, so loading must
	// not require credentials to be present
	path := writeConfigFile(t, `{"username": "kagiso", "password": "pw"}`)

	require.NoError(t, InitConfig(path))
	cnf, err := Fetch()
	require.NoError(t, err)
	assert.Empty(t, cnf.Token)
	assert.Empty(t, cnf.ConsumerKey)
	assert.Equal(t, DEFAULT_BASE_URL, cnf.BaseURL)
}

func TestInitConfig_MissingConfigFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")

	require.NoError(t, InitConfig(path))
	cnf, err := Fetch()
	require.NoError(t, err)
	assert.Equal(t, DEFAULT_BASE_URL, cnf.BaseURL)
	assert.Equal(t, DEFAULT_API_VERSION, cnf.APIVersion)
	assert.Equal(t, 6, cnf.History.Months)
}

func TestInitConfig_CredentialTripleAccepted(t *testing.T) {
	path := writeConfigFile(t, `{"username": "kagiso", "password": "pw", "consumer_key": "ck"}`)

	require.NoError(t, InitConfig(path))
	cnf, err := Fetch()
	require.NoError(t, err)
	assert.Empty(t, cnf.Token)
	assert.Equal(t, "kagiso", cnf.Username)
}
