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
	"fmt"
	"io"
	"net/http"

	"github.com/kago-dev/obpseed/config"
	"github.com/kago-dev/obpseed/internal/apierror"
	"github.com/kago-dev/obpseed/internal/request"
	"github.com/kago-dev/obpseed/model"
	"github.com/pkg/errors"
)

// viewID is the account view every seeded read and counterparty call goes
// through. The owner view is always present on accounts the user created.
const viewID = "owner"

// Client is a thin typed wrapper over the sandbox REST API. It holds the
// resolved DirectLogin token and builds versioned endpoint URLs.
type Client struct {
	baseURL    string
	apiVersion string
	token      string
}

// NewClient builds a client from the loaded configuration. When no pre-issued
// token is configured it performs the DirectLogin exchange first, so a
// returned client is always ready to make authenticated calls. Missing
// credentials surface here, not at config load time, since a token may be
// supplied as late as the command line.
func NewClient(cnf *config.Configuration) (*Client, error) {
	c := &Client{
		baseURL:    cnf.BaseURL,
		apiVersion: cnf.APIVersion,
		token:      cnf.Token,
	}
	if c.token == "" {
		if cnf.Username == "" || cnf.Password == "" || cnf.ConsumerKey == "" {
			return nil, apierror.NewAPIError(apierror.ErrAuthenticationFailed, 0,
				"no DirectLogin token and incomplete credentials: either OBP_DIRECT_LOGIN_TOKEN or OBP_USERNAME, OBP_PASSWORD and OBP_CONSUMER_KEY are required")
		}
		token, err := directLogin(cnf)
		if err != nil {
			return nil, err
		}
		c.token = token
	}
	return c, nil
}

// directLogin exchanges the credential triple for a session token. The remote
// system answers 201 on success; anything else is an authentication failure.
func directLogin(cnf *config.Configuration) (string, error) {
	loginURL := fmt.Sprintf("%s/my/logins/direct", cnf.BaseURL)
	req, err := http.NewRequest(http.MethodPost, loginURL, nil)
	if err != nil {
		return "", errors.Wrap(err, "building login request")
	}
	req.Header.Set("Authorization",
		request.DirectLoginCredentials(cnf.Username, cnf.Password, cnf.ConsumerKey))

	resp, body, err := request.Call(req)
	if err != nil {
		return "", errors.Wrap(err, "direct login request failed")
	}
	if resp.StatusCode != http.StatusCreated {
		return "", apierror.NewAPIError(apierror.ErrAuthenticationFailed, resp.StatusCode, string(body))
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", errors.Wrap(err, "decoding login response")
	}
	if payload.Token == "" {
		return "", apierror.NewAPIError(apierror.ErrAuthenticationFailed, resp.StatusCode,
			"login succeeded but no token was returned")
	}
	return payload.Token, nil
}

// url builds a versioned API URL: {base}/obp/{version}{path}.
func (c *Client) url(path string) string {
	return fmt.Sprintf("%s/obp/%s%s", c.baseURL, c.apiVersion, path)
}

// do performs one authenticated call. A nil payload sends no body; a nil out
// skips response decoding. Failure-range statuses come back as APIError so
// callers can branch on the kind.
func (c *Client) do(method, url string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		buf, err := request.ToJsonReq(payload)
		if err != nil {
			return errors.Wrap(err, "encoding request payload")
		}
		body = buf
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return errors.Wrapf(err, "building %s %s", method, url)
	}
	req.Header.Set("Authorization", request.DirectLoginToken(c.token))

	resp, respBody, err := request.Call(req)
	if err != nil {
		return errors.Wrapf(err, "calling %s %s", method, url)
	}
	if apiErr := apierror.FromResponse(resp.StatusCode, string(respBody)); apiErr != nil {
		return apiErr
	}
	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return errors.Wrapf(err, "decoding response from %s", url)
		}
	}
	return nil
}

// GetCurrentUser fetches the authenticated user. Used as the first call of a
// run both to verify the token and to derive the bank-ID prefix.
func (c *Client) GetCurrentUser() (*model.User, error) {
	var user model.User
	if err := c.do(http.MethodGet, c.url("/users/current"), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetBanks lists all banks visible to the user.
func (c *Client) GetBanks() ([]model.Bank, error) {
	var resp model.BanksResponse
	if err := c.do(http.MethodGet, c.url("/banks"), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Banks, nil
}

// GetBank fetches a single bank by identifier.
func (c *Client) GetBank(bankID string) (*model.Bank, error) {
	var bank model.Bank
	if err := c.do(http.MethodGet, c.url("/banks/"+bankID), nil, &bank); err != nil {
		return nil, err
	}
	return &bank, nil
}

// BankExists reports whether the bank is already present. A 404 means absent,
// every other failure propagates.
func (c *Client) BankExists(bankID string) (bool, error) {
	if _, err := c.GetBank(bankID); err != nil {
		if apierror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CreateBank creates a bank and returns the created record.
func (c *Client) CreateBank(req *model.CreateBankRequest) (*model.Bank, error) {
	if err := req.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid bank payload")
	}
	var bank model.Bank
	if err := c.do(http.MethodPost, c.url("/banks"), req, &bank); err != nil {
		return nil, err
	}
	return &bank, nil
}

// GetAccountsAtBank lists the accounts the user holds at a bank.
func (c *Client) GetAccountsAtBank(bankID string) ([]model.Account, error) {
	var resp model.AccountsResponse
	path := fmt.Sprintf("/banks/%s/accounts", bankID)
	if err := c.do(http.MethodGet, c.url(path), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Accounts, nil
}

// CreateAccount creates an account at a bank; the remote system assigns the
// account identifier.
func (c *Client) CreateAccount(bankID string, req *model.CreateAccountRequest) (*model.Account, error) {
	if err := req.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid account payload")
	}
	var account model.Account
	path := fmt.Sprintf("/banks/%s/accounts", bankID)
	if err := c.do(http.MethodPost, c.url(path), req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// GetCounterparties lists the counterparties attached to an account through
// the owner view.
func (c *Client) GetCounterparties(bankID, accountID string) ([]model.Counterparty, error) {
	var resp model.CounterpartiesResponse
	path := fmt.Sprintf("/banks/%s/accounts/%s/%s/counterparties", bankID, accountID, viewID)
	if err := c.do(http.MethodGet, c.url(path), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Counterparties, nil
}

// CreateCounterparty attaches a counterparty to an account.
func (c *Client) CreateCounterparty(bankID, accountID string, req *model.CreateCounterpartyRequest) (*model.Counterparty, error) {
	if err := req.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid counterparty payload")
	}
	var cp model.Counterparty
	path := fmt.Sprintf("/banks/%s/accounts/%s/%s/counterparties", bankID, accountID, viewID)
	if err := c.do(http.MethodPost, c.url(path), req, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

// GetFXRate fetches the rate for a directed currency pair at a bank. A 404
// signals the pair has no rate yet.
func (c *Client) GetFXRate(bankID, from, to string) (*model.FXRate, error) {
	var rate model.FXRate
	path := fmt.Sprintf("/banks/%s/fx/%s/%s", bankID, from, to)
	if err := c.do(http.MethodGet, c.url(path), nil, &rate); err != nil {
		return nil, err
	}
	return &rate, nil
}

// CreateFXRate upserts an FX rate at a bank. The remote endpoint is a PUT and
// overwrites any existing entry for the pair.
func (c *Client) CreateFXRate(bankID string, req *model.CreateFXRateRequest) (*model.FXRate, error) {
	if err := req.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid fx rate payload")
	}
	var rate model.FXRate
	path := fmt.Sprintf("/banks/%s/fx", bankID)
	if err := c.do(http.MethodPut, c.url(path), req, &rate); err != nil {
		return nil, err
	}
	return &rate, nil
}

// CreateHistoricalTransaction inserts a backdated settled transaction between
// two accounts at the same bank.
func (c *Client) CreateHistoricalTransaction(bankID string, req *model.CreateHistoricalTransactionRequest) (*model.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid historical transaction payload")
	}
	var txn model.Transaction
	path := fmt.Sprintf("/banks/%s/management/historical/transactions", bankID)
	if err := c.do(http.MethodPost, c.url(path), req, &txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

// CreateTransactionRequest issues an account-to-account transfer request from
// the given account. The returned status is reported once, not polled.
func (c *Client) CreateTransactionRequest(bankID, accountID string, body *model.CreateTransactionRequestBody) (*model.TransactionRequest, error) {
	var tr model.TransactionRequest
	path := fmt.Sprintf("/banks/%s/accounts/%s/%s/transaction-request-types/%s/transaction-requests",
		bankID, accountID, viewID, model.TransactionRequestTypeAccount)
	if err := c.do(http.MethodPost, c.url(path), body, &tr); err != nil {
		return nil, err
	}
	return &tr, nil
}

// GetTransactionsForAccount lists settled transactions on an account through
// the owner view.
func (c *Client) GetTransactionsForAccount(bankID, accountID string) ([]model.Transaction, error) {
	var resp model.TransactionsResponse
	path := fmt.Sprintf("/banks/%s/accounts/%s/%s/transactions", bankID, accountID, viewID)
	if err := c.do(http.MethodGet, c.url(path), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}

// CreateDynamicEntity registers a system-level dynamic entity definition.
func (c *Client) CreateDynamicEntity(req *model.DynamicEntityRequest) (*model.DynamicEntity, error) {
	var entity model.DynamicEntity
	if err := c.do(http.MethodPost, c.url("/management/system-dynamic-entities"), req, &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}
