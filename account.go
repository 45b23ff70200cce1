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
	"fmt"

	"github.com/kago-dev/obpseed/model"
	"github.com/sirupsen/logrus"
)

// CreateAccounts provisions the account catalog at one bank for the given
// owner. Accounts open with a zero balance; the remote system assigns the
// identifiers. Individual failures are logged and do not abort the phase.
func (s *Seeder) CreateAccounts(bankID, userID string, definitions []model.AccountDefinition) []model.Account {
	count := s.config.Sandbox.AccountsPerBank
	if count > len(definitions) {
		count = len(definitions)
	}
	currency := s.config.Sandbox.Currency

	var accounts []model.Account
	for i, def := range definitions[:count] {
		label := fmt.Sprintf("%s %d", def.Label, i+1)

		account, err := s.client.CreateAccount(bankID, &model.CreateAccountRequest{
			Label:       label,
			Currency:    currency,
			Balance:     model.Balance{Amount: "0", Currency: currency},
			UserID:      userID,
			ProductCode: def.ProductCode,
		})
		if err != nil {
			logrus.WithError(err).Errorf("could not create account %q at %s", label, bankID)
			continue
		}
		if account.BankID == "" {
			account.BankID = bankID
		}
		logrus.Infof("created account %s (%s) at %s", account.Identifier(), label, bankID)
		accounts = append(accounts, *account)
	}
	return accounts
}
