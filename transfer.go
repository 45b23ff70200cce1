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
	"github.com/kago-dev/obpseed/model"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// IssueTransferRequests issues the transfer catalog as live transaction
// requests against the flattened creation-order account list. Definitions
// whose indices fall outside the list are silently skipped; individual
// failures are logged and do not abort the phase.
func (s *Seeder) IssueTransferRequests(accounts []model.Account, definitions []model.TransferDefinition) []model.TransactionRequest {
	currency := s.config.Sandbox.Currency

	var issued []model.TransactionRequest
	for _, def := range definitions {
		if def.FromIndex < 0 || def.FromIndex >= len(accounts) ||
			def.ToIndex < 0 || def.ToIndex >= len(accounts) {
			continue
		}
		from := accounts[def.FromIndex]
		to := accounts[def.ToIndex]

		body := &model.CreateTransactionRequestBody{
			To: model.TransactionRequestTo{
				BankID:    to.BankID,
				AccountID: to.Identifier(),
			},
			Value: model.TransactionValue{
				Currency: currency,
				Amount:   decimal.NewFromFloat(def.Amount).StringFixed(2),
			},
			Description: model.TruncateDescription(def.Description),
		}

		tr, err := s.client.CreateTransactionRequest(from.BankID, from.Identifier(), body)
		if err != nil {
			logrus.WithError(err).Errorf("could not issue transfer request %q from %s/%s",
				def.Description, from.BankID, from.Identifier())
			continue
		}
		logrus.Infof("issued transfer request %s (%s, status %s)", tr.ID, def.Description, tr.Status)
		issued = append(issued, *tr)
	}
	return issued
}
