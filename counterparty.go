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
	"github.com/sirupsen/logrus"
)

// CreateCounterparties attaches the given business window to one account as
// beneficiary counterparties. Individual failures are logged and do not abort
// the phase.
func (s *Seeder) CreateCounterparties(bankID, accountID string, businesses []model.Business) []model.Counterparty {
	currency := s.config.Sandbox.Currency

	var created []model.Counterparty
	for _, business := range businesses {
		req := business.CounterpartyRequest(currency)
		cp, err := s.client.CreateCounterparty(bankID, accountID, &req)
		if err != nil {
			logrus.WithError(err).Errorf("could not create counterparty %q on %s/%s",
				business.Name, bankID, accountID)
			continue
		}
		logrus.Infof("created counterparty %s (%s)", cp.CounterpartyID, business.Name)
		created = append(created, *cp)
	}
	return created
}
