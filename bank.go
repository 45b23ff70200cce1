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

// CreateBanks provisions the bank catalog under the given identifier prefix.
// Provisioning is idempotent: an existing bank is fetched and reused instead
// of recreated. Individual failures are logged and do not abort the phase.
func (s *Seeder) CreateBanks(prefix string, definitions []model.BankDefinition) []model.Bank {
	count := s.config.Sandbox.NumBanks
	if count > len(definitions) {
		count = len(definitions)
	}

	var banks []model.Bank
	for _, def := range definitions[:count] {
		bankID := fmt.Sprintf("%s.%s", prefix, def.Suffix)

		exists, err := s.client.BankExists(bankID)
		if err != nil {
			logrus.WithError(err).Warnf("could not check whether bank %s exists", bankID)
		}
		if exists {
			logrus.Infof("bank %s already exists, reusing", bankID)
			bank, err := s.client.GetBank(bankID)
			if err != nil {
				logrus.WithError(err).Warnf("could not fetch existing bank %s", bankID)
				continue
			}
			banks = append(banks, *bank)
			continue
		}

		bank, err := s.client.CreateBank(&model.CreateBankRequest{
			ID:        bankID,
			FullName:  def.FullName,
			ShortName: def.ShortName,
			Website:   def.Website,
			BankRoutings: []model.BankRouting{
				{Scheme: "BIC", Address: def.ShortName + "BWGX"},
			},
		})
		if err != nil {
			logrus.WithError(err).Errorf("could not create bank %s", bankID)
			continue
		}
		logrus.Infof("created bank %s (%s)", bankID, def.FullName)
		banks = append(banks, *bank)
	}
	return banks
}
