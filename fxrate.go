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
	"time"

	"github.com/kago-dev/obpseed/internal/apierror"
	"github.com/kago-dev/obpseed/model"
	"github.com/sirupsen/logrus"
)

// CreateFXRates upserts the directed rate catalog at every bank. Pairs that
// already carry a rate are skipped; individual failures are logged and do not
// abort the phase. The effective date is the capture time of the run.
func (s *Seeder) CreateFXRates(banks []model.Bank, definitions []model.FXRateDefinition) []model.FXRate {
	effectiveDate := s.now().UTC().Format(time.RFC3339)

	var created []model.FXRate
	for i := range banks {
		bankID := banks[i].Identifier()
		if bankID == "" {
			continue
		}
		for _, def := range definitions {
			if _, err := s.client.GetFXRate(bankID, def.FromCurrencyCode, def.ToCurrencyCode); err == nil {
				logrus.Debugf("fx rate %s/%s already exists at %s, skipping",
					def.FromCurrencyCode, def.ToCurrencyCode, bankID)
				continue
			} else if !apierror.IsNotFound(err) {
				logrus.WithError(err).Debugf("could not check fx rate %s/%s at %s",
					def.FromCurrencyCode, def.ToCurrencyCode, bankID)
			}

			req := def.Request(bankID, effectiveDate)
			rate, err := s.client.CreateFXRate(bankID, &req)
			if err != nil {
				logrus.WithError(err).Errorf("could not create fx rate %s/%s at %s",
					def.FromCurrencyCode, def.ToCurrencyCode, bankID)
				continue
			}
			created = append(created, *rate)
		}
		logrus.Infof("provisioned fx rates at %s", bankID)
	}
	return created
}
