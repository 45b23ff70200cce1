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
	"sort"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/kago-dev/obpseed/internal/apierror"
	"github.com/kago-dev/obpseed/model"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	// progressInterval is how many created transactions pass between progress
	// log lines.
	progressInterval = 50

	// historyDaysPerMonth is the fixed month approximation used to compute
	// the history window; it is deliberately not calendar-accurate.
	historyDaysPerMonth = 30
)

// GenerateHistory synthesizes a multi-month transaction history for every
// bank with at least two accounts. The window is walked one day at a time,
// ascending, with banks visited in sorted identifier order; each template
// whose recurrence fires on a day produces one backdated transaction between
// two distinct random accounts of the bank.
//
// On a 429 the call sleeps the cooldown and retries exactly once; a second
// 429 abandons the rest of that day. Any other error aborts the whole
// generation call and returns the transactions created so far.
func (s *Seeder) GenerateHistory(accountsByBank map[string][]model.Account, templates []model.TransactionTemplate) ([]model.Transaction, error) {
	currency := s.config.Sandbox.Currency
	months := s.config.History.Months

	now := s.now().UTC()
	start := now.AddDate(0, 0, -months*historyDaysPerMonth)

	bankIDs := make([]string, 0, len(accountsByBank))
	for bankID := range accountsByBank {
		bankIDs = append(bankIDs, bankID)
	}
	sort.Strings(bankIDs)

	var created []model.Transaction
	for _, bankID := range bankIDs {
		accounts := accountsByBank[bankID]
		if len(accounts) < 2 {
			logrus.Infof("skipping history for %s: fewer than 2 accounts", bankID)
			continue
		}
		logrus.Infof("generating %d months of history for %s", months, bankID)

	dayLoop:
		for day := start; day.Before(now); day = day.AddDate(0, 0, 1) {
			for _, tmpl := range templates {
				if !tmpl.Recurrence.OccursOn(day) {
					continue
				}

				req := s.buildTransaction(accounts, tmpl, day, currency)
				if req == nil {
					continue
				}

				txn, err := s.submitWithRetry(bankID, req)
				if err != nil {
					if apierror.IsRateLimited(err) {
						logrus.WithError(err).Warnf("still rate limited at %s, moving to the next day", bankID)
						continue dayLoop
					}
					return created, errors.Wrapf(err, "generating history for %s", bankID)
				}

				created = append(created, *txn)
				if len(created)%progressInterval == 0 {
					logrus.Infof("created %d historical transactions", len(created))
				}
				time.Sleep(s.delay)
			}
		}
	}
	return created, nil
}

// buildTransaction draws source/destination accounts, an amount within the
// template's range and a business-hours timestamp on the given day.
func (s *Seeder) buildTransaction(accounts []model.Account, tmpl model.TransactionTemplate, day time.Time, currency string) *model.CreateHistoricalTransactionRequest {
	if len(accounts) < 2 {
		return nil
	}

	fromIdx := s.random.Intn(len(accounts))
	toIdx := s.random.Intn(len(accounts) - 1)
	if toIdx >= fromIdx {
		toIdx++
	}

	amount := decimal.NewFromFloat(
		tmpl.MinAmount + s.random.Float64()*(tmpl.MaxAmount-tmpl.MinAmount)).Round(2)

	stamp := time.Date(day.Year(), day.Month(), day.Day(),
		8+s.random.Intn(11), s.random.Intn(60), s.random.Intn(60), 0, time.UTC).
		Format(time.RFC3339)

	return &model.CreateHistoricalTransactionRequest{
		FromAccountID: accounts[fromIdx].Identifier(),
		ToAccountID:   accounts[toIdx].Identifier(),
		Value:         model.TransactionValue{Currency: currency, Amount: amount.StringFixed(2)},
		Description:   model.TruncateDescription(tmpl.Description),
		Posted:        stamp,
		Completed:     stamp,
		Type:          model.TransactionTypeSandbox,
		ChargePolicy:  model.ChargePolicyShared,
	}
}

// submitWithRetry issues one historical transaction. A rate-limited response
// waits the cooldown and retries once; any other failure is permanent.
func (s *Seeder) submitWithRetry(bankID string, req *model.CreateHistoricalTransactionRequest) (*model.Transaction, error) {
	var txn *model.Transaction
	operation := func() error {
		created, err := s.client.CreateHistoricalTransaction(bankID, req)
		if err != nil {
			if apierror.IsRateLimited(err) {
				logrus.Warnf("rate limited at %s, cooling down for %s", bankID, s.cooldown)
				return err
			}
			return backoff.Permanent(err)
		}
		txn = created
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithMaxRetries(backoff.NewConstantBackOff(s.cooldown), 1)); err != nil {
		return nil, err
	}
	return txn, nil
}
