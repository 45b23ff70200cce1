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
	"math/rand"
	"time"

	"github.com/kago-dev/obpseed/config"
	"github.com/kago-dev/obpseed/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Seeder drives the full provisioning pipeline against one sandbox. It is
// strictly sequential; the only suspension points are the inter-request delay
// and the rate-limit cooldown inside the history generator.
type Seeder struct {
	client *Client
	config *config.Configuration

	// random and now are injectable so generated amounts and timestamps are
	// reproducible under a fixed seed.
	random   *rand.Rand
	now      func() time.Time
	delay    time.Duration
	cooldown time.Duration
}

// NewSeeder builds a seeder over an authenticated client.
func NewSeeder(client *Client, cnf *config.Configuration) *Seeder {
	return &Seeder{
		client:   client,
		config:   cnf,
		random:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
		delay:    time.Duration(cnf.History.RequestDelayMs) * time.Millisecond,
		cooldown: time.Duration(cnf.History.RateLimitCooldownSec) * time.Second,
	}
}

// SeedResult collects everything a run created, per phase, in creation order.
// Phases that continue past failures contribute only their successful subset.
type SeedResult struct {
	Prefix              string
	Banks               []model.Bank
	Accounts            []model.Account
	Counterparties      []model.Counterparty
	FXRates             []model.FXRate
	Transactions        []model.Transaction
	TransactionRequests []model.TransactionRequest
}

// Seed runs the pipeline end to end: resolve the current user, provision
// banks, FX rates, accounts and counterparties, generate the transaction
// history, then issue live transfer requests. Failing to resolve the user
// aborts the run; a history generation error returns the partial result and
// skips the transfer phase.
func (s *Seeder) Seed() (*SeedResult, error) {
	user, err := s.client.GetCurrentUser()
	if err != nil {
		return nil, errors.Wrap(err, "could not resolve current user")
	}
	prefix := model.SanitizePrefix(user.Username)
	logrus.WithFields(logrus.Fields{
		"username": user.Username,
		"user_id":  user.UserID,
		"prefix":   prefix,
	}).Info("authenticated")

	result := &SeedResult{Prefix: prefix}
	result.Banks = s.CreateBanks(prefix, DefaultBanks())
	result.FXRates = s.CreateFXRates(result.Banks, DefaultFXRates(s.config.Sandbox.Currency))

	businesses := DefaultBusinesses()
	share := businessShare(len(businesses), s.config.Sandbox.NumBanks, s.config.Sandbox.AccountsPerBank)

	accountsByBank := make(map[string][]model.Account)
	businessIdx := 0
	for i := range result.Banks {
		bankID := result.Banks[i].Identifier()
		if bankID == "" {
			logrus.Warnf("bank %q carries no identifier, skipping accounts", result.Banks[i].FullName)
			continue
		}

		accounts := s.CreateAccounts(bankID, user.UserID, DefaultAccounts())
		accountsByBank[bankID] = accounts
		result.Accounts = append(result.Accounts, accounts...)
		if len(accounts) == 0 {
			continue
		}

		// counterparties attach to the first account of each bank, each bank
		// consuming the next window of the business catalog
		end := businessIdx + share*2
		if end > len(businesses) {
			end = len(businesses)
		}
		window := businesses[businessIdx:end]
		businessIdx = end
		result.Counterparties = append(result.Counterparties,
			s.CreateCounterparties(bankID, accounts[0].Identifier(), window)...)
	}

	transactions, err := s.GenerateHistory(accountsByBank, DefaultTransactionTemplates())
	result.Transactions = transactions
	if err != nil {
		return result, err
	}

	result.TransactionRequests = s.IssueTransferRequests(result.Accounts, DefaultTransferRequests())
	return result, nil
}

// businessShare computes how many catalog entries each account would receive
// if the catalog were spread evenly, floored at one.
func businessShare(total, numBanks, accountsPerBank int) int {
	denom := numBanks * accountsPerBank
	if denom <= 0 {
		return 1
	}
	share := total / denom
	if share < 1 {
		share = 1
	}
	return share
}
