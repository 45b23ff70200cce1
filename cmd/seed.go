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

package main

import (
	"github.com/kago-dev/obpseed"
	"github.com/kago-dev/obpseed/internal/notification"
	"github.com/kago-dev/obpseed/model"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// seedCommands runs the full provisioning pipeline: banks, FX rates,
// accounts, counterparties, historical transactions and transfer requests.
// An optional positional token overrides the configured credentials.
func seedCommands(b *obpseedInstance) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed [token]",
		Short: "Populate the sandbox with demo banking data",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runID := model.GenerateUUIDWithSuffix("seed")
			logger := logrus.WithField("run_id", runID)

			token := ""
			if len(args) > 0 {
				token = args[0]
			}

			client, err := setupClient(b.cnf, token)
			if err != nil {
				fatal(err)
			}

			logger.WithField("target", b.cnf.BaseURL).Info("starting sandbox population")

			seeder := obpseed.NewSeeder(client, b.cnf)
			result, err := seeder.Seed()
			if err != nil {
				if result != nil {
					logSummary(logger, result)
				}
				notification.NotifyError(err)
				logger.Fatal(err)
			}

			logSummary(logger, result)
			logger.Info("sandbox population complete")
		},
	}

	return cmd
}

func logSummary(logger *logrus.Entry, result *obpseed.SeedResult) {
	logger.WithFields(logrus.Fields{
		"prefix":               result.Prefix,
		"banks":                len(result.Banks),
		"accounts":             len(result.Accounts),
		"counterparties":       len(result.Counterparties),
		"fx_rates":             len(result.FXRates),
		"transactions":         len(result.Transactions),
		"transaction_requests": len(result.TransactionRequests),
	}).Info("created entities")
}
