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
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// inspectCommands prints a read-only summary of the data already present in
// the sandbox: banks, their accounts, and per-account counterparty and
// transaction counts. Nothing is created or modified.
func inspectCommands(b *obpseedInstance) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [token]",
		Short: "Summarize existing sandbox data",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			token := ""
			if len(args) > 0 {
				token = args[0]
			}

			client, err := setupClient(b.cnf, token)
			if err != nil {
				fatal(err)
			}

			user, err := client.GetCurrentUser()
			if err != nil {
				fatal(err)
			}
			logrus.Infof("authenticated as %s", user.Username)

			banks, err := client.GetBanks()
			if err != nil {
				fatal(err)
			}
			logrus.Infof("found %d banks", len(banks))

			for i := range banks {
				bankID := banks[i].Identifier()
				bankLog := logrus.WithField("bank", bankID)

				accounts, err := client.GetAccountsAtBank(bankID)
				if err != nil {
					bankLog.WithError(err).Warn("could not list accounts")
					continue
				}
				bankLog.Infof("%d accounts", len(accounts))

				for j := range accounts {
					accountID := accounts[j].Identifier()
					accountLog := bankLog.WithField("account", accountID)

					counterparties, err := client.GetCounterparties(bankID, accountID)
					if err != nil {
						accountLog.WithError(err).Debug("could not list counterparties")
					}

					transactions, err := client.GetTransactionsForAccount(bankID, accountID)
					if err != nil {
						accountLog.WithError(err).Debug("could not list transactions")
					}

					accountLog.WithFields(logrus.Fields{
						"label":          accounts[j].Label,
						"currency":       accounts[j].Currency,
						"counterparties": len(counterparties),
						"transactions":   len(transactions),
					}).Info("account summary")
				}
			}
		},
	}

	return cmd
}
