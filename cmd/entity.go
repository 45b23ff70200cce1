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
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// entityCommands registers the sandbox_actions dynamic entity used to track
// actions performed against the sandbox.
func entityCommands(b *obpseedInstance) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entity [token]",
		Short: "Create the sandbox_actions dynamic entity",
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

			entity, err := client.CreateDynamicEntity(obpseed.SandboxActionsEntity())
			if err != nil {
				fatal(err)
			}

			logrus.WithFields(logrus.Fields{
				"entity_name":         entity.EntityName,
				"dynamic_entity_id":   entity.DynamicEntityID,
				"has_personal_entity": entity.HasPersonalEntity,
				"user_id":             entity.UserID,
			}).Info("created dynamic entity")
		},
	}

	return cmd
}
