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
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kago-dev/obpseed"
	"github.com/kago-dev/obpseed/config"
	"github.com/kago-dev/obpseed/internal/notification"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Obpseed represents the CLI application, encapsulating the root Cobra command.
type Obpseed struct {
	cmd *cobra.Command
}

// obpseedInstance holds the loaded configuration shared by all subcommands.
type obpseedInstance struct {
	cnf *config.Configuration
}

// recoverPanic handles any panics during program execution and logs the error using Logrus.
func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec)
		os.Exit(1)
	}
}

// preRun loads environment variables and the configuration file before any
// command executes. A missing .env file is not an error; a missing or invalid
// configuration is fatal.
func preRun(app *obpseedInstance, configFile *string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			logrus.Debug("no .env file found, continuing with process environment")
		}

		if err := config.InitConfig(*configFile); err != nil {
			log.Fatal("error loading config: ", err)
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}
		app.cnf = cnf

		return nil
	}
}

// setupClient builds an authenticated API client, optionally overriding the
// configured token with one passed on the command line.
func setupClient(cnf *config.Configuration, tokenOverride string) (*obpseed.Client, error) {
	if tokenOverride != "" {
		cnf.Token = tokenOverride
	}
	client, err := obpseed.NewClient(cnf)
	if err != nil {
		return nil, fmt.Errorf("error creating api client: %v", err)
	}
	return client, nil
}

// NewCLI creates the command-line interface for the sandbox seeder.
func NewCLI() *Obpseed {
	var configFile string
	b := &obpseedInstance{}

	var rootCmd = &cobra.Command{
		Use:   "obpseed",
		Short: "Open Bank Project sandbox seeder",
		Run:   func(cmd *cobra.Command, args []string) {},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./obpseed.json", "Configuration file for the sandbox seeder")

	rootCmd.PersistentPreRunE = preRun(b, &configFile)

	rootCmd.AddCommand(seedCommands(b))
	rootCmd.AddCommand(entityCommands(b))
	rootCmd.AddCommand(inspectCommands(b))

	return &Obpseed{cmd: rootCmd}
}

// executeCLI runs the root command, handling any errors that occur during execution.
func (w Obpseed) executeCLI() {
	if err := w.cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	defer recoverPanic()

	cli := NewCLI()
	cli.executeCLI()
}

// fatal reports the error through the notification channel and terminates.
func fatal(err error) {
	notification.NotifyError(err)
	log.Fatal(err)
}
