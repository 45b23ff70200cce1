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

package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"
	"sync/atomic"

	"github.com/kelseyhightower/envconfig"

	"github.com/sirupsen/logrus"
)

const (
	DEFAULT_BASE_URL    = "http://localhost:8080"
	DEFAULT_API_VERSION = "v6.0.0"
)

var ConfigStore atomic.Value

// SandboxConfig controls how much demo data is created and where.
type SandboxConfig struct {
	NumBanks        int    `json:"num_banks" envconfig:"OBP_NUM_BANKS"`
	AccountsPerBank int    `json:"accounts_per_bank" envconfig:"OBP_ACCOUNTS_PER_BANK"`
	Country         string `json:"country" envconfig:"OBP_COUNTRY"`
	Currency        string `json:"currency" envconfig:"OBP_CURRENCY"`
}

// HistoryConfig controls the historical transaction generator.
type HistoryConfig struct {
	Months               int `json:"months" envconfig:"OBP_HISTORY_MONTHS"`
	RequestDelayMs       int `json:"request_delay_ms" envconfig:"OBP_REQUEST_DELAY_MS"`
	RateLimitCooldownSec int `json:"rate_limit_cooldown_sec" envconfig:"OBP_RATE_LIMIT_COOLDOWN_SEC"`
}

type SlackWebhook struct {
	WebhookUrl string `json:"webhook_url" envconfig:"OBP_SLACK_WEBHOOK_URL"`
}

type Notification struct {
	Slack SlackWebhook `json:"slack"`
}

type Configuration struct {
	ProjectName  string        `json:"project_name" envconfig:"OBP_PROJECT_NAME"`
	BaseURL      string        `json:"base_url" envconfig:"OBP_BASE_URL"`
	APIVersion   string        `json:"api_version" envconfig:"OBP_API_VERSION"`
	Token        string        `json:"token" envconfig:"OBP_DIRECT_LOGIN_TOKEN"`
	Username     string        `json:"username" envconfig:"OBP_USERNAME"`
	Password     string        `json:"password" envconfig:"OBP_PASSWORD"`
	ConsumerKey  string        `json:"consumer_key" envconfig:"OBP_CONSUMER_KEY"`
	Sandbox      SandboxConfig `json:"sandbox"`
	History      HistoryConfig `json:"history"`
	Notification Notification  `json:"notification"`
}

func loadConfigFromFile(file string) error {
	var cnf Configuration
	_, err := os.Stat(file)
	if err == nil {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		err = json.NewDecoder(f).Decode(&cnf)
		if err != nil {
			return err
		}

	} else if errors.Is(err, os.ErrNotExist) {
		log.Println("config json not passed, will use env variables")
	}

	// override config from environment variables
	err = envconfig.Process("obp", &cnf)
	if err != nil {
		return err
	}

	err = cnf.validateAndAddDefaults()
	if err != nil {
		return err
	}

	ConfigStore.Store(&cnf)
	return err
}

func InitConfig(configFile string) error {
	logger()
	return loadConfigFromFile(configFile)
}

func Fetch() (*Configuration, error) {
	config := ConfigStore.Load()
	c, ok := config.(*Configuration)
	if !ok {
		return nil, errors.New("config not loaded from file. Create a json file called obpseed.json with your config ❌")
	}
	return c, nil
}

func (cnf *Configuration) validateAndAddDefaults() error {
	if cnf.ProjectName == "" {
		cnf.ProjectName = "Obpseed"
	}

	cnf.BaseURL = strings.TrimRight(strings.TrimSpace(cnf.BaseURL), "/")
	cnf.APIVersion = strings.TrimSpace(cnf.APIVersion)
	cnf.Token = strings.TrimSpace(cnf.Token)
	cnf.Username = strings.TrimSpace(cnf.Username)

	if cnf.BaseURL == "" {
		cnf.BaseURL = DEFAULT_BASE_URL
		log.Printf("Warning: Base URL not specified in config. Setting default: %s", DEFAULT_BASE_URL)
	}
	if cnf.APIVersion == "" {
		cnf.APIVersion = DEFAULT_API_VERSION
	}

	// Credential presence is not checked here: a token may still arrive as a
	// command-line argument, so the client validates at construction time.

	if cnf.Sandbox.NumBanks == 0 {
		cnf.Sandbox.NumBanks = 2
	}
	if cnf.Sandbox.AccountsPerBank == 0 {
		cnf.Sandbox.AccountsPerBank = 5
	}
	if cnf.Sandbox.Country == "" {
		cnf.Sandbox.Country = "Botswana"
	}
	if cnf.Sandbox.Currency == "" {
		cnf.Sandbox.Currency = "BWP"
	}

	if cnf.History.Months == 0 {
		cnf.History.Months = 6
	}
	if cnf.History.RequestDelayMs == 0 {
		cnf.History.RequestDelayMs = 100
	}
	if cnf.History.RateLimitCooldownSec == 0 {
		cnf.History.RateLimitCooldownSec = 60
	}

	return nil
}

// MockConfig sets a mock configuration for testing purposes.
func MockConfig(mockConfig *Configuration) {
	ConfigStore.Store(mockConfig)
}

func logger() {
	logger := logrus.New()
	log.SetOutput(logger.Writer())
}
