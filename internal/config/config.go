// Copyright 2026 Hedera Mirror Node Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

type ctxKey string

const configContextKey ctxKey = "mirror.config"

const DefaultShutdownTimeout = "30s"

func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configContextKey, cfg)
}

func FromContext(ctx context.Context) *Config {
	cfg, ok := ctx.Value(configContextKey).(*Config)
	if !ok {
		return nil
	}
	return cfg
}

type Config struct {
	DataDir         string `yaml:"dataDir"         split_words:"true"`
	RecordDir       string `yaml:"recordDir"       split_words:"true"`
	BindAddr        string `yaml:"bindAddr"        split_words:"true"`
	ShutdownTimeout string `yaml:"shutdownTimeout" split_words:"true"`
	MetricsPort     uint   `yaml:"metricsPort"     split_words:"true"`
	// Ingestion worker pool tuning (decode worker count and batch size)
	Workers   int `yaml:"workers"`
	BatchSize int `yaml:"batchSize" split_words:"true"`
	// Key extraction recursion limit for primary-key publication
	MaxKeyDepth int `yaml:"maxKeyDepth" split_words:"true"`
	// Persistence toggles for optional row families
	PersistTransfers        bool `yaml:"persistTransfers"        split_words:"true"`
	PersistClaims           bool `yaml:"persistClaims"           split_words:"true"`
	PersistTransactionBytes bool `yaml:"persistTransactionBytes" split_words:"true"`
}

var globalConfig = &Config{
	DataDir:                 ".mirror",
	RecordDir:               "recordstreams",
	BindAddr:                "0.0.0.0",
	MetricsPort:             12798,
	Workers:                 4,
	BatchSize:               25,
	MaxKeyDepth:             1,
	PersistTransfers:        true,
	PersistClaims:           true,
	PersistTransactionBytes: false,
	ShutdownTimeout:         DefaultShutdownTimeout,
}

func LoadConfig(configFile string) (*Config, error) {
	// Load config file as YAML if provided
	if configFile == "" {
		// Check for config file in this path: ~/.mirror/mirror.yaml
		if homeDir, err := os.UserHomeDir(); err == nil {
			userPath := filepath.Join(homeDir, ".mirror", "mirror.yaml")
			if _, err := os.Stat(userPath); err == nil {
				configFile = userPath
			}
		}

		// Try to check for /etc/mirror/mirror.yaml if still not found
		if configFile == "" {
			systemPath := "/etc/mirror/mirror.yaml"
			if _, err := os.Stat(systemPath); err == nil {
				configFile = systemPath
			}
		}
	}
	if configFile != "" {
		buf, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		err = yaml.Unmarshal(buf, globalConfig)
		if err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}
	// Process environment variables
	err := envconfig.Process("mirror", globalConfig)
	if err != nil {
		return nil, fmt.Errorf("error processing environment: %+w", err)
	}
	if err := globalConfig.Validate(); err != nil {
		return nil, err
	}
	return globalConfig, nil
}

func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("batchSize must be at least 1, got %d", c.BatchSize)
	}
	if c.MaxKeyDepth < 0 {
		return fmt.Errorf("maxKeyDepth cannot be negative, got %d", c.MaxKeyDepth)
	}
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdownTimeout: %w", err)
	}
	return nil
}

func GetConfig() *Config {
	return globalConfig
}
