/*
 * Copyright 2026 The Yorkie Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package docmodel

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/yorkie-team/docmodel/database"
	"github.com/yorkie-team/docmodel/database/bolt"
	"github.com/yorkie-team/docmodel/database/mongo"
	"github.com/yorkie-team/docmodel/internal/validation"
)

// Below are the names of the backends that documents can be stored in.
const (
	BackendMemory = "memory"
	BackendBolt   = "bolt"
	BackendMongo  = "mongo"
)

// Below are the values of the default values of docmodel config.
const (
	DefaultBackend  = BackendMemory
	DefaultLogLevel = "info"
	DefaultBoltPath = "docmodel.db"

	DefaultMaxConcurrency = database.DefaultMaxConcurrency
)

// Config is the configuration for opening a docmodel database.
type Config struct {
	// Backend is the backend that documents are stored in.
	Backend string `yaml:"Backend" validate:"required,oneof=memory bolt mongo"`

	// LogLevel is the level of the logs, e.g. debug.
	LogLevel string `yaml:"LogLevel" validate:"required,oneof=debug info warn error panic fatal"`

	// MaxConcurrency is the number of non-blocking calls in flight.
	MaxConcurrency int64 `yaml:"MaxConcurrency" validate:"min=0"`

	Bolt  *bolt.Config  `yaml:"Bolt" validate:"-"`
	Mongo *mongo.Config `yaml:"Mongo" validate:"-"`
}

// NewConfig returns a Config struct that contains reasonable defaults
// for most of the configurations.
func NewConfig() *Config {
	return &Config{
		Backend:        DefaultBackend,
		LogLevel:       DefaultLogLevel,
		MaxConcurrency: DefaultMaxConcurrency,
		Bolt:           bolt.NewConfig(DefaultBoltPath),
		Mongo:          mongo.NewConfig(),
	}
}

// NewConfigFromFile returns a Config struct for the given conf file. Values
// missing from the file keep their defaults.
func NewConfigFromFile(path string) (*Config, error) {
	bytes, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	conf := &Config{}
	if err := yaml.Unmarshal(bytes, conf); err != nil {
		return nil, fmt.Errorf("unmarshal config file: %w", err)
	}

	conf.ensureDefaultValue()
	return conf, nil
}

// Validate returns an error if the provided Config is invalidated.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}

	switch c.Backend {
	case BackendBolt:
		if c.Bolt == nil {
			return fmt.Errorf("bolt backend needs the Bolt config: %w", ErrInvalidConfig)
		}
		return c.Bolt.Validate()
	case BackendMongo:
		if c.Mongo == nil {
			return fmt.Errorf("mongo backend needs the Mongo config: %w", ErrInvalidConfig)
		}
		return c.Mongo.Validate()
	}

	return nil
}

func (c *Config) ensureDefaultValue() {
	if c.Backend == "" {
		c.Backend = DefaultBackend
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.MaxConcurrency == 0 {
		c.MaxConcurrency = DefaultMaxConcurrency
	}

	if c.Bolt != nil {
		defaults := bolt.NewConfig(DefaultBoltPath)
		if c.Bolt.Path == "" {
			c.Bolt.Path = defaults.Path
		}
		if c.Bolt.Bucket == "" {
			c.Bolt.Bucket = defaults.Bucket
		}
		if c.Bolt.OpenTimeout == "" {
			c.Bolt.OpenTimeout = defaults.OpenTimeout
		}
	}

	if c.Mongo != nil {
		defaults := mongo.NewConfig()
		if c.Mongo.ConnectionURI == "" {
			c.Mongo.ConnectionURI = defaults.ConnectionURI
		}
		if c.Mongo.ConnectionTimeout == "" {
			c.Mongo.ConnectionTimeout = defaults.ConnectionTimeout
		}
		if c.Mongo.PingTimeout == "" {
			c.Mongo.PingTimeout = defaults.PingTimeout
		}
		if c.Mongo.Database == "" {
			c.Mongo.Database = defaults.Database
		}
		if c.Mongo.Collection == "" {
			c.Mongo.Collection = defaults.Collection
		}
	}
}
