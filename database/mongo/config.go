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

package mongo

import (
	"fmt"
	"os"
	"time"

	"github.com/yorkie-team/docmodel/internal/validation"
)

const (
	// DefaultConnectionURI is the default URI of the MongoDB server.
	DefaultConnectionURI = "mongodb://localhost:27017"

	// DefaultConnectionTimeout is the default timeout for connecting.
	DefaultConnectionTimeout = "5s"

	// DefaultPingTimeout is the default timeout for the first ping.
	DefaultPingTimeout = "5s"

	// DefaultDatabase is the default database name.
	DefaultDatabase = "docmodel"

	// DefaultCollection is the default collection that documents are stored
	// in.
	DefaultCollection = "documents"
)

// Config is the configuration for creating a Client instance. MongoDB stores
// timestamps with millisecond precision.
type Config struct {
	ConnectionTimeout string `yaml:"ConnectionTimeout" validate:"required,duration"`
	ConnectionURI     string `yaml:"ConnectionURI" validate:"required"`
	Database          string `yaml:"Database" validate:"required"`
	Collection        string `yaml:"Collection" validate:"required,segment"`
	PingTimeout       string `yaml:"PingTimeout" validate:"required,duration"`
}

// NewConfig returns a config with the default values.
func NewConfig() *Config {
	return &Config{
		ConnectionTimeout: DefaultConnectionTimeout,
		ConnectionURI:     DefaultConnectionURI,
		Database:          DefaultDatabase,
		Collection:        DefaultCollection,
		PingTimeout:       DefaultPingTimeout,
	}
}

// Validate returns an error if the provided Config is invalidated.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c)
}

// ParseConnectionTimeout returns connection timeout duration.
func (c *Config) ParseConnectionTimeout() time.Duration {
	result, err := time.ParseDuration(c.ConnectionTimeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse connection timeout: %v\n", err)
		os.Exit(1)
	}

	return result
}

// ParsePingTimeout returns ping timeout duration.
func (c *Config) ParsePingTimeout() time.Duration {
	result, err := time.ParseDuration(c.PingTimeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse ping timeout: %v\n", err)
		os.Exit(1)
	}

	return result
}
