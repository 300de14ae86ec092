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

package bolt

import (
	"fmt"
	"os"
	"time"

	"github.com/yorkie-team/docmodel/internal/validation"
)

const (
	// DefaultBucket is the default bucket that documents are stored in.
	DefaultBucket = "documents"

	// DefaultOpenTimeout is the default time to wait for the file lock.
	DefaultOpenTimeout = "1s"
)

// Config is the configuration for opening a DB. Documents are stored as BSON,
// so timestamps keep millisecond precision.
type Config struct {
	// Path is the path of the database file.
	Path string `yaml:"Path" validate:"required"`

	// Bucket is the bucket that documents are stored in.
	Bucket string `yaml:"Bucket" validate:"required,segment"`

	// OpenTimeout is the time to wait for the file lock held by another
	// process.
	OpenTimeout string `yaml:"OpenTimeout" validate:"required,duration"`
}

// NewConfig returns a config with the default values for the given path.
func NewConfig(path string) *Config {
	return &Config{
		Path:        path,
		Bucket:      DefaultBucket,
		OpenTimeout: DefaultOpenTimeout,
	}
}

// Validate returns an error if the provided Config is invalidated.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c)
}

// ParseOpenTimeout returns the open timeout duration.
func (c *Config) ParseOpenTimeout() time.Duration {
	result, err := time.ParseDuration(c.OpenTimeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse open timeout: %v\n", err)
		os.Exit(1)
	}

	return result
}
