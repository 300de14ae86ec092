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

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yorkie-team/docmodel"
	"github.com/yorkie-team/docmodel/database/bolt"
	"github.com/yorkie-team/docmodel/internal/validation"
)

var (
	flagConfPath string
	flagLogLevel string
	flagBackend  string
	flagBoltPath string
	flagMongoURI string
	flagOutput   string
)

var rootCmd = &cobra.Command{
	Use:          "docmodel",
	Short:        "Read and write the documents of a docmodel database",
	SilenceUsage: true,
}

// Run executes CLI.
func Run() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}

	return 0
}

// openDB opens the database described by the config file and the flags. The
// flags take precedence over the config file.
func openDB() (*docmodel.DB, error) {
	conf := docmodel.NewConfig()
	if flagConfPath != "" {
		parsed, err := docmodel.NewConfigFromFile(flagConfPath)
		if err != nil {
			return nil, err
		}
		conf = parsed
	}

	if flagLogLevel != "" {
		conf.LogLevel = flagLogLevel
	}
	if flagBackend != "" {
		conf.Backend = flagBackend
	}
	if flagBoltPath != "" {
		if conf.Bolt == nil {
			conf.Bolt = bolt.NewConfig(flagBoltPath)
		}
		conf.Bolt.Path = flagBoltPath
	}
	if flagMongoURI != "" {
		if conf.Mongo == nil {
			conf.Mongo = docmodel.NewConfig().Mongo
		}
		conf.Mongo.ConnectionURI = flagMongoURI
	}

	return docmodel.Open(conf)
}

// validateOutput validates the output flag.
func validateOutput() error {
	if err := validation.ValidateValue(flagOutput, "omitempty,oneof=yaml json"); err != nil {
		return fmt.Errorf("--output must be 'yaml' or 'json': %w", err)
	}

	return nil
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&flagConfPath, "config", "c", "", "Config path")
	flags.StringVarP(&flagLogLevel, "log-level", "l", "", "Log level: debug, info, warn, error")
	flags.StringVar(&flagBackend, "backend", "", "Backend: memory, bolt or mongo")
	flags.StringVar(&flagBoltPath, "bolt-path", "", "Path of the bolt database file")
	flags.StringVar(&flagMongoURI, "mongo-uri", "", "URI of the MongoDB server")
	flags.StringVarP(&flagOutput, "output", "o", "", "One of 'yaml' or 'json'.")
}
