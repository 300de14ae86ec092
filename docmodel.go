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

// Package docmodel opens the database that typed records are stored in, as
// described by a Config.
package docmodel

import (
	"github.com/yorkie-team/docmodel/database"
	"github.com/yorkie-team/docmodel/database/bolt"
	"github.com/yorkie-team/docmodel/database/memory"
	"github.com/yorkie-team/docmodel/database/mongo"
	"github.com/yorkie-team/docmodel/internal/logging"
	"github.com/yorkie-team/docmodel/pkg/errors"
)

// ErrInvalidConfig is returned when the config cannot open a database.
var ErrInvalidConfig = errors.InvalidArgument("invalid config").WithCode("ErrInvalidConfig")

// DB is a database opened from a Config. It has a blocking and a
// non-blocking form.
type DB struct {
	database.Database
	async *database.Async
}

// Open validates the given config and opens the database of its backend.
func Open(conf *Config) (*DB, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	if err := logging.SetLogLevel(conf.LogLevel); err != nil {
		return nil, err
	}

	var db database.Database
	var err error
	switch conf.Backend {
	case BackendMemory:
		db, err = memory.New()
	case BackendBolt:
		db, err = bolt.Dial(conf.Bolt)
	case BackendMongo:
		db, err = mongo.Dial(conf.Mongo)
	}
	if err != nil {
		return nil, err
	}

	logging.DefaultLogger().Infof("opened %s backend", conf.Backend)

	return &DB{
		Database: db,
		async:    database.NewAsync(db, conf.MaxConcurrency),
	}, nil
}

// Async returns the non-blocking form of this database.
func (d *DB) Async() *database.Async {
	return d.async
}
