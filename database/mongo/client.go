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

// Package mongo implements the database interface on MongoDB. Each document is
// stored under its full path, and every write is applied with one update
// pipeline so that transforms are resolved by the server.
package mongo

import (
	"context"
	"fmt"
	gotime "time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/yorkie-team/docmodel/database"
	"github.com/yorkie-team/docmodel/database/bsondoc"
	"github.com/yorkie-team/docmodel/internal/logging"
	"github.com/yorkie-team/docmodel/pkg/document"
	"github.com/yorkie-team/docmodel/pkg/document/path"
)

// record is the stored form of a document.
type record struct {
	ID        string                 `bson:"_id"`
	Data      map[string]interface{} `bson:"data"`
	CreatedAt gotime.Time            `bson:"_created_at"`
	UpdatedAt gotime.Time            `bson:"_updated_at"`
}

// Client is a client that connects to MongoDB.
type Client struct {
	config     *Config
	client     *mongo.Client
	collection *mongo.Collection
	logger     logging.Logger
}

// Dial creates an instance of Client and connects to MongoDB.
func Dial(conf *Config) (*Client, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), conf.ParseConnectionTimeout())
	defer cancel()

	client, err := mongo.Connect(
		ctx,
		options.Client().
			ApplyURI(conf.ConnectionURI).
			SetRegistry(bsondoc.Registry),
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	ctxPing, cancelPing := context.WithTimeout(context.Background(), conf.ParsePingTimeout())
	defer cancelPing()

	if err := client.Ping(ctxPing, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	logger := logging.New("mongo", logging.NewField("db", conf.Database))
	logger.Infof("connected, URI: %s, DB: %s", conf.ConnectionURI, conf.Database)

	return &Client{
		config:     conf,
		client:     client,
		collection: client.Database(conf.Database).Collection(conf.Collection),
		logger:     logger,
	}, nil
}

// Close all resources of this client.
func (c *Client) Close() error {
	if err := c.client.Disconnect(context.Background()); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Write writes the given document with the given mode.
func (c *Client) Write(
	ctx context.Context,
	ref path.DocumentRef,
	doc document.Raw,
	mode database.Mode,
) error {
	if ref.IsZero() {
		return fmt.Errorf("empty document reference: %w", database.ErrInvalidDocument)
	}

	pipeline, err := compile(doc, mode)
	if err != nil {
		return fmt.Errorf("write %s: %w", ref, err)
	}

	filter := bson.M{fieldID: ref.String()}
	opts := options.Update().SetUpsert(mode != database.ModeUpdate)
	if mode == database.ModeCreate {
		filter[fieldCreatedAt] = bson.M{"$exists": false}
	}

	result, err := c.collection.UpdateOne(ctx, filter, pipeline, opts)
	if err != nil {
		if mode == database.ModeCreate && mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w", ref, database.ErrAlreadyExists)
		}
		return c.mapError(err)
	}

	if mode == database.ModeUpdate && result.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", ref, database.ErrDocumentNotFound)
	}

	return nil
}

// Read returns the snapshot of the given document.
func (c *Client) Read(ctx context.Context, ref path.DocumentRef) (*document.Snapshot, error) {
	rec := &record{}
	err := c.collection.FindOne(ctx, bson.M{fieldID: ref.String()}).Decode(rec)
	now := gotime.Now().UTC()
	if err == mongo.ErrNoDocuments {
		return document.Missing(ref, now), nil
	}
	if err != nil {
		return nil, c.mapError(err)
	}

	return &document.Snapshot{
		Ref:        ref,
		Exists:     true,
		Data:       bsondoc.ToRaw(rec.Data),
		CreateTime: rec.CreatedAt.UTC(),
		UpdateTime: rec.UpdatedAt.UTC(),
		ReadTime:   now,
	}, nil
}

// Delete deletes the given document. Deleting a missing document succeeds.
func (c *Client) Delete(ctx context.Context, ref path.DocumentRef) error {
	if _, err := c.collection.DeleteOne(ctx, bson.M{fieldID: ref.String()}); err != nil {
		return c.mapError(err)
	}

	return nil
}

func (c *Client) mapError(err error) error {
	if errors.Is(err, mongo.ErrClientDisconnected) {
		return database.ErrClosed
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	c.logger.Error(err)
	return errors.WithStack(err)
}
