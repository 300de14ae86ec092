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
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/yorkie-team/docmodel/database"
	"github.com/yorkie-team/docmodel/pkg/document"
	"github.com/yorkie-team/docmodel/pkg/document/path"
)

// documentView is the printed form of a snapshot.
type documentView struct {
	Path       string         `json:"path" yaml:"path"`
	CreateTime time.Time      `json:"create_time" yaml:"create_time"`
	UpdateTime time.Time      `json:"update_time" yaml:"update_time"`
	ReadTime   time.Time      `json:"read_time" yaml:"read_time"`
	Data       map[string]any `json:"data" yaml:"data"`
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [document path]",
		Short: "Print the fields and metadata of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(); err != nil {
				return err
			}

			ref, err := path.ParseDocument(args[0])
			if err != nil {
				return err
			}

			db, err := openDB()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			snap, err := db.Read(context.Background(), ref)
			if err != nil {
				return err
			}
			if !snap.Exists {
				return fmt.Errorf("%s: %w", ref, database.ErrDocumentNotFound)
			}

			data, _ := document.Canonical(snap.Data).(map[string]any)
			return printDocument(cmd, &documentView{
				Path:       ref.String(),
				CreateTime: snap.CreateTime,
				UpdateTime: snap.UpdateTime,
				ReadTime:   snap.ReadTime,
				Data:       data,
			})
		},
	}
}

func printDocument(cmd *cobra.Command, view *documentView) error {
	switch flagOutput {
	case "":
		tw := table.NewWriter()
		tw.Style().Options.DrawBorder = false
		tw.Style().Options.SeparateColumns = false
		tw.Style().Options.SeparateFooter = false
		tw.Style().Options.SeparateHeader = false
		tw.Style().Options.SeparateRows = false
		tw.AppendHeader(table.Row{"FIELD", "VALUE"})
		tw.AppendRow(table.Row{"(path)", view.Path})
		tw.AppendRow(table.Row{"(created at)", view.CreateTime.Format(time.RFC3339Nano)})
		tw.AppendRow(table.Row{"(updated at)", view.UpdateTime.Format(time.RFC3339Nano)})

		keys := make([]string, 0, len(view.Data))
		for k := range view.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			value, err := formatValue(view.Data[k])
			if err != nil {
				return err
			}
			tw.AppendRow(table.Row{k, value})
		}
		cmd.Printf("%s\n", tw.Render())
	case "json":
		marshalled, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return errors.New("failed to marshal JSON")
		}
		cmd.Println(string(marshalled))
	case "yaml":
		marshalled, err := yaml.Marshal(view)
		if err != nil {
			return errors.New("failed to marshal YAML")
		}
		cmd.Println(string(marshalled))
	}

	return nil
}

// formatValue returns the table cell of a field value.
func formatValue(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "null", nil
	case string:
		return val, nil
	case time.Time:
		return val.Format(time.RFC3339Nano), nil
	case map[string]any, []any:
		marshalled, err := json.Marshal(val)
		if err != nil {
			return "", fmt.Errorf("marshal value: %w", err)
		}
		return string(marshalled), nil
	default:
		return fmt.Sprint(val), nil
	}
}

func init() {
	rootCmd.AddCommand(newGetCmd())
}
