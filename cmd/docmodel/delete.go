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

	"github.com/spf13/cobra"

	"github.com/yorkie-team/docmodel/pkg/document/path"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [document path]",
		Short: "Delete a document; deleting a missing document succeeds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			if err := db.Delete(context.Background(), ref); err != nil {
				return err
			}

			cmd.Printf("%s deleted\n", ref)
			return nil
		},
	}
}

func newNewIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new-id",
		Short: "Print a new document ID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println(path.NewID())
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newNewIDCmd())
}
