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
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/yorkie-team/docmodel/database"
	"github.com/yorkie-team/docmodel/database/apply"
	"github.com/yorkie-team/docmodel/pkg/document"
	"github.com/yorkie-team/docmodel/pkg/document/codec"
)

const (
	fieldID        = "_id"
	fieldData      = "data"
	fieldCreatedAt = "_created_at"
	fieldUpdatedAt = "_updated_at"
)

// compile turns a written document into the update pipeline that applies it
// to the stored document in a single round trip.
func compile(doc document.Raw, mode database.Mode) (bson.A, error) {
	var stages bson.A
	if !mode.IsMerge() {
		stages = append(stages, bson.M{"$set": bson.M{fieldData: bson.M{"$literal": bson.M{}}}})
	}

	set := bson.M{
		fieldCreatedAt: bson.M{"$ifNull": bson.A{"$" + fieldCreatedAt, "$$NOW"}},
		fieldUpdatedAt: "$$NOW",
	}

	if err := validateKeys(doc, ""); err != nil {
		return nil, err
	}

	flat := codec.Flatten(doc)
	paths := make([]string, 0, len(flat))
	for p := range flat {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		target := fieldData + "." + p
		expr, err := expression("$"+target, flat[p])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		set[target] = expr
	}

	return append(stages, bson.M{"$set": set}), nil
}

// expression returns the aggregation expression that computes the new value
// of the field at current.
func expression(current string, value any) (any, error) {
	switch v := value.(type) {
	case document.ServerTimestamp:
		return "$$NOW", nil
	case document.Increment:
		return bson.M{"$add": bson.A{number(current), literal(v.By)}}, nil
	case document.Maximum:
		return bson.M{"$cond": bson.A{
			bson.M{"$isNumber": current},
			bson.M{"$max": bson.A{current, literal(v.Value)}},
			literal(v.Value),
		}}, nil
	case document.Minimum:
		return bson.M{"$cond": bson.A{
			bson.M{"$isNumber": current},
			bson.M{"$min": bson.A{current, literal(v.Value)}},
			literal(v.Value),
		}}, nil
	case document.ArrayUnion:
		existing := array(current)
		return bson.M{"$concatArrays": bson.A{
			existing,
			bson.M{"$filter": bson.M{
				"input": literal(unique(v.Elements)),
				"as":    "item",
				"cond":  bson.M{"$not": bson.A{bson.M{"$in": bson.A{"$$item", existing}}}},
			}},
		}}, nil
	case document.ArrayRemove:
		return bson.M{"$filter": bson.M{
			"input": array(current),
			"as":    "item",
			"cond":  bson.M{"$not": bson.A{bson.M{"$in": bson.A{"$$item", literal(v.Elements)}}}},
		}}, nil
	case document.DeleteField:
		return "$$REMOVE", nil
	case document.Transform:
		return nil, fmt.Errorf("unknown transform %s: %w", v.TransformName(), database.ErrInvalidDocument)
	case document.Raw:
		// An empty nested document keeps what is stored there.
		return bson.M{"$ifNull": bson.A{current, bson.M{"$literal": bson.M{}}}}, nil
	default:
		return literal(v), nil
	}
}

func literal(v any) bson.M {
	if elements, ok := v.([]any); ok && elements == nil {
		v = bson.A{}
	}
	return bson.M{"$literal": v}
}

func number(current string) bson.M {
	return bson.M{"$cond": bson.A{bson.M{"$isNumber": current}, current, 0}}
}

func array(current string) bson.M {
	return bson.M{"$cond": bson.A{bson.M{"$isArray": current}, current, bson.A{}}}
}

func unique(elements []any) []any {
	result := make([]any, 0, len(elements))
	for _, e := range elements {
		found := false
		for _, r := range result {
			if apply.Equal(e, r) {
				found = true
				break
			}
		}
		if !found {
			result = append(result, e)
		}
	}
	return result
}

// validateKeys rejects field names that MongoDB would read as operators or
// nested paths.
func validateKeys(raw document.Raw, prefix string) error {
	for k, v := range raw {
		if k == "" || strings.HasPrefix(k, "$") || strings.Contains(k, ".") {
			return fmt.Errorf("field %q in %q: %w", k, prefix, database.ErrInvalidDocument)
		}
		if nested, ok := v.(document.Raw); ok {
			if err := validateKeys(nested, prefix+k+"."); err != nil {
				return err
			}
		}
	}
	return nil
}
