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

// Package apply resolves writes against stored documents for databases that
// keep documents in process, such as the memory and bolt databases.
package apply

import (
	"fmt"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/yorkie-team/docmodel/database"
	"github.com/yorkie-team/docmodel/pkg/document"
)

// Write returns the document that results from writing doc over existing
// with the given mode. Transforms are resolved against the existing values
// and now is used as the server time. existing is not modified; it is nil
// for a missing document.
func Write(existing, doc document.Raw, mode database.Mode, now time.Time) (document.Raw, error) {
	base := document.Raw{}
	if mode.IsMerge() && existing != nil {
		base = existing.DeepCopy()
	}

	if err := merge(base, doc, now, ""); err != nil {
		return nil, err
	}
	return base, nil
}

func merge(target, doc document.Raw, now time.Time, prefix string) error {
	for key, value := range doc {
		if err := set(target, key, value, now, join(prefix, key)); err != nil {
			return err
		}
	}
	return nil
}

func set(target document.Raw, key string, value any, now time.Time, fieldPath string) error {
	switch val := value.(type) {
	case document.Raw:
		nested := document.Raw{}
		if current, ok := asRaw(target[key]); ok {
			nested = current
		}
		if err := merge(nested, val, now, fieldPath); err != nil {
			return err
		}
		target[key] = nested
	case document.ServerTimestamp:
		target[key] = now
	case document.Increment:
		sum, err := add(target[key], val.By)
		if err != nil {
			return fmt.Errorf("%s: %w", fieldPath, err)
		}
		target[key] = sum
	case document.Maximum:
		target[key] = pick(target[key], val.Value, func(c int) bool { return c < 0 })
	case document.Minimum:
		target[key] = pick(target[key], val.Value, func(c int) bool { return c > 0 })
	case document.ArrayUnion:
		elements := asArray(target[key])
		for _, e := range val.Elements {
			if !contains(elements, e) {
				elements = append(elements, document.CopyValue(e))
			}
		}
		target[key] = elements
	case document.ArrayRemove:
		current := asArray(target[key])
		elements := make([]any, 0, len(current))
		for _, e := range current {
			if !contains(val.Elements, e) {
				elements = append(elements, e)
			}
		}
		target[key] = elements
	case document.DeleteField:
		delete(target, key)
	case document.Transform:
		return fmt.Errorf("%s: unknown transform %s: %w", fieldPath, val.TransformName(), database.ErrInvalidDocument)
	default:
		target[key] = document.CopyValue(value)
	}

	return nil
}

// asRaw returns a copy of a stored nested document, whether it was stored as
// document.Raw or as a plain map.
func asRaw(v any) (document.Raw, bool) {
	switch val := v.(type) {
	case document.Raw:
		return val.DeepCopy(), true
	case map[string]any:
		return document.Raw(val).DeepCopy(), true
	}
	return nil, false
}

func asArray(v any) []any {
	if elements, ok := v.([]any); ok {
		return append([]any{}, elements...)
	}
	return []any{}
}

func contains(elements []any, v any) bool {
	for _, e := range elements {
		if Equal(e, v) {
			return true
		}
	}
	return false
}

// Equal reports whether two stored values are equal once normalized, so that
// int32(1) equals int64(1) and nested documents compare by content.
func Equal(a, b any) bool {
	return cmp.Equal(document.Canonical(a), document.Canonical(b))
}

// add returns current + delta. A missing or non-numeric current value counts
// as zero. The sum is an int64 when both numbers are integers.
func add(current, delta any) (any, error) {
	d := document.Canonical(delta)
	c := document.Canonical(current)

	switch dv := d.(type) {
	case int64:
		switch cv := c.(type) {
		case int64:
			return cv + dv, nil
		case float64:
			return cv + float64(dv), nil
		default:
			return dv, nil
		}
	case float64:
		switch cv := c.(type) {
		case int64:
			return float64(cv) + dv, nil
		case float64:
			return cv + dv, nil
		default:
			return dv, nil
		}
	}

	return nil, fmt.Errorf("increment by %T: %w", delta, database.ErrInvalidDocument)
}

// pick returns operand if current is not a number or if replace holds for
// the comparison of current with operand, and current otherwise.
func pick(current, operand any, replace func(c int) bool) any {
	c, ok := compare(document.Canonical(current), document.Canonical(operand))
	if !ok || replace(c) {
		return operand
	}
	return current
}

// compare compares two canonical numbers. The second return value is false
// if either is not a number.
func compare(a, b any) (int, bool) {
	ai, aInt := a.(int64)
	bi, bInt := b.(int64)
	if aInt && bInt {
		switch {
		case ai < bi:
			return -1, true
		case ai > bi:
			return 1, true
		default:
			return 0, true
		}
	}

	af, ok := toFloat(a)
	if !ok {
		return 0, false
	}
	bf, ok := toFloat(b)
	if !ok {
		return 0, false
	}
	switch {
	case af < bf:
		return -1, true
	case af > bf:
		return 1, true
	default:
		return 0, true
	}
}

func toFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case int64:
		return float64(val), true
	case float64:
		return val, true
	}
	return 0, false
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
