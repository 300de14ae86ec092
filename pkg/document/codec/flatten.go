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

package codec

import "github.com/yorkie-team/docmodel/pkg/document"

// Flatten turns the nested documents of raw into dotted field paths, e.g.
// {"a": {"b": 1}} becomes {"a.b": 1}. Only document.Raw values are descended
// into; other values, including empty nested documents, are kept as leaves.
// Paths listed in ignore are kept as leaves too.
func Flatten(raw document.Raw, ignore ...string) map[string]any {
	skip := make(map[string]bool, len(ignore))
	for _, p := range ignore {
		skip[p] = true
	}

	flat := make(map[string]any)
	flatten(flat, raw, "", skip)
	return flat
}

func flatten(flat map[string]any, raw document.Raw, prefix string, skip map[string]bool) {
	for k, v := range raw {
		p := join(prefix, k)
		nested, ok := v.(document.Raw)
		if !ok || len(nested) == 0 || skip[p] {
			flat[p] = v
			continue
		}
		flatten(flat, nested, p, skip)
	}
}
