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

package prometheus_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/yorkie-team/docmodel/database"
	"github.com/yorkie-team/docmodel/metrics/prometheus"
)

func TestMetrics(t *testing.T) {
	t.Run("observe verbs test", func(t *testing.T) {
		metrics, err := prometheus.NewMetrics()
		assert.NoError(t, err)

		metrics.ObserveVerb("read", "Sample", time.Millisecond, nil)
		metrics.ObserveVerb("read", "Sample", time.Millisecond, nil)
		metrics.ObserveVerb("update", "Sample", time.Millisecond, database.ErrDocumentNotFound)

		families, err := metrics.Registry().Gather()
		assert.NoError(t, err)

		totals := map[string]float64{}
		for _, family := range families {
			if family.GetName() != "docmodel_model_verb_total" {
				continue
			}
			for _, metric := range family.GetMetric() {
				labels := map[string]string{}
				for _, label := range metric.GetLabel() {
					labels[label.GetName()] = label.GetValue()
				}
				totals[labels["verb"]+"/"+labels["result"]] = metric.GetCounter().GetValue()
			}
		}
		assert.Equal(t, map[string]float64{
			"read/ok":          2,
			"update/not_found": 1,
		}, totals)

		count, err := testutil.GatherAndCount(metrics.Registry(), "docmodel_model_verb_seconds")
		assert.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}
