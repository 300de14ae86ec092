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

// Package prometheus provides the Prometheus metrics of model verbs.
package prometheus

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/yorkie-team/docmodel/internal/version"
	"github.com/yorkie-team/docmodel/pkg/errors"
)

const (
	namespace   = "docmodel"
	verbLabel   = "verb"
	modelLabel  = "model"
	resultLabel = "result"
)

// Metrics manages the metric information of model verbs.
type Metrics struct {
	registry *prometheus.Registry

	version *prometheus.GaugeVec

	verbSeconds *prometheus.HistogramVec
	verbTotal   *prometheus.CounterVec
}

// NewMetrics creates a new instance of Metrics.
func NewMetrics() (*Metrics, error) {
	reg := prometheus.NewRegistry()

	if err := reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, fmt.Errorf("register process collector: %w", err)
	}
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("register go collector: %w", err)
	}

	metrics := &Metrics{
		registry: reg,
		version: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "version",
			Help:      "Which version is running. 1 for 'version' label with current version.",
		}, []string{"version"}),
		verbSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "model",
			Name:      "verb_seconds",
			Help:      "The time taken by a model verb, including encoding and decoding.",
		}, []string{verbLabel, modelLabel}),
		verbTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "model",
			Name:      "verb_total",
			Help:      "The total count of model verbs by result.",
		}, []string{verbLabel, modelLabel, resultLabel}),
	}

	metrics.version.With(prometheus.Labels{
		"version": version.Version,
	}).Set(1)

	return metrics, nil
}

// ObserveVerb records one completed verb. The result label is the status of
// err, "ok" when err is nil.
func (m *Metrics) ObserveVerb(verb, model string, duration time.Duration, err error) {
	m.verbSeconds.With(prometheus.Labels{
		verbLabel:  verb,
		modelLabel: model,
	}).Observe(duration.Seconds())
	m.verbTotal.With(prometheus.Labels{
		verbLabel:   verb,
		modelLabel:  model,
		resultLabel: errors.StatusOf(err).String(),
	}).Inc()
}

// Registry returns the registry of this metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
