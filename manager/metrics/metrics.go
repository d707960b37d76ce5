/*
 *     Copyright 2023 The MAGSOLUTION Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/magsolution/sat/manager/config"
	"github.com/magsolution/sat/version"
)

const (
	// Namespace is the prometheus namespace of the service.
	Namespace = "magsolution"

	// Subsystem is the prometheus subsystem of the manager.
	Subsystem = "manager"
)

// Variables declared for metrics.
var (
	PredictionCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: Subsystem,
		Name:      "prediction_total",
		Help:      "Counter of the number of the prediction by risk label.",
	}, []string{"risk", "model_type"})

	PredictionFailureCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: Subsystem,
		Name:      "prediction_failure_total",
		Help:      "Counter of the number of failed of the prediction by error code.",
	}, []string{"code"})

	TrainingCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: Subsystem,
		Name:      "training_total",
		Help:      "Counter of the number of the training.",
	}, []string{"model_type"})

	TrainingFailureCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: Subsystem,
		Name:      "training_failure_total",
		Help:      "Counter of the number of failed of the training.",
	}, []string{"model_type"})

	ActiveModelAccuracyGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Subsystem: Subsystem,
		Name:      "active_model_accuracy",
		Help:      "Test accuracy of the model serving predictions.",
	}, []string{"model_type", "version"})

	EventCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: Subsystem,
		Name:      "event_total",
		Help:      "Counter of the number of the published update events.",
	}, []string{"type"})

	VersionGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Subsystem: Subsystem,
		Name:      "version",
		Help:      "Version info of the service.",
	}, []string{"major", "minor", "git_version", "git_commit", "platform", "build_time", "go_version"})
)

func New(cfg *config.MetricsConfig) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	VersionGauge.WithLabelValues(version.Major, version.Minor, version.GitVersion, version.GitCommit, version.Platform, version.BuildTime, version.GoVersion).Set(1)
	return &http.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}
}

// SetActiveModel resets the accuracy gauge to the model serving predictions.
func SetActiveModel(modelType, modelVersion string, accuracy float64) {
	ActiveModelAccuracyGauge.Reset()
	ActiveModelAccuracyGauge.WithLabelValues(modelType, modelVersion).Set(accuracy)
}
