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

package training

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/evaluation"

	"github.com/magsolution/sat/pkg/classifier"
)

const (
	// DefaultTestPercent is the share of records held out for evaluation.
	DefaultTestPercent = 0.2

	// minRecords keeps both splits non empty.
	minRecords = 10
)

// Model is a classifier that can be fitted on a golearn grid.
type Model interface {
	classifier.Classifier

	Fit(train base.FixedDataGrid) error
	PredictGrid(grid base.FixedDataGrid) (base.FixedDataGrid, error)
}

// Options configure a training run.
type Options struct {
	Type           string  `yaml:"type" mapstructure:"type"`
	Samples        int     `yaml:"samples" mapstructure:"samples"`
	Seed           int64   `yaml:"seed" mapstructure:"seed"`
	FailureRate    float64 `yaml:"failureRate" mapstructure:"failureRate"`
	TestPercent    float64 `yaml:"testPercent" mapstructure:"testPercent"`
	ForestSize     int     `yaml:"forestSize" mapstructure:"forestSize"`
	ForestFeatures int     `yaml:"forestFeatures" mapstructure:"forestFeatures"`
	LearningRate   float64 `yaml:"learningRate" mapstructure:"learningRate"`
	Epochs         int     `yaml:"epochs" mapstructure:"epochs"`
}

// DefaultOptions trains the 100 tree forest on 1000 seeded samples.
func DefaultOptions() Options {
	return Options{
		Type:           classifier.TypeRandomForest,
		Samples:        DefaultSamples,
		Seed:           DefaultSeed,
		FailureRate:    DefaultFailureRate,
		TestPercent:    DefaultTestPercent,
		ForestSize:     classifier.DefaultForestSize,
		ForestFeatures: classifier.DefaultForestFeatures,
		LearningRate:   classifier.DefaultLearningRate,
		Epochs:         classifier.DefaultEpochs,
	}
}

// NewModel returns an unfitted model of opts.Type.
func NewModel(opts Options) (Model, error) {
	switch opts.Type {
	case classifier.TypeRandomForest:
		return classifier.NewRandomForest(opts.ForestSize, opts.ForestFeatures), nil
	case classifier.TypeLogisticRegression:
		return classifier.NewLogisticRegression(opts.LearningRate, opts.Epochs), nil
	default:
		return nil, fmt.Errorf("unknown classifier type %q", opts.Type)
	}
}

// Summary describes one feature column.
type Summary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

// Report is the outcome of a training run.
type Report struct {
	Type        string             `json:"type"`
	Samples     int                `json:"samples"`
	TrainSize   int                `json:"train_size"`
	TestSize    int                `json:"test_size"`
	FailureRate float64            `json:"failure_rate"`
	Accuracy    float64            `json:"accuracy"`
	Precision   float64            `json:"precision"`
	Recall      float64            `json:"recall"`
	F1          float64            `json:"f1"`
	Features    map[string]Summary `json:"features"`
}

// Evaluation flattens the report for persistence.
func (r *Report) Evaluation() map[string]any {
	return map[string]any{
		"samples":      r.Samples,
		"train_size":   r.TrainSize,
		"test_size":    r.TestSize,
		"failure_rate": r.FailureRate,
		"accuracy":     r.Accuracy,
		"precision":    r.Precision,
		"recall":       r.Recall,
		"f1":           r.F1,
	}
}

// Train fits a model on records and evaluates it on a held out split.
func Train(ctx context.Context, records []Record, opts Options) (Model, *Report, error) {
	if len(records) < minRecords {
		return nil, nil, fmt.Errorf("need at least %d records, got %d", minRecords, len(records))
	}

	if opts.TestPercent <= 0 || opts.TestPercent >= 1 {
		opts.TestPercent = DefaultTestPercent
	}

	model, err := NewModel(opts)
	if err != nil {
		return nil, nil, err
	}

	report, err := summarize(records)
	if err != nil {
		return nil, nil, err
	}
	report.Type = model.Type()

	ds, err := NewDataset(records)
	if err != nil {
		return nil, nil, err
	}

	train, test := base.InstancesTrainTestSplit(ds.DenseInstances, opts.TestPercent)
	_, report.TrainSize = train.Size()
	_, report.TestSize = test.Size()
	if report.TrainSize == 0 || report.TestSize == 0 {
		return nil, nil, errors.New("empty train or test split")
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	if err := model.Fit(train); err != nil {
		return nil, nil, fmt.Errorf("fit %s: %w", model.Type(), err)
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	predictions, err := model.PredictGrid(test)
	if err != nil {
		return nil, nil, fmt.Errorf("evaluate %s: %w", model.Type(), err)
	}

	cm, err := evaluation.GetConfusionMatrix(test, predictions)
	if err != nil {
		return nil, nil, err
	}

	report.Accuracy = finite(evaluation.GetAccuracy(cm))
	report.Precision = finite(evaluation.GetPrecision(classifier.ClassFailure, cm))
	report.Recall = finite(evaluation.GetRecall(classifier.ClassFailure, cm))
	report.F1 = finite(evaluation.GetF1Score(classifier.ClassFailure, cm))
	return model, report, nil
}

func summarize(records []Record) (*Report, error) {
	columns := make([][]float64, len(classifier.Features))
	failures := 0
	for _, record := range records {
		for i, v := range record.features() {
			columns[i] = append(columns[i], v)
		}
		failures += record.Fallo
	}

	report := &Report{
		Samples:     len(records),
		FailureRate: float64(failures) / float64(len(records)),
		Features:    make(map[string]Summary, len(classifier.Features)),
	}

	for i, name := range classifier.Features {
		data := stats.Float64Data(columns[i])
		mean, err := data.Mean()
		if err != nil {
			return nil, err
		}

		stdDev, err := data.StandardDeviation()
		if err != nil {
			return nil, err
		}

		min, err := data.Min()
		if err != nil {
			return nil, err
		}

		max, err := data.Max()
		if err != nil {
			return nil, err
		}

		median, err := data.Median()
		if err != nil {
			return nil, err
		}

		report.Features[name] = Summary{Mean: mean, StdDev: stdDev, Min: min, Max: max, Median: median}
	}

	return report, nil
}

// finite maps metrics undefined on a split without failures to zero.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return v
}
