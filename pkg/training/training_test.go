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
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magsolution/sat/pkg/classifier"
)

func TestGenerate(t *testing.T) {
	assert := assert.New(t)
	records := Generate(500, DefaultSeed, DefaultFailureRate)
	assert.Len(records, 500)
	assert.Equal(records, Generate(500, DefaultSeed, DefaultFailureRate))

	failures := 0
	for _, r := range records {
		assert.GreaterOrEqual(r.Temperatura, 100.0)
		assert.Less(r.Temperatura, 600.0)
		assert.GreaterOrEqual(r.Vibracion, 5.0)
		assert.Less(r.Vibracion, 25.0)
		assert.GreaterOrEqual(r.TiempoOperacion, 20.0)
		assert.Less(r.TiempoOperacion, 100.0)
		assert.GreaterOrEqual(r.Presion, 50.0)
		assert.Less(r.Presion, 150.0)
		assert.Contains([]int{0, 1}, r.Fallo)
		failures += r.Fallo
	}
	assert.InDelta(0.1, float64(failures)/500, 0.05)

	assert.Len(Generate(0, 1, 2), DefaultSamples)
}

func TestCSV(t *testing.T) {
	assert := assert.New(t)
	records := Generate(20, 7, 0.5)

	var buf bytes.Buffer
	assert.NoError(WriteCSV(&buf, records))
	assert.Contains(buf.String(), "temperatura,vibracion,tiempo_operacion,presion,fallo")

	got, err := ReadCSV(&buf)
	assert.NoError(err)
	assert.Len(got, len(records))
	assert.Equal(records[0].Fallo, got[0].Fallo)
	assert.InDelta(records[0].Temperatura, got[0].Temperatura, 1e-9)
}

func TestTrain(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
		opts    func() Options
		expect  func(t *testing.T, model Model, report *Report, err error)
	}{
		{
			name:    "random forest",
			records: Generate(200, DefaultSeed, DefaultFailureRate),
			opts: func() Options {
				opts := DefaultOptions()
				opts.ForestSize = 10
				return opts
			},
			expect: func(t *testing.T, model Model, report *Report, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(classifier.TypeRandomForest, model.Type())
				assert.Equal(200, report.Samples)
				assert.Equal(200, report.TrainSize+report.TestSize)
				assert.GreaterOrEqual(report.Accuracy, 0.0)
				assert.LessOrEqual(report.Accuracy, 1.0)
				assert.Len(report.Features, len(classifier.Features))
				assert.GreaterOrEqual(report.Features["temperatura"].Min, 100.0)
			},
		},
		{
			name:    "logistic regression",
			records: Generate(200, DefaultSeed, 0.3),
			opts: func() Options {
				opts := DefaultOptions()
				opts.Type = classifier.TypeLogisticRegression
				opts.Epochs = 50
				return opts
			},
			expect: func(t *testing.T, model Model, report *Report, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				out, err := model.Predict([]float64{300, 10, 50, 100})
				assert.NoError(err)
				assert.True(out.Scored)
				assert.Contains(report.Evaluation(), "accuracy")
			},
		},
		{
			name:    "unknown type",
			records: Generate(20, DefaultSeed, DefaultFailureRate),
			opts: func() Options {
				opts := DefaultOptions()
				opts.Type = "svm"
				return opts
			},
			expect: func(t *testing.T, model Model, report *Report, err error) {
				assert.Error(t, err)
			},
		},
		{
			name:    "too few records",
			records: Generate(5, DefaultSeed, DefaultFailureRate)[:5],
			opts:    DefaultOptions,
			expect: func(t *testing.T, model Model, report *Report, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			model, report, err := Train(context.Background(), tc.records, tc.opts())
			tc.expect(t, model, report, err)
		})
	}
}

func TestTrain_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := Train(ctx, Generate(50, DefaultSeed, DefaultFailureRate), DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}
