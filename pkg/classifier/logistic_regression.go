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

package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/mitchellh/mapstructure"
	"github.com/sjwhitworth/golearn/base"
)

const (
	// DefaultLearningRate is the gradient descent step of logistic regression.
	DefaultLearningRate = 0.5

	// DefaultEpochs is the number of full passes over the training set.
	DefaultEpochs = 500
)

// LogisticRegression is a binary logistic model over min-max scaled features.
type LogisticRegression struct {
	Fitted       bool      `json:"fitted" mapstructure:"fitted"`
	Bias         float64   `json:"bias" mapstructure:"bias"`
	Coefficients []float64 `json:"coefficients" mapstructure:"coefficients"`
	Min          []float64 `json:"min" mapstructure:"min"`
	Max          []float64 `json:"max" mapstructure:"max"`

	learningRate float64
	epochs       int
}

// NewLogisticRegression return an instance of logistic regression model.
func NewLogisticRegression(learningRate float64, epochs int) *LogisticRegression {
	if learningRate <= 0 {
		learningRate = DefaultLearningRate
	}

	if epochs <= 0 {
		epochs = DefaultEpochs
	}

	return &LogisticRegression{
		learningRate: learningRate,
		epochs:       epochs,
	}
}

func (lr *LogisticRegression) Type() string {
	return TypeLogisticRegression
}

// Fit train parameters of model to fit the data provided.
func (lr *LogisticRegression) Fit(train base.FixedDataGrid) error {
	attrs, _, err := gridAttributes(train)
	if err != nil {
		return err
	}

	_, rows := train.Size()
	if rows == 0 {
		return errors.New("empty training set")
	}

	specs := base.ResolveAttributes(train, floatAttributes(attrs))
	cols := len(specs)
	x := make([][]float64, rows)
	y := make([]float64, rows)
	for i := 0; i < rows; i++ {
		x[i] = make([]float64, cols)
		for j, spec := range specs {
			x[i][j] = base.UnpackBytesToFloat(train.Get(spec, i))
		}

		c, err := classOf(base.GetClass(train, i))
		if err != nil {
			return err
		}
		y[i] = float64(c)
	}

	lr.Min = make([]float64, cols)
	lr.Max = make([]float64, cols)
	for j := 0; j < cols; j++ {
		lr.Min[j], lr.Max[j] = math.MaxFloat64, -math.MaxFloat64
		for i := 0; i < rows; i++ {
			lr.Min[j] = math.Min(lr.Min[j], x[i][j])
			lr.Max[j] = math.Max(lr.Max[j], x[i][j])
		}
	}

	for i := range x {
		x[i] = lr.scale(x[i])
	}

	coefficients := make([]float64, cols)
	bias := 0.0
	gradient := make([]float64, cols)
	for epoch := 0; epoch < lr.epochs; epoch++ {
		for j := range gradient {
			gradient[j] = 0
		}
		biasGradient := 0.0

		for i := 0; i < rows; i++ {
			diff := sigmoid(dot(bias, coefficients, x[i])) - y[i]
			for j := 0; j < cols; j++ {
				gradient[j] += diff * x[i][j]
			}
			biasGradient += diff
		}

		for j := 0; j < cols; j++ {
			coefficients[j] -= lr.learningRate * gradient[j] / float64(rows)
		}
		bias -= lr.learningRate * biasGradient / float64(rows)
	}

	lr.Bias = bias
	lr.Coefficients = coefficients
	lr.Fitted = true
	return nil
}

// Score returns the failure probability of features.
func (lr *LogisticRegression) Score(features []float64) (float64, error) {
	if !lr.Fitted {
		return 0, errors.New("no fitted model")
	}

	if err := checkFeatures(features); err != nil {
		return 0, err
	}

	return sigmoid(dot(lr.Bias, lr.Coefficients, lr.scale(features))), nil
}

func (lr *LogisticRegression) Predict(features []float64) (Output, error) {
	score, err := lr.Score(features)
	if err != nil {
		return Output{}, err
	}

	out := Output{Score: score, Scored: true}
	if score > 0.5 {
		out.Class = 1
	}

	return out, nil
}

// PredictGrid use parameters of model to predict the data provided.
func (lr *LogisticRegression) PredictGrid(grid base.FixedDataGrid) (base.FixedDataGrid, error) {
	if !lr.Fitted {
		return nil, errors.New("no fitted model")
	}

	attrs, class, err := gridAttributes(grid)
	if err != nil {
		return nil, err
	}

	ret := base.GeneratePredictionVector(grid)
	clsSpec, err := ret.GetAttribute(class)
	if err != nil {
		return nil, err
	}

	specs := base.ResolveAttributes(grid, floatAttributes(attrs))
	err = grid.MapOverRows(specs, func(row [][]byte, i int) (bool, error) {
		features := make([]float64, len(row))
		for j, r := range row {
			features[j] = base.UnpackBytesToFloat(r)
		}

		out, err := lr.Predict(features)
		if err != nil {
			return false, err
		}

		ret.Set(clsSpec, i, class.GetSysValFromString(fmt.Sprint(out.Class)))
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return ret, nil
}

func (lr *LogisticRegression) Save(w io.Writer) error {
	if !lr.Fitted {
		return errors.New("no fitted model")
	}

	return json.NewEncoder(w).Encode(lr)
}

// LoadLogisticRegression reads an artifact written by LogisticRegression.Save.
func LoadLogisticRegression(r io.Reader) (*LogisticRegression, error) {
	lr := NewLogisticRegression(0, 0)
	if err := json.NewDecoder(r).Decode(lr); err != nil {
		return nil, err
	}

	n := len(Features)
	if !lr.Fitted || len(lr.Coefficients) != n || len(lr.Min) != n || len(lr.Max) != n {
		return nil, errors.New("invalid logistic regression artifact")
	}

	return lr, nil
}

func (lr *LogisticRegression) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"fitted":       lr.Fitted,
		"bias":         lr.Bias,
		"coefficients": lr.Coefficients,
		"min":          lr.Min,
		"max":          lr.Max,
	})
}

func (lr *LogisticRegression) UnmarshalJSON(data []byte) error {
	var d map[string]any
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}

	return mapstructure.Decode(d, lr)
}

func (lr *LogisticRegression) scale(features []float64) []float64 {
	scaled := make([]float64, len(features))
	for j, v := range features {
		span := lr.Max[j] - lr.Min[j]
		if span == 0 {
			continue
		}
		scaled[j] = (v - lr.Min[j]) / span
	}

	return scaled
}

func floatAttributes(attrs []*base.FloatAttribute) []base.Attribute {
	ret := make([]base.Attribute, len(attrs))
	for i, a := range attrs {
		ret[i] = a
	}

	return ret
}

func dot(bias float64, coefficients, x []float64) float64 {
	z := bias
	for j, c := range coefficients {
		z += c * x[j]
	}

	return z
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
