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
	"bytes"
	"fmt"
	"io"
)

const (
	// TypeRandomForest is a golearn random forest, it only yields a class.
	TypeRandomForest = "random_forest"

	// TypeLogisticRegression yields a continuous failure score.
	TypeLogisticRegression = "logistic_regression"
)

const (
	// ClassName is the name of the label column.
	ClassName = "fallo"

	// ClassFailure and ClassNormal are the label values.
	ClassFailure = "1"
	ClassNormal  = "0"
)

// Features is the fixed order of the feature vector.
var Features = []string{"temperatura", "vibracion", "tiempo_operacion", "presion"}

// Output is the raw inference result. Score is meaningful only when Scored is set.
type Output struct {
	Class  int
	Score  float64
	Scored bool
}

//go:generate mockgen -destination mocks/classifier_mock.go -source classifier.go -package mocks

// Classifier is a trained model that is safe for concurrent Predict calls.
type Classifier interface {
	// Type returns the artifact type.
	Type() string

	// Predict infers on one feature vector ordered as Features.
	Predict(features []float64) (Output, error)

	// Save writes the artifact.
	Save(w io.Writer) error
}

// Encode returns the artifact bytes of c.
func Encode(c Classifier) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Save(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Load decodes an artifact written by Save.
func Load(typ string, r io.Reader) (Classifier, error) {
	switch typ {
	case TypeRandomForest:
		return LoadRandomForest(r)
	case TypeLogisticRegression:
		return LoadLogisticRegression(r)
	default:
		return nil, fmt.Errorf("unknown classifier type %q", typ)
	}
}

func checkFeatures(features []float64) error {
	if len(features) != len(Features) {
		return fmt.Errorf("expected %d features, got %d", len(Features), len(features))
	}

	return nil
}
