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

package prediction

import (
	"fmt"
	"math"

	"github.com/spf13/cast"

	"github.com/magsolution/sat/internal/saterrors"
	"github.com/magsolution/sat/pkg/classifier"
)

// Request holds the validated features of a prediction.
type Request struct {
	Temperatura     float64 `json:"temperatura"`
	Vibracion       float64 `json:"vibracion"`
	TiempoOperacion float64 `json:"tiempo_operacion"`
	Presion         float64 `json:"presion"`
}

// Vector returns the features in classifier.Features order.
func (r Request) Vector() []float64 {
	return []float64{r.Temperatura, r.Vibracion, r.TiempoOperacion, r.Presion}
}

// ParseRequest validates a decoded json payload. Every required field must be
// present and coercible to a finite number, unknown fields are ignored.
func ParseRequest(payload map[string]any) (Request, error) {
	values := make([]float64, len(classifier.Features))
	var invalid []string
	for i, name := range classifier.Features {
		v, err := toFloat64(payload[name])
		if err != nil {
			invalid = append(invalid, name)
			continue
		}
		values[i] = v
	}

	if len(invalid) > 0 {
		return Request{}, saterrors.InvalidFields(invalid...)
	}

	return Request{
		Temperatura:     values[0],
		Vibracion:       values[1],
		TiempoOperacion: values[2],
		Presion:         values[3],
	}, nil
}

func toFloat64(v any) (float64, error) {
	switch v.(type) {
	case nil:
		return 0, saterrors.ErrEmptyValue
	case bool:
		return 0, saterrors.ErrInvalidArgument
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, err
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v is not finite", saterrors.ErrInvalidArgument, f)
	}

	return f, nil
}
