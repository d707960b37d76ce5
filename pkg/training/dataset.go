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
	"io"
	"math/rand"

	"github.com/gocarina/gocsv"

	"github.com/magsolution/sat/pkg/classifier"
)

const (
	// DefaultSamples is the size of a generated dataset.
	DefaultSamples = 1000

	// DefaultSeed makes generated datasets reproducible.
	DefaultSeed = 42

	// DefaultFailureRate is the share of rows labelled as failures.
	DefaultFailureRate = 0.1
)

// Record is one row of the equipment sensor dataset.
type Record struct {
	Temperatura     float64 `csv:"temperatura"`
	Vibracion       float64 `csv:"vibracion"`
	TiempoOperacion float64 `csv:"tiempo_operacion"`
	Presion         float64 `csv:"presion"`
	Fallo           int     `csv:"fallo"`
}

func (r Record) features() []float64 {
	return []float64{r.Temperatura, r.Vibracion, r.TiempoOperacion, r.Presion}
}

// Generate draws size records with uniform features and an independent label.
func Generate(size int, seed int64, failureRate float64) []Record {
	if size <= 0 {
		size = DefaultSamples
	}

	if failureRate < 0 || failureRate > 1 {
		failureRate = DefaultFailureRate
	}

	r := rand.New(rand.NewSource(seed))
	uniform := func(low, high float64) float64 {
		return low + r.Float64()*(high-low)
	}

	records := make([]Record, size)
	for i := range records {
		records[i] = Record{
			Temperatura:     uniform(100, 600),
			Vibracion:       uniform(5, 25),
			TiempoOperacion: uniform(20, 100),
			Presion:         uniform(50, 150),
		}

		if r.Float64() < failureRate {
			records[i].Fallo = 1
		}
	}

	return records
}

// WriteCSV writes records with a header line.
func WriteCSV(w io.Writer, records []Record) error {
	return gocsv.Marshal(records, w)
}

// ReadCSV reads records written by WriteCSV.
func ReadCSV(r io.Reader) ([]Record, error) {
	var records []Record
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// NewDataset converts records into a golearn grid.
func NewDataset(records []Record) (*classifier.Dataset, error) {
	ds, err := classifier.NewDataset(len(records))
	if err != nil {
		return nil, err
	}

	for i, record := range records {
		if err := ds.SetRow(i, record.features(), record.Fallo); err != nil {
			return nil, err
		}
	}

	return ds, nil
}
