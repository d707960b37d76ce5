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
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/ensemble"
)

const (
	// DefaultForestSize is the number of trees of a new forest.
	DefaultForestSize = 100

	// DefaultForestFeatures is the number of features sampled per tree.
	DefaultForestFeatures = 2

	// forestPrefix is where golearn stores the bagged model in the artifact.
	forestPrefix = "model"
)

// RandomForest wraps a golearn forest. It yields classes without scores.
type RandomForest struct {
	// golearn trees are not documented as safe for concurrent prediction.
	mu     sync.Mutex
	forest *ensemble.RandomForest
	attrs  []*base.FloatAttribute
	class  *base.CategoricalAttribute
	fitted bool
}

// NewRandomForest returns an unfitted forest, non positive arguments fall back to defaults.
func NewRandomForest(trees, features int) *RandomForest {
	if trees <= 0 {
		trees = DefaultForestSize
	}

	if features <= 0 || features > len(Features) {
		features = DefaultForestFeatures
	}

	return &RandomForest{
		forest: ensemble.NewRandomForest(trees, features),
	}
}

func (r *RandomForest) Type() string {
	return TypeRandomForest
}

// Size returns the number of trees and the features sampled per tree.
func (r *RandomForest) Size() (int, int) {
	return r.forest.ForestSize, r.forest.Features
}

// Fit trains the forest on a grid laid out by NewDataset.
func (r *RandomForest) Fit(train base.FixedDataGrid) error {
	attrs, class, err := gridAttributes(train)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.forest.Fit(train); err != nil {
		return err
	}

	r.attrs = attrs
	r.class = class
	r.fitted = true
	return nil
}

// PredictGrid predicts the class of every row of grid.
func (r *RandomForest) PredictGrid(grid base.FixedDataGrid) (base.FixedDataGrid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.fitted {
		return nil, errors.New("no fitted model")
	}

	return r.forest.Predict(grid)
}

func (r *RandomForest) Predict(features []float64) (Output, error) {
	if err := checkFeatures(features); err != nil {
		return Output{}, err
	}

	r.mu.Lock()
	attrs, class := r.attrs, r.class
	r.mu.Unlock()
	if attrs == nil {
		return Output{}, errors.New("no fitted model")
	}

	ds, err := newDataset(attrs, class, 1)
	if err != nil {
		return Output{}, err
	}

	if err := ds.SetRow(0, features, 0); err != nil {
		return Output{}, err
	}

	out, err := r.PredictGrid(ds.DenseInstances)
	if err != nil {
		return Output{}, err
	}

	c, err := classOf(base.GetClass(out, 0))
	if err != nil {
		return Output{}, err
	}

	return Output{Class: c}, nil
}

// Save writes the golearn serialized forest. golearn only serializes to a
// path, so the artifact goes through a temporary file.
func (r *RandomForest) Save(w io.Writer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.fitted {
		return errors.New("no fitted model")
	}

	f, err := os.CreateTemp("", "random-forest-*.cls")
	if err != nil {
		return err
	}
	path := f.Name()
	defer os.Remove(path)
	if err := f.Close(); err != nil {
		return err
	}

	if err := r.forest.Save(path); err != nil {
		return err
	}

	f, err = os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(w, f)
	return err
}

// LoadRandomForest reads an artifact written by RandomForest.Save, the forest
// size and sampled features come from the artifact.
func LoadRandomForest(r io.Reader) (*RandomForest, error) {
	f, err := os.CreateTemp("", "random-forest-*.cls")
	if err != nil {
		return nil, err
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return nil, err
	}

	if err := f.Close(); err != nil {
		return nil, err
	}

	reader, err := base.ReadSerializedClassifierStub(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	// The forest must be allocated with as many trees as were saved.
	trees, err := reader.GetU64ForKey(reader.Prefix(forestPrefix, "NUM_CLASSIFIERS"))
	if err != nil {
		return nil, err
	}

	features, err := reader.GetU64ForKey(reader.Prefix(forestPrefix, "NUM_RANDOM_FEATURES"))
	if err != nil {
		return nil, err
	}

	if trees == 0 || features == 0 || features > uint64(len(Features)) {
		return nil, fmt.Errorf("invalid forest of %d trees with %d features", trees, features)
	}

	forest := ensemble.NewRandomForest(int(trees), int(features))
	if err := forest.LoadWithPrefix(reader, forestPrefix); err != nil {
		return nil, err
	}

	attrs, class := NewAttributes()
	return &RandomForest{
		forest: forest,
		attrs:  attrs,
		class:  class,
		fitted: true,
	}, nil
}
