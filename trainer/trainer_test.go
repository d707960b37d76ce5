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

package trainer

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/magsolution/sat/pkg/classifier"
	"github.com/magsolution/sat/pkg/digest"
	"github.com/magsolution/sat/pkg/objectstorage/mocks"
	"github.com/magsolution/sat/pkg/satpath"
	"github.com/magsolution/sat/pkg/training"
	"github.com/magsolution/sat/trainer/config"
	"github.com/magsolution/sat/trainer/storage"
)

func newTestConfig() *config.Config {
	cfg := config.New()
	cfg.Training.Type = classifier.TypeLogisticRegression
	cfg.Training.Samples = 200
	cfg.Training.Epochs = 50
	return cfg
}

func TestTrainer_New(t *testing.T) {
	dir := t.TempDir()
	d, err := satpath.New(satpath.WithWorkHome(dir), satpath.WithLogDir(dir), satpath.WithDataDir(dir))
	if err != nil {
		t.Fatal(err)
	}

	tr, err := New(newTestConfig(), d)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Nil(tr.objectStorage)
}

func TestTrainer_Run(t *testing.T) {
	tests := []struct {
		name   string
		config func(t *testing.T, dir string) *config.Config
		mock   func(m *mocks.MockObjectStorageMockRecorder)
		upload bool
		expect func(t *testing.T, dir string, result *Result, err error)
	}{
		{
			name: "train on a generated dataset",
			config: func(t *testing.T, dir string) *config.Config {
				return newTestConfig()
			},
			mock: func(m *mocks.MockObjectStorageMockRecorder) {},
			expect: func(t *testing.T, dir string, result *Result, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(classifier.TypeLogisticRegression, result.Type)
				assert.Equal(200, result.Report.Samples)
				assert.Empty(result.ObjectKey)

				artifact, err := os.ReadFile(result.ArtifactPath)
				assert.NoError(err)
				assert.Equal(digest.FromBytes(artifact), result.Digest)

				c, err := classifier.Load(result.Type, bytes.NewReader(artifact))
				assert.NoError(err)
				assert.Equal(classifier.TypeLogisticRegression, c.Type())

				_, err = os.Stat(result.ReportPath)
				assert.NoError(err)
				_, err = os.Stat(filepath.Join(dir, "dataset-"+result.Version+".csv"))
				assert.NoError(err)
			},
		},
		{
			name: "train a random forest that reloads with its size",
			config: func(t *testing.T, dir string) *config.Config {
				cfg := newTestConfig()
				cfg.Training.Type = classifier.TypeRandomForest
				cfg.Training.ForestSize = 50
				return cfg
			},
			mock: func(m *mocks.MockObjectStorageMockRecorder) {},
			expect: func(t *testing.T, dir string, result *Result, err error) {
				assert := assert.New(t)
				if !assert.NoError(err) {
					t.FailNow()
				}

				artifact, err := os.ReadFile(result.ArtifactPath)
				if !assert.NoError(err) {
					t.FailNow()
				}

				c, err := classifier.Load(result.Type, bytes.NewReader(artifact))
				if !assert.NoError(err) {
					t.FailNow()
				}

				trees, _ := c.(*classifier.RandomForest).Size()
				assert.Equal(50, trees)
			},
		},
		{
			name: "train on a csv dataset",
			config: func(t *testing.T, dir string) *config.Config {
				path := filepath.Join(dir, "datos_sensores.csv")
				file, err := os.Create(path)
				if err != nil {
					t.Fatal(err)
				}
				defer file.Close()

				if err := training.WriteCSV(file, training.Generate(120, 1, 0.3)); err != nil {
					t.Fatal(err)
				}

				cfg := newTestConfig()
				cfg.Dataset = path
				return cfg
			},
			mock: func(m *mocks.MockObjectStorageMockRecorder) {},
			expect: func(t *testing.T, dir string, result *Result, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(120, result.Report.Samples)
				_, err = os.Stat(filepath.Join(dir, "dataset-"+result.Version+".csv"))
				assert.True(os.IsNotExist(err))
			},
		},
		{
			name: "dataset file is missing",
			config: func(t *testing.T, dir string) *config.Config {
				cfg := newTestConfig()
				cfg.Dataset = filepath.Join(dir, "foo.csv")
				return cfg
			},
			mock: func(m *mocks.MockObjectStorageMockRecorder) {},
			expect: func(t *testing.T, dir string, result *Result, err error) {
				assert := assert.New(t)
				assert.True(os.IsNotExist(err))
			},
		},
		{
			name: "upload artifact into a new bucket",
			config: func(t *testing.T, dir string) *config.Config {
				return newTestConfig()
			},
			upload: true,
			mock: func(m *mocks.MockObjectStorageMockRecorder) {
				gomock.InOrder(
					m.IsBucketExist(gomock.Any(), "models").Return(false, nil).Times(1),
					m.CreateBucket(gomock.Any(), "models").Return(nil).Times(1),
					m.PutObject(gomock.Any(), "models", gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
						func(ctx context.Context, bucket, key, objectDigest string, r io.Reader) error {
							b, err := io.ReadAll(r)
							if err != nil {
								return err
							}

							if digest.FromBytes(b) != objectDigest {
								return errors.New("digest mismatch")
							}

							return nil
						}).Times(1),
				)
			},
			expect: func(t *testing.T, dir string, result *Result, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal("logistic_regression/"+result.Version+"/model.cls", result.ObjectKey)
			},
		},
		{
			name: "upload artifact failed",
			config: func(t *testing.T, dir string) *config.Config {
				return newTestConfig()
			},
			upload: true,
			mock: func(m *mocks.MockObjectStorageMockRecorder) {
				gomock.InOrder(
					m.IsBucketExist(gomock.Any(), "models").Return(true, nil).Times(1),
					m.PutObject(gomock.Any(), "models", gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("foo")).Times(1),
				)
			},
			expect: func(t *testing.T, dir string, result *Result, err error) {
				assert := assert.New(t)
				assert.ErrorContains(err, "foo")
				assert.Nil(result)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()

			dir := t.TempDir()
			objectStorage := mocks.NewMockObjectStorage(ctl)
			tc.mock(objectStorage.EXPECT())

			tr := &Trainer{
				config:  tc.config(t, dir),
				storage: storage.New(dir),
			}
			if tc.upload {
				tr.objectStorage = objectStorage
			}

			result, err := tr.Run(context.Background())
			tc.expect(t, dir, result, err)
		})
	}
}

func TestTrainer_Stop(t *testing.T) {
	dir := t.TempDir()
	tr := &Trainer{
		config:  newTestConfig(),
		storage: storage.New(dir),
	}

	result, err := tr.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	tr.Stop()
	_, err = os.Stat(filepath.Join(dir, "dataset-"+result.Version+".csv"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(result.ArtifactPath)
	assert.NoError(t, err)
}
