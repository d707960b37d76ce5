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

package storage

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magsolution/sat/pkg/training"
)

var (
	mockKey = "20230102150405.000000"

	mockRecords = []training.Record{
		{Temperatura: 350.5, Vibracion: 12.25, TiempoOperacion: 40, Presion: 99.5, Fallo: 0},
		{Temperatura: 580, Vibracion: 24.5, TiempoOperacion: 95, Presion: 140, Fallo: 1},
	}
)

func TestStorage_New(t *testing.T) {
	tests := []struct {
		name    string
		baseDir string
		expect  func(t *testing.T, s Storage)
	}{
		{
			name:    "new storage",
			baseDir: os.TempDir(),
			expect: func(t *testing.T, s Storage) {
				assert := assert.New(t)
				assert.Equal(reflect.TypeOf(s).Elem().Name(), "storage")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.expect(t, New(tc.baseDir))
		})
	}
}

func TestStorage_Dataset(t *testing.T) {
	tests := []struct {
		name   string
		mock   func(t *testing.T, s Storage, baseDir string)
		expect func(t *testing.T, s Storage, baseDir string)
	}{
		{
			name: "create and list dataset",
			mock: func(t *testing.T, s Storage, baseDir string) {
				if err := s.CreateDataset(mockKey, mockRecords); err != nil {
					t.Fatal(err)
				}
			},
			expect: func(t *testing.T, s Storage, baseDir string) {
				assert := assert.New(t)
				records, err := s.ListDataset(mockKey)
				assert.NoError(err)
				assert.Equal(mockRecords, records)
			},
		},
		{
			name: "dataset has a header",
			mock: func(t *testing.T, s Storage, baseDir string) {
				if err := s.CreateDataset(mockKey, mockRecords); err != nil {
					t.Fatal(err)
				}
			},
			expect: func(t *testing.T, s Storage, baseDir string) {
				assert := assert.New(t)
				rc, err := s.OpenDataset(mockKey)
				assert.NoError(err)
				defer rc.Close()

				b, err := io.ReadAll(rc)
				assert.NoError(err)
				assert.True(strings.HasPrefix(string(b), "temperatura,vibracion,tiempo_operacion,presion,fallo\n"))
			},
		},
		{
			name: "list dataset without file",
			mock: func(t *testing.T, s Storage, baseDir string) {},
			expect: func(t *testing.T, s Storage, baseDir string) {
				assert := assert.New(t)
				_, err := s.ListDataset(mockKey)
				assert.True(os.IsNotExist(err))
			},
		},
		{
			name: "list empty dataset",
			mock: func(t *testing.T, s Storage, baseDir string) {
				file, err := os.Create(filepath.Join(baseDir, "dataset-"+mockKey+".csv"))
				if err != nil {
					t.Fatal(err)
				}
				file.Close()
			},
			expect: func(t *testing.T, s Storage, baseDir string) {
				assert := assert.New(t)
				_, err := s.ListDataset(mockKey)
				assert.EqualError(err, "empty csv file given")
			},
		},
		{
			name: "clear datasets",
			mock: func(t *testing.T, s Storage, baseDir string) {
				if err := s.CreateDataset(mockKey, mockRecords); err != nil {
					t.Fatal(err)
				}

				if err := s.CreateDataset("foo", mockRecords); err != nil {
					t.Fatal(err)
				}
			},
			expect: func(t *testing.T, s Storage, baseDir string) {
				assert := assert.New(t)
				assert.NoError(s.Clear())

				_, err := os.Stat(filepath.Join(baseDir, "dataset-"+mockKey+".csv"))
				assert.True(os.IsNotExist(err))
				_, err = os.Stat(filepath.Join(baseDir, "dataset-foo.csv"))
				assert.True(os.IsNotExist(err))
			},
		},
		{
			name: "clear missing dataset",
			mock: func(t *testing.T, s Storage, baseDir string) {},
			expect: func(t *testing.T, s Storage, baseDir string) {
				assert := assert.New(t)
				assert.Error(s.ClearDataset(mockKey))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			baseDir := t.TempDir()
			s := New(baseDir)
			tc.mock(t, s, baseDir)
			tc.expect(t, s, baseDir)
		})
	}
}

func TestStorage_CreateArtifact(t *testing.T) {
	assert := assert.New(t)
	baseDir := t.TempDir()
	s := New(baseDir)

	filename, err := s.CreateArtifact(mockKey, []byte("foo"))
	assert.NoError(err)
	assert.Equal(filepath.Join(baseDir, "model-"+mockKey+".cls"), filename)

	b, err := os.ReadFile(filename)
	assert.NoError(err)
	assert.Equal([]byte("foo"), b)
}

func TestStorage_CreateReport(t *testing.T) {
	assert := assert.New(t)
	baseDir := t.TempDir()
	s := New(baseDir)

	report := &training.Report{Type: "random_forest", Samples: 1000, Accuracy: 0.9}
	filename, err := s.CreateReport(mockKey, report)
	assert.NoError(err)
	assert.Equal(filepath.Join(baseDir, "report-"+mockKey+".json"), filename)

	b, err := os.ReadFile(filename)
	assert.NoError(err)

	got := &training.Report{}
	assert.NoError(json.Unmarshal(b, got))
	assert.Equal(report, got)
}
