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
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/magsolution/sat/pkg/training"
)

const (
	// DatasetFilePrefix is prefix of dataset file name.
	DatasetFilePrefix = "dataset"

	// ArtifactFilePrefix is prefix of model artifact file name.
	ArtifactFilePrefix = "model"

	// ReportFilePrefix is prefix of training report file name.
	ReportFilePrefix = "report"

	// CSVFileExt is extension of dataset files.
	CSVFileExt = "csv"

	// ArtifactFileExt is extension of model artifact files.
	ArtifactFileExt = "cls"

	// JSONFileExt is extension of report files.
	JSONFileExt = "json"
)

// Storage keeps the files of training runs, each run is named by a key.
type Storage interface {
	// CreateDataset writes records with a header into the dataset csv file of key.
	CreateDataset(string, []training.Record) error

	// ListDataset returns the records of the dataset csv file of key.
	ListDataset(string) ([]training.Record, error)

	// OpenDataset opens the dataset csv file of key for read.
	OpenDataset(string) (io.ReadCloser, error)

	// CreateArtifact writes the encoded model of key and returns its path.
	CreateArtifact(string, []byte) (string, error)

	// CreateReport writes the training report of key as json and returns its path.
	CreateReport(string, *training.Report) (string, error)

	// ClearDataset removes the dataset of key.
	ClearDataset(string) error

	// Clear removes the datasets of every key, artifacts and reports stay.
	Clear() error
}

type storage struct {
	baseDir     string
	datasetKeys cmap.ConcurrentMap[struct{}]
}

// New returns a new Storage instance.
func New(baseDir string) Storage {
	return &storage{
		baseDir:     baseDir,
		datasetKeys: cmap.New[struct{}](),
	}
}

// CreateDataset writes records with a header into the dataset csv file of key.
func (s *storage) CreateDataset(key string, records []training.Record) error {
	file, err := os.OpenFile(s.datasetFilename(key), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&records, file); err != nil {
		if err := os.Remove(s.datasetFilename(key)); err != nil {
			return err
		}

		return err
	}

	s.datasetKeys.Set(key, struct{}{})
	return nil
}

// ListDataset returns the records of the dataset csv file of key.
func (s *storage) ListDataset(key string) ([]training.Record, error) {
	file, err := os.Open(s.datasetFilename(key))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return training.ReadCSV(file)
}

// OpenDataset opens the dataset csv file of key for read.
func (s *storage) OpenDataset(key string) (io.ReadCloser, error) {
	file, err := os.Open(s.datasetFilename(key))
	if err != nil {
		return nil, err
	}

	return file, nil
}

// CreateArtifact writes the encoded model of key and returns its path.
func (s *storage) CreateArtifact(key string, artifact []byte) (string, error) {
	filename := s.filename(ArtifactFilePrefix, key, ArtifactFileExt)
	if err := os.WriteFile(filename, artifact, 0600); err != nil {
		return "", err
	}

	return filename, nil
}

// CreateReport writes the training report of key as json and returns its path.
func (s *storage) CreateReport(key string, report *training.Report) (string, error) {
	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}

	filename := s.filename(ReportFilePrefix, key, JSONFileExt)
	if err := os.WriteFile(filename, b, 0600); err != nil {
		return "", err
	}

	return filename, nil
}

// ClearDataset removes the dataset of key.
func (s *storage) ClearDataset(key string) error {
	if err := os.Remove(s.datasetFilename(key)); err != nil {
		return err
	}

	s.datasetKeys.Remove(key)
	return nil
}

// Clear removes the datasets of every key.
func (s *storage) Clear() error {
	for _, key := range s.datasetKeys.Keys() {
		if err := s.ClearDataset(key); err != nil {
			return err
		}
	}

	return nil
}

// datasetFilename generates dataset file name based on the given key.
func (s *storage) datasetFilename(key string) string {
	return s.filename(DatasetFilePrefix, key, CSVFileExt)
}

func (s *storage) filename(prefix, key, ext string) string {
	return filepath.Join(s.baseDir, fmt.Sprintf("%s-%s.%s", prefix, key, ext))
}
