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
	"context"
	"os"
	"time"

	logger "github.com/magsolution/sat/internal/satlog"
	"github.com/magsolution/sat/manager/types"
	"github.com/magsolution/sat/pkg/classifier"
	"github.com/magsolution/sat/pkg/digest"
	"github.com/magsolution/sat/pkg/objectstorage"
	"github.com/magsolution/sat/pkg/satpath"
	"github.com/magsolution/sat/pkg/training"
	"github.com/magsolution/sat/trainer/config"
	"github.com/magsolution/sat/trainer/storage"
)

// versionLayout names a training run, the manager uses the same layout.
const versionLayout = "20060102150405.000000"

// Result describes the files of a finished run.
type Result struct {
	Version      string           `json:"version"`
	Type         string           `json:"type"`
	ArtifactPath string           `json:"artifact_path"`
	ReportPath   string           `json:"report_path"`
	Digest       string           `json:"digest"`
	ObjectKey    string           `json:"object_key,omitempty"`
	Report       *training.Report `json:"report"`
}

type Trainer struct {
	// Trainer configuration.
	config *config.Config

	// Storage of datasets, artifacts and reports.
	storage storage.Storage

	// Object storage, nil when uploads are disabled.
	objectStorage objectstorage.ObjectStorage
}

func New(cfg *config.Config, d satpath.Satpath) (*Trainer, error) {
	t := &Trainer{
		config:  cfg,
		storage: storage.New(d.DataDir()),
	}

	if cfg.Upload.Enable {
		objectStorage, err := objectstorage.New(cfg.Upload.ObjectStorage)
		if err != nil {
			return nil, err
		}
		t.objectStorage = objectStorage
	}

	return t, nil
}

// Run generates or reads a dataset, trains a model and writes its artifact and report.
func (t *Trainer) Run(ctx context.Context) (*Result, error) {
	version := time.Now().UTC().Format(versionLayout)
	log := logger.With("version", version, "modelType", t.config.Training.Type)

	records, err := t.records(version)
	if err != nil {
		return nil, err
	}
	log.Infof("dataset of %d records is ready", len(records))

	start := time.Now()
	model, report, err := training.Train(ctx, records, t.config.Training)
	if err != nil {
		log.Errorf("train failed: %s", err.Error())
		return nil, err
	}
	log.Infof("trained in %s with accuracy %.4f", time.Since(start), report.Accuracy)

	artifact, err := classifier.Encode(model)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Version: version,
		Type:    model.Type(),
		Digest:  digest.FromBytes(artifact),
		Report:  report,
	}

	if result.ArtifactPath, err = t.storage.CreateArtifact(version, artifact); err != nil {
		return nil, err
	}

	if result.ReportPath, err = t.storage.CreateReport(version, report); err != nil {
		return nil, err
	}
	log.Infof("artifact written to %s", result.ArtifactPath)

	if t.objectStorage != nil {
		result.ObjectKey = types.MakeObjectKeyOfModelArtifact(result.Type, version)
		if err := t.upload(ctx, result.ObjectKey, result.Digest, artifact); err != nil {
			log.Errorf("upload artifact failed: %s", err.Error())
			return nil, err
		}
		log.Infof("artifact uploaded to %s/%s", t.config.Upload.Bucket, result.ObjectKey)
	}

	return result, nil
}

// Stop removes generated datasets.
func (t *Trainer) Stop() {
	if err := t.storage.Clear(); err != nil {
		logger.Errorf("clean storage file failed %s", err.Error())
	} else {
		logger.Info("clean storage file completed")
	}
}

// records loads the configured dataset, or generates one into storage.
func (t *Trainer) records(version string) ([]training.Record, error) {
	if t.config.Dataset != "" {
		file, err := os.Open(t.config.Dataset)
		if err != nil {
			return nil, err
		}
		defer file.Close()

		return training.ReadCSV(file)
	}

	opts := t.config.Training
	records := training.Generate(opts.Samples, opts.Seed, opts.FailureRate)
	if err := t.storage.CreateDataset(version, records); err != nil {
		return nil, err
	}

	return records, nil
}

func (t *Trainer) upload(ctx context.Context, objectKey, objectDigest string, artifact []byte) error {
	return objectstorage.PutArtifact(ctx, t.objectStorage, t.config.Upload.Bucket, objectKey, objectDigest, artifact)
}
