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

package config

import (
	"errors"
	"fmt"

	"github.com/magsolution/sat/cmd/dependency/base"
	"github.com/magsolution/sat/pkg/classifier"
	"github.com/magsolution/sat/pkg/objectstorage"
	"github.com/magsolution/sat/pkg/training"
)

type Config struct {
	// Base options.
	base.Options `yaml:",inline" mapstructure:",squash"`

	// Server configuration.
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// Training configuration.
	Training training.Options `yaml:"training" mapstructure:"training"`

	// Dataset is an existing csv dataset, a dataset is generated when empty.
	Dataset string `yaml:"dataset" mapstructure:"dataset"`

	// Upload configuration.
	Upload UploadConfig `yaml:"upload" mapstructure:"upload"`
}

type ServerConfig struct {
	// Server log directory.
	LogDir string `yaml:"logDir" mapstructure:"logDir"`

	// Maximum size in megabytes of log files before rotation (default: 1024)
	LogMaxSize int `yaml:"logMaxSize" mapstructure:"logMaxSize"`

	// Maximum number of days to retain old log files (default: 7)
	LogMaxAge int `yaml:"logMaxAge" mapstructure:"logMaxAge"`

	// Maximum number of old log files to keep (default: 20)
	LogMaxBackups int `yaml:"logMaxBackups" mapstructure:"logMaxBackups"`

	// Directory of datasets, artifacts and reports.
	DataDir string `yaml:"dataDir" mapstructure:"dataDir"`
}

type UploadConfig struct {
	// Enable uploads the artifact to object storage.
	Enable bool `yaml:"enable" mapstructure:"enable"`

	// Bucket of model artifacts, the manager reads the same bucket.
	Bucket string `yaml:"bucket" mapstructure:"bucket"`

	// Object storage configuration.
	ObjectStorage objectstorage.Config `yaml:"objectStorage" mapstructure:"objectStorage"`
}

// New default configuration.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			LogMaxSize:    DefaultLogRotateMaxSize,
			LogMaxAge:     DefaultLogRotateMaxAge,
			LogMaxBackups: DefaultLogRotateMaxBackups,
		},
		Training: training.DefaultOptions(),
		Upload: UploadConfig{
			Enable: false,
			Bucket: DefaultUploadBucket,
			ObjectStorage: objectstorage.Config{
				Name: objectstorage.ServiceNameFilesystem,
			},
		},
	}
}

// Validate config parameters.
func (cfg *Config) Validate() error {
	switch cfg.Training.Type {
	case classifier.TypeRandomForest:
		if cfg.Training.ForestSize <= 0 {
			return errors.New("training requires parameter forestSize")
		}
	case classifier.TypeLogisticRegression:
		if cfg.Training.LearningRate <= 0 {
			return errors.New("training requires parameter learningRate")
		}

		if cfg.Training.Epochs <= 0 {
			return errors.New("training requires parameter epochs")
		}
	default:
		return fmt.Errorf("training type %q is invalid", cfg.Training.Type)
	}

	if cfg.Dataset == "" && cfg.Training.Samples <= 0 {
		return errors.New("training requires parameter samples")
	}

	if cfg.Training.FailureRate < 0 || cfg.Training.FailureRate > 1 {
		return errors.New("training failureRate must be in [0, 1]")
	}

	if cfg.Training.TestPercent <= 0 || cfg.Training.TestPercent >= 1 {
		return errors.New("training testPercent must be in (0, 1)")
	}

	if cfg.Upload.Enable {
		if cfg.Upload.Bucket == "" {
			return errors.New("upload requires parameter bucket")
		}

		if cfg.Upload.ObjectStorage.Name == "" {
			return errors.New("objectStorage requires parameter name")
		}
	}

	return nil
}

func (cfg *Config) Convert() error {
	if cfg.Upload.ObjectStorage.Name == objectstorage.ServiceNameFilesystem && cfg.Upload.ObjectStorage.BaseDir == "" && cfg.Server.DataDir != "" {
		cfg.Upload.ObjectStorage.BaseDir = cfg.Server.DataDir
	}

	return nil
}
