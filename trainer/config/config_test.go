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
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/magsolution/sat/cmd/dependency/base"
	"github.com/magsolution/sat/pkg/classifier"
	"github.com/magsolution/sat/pkg/objectstorage"
	"github.com/magsolution/sat/pkg/training"
)

func TestConfig_Load(t *testing.T) {
	config := &Config{
		Options: base.Options{
			Console:   true,
			Verbose:   true,
			PProfPort: 9999,
			Telemetry: base.TelemetryOption{
				Jaeger:      "http://localhost:14268/api/traces",
				ServiceName: "magsolution-trainer",
			},
		},
		Server: ServerConfig{
			LogDir:        "foo",
			LogMaxSize:    512,
			LogMaxAge:     5,
			LogMaxBackups: 3,
			DataDir:       "bar",
		},
		Training: training.Options{
			Type:           classifier.TypeLogisticRegression,
			Samples:        2000,
			Seed:           7,
			FailureRate:    0.2,
			TestPercent:    0.25,
			ForestSize:     50,
			ForestFeatures: 2,
			LearningRate:   0.05,
			Epochs:         300,
		},
		Dataset: "datos_sensores.csv",
		Upload: UploadConfig{
			Enable: true,
			Bucket: "models",
			ObjectStorage: objectstorage.Config{
				Name:      objectstorage.ServiceNameS3,
				Region:    "us-east-1",
				Endpoint:  "http://localhost:9000",
				AccessKey: "foo",
				SecretKey: "bar",
			},
		},
	}

	trainerConfigYAML := &Config{}
	contentYAML, _ := os.ReadFile("./testdata/trainer.yaml")
	if err := yaml.Unmarshal(contentYAML, &trainerConfigYAML); err != nil {
		t.Fatal(err)
	}

	assert := assert.New(t)
	assert.EqualValues(config, trainerConfigYAML)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
		mock   func(cfg *Config)
		expect func(t *testing.T, err error)
	}{
		{
			name:   "valid config",
			config: New(),
			mock:   func(cfg *Config) {},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.NoError(err)
			},
		},
		{
			name:   "invalid training type",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.Type = "svm"
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "training type \"svm\" is invalid")
			},
		},
		{
			name:   "training requires parameter forestSize",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.ForestSize = 0
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "training requires parameter forestSize")
			},
		},
		{
			name:   "training requires parameter learningRate",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.Type = classifier.TypeLogisticRegression
				cfg.Training.LearningRate = 0
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "training requires parameter learningRate")
			},
		},
		{
			name:   "training requires parameter samples",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.Samples = 0
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "training requires parameter samples")
			},
		},
		{
			name:   "samples are ignored with a dataset",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.Samples = 0
				cfg.Dataset = "datos_sensores.csv"
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.NoError(err)
			},
		},
		{
			name:   "invalid failureRate",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.FailureRate = 1.5
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "training failureRate must be in [0, 1]")
			},
		},
		{
			name:   "invalid testPercent",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.TestPercent = 1
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "training testPercent must be in (0, 1)")
			},
		},
		{
			name:   "upload requires parameter bucket",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Upload.Enable = true
				cfg.Upload.Bucket = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "upload requires parameter bucket")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.config.Convert(); err != nil {
				t.Fatal(err)
			}

			tc.mock(tc.config)
			tc.expect(t, tc.config.Validate())
		})
	}
}

func TestConfig_Convert(t *testing.T) {
	cfg := New()
	cfg.Server.DataDir = "bar"
	assert.NoError(t, cfg.Convert())
	assert.Equal(t, "bar", cfg.Upload.ObjectStorage.BaseDir)
}
