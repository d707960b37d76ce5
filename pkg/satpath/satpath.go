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

package satpath

import (
	"io/fs"
	"os"

	"github.com/hashicorp/go-multierror"
)

// Satpath is the interface used for init project path.
type Satpath interface {
	WorkHome() string
	LogDir() string
	DataDir() string
}

type satpath struct {
	workHome    string
	logDir      string
	dataDir     string
	dataDirMode fs.FileMode
}

// Option is a functional option for configuring the satpath.
type Option func(d *satpath)

// WithWorkHome set the workhome directory.
func WithWorkHome(dir string) Option {
	return func(d *satpath) {
		d.workHome = dir
	}
}

// WithLogDir set the log directory.
func WithLogDir(dir string) Option {
	return func(d *satpath) {
		d.logDir = dir
	}
}

// WithDataDir set the data directory.
func WithDataDir(dir string) Option {
	return func(d *satpath) {
		d.dataDir = dir
	}
}

// WithDataDirMode sets the dataDir mode
func WithDataDirMode(mode fs.FileMode) Option {
	return func(d *satpath) {
		d.dataDirMode = mode
	}
}

// New creates the directories and returns their paths.
func New(options ...Option) (Satpath, error) {
	d := &satpath{
		workHome:    DefaultWorkHome,
		logDir:      DefaultLogDir,
		dataDir:     DefaultDataDir,
		dataDirMode: DefaultDataDirMode,
	}

	for _, opt := range options {
		opt(d)
	}

	var errs *multierror.Error
	if err := os.MkdirAll(d.workHome, DefaultWorkHomeMode); err != nil {
		errs = multierror.Append(errs, err)
	}

	if err := os.MkdirAll(d.logDir, fs.FileMode(0700)); err != nil {
		errs = multierror.Append(errs, err)
	}

	if err := os.MkdirAll(d.dataDir, d.dataDirMode); err != nil {
		errs = multierror.Append(errs, err)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *satpath) WorkHome() string {
	return d.workHome
}

func (d *satpath) LogDir() string {
	return d.logDir
}

func (d *satpath) DataDir() string {
	return d.dataDir
}
