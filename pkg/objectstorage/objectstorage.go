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

//go:generate mockgen -package mocks -source objectstorage.go -destination ./mocks/objectstorage_mock.go

package objectstorage

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

type Metadata struct {
	// Name is object storage name of type, it can be s3, oss or filesystem.
	Name string

	// Region is storage region.
	Region string

	// Endpoint is datacenter endpoint.
	Endpoint string
}

type ObjectMetadata struct {
	// Key is object key.
	Key string

	// ContentLength is Content-Length header.
	ContentLength int64

	// ContentType is Content-Type header.
	ContentType string

	// ETag is ETag header.
	ETag string

	// Digest is object digest.
	Digest string

	// LastModifiedTime is last modified time.
	LastModifiedTime time.Time
}

// ObjectStorage stores model artifacts.
type ObjectStorage interface {
	// GetMetadata returns metadata of object storage.
	GetMetadata(ctx context.Context) *Metadata

	// IsBucketExist returns whether the bucket exists.
	IsBucketExist(ctx context.Context, bucketName string) (bool, error)

	// CreateBucket creates bucket of object storage.
	CreateBucket(ctx context.Context, bucketName string) error

	// GetObjectMetadata returns metadata of object.
	GetObjectMetadata(ctx context.Context, bucketName, objectKey string) (*ObjectMetadata, bool, error)

	// GetObject returns data of object.
	GetObject(ctx context.Context, bucketName, objectKey string) (io.ReadCloser, error)

	// PutObject puts data of object.
	PutObject(ctx context.Context, bucketName, objectKey, digest string, reader io.Reader) error

	// DeleteObject deletes data of object.
	DeleteObject(ctx context.Context, bucketName, objectKey string) error

	// IsObjectExist returns whether the object exists.
	IsObjectExist(ctx context.Context, bucketName, objectKey string) (bool, error)
}

// Config selects and configures a backend.
type Config struct {
	// Name is the backend, filesystem when empty.
	Name string `yaml:"name" mapstructure:"name"`

	// Region is storage region.
	Region string `yaml:"region" mapstructure:"region"`

	// Endpoint is datacenter endpoint.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`

	// AccessKey is access key ID.
	AccessKey string `yaml:"accessKey" mapstructure:"accessKey"`

	// SecretKey is access key secret.
	SecretKey string `yaml:"secretKey" mapstructure:"secretKey"`

	// S3ForcePathStyle sets force path style for s3.
	S3ForcePathStyle bool `yaml:"s3ForcePathStyle" mapstructure:"s3ForcePathStyle"`

	// BaseDir is the root directory of the filesystem backend.
	BaseDir string `yaml:"baseDir" mapstructure:"baseDir"`
}

// New object storage interface.
func New(cfg Config) (ObjectStorage, error) {
	switch cfg.Name {
	case ServiceNameFilesystem, "":
		return newFilesystem(cfg.BaseDir)
	case ServiceNameS3:
		return newS3(cfg.Region, cfg.Endpoint, cfg.AccessKey, cfg.SecretKey, cfg.S3ForcePathStyle, newHTTPClient())
	case ServiceNameOSS:
		return newOSS(cfg.Region, cfg.Endpoint, cfg.AccessKey, cfg.SecretKey, newHTTPClient())
	}

	return nil, fmt.Errorf("unknow service name %s", cfg.Name)
}

// newHTTPClient returns the http client shared by remote backends.
func newHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   DefaultTLSHandshakeTimeout,
			ResponseHeaderTimeout: DefaultResponseHeaderTimeout,
			IdleConnTimeout:       DefaultIdleConnTimeout,
			MaxIdleConnsPerHost:   DefaultMaxIdleConnsPerHost,
		},
	}
}
