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


package objectstorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	aliyunoss "github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/go-http-utils/headers"
)

// oss keeps one bucket handle per bucket name, artifacts of the manager and
// the trainer all live in a single configured bucket.
type oss struct {
	client   *aliyunoss.Client
	metadata Metadata

	mu      sync.Mutex
	buckets map[string]*aliyunoss.Bucket
}

func newOSS(region, endpoint, accessKey, secretKey string, httpClient *http.Client) (ObjectStorage, error) {
	client, err := aliyunoss.New(endpoint, accessKey, secretKey, aliyunoss.Region(region), aliyunoss.HTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("new oss client failed: %s", err)
	}

	return &oss{
		client: client,
		metadata: Metadata{
			Name:     ServiceNameOSS,
			Region:   region,
			Endpoint: endpoint,
		},
		buckets: map[string]*aliyunoss.Bucket{},
	}, nil
}

func (o *oss) GetMetadata(ctx context.Context) *Metadata {
	metadata := o.metadata
	return &metadata
}

func (o *oss) IsBucketExist(ctx context.Context, bucketName string) (bool, error) {
	return o.client.IsBucketExist(bucketName)
}

func (o *oss) CreateBucket(ctx context.Context, bucketName string) error {
	return o.client.CreateBucket(bucketName)
}

func (o *oss) GetObjectMetadata(ctx context.Context, bucketName, objectKey string) (*ObjectMetadata, bool, error) {
	bucket, err := o.bucket(bucketName)
	if err != nil {
		return nil, false, err
	}

	header, err := bucket.GetObjectDetailedMeta(objectKey)
	if err != nil {
		if isOSSNotFound(err) {
			return nil, false, nil
		}

		return nil, false, err
	}

	meta, err := ossObjectMetadata(objectKey, header)
	if err != nil {
		return nil, false, err
	}

	return meta, true, nil
}

func (o *oss) GetObject(ctx context.Context, bucketName, objectKey string) (io.ReadCloser, error) {
	bucket, err := o.bucket(bucketName)
	if err != nil {
		return nil, err
	}

	rc, err := bucket.GetObject(objectKey)
	if err != nil {
		if isOSSNotFound(err) {
			return nil, ErrObjectNotFound
		}

		return nil, err
	}

	return rc, nil
}

// PutObject stores an artifact with its digest as user metadata.
func (o *oss) PutObject(ctx context.Context, bucketName, objectKey, digest string, reader io.Reader) error {
	bucket, err := o.bucket(bucketName)
	if err != nil {
		return err
	}

	return bucket.PutObject(objectKey, reader,
		aliyunoss.ContentType(ArtifactContentType),
		aliyunoss.Meta(MetaDigest, digest),
	)
}

// DeleteObject succeeds for missing keys.
func (o *oss) DeleteObject(ctx context.Context, bucketName, objectKey string) error {
	bucket, err := o.bucket(bucketName)
	if err != nil {
		return err
	}

	return bucket.DeleteObject(objectKey)
}

func (o *oss) IsObjectExist(ctx context.Context, bucketName, objectKey string) (bool, error) {
	bucket, err := o.bucket(bucketName)
	if err != nil {
		return false, err
	}

	return bucket.IsObjectExist(objectKey)
}

func (o *oss) bucket(bucketName string) (*aliyunoss.Bucket, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if bucket, ok := o.buckets[bucketName]; ok {
		return bucket, nil
	}

	bucket, err := o.client.Bucket(bucketName)
	if err != nil {
		return nil, err
	}

	o.buckets[bucketName] = bucket
	return bucket, nil
}

func ossObjectMetadata(objectKey string, header http.Header) (*ObjectMetadata, error) {
	contentLength, err := strconv.ParseInt(header.Get(headers.ContentLength), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid content length of %s: %w", objectKey, err)
	}

	lastModifiedTime, err := time.Parse(http.TimeFormat, header.Get(aliyunoss.HTTPHeaderLastModified))
	if err != nil {
		return nil, fmt.Errorf("invalid last modified time of %s: %w", objectKey, err)
	}

	return &ObjectMetadata{
		Key:              objectKey,
		ContentLength:    contentLength,
		ContentType:      header.Get(headers.ContentType),
		ETag:             header.Get(headers.ETag),
		Digest:           header.Get(aliyunoss.HTTPHeaderOssMetaPrefix + MetaDigest),
		LastModifiedTime: lastModifiedTime,
	}, nil
}

func isOSSNotFound(err error) bool {
	var serr aliyunoss.ServiceError
	return errors.As(err, &serr) && serr.StatusCode == http.StatusNotFound
}
