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
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/magsolution/sat/pkg/digest"
)

// ErrObjectNotFound is returned by GetObject when the key does not exist.
var ErrObjectNotFound = errors.New("object not found")

// ArtifactContentType is the content type of stored model artifacts.
const ArtifactContentType = "application/octet-stream"

// PutArtifact uploads a serialized model, creating the bucket on first use.
func PutArtifact(ctx context.Context, s ObjectStorage, bucketName, objectKey, objectDigest string, artifact []byte) error {
	exist, err := s.IsBucketExist(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", bucketName, err)
	}

	if !exist {
		if err := s.CreateBucket(ctx, bucketName); err != nil {
			return fmt.Errorf("create bucket %s: %w", bucketName, err)
		}
	}

	if err := s.PutObject(ctx, bucketName, objectKey, objectDigest, bytes.NewReader(artifact)); err != nil {
		return fmt.Errorf("put %s/%s: %w", bucketName, objectKey, err)
	}

	return nil
}

// GetArtifact downloads a serialized model and verifies it against
// objectDigest before returning it.
func GetArtifact(ctx context.Context, s ObjectStorage, bucketName, objectKey, objectDigest string) ([]byte, error) {
	rc, err := s.GetObject(ctx, bucketName, objectKey)
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", bucketName, objectKey, err)
	}
	defer rc.Close()

	r, err := digest.NewReader(rc, objectDigest)
	if err != nil {
		return nil, err
	}

	artifact, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s/%s: %w", bucketName, objectKey, err)
	}

	return artifact, nil
}
