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
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

const digestSuffix = ".digest"

// filesystem keeps buckets as directories under baseDir.
type filesystem struct {
	baseDir string
}

func newFilesystem(baseDir string) (ObjectStorage, error) {
	if baseDir == "" {
		return nil, errors.New("filesystem object storage requires parameter baseDir")
	}

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, err
	}

	return &filesystem{baseDir: baseDir}, nil
}

// GetMetadata returns metadata of object storage.
func (f *filesystem) GetMetadata(ctx context.Context) *Metadata {
	return &Metadata{
		Name:     ServiceNameFilesystem,
		Endpoint: f.baseDir,
	}
}

// IsBucketExist returns whether the bucket exists.
func (f *filesystem) IsBucketExist(ctx context.Context, bucketName string) (bool, error) {
	dir, err := f.path(bucketName, "")
	if err != nil {
		return false, err
	}

	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return info.IsDir(), nil
}

// CreateBucket creates bucket of object storage.
func (f *filesystem) CreateBucket(ctx context.Context, bucketName string) error {
	dir, err := f.path(bucketName, "")
	if err != nil {
		return err
	}

	return os.MkdirAll(dir, 0o755)
}

// GetObjectMetadata returns metadata of object.
func (f *filesystem) GetObjectMetadata(ctx context.Context, bucketName, objectKey string) (*ObjectMetadata, bool, error) {
	p, err := f.path(bucketName, objectKey)
	if err != nil {
		return nil, false, err
	}

	info, err := os.Stat(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	digest, err := os.ReadFile(p + digestSuffix)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, false, err
	}

	return &ObjectMetadata{
		Key:              objectKey,
		ContentLength:    info.Size(),
		ContentType:      mime.TypeByExtension(filepath.Ext(objectKey)),
		Digest:           string(digest),
		LastModifiedTime: info.ModTime(),
	}, true, nil
}

// GetObject returns data of object.
func (f *filesystem) GetObject(ctx context.Context, bucketName, objectKey string) (io.ReadCloser, error) {
	p, err := f.path(bucketName, objectKey)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrObjectNotFound
		}

		return nil, err
	}

	return file, nil
}

// PutObject puts data of object, readers never observe a partial object.
func (f *filesystem) PutObject(ctx context.Context, bucketName, objectKey, digest string, reader io.Reader) error {
	p, err := f.path(bucketName, objectKey)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}

	if err := writeFileAtomic(p, reader); err != nil {
		return err
	}

	if digest == "" {
		return nil
	}

	return writeFileAtomic(p+digestSuffix, strings.NewReader(digest))
}

// DeleteObject deletes data of object.
func (f *filesystem) DeleteObject(ctx context.Context, bucketName, objectKey string) error {
	p, err := f.path(bucketName, objectKey)
	if err != nil {
		return err
	}

	if err := os.Remove(p + digestSuffix); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return os.Remove(p)
}

// IsObjectExist returns whether the object exists.
func (f *filesystem) IsObjectExist(ctx context.Context, bucketName, objectKey string) (bool, error) {
	_, isExist, err := f.GetObjectMetadata(ctx, bucketName, objectKey)
	return isExist, err
}

func (f *filesystem) path(bucketName, objectKey string) (string, error) {
	if bucketName == "" || strings.ContainsAny(bucketName, `/\`) || bucketName == "." || bucketName == ".." {
		return "", fmt.Errorf("invalid bucket name %q", bucketName)
	}

	p := filepath.Join(f.baseDir, bucketName, filepath.FromSlash(objectKey))
	bucketDir := filepath.Join(f.baseDir, bucketName)
	if p != bucketDir && !strings.HasPrefix(p, bucketDir+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid object key %q", objectKey)
	}

	return p, nil
}

func writeFileAtomic(p string, reader io.Reader) error {
	tmp, err := os.CreateTemp(filepath.Dir(p), "."+filepath.Base(p)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, reader); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), p)
}
