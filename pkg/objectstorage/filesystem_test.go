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
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		expect func(t *testing.T, s ObjectStorage, err error)
	}{
		{
			name: "filesystem",
			cfg:  Config{Name: ServiceNameFilesystem, BaseDir: t.TempDir()},
			expect: func(t *testing.T, s ObjectStorage, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(ServiceNameFilesystem, s.GetMetadata(context.Background()).Name)
			},
		},
		{
			name: "filesystem without base dir",
			cfg:  Config{},
			expect: func(t *testing.T, s ObjectStorage, err error) {
				assert.EqualError(t, err, "filesystem object storage requires parameter baseDir")
			},
		},
		{
			name: "s3",
			cfg:  Config{Name: ServiceNameS3, Region: "us-east-1", Endpoint: "http://127.0.0.1:9000", AccessKey: "foo", SecretKey: "bar"},
			expect: func(t *testing.T, s ObjectStorage, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(&Metadata{Name: ServiceNameS3, Region: "us-east-1", Endpoint: "http://127.0.0.1:9000"}, s.GetMetadata(context.Background()))
			},
		},
		{
			name: "unknown service",
			cfg:  Config{Name: "obs"},
			expect: func(t *testing.T, s ObjectStorage, err error) {
				assert.EqualError(t, err, "unknow service name obs")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := New(tc.cfg)
			tc.expect(t, s, err)
		})
	}
}

func TestFilesystem(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	s, err := New(Config{BaseDir: t.TempDir()})
	assert.NoError(err)

	exist, err := s.IsBucketExist(ctx, "models")
	assert.NoError(err)
	assert.False(exist)

	assert.NoError(s.CreateBucket(ctx, "models"))
	exist, err = s.IsBucketExist(ctx, "models")
	assert.NoError(err)
	assert.True(exist)

	exist, err = s.IsObjectExist(ctx, "models", "random_forest/v1.cls")
	assert.NoError(err)
	assert.False(exist)

	assert.NoError(s.PutObject(ctx, "models", "random_forest/v1.cls", "sha256:foo", strings.NewReader("forest")))

	meta, exist, err := s.GetObjectMetadata(ctx, "models", "random_forest/v1.cls")
	assert.NoError(err)
	assert.True(exist)
	assert.Equal(int64(6), meta.ContentLength)
	assert.Equal("sha256:foo", meta.Digest)

	rc, err := s.GetObject(ctx, "models", "random_forest/v1.cls")
	assert.NoError(err)
	b, err := io.ReadAll(rc)
	assert.NoError(err)
	assert.NoError(rc.Close())
	assert.Equal("forest", string(b))

	assert.NoError(s.DeleteObject(ctx, "models", "random_forest/v1.cls"))
	exist, err = s.IsObjectExist(ctx, "models", "random_forest/v1.cls")
	assert.NoError(err)
	assert.False(exist)

	_, err = s.GetObject(ctx, "models", "random_forest/v1.cls")
	assert.ErrorIs(err, ErrObjectNotFound)

	assert.Error(s.PutObject(ctx, "models", "../escape", "", strings.NewReader("x")))
	assert.Error(s.CreateBucket(ctx, "../models"))
}
