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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magsolution/sat/pkg/digest"
)

func TestArtifact(t *testing.T) {
	artifact := []byte("forest")

	tests := []struct {
		name   string
		put    bool
		digest string
		expect func(t *testing.T, b []byte, err error)
	}{
		{
			name:   "round trip",
			put:    true,
			digest: digest.FromBytes(artifact),
			expect: func(t *testing.T, b []byte, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(artifact, b)
			},
		},
		{
			name:   "digest mismatch",
			put:    true,
			digest: digest.FromBytes([]byte("tree")),
			expect: func(t *testing.T, b []byte, err error) {
				assert.ErrorIs(t, err, digest.ErrDigestMismatch)
			},
		},
		{
			name:   "missing artifact",
			digest: digest.FromBytes(artifact),
			expect: func(t *testing.T, b []byte, err error) {
				assert.ErrorIs(t, err, ErrObjectNotFound)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			s, err := New(Config{BaseDir: t.TempDir()})
			require.NoError(t, err)

			if tc.put {
				require.NoError(t, PutArtifact(ctx, s, "models", "random_forest/v1.cls", tc.digest, artifact))
				exist, err := s.IsBucketExist(ctx, "models")
				require.NoError(t, err)
				require.True(t, exist)
			}

			b, err := GetArtifact(ctx, s, "models", "random_forest/v1.cls", tc.digest)
			tc.expect(t, b, err)
		})
	}
}
