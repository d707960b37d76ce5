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

package digest

import (
	"errors"
	"fmt"
	"io"

	"github.com/opencontainers/go-digest"
)

// ErrDigestMismatch is returned when read content does not match the expected digest.
var ErrDigestMismatch = errors.New("digest mismatch")

// FromBytes returns the sha256 digest of p in algorithm:encoded form.
func FromBytes(p []byte) string {
	return digest.SHA256.FromBytes(p).String()
}

// FromReader returns the sha256 digest of the content of r.
func FromReader(r io.Reader) (string, error) {
	d, err := digest.SHA256.FromReader(r)
	if err != nil {
		return "", err
	}

	return d.String(), nil
}

// Reader verifies the content it reads against an expected digest.
type Reader struct {
	r        io.Reader
	verifier digest.Verifier
	expected digest.Digest
}

// NewReader wraps r, an empty expected digest skips verification.
func NewReader(r io.Reader, expected string) (*Reader, error) {
	reader := &Reader{r: r}
	if expected == "" {
		return reader, nil
	}

	d, err := digest.Parse(expected)
	if err != nil {
		return nil, fmt.Errorf("invalid digest %q: %w", expected, err)
	}

	reader.expected = d
	reader.verifier = d.Verifier()
	reader.r = io.TeeReader(r, reader.verifier)
	return reader, nil
}

// Read returns ErrDigestMismatch at EOF when the content does not match.
func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if err == io.EOF && r.verifier != nil && !r.verifier.Verified() {
		return n, fmt.Errorf("%w: expected %s", ErrDigestMismatch, r.expected)
	}

	return n, err
}
