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


package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonalAccessToken_Masked(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		expect string
	}{
		{name: "long token", token: "0123456789abcdef", expect: "01234567********"},
		{name: "prefix sized token", token: "01234567", expect: "01234567"},
		{name: "empty token", token: "", expect: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			personalAccessToken := PersonalAccessToken{Name: "foo", Token: tc.token}
			masked := personalAccessToken.Masked()
			assert.Equal(t, tc.expect, masked.Token)
			assert.Equal(t, "foo", masked.Name)
			assert.Equal(t, tc.token, personalAccessToken.Token)
		})
	}
}
