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

package satcodes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode_Message(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("model unavailable", ModelUnavailable.Message())
	assert.Equal("internal server error", Code(42).Message())
}

func TestCode_String(t *testing.T) {
	assert.Equal(t, "2400", InvalidInput.String())
}
