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

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/cache/v8"
	"github.com/stretchr/testify/assert"

	"github.com/magsolution/sat/manager/config"
)

func TestMakeCacheKey(t *testing.T) {
	tests := []struct {
		name   string
		key    func() string
		expect string
	}{
		{
			name:   "equipment",
			key:    func() string { return MakeEquipmentCacheKey(1) },
			expect: "manager:equipment:1",
		},
		{
			name:   "active model",
			key:    MakeActiveModelCacheKey,
			expect: "manager:model:active",
		},
		{
			name:   "namespace is empty",
			key:    func() string { return MakeCacheKey("", "foo") },
			expect: "manager::foo",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.key())
		})
	}
}

func TestCache_Local(t *testing.T) {
	assert := assert.New(t)
	cfg := config.New()
	cfg.Cache.Local.TTL = time.Minute
	c := New(cfg, nil)

	type value struct {
		Name string
	}

	ctx := context.Background()
	key := MakeEquipmentCacheKey(7)
	assert.NoError(c.Set(&cache.Item{
		Ctx:   ctx,
		Key:   key,
		Value: &value{Name: "pump"},
		TTL:   c.TTL,
	}))

	var v value
	assert.NoError(c.Get(ctx, key, &v))
	assert.Equal("pump", v.Name)

	assert.NoError(c.Delete(ctx, key))
	assert.ErrorIs(c.Get(ctx, key, &v), cache.ErrCacheMiss)
}
