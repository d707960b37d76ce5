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
	"fmt"
	"time"

	"github.com/go-redis/cache/v8"
	"github.com/go-redis/redis/v8"

	"github.com/magsolution/sat/manager/config"
)

const (
	// EquipmentNamespace is the prefix of equipment cache keys.
	EquipmentNamespace = "equipment"

	// ModelNamespace is the prefix of model cache keys.
	ModelNamespace = "model"
)

// Cache is cache client.
type Cache struct {
	*cache.Cache
	TTL time.Duration
}

// New cache instance, rdb may be nil and then only the local TinyLFU cache is used.
func New(cfg *config.Config, rdb redis.UniversalClient) *Cache {
	options := &cache.Options{
		LocalCache: cache.NewTinyLFU(cfg.Cache.Local.Size, cfg.Cache.Local.TTL),
	}

	if rdb != nil {
		options.Redis = rdb
	}

	// If the attribute TTL of cache.Item is 0, redis expiration time is 1 hour.
	return &Cache{
		Cache: cache.New(options),
		TTL:   cfg.Cache.Redis.TTL,
	}
}

// Make cache key.
func MakeCacheKey(namespace string, id string) string {
	return fmt.Sprintf("manager:%s:%s", namespace, id)
}

// Make cache key for equipment.
func MakeEquipmentCacheKey(id uint) string {
	return MakeCacheKey(EquipmentNamespace, fmt.Sprint(id))
}

// Make cache key for the active model.
func MakeActiveModelCacheKey() string {
	return MakeCacheKey(ModelNamespace, "active")
}
