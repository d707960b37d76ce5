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

package config

import (
	"time"

	"github.com/magsolution/sat/pkg/objectstorage"
)

const (
	// DatabaseTypeMysql is database type of mysql.
	DatabaseTypeMysql = "mysql"

	// DatabaseTypeMariaDB is database type of mariadb.
	DatabaseTypeMariaDB = "mariadb"

	// DatabaseTypePostgres is database type of postgres.
	DatabaseTypePostgres = "postgres"
)

const (
	// DefaultServerName is default server name.
	DefaultServerName = "sat-manager"

	// DefaultRESTAddr is default address for rest server.
	DefaultRESTAddr = ":8080"

	// DefaultLogRotateMaxSize is default size in megabytes of log files before rotation.
	DefaultLogRotateMaxSize = 1024

	// DefaultLogRotateMaxAge is default days to retain old log files.
	DefaultLogRotateMaxAge = 7

	// DefaultLogRotateMaxBackups is default number of old log files to keep.
	DefaultLogRotateMaxBackups = 20
)

const (
	// DefaultJWTRealm is default realm of jwt.
	DefaultJWTRealm = "MAGSOLUTION"

	// DefaultJWTTimeout is default timeout of jwt.
	DefaultJWTTimeout = 2 * 24 * time.Hour

	// DefaultJWTMaxRefresh is default max refresh of jwt.
	DefaultJWTMaxRefresh = 2 * 24 * time.Hour
)

const (
	// DefaultMysqlPort is default port for mysql.
	DefaultMysqlPort = 3306

	// DefaultMysqlDBName is default db name for mysql.
	DefaultMysqlDBName = "magsolution"

	// DefaultPostgresPort is default port for postgres.
	DefaultPostgresPort = 5432

	// DefaultPostgresDBName is default db name for postgres.
	DefaultPostgresDBName = "magsolution"

	// DefaultPostgresSSLMode is default ssl mode for postgres.
	DefaultPostgresSSLMode = "disable"

	// DefaultPostgresPreferSimpleProtocol is default prefer simple protocol for postgres.
	DefaultPostgresPreferSimpleProtocol = false

	// DefaultPostgresTimezone is default timezone for postgres.
	DefaultPostgresTimezone = "UTC"

	// DefaultRedisDB is default db for redis.
	DefaultRedisDB = 0
)

const (
	// DefaultRedisCacheTTL is default ttl for redis cache.
	DefaultRedisCacheTTL = 5 * time.Minute

	// DefaultLFUCacheTTL is default ttl for local cache.
	DefaultLFUCacheTTL = 3 * time.Minute

	// DefaultLFUCacheSize is default size for local cache.
	DefaultLFUCacheSize = 10 * 1000
)

const (
	// DefaultPredictionThreshold is default score threshold of the high risk label.
	DefaultPredictionThreshold = 0.5

	// DefaultModelBucket is default bucket of model artifacts.
	DefaultModelBucket = "models"

	// DefaultObjectStorageName is default object storage backend.
	DefaultObjectStorageName = objectstorage.ServiceNameFilesystem
)

const (
	// DefaultEventsRedisChannel is default redis pub/sub channel of update events.
	DefaultEventsRedisChannel = "magsolution:events"

	// DefaultEventsMQTTTopic is default topic prefix of update events.
	DefaultEventsMQTTTopic = "magsolution/events"

	// DefaultEventsMQTTClientID is default mqtt client id.
	DefaultEventsMQTTClientID = "sat-manager"

	// DefaultWebsocketWriteTimeout is default write timeout of websocket clients.
	DefaultWebsocketWriteTimeout = 10 * time.Second

	// DefaultWebsocketPingInterval is default ping interval of websocket clients.
	DefaultWebsocketPingInterval = 30 * time.Second

	// DefaultWebsocketBufferSize is default number of buffered events per client.
	DefaultWebsocketBufferSize = 64
)

const (
	// DefaultMetricsAddr is default address for metrics server.
	DefaultMetricsAddr = ":8000"
)

const (
	// DefaultGCInterval is default interval of gc tasks.
	DefaultGCInterval = time.Hour

	// DefaultGCTimeout is default timeout of one gc task run.
	DefaultGCTimeout = time.Minute
)
