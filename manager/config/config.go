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
	"errors"
	"path/filepath"
	"time"

	"github.com/magsolution/sat/cmd/dependency/base"
	"github.com/magsolution/sat/pkg/classifier"
	"github.com/magsolution/sat/pkg/objectstorage"
	"github.com/magsolution/sat/pkg/training"
)

type Config struct {
	// Base options.
	base.Options `yaml:",inline" mapstructure:",squash"`

	// Server configuration.
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// Auth configuration.
	Auth AuthConfig `yaml:"auth" mapstructure:"auth"`

	// Database configuration.
	Database DatabaseConfig `yaml:"database" mapstructure:"database"`

	// Cache configuration.
	Cache CacheConfig `yaml:"cache" mapstructure:"cache"`

	// Prediction configuration.
	Prediction PredictionConfig `yaml:"prediction" mapstructure:"prediction"`

	// Model configuration.
	Model ModelConfig `yaml:"model" mapstructure:"model"`

	// ObjectStorage configuration.
	ObjectStorage objectstorage.Config `yaml:"objectStorage" mapstructure:"objectStorage"`

	// Events configuration.
	Events EventsConfig `yaml:"events" mapstructure:"events"`

	// Metrics configuration.
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`

	// GC configuration.
	GC GCConfig `yaml:"gc" mapstructure:"gc"`
}

type ServerConfig struct {
	// Server name.
	Name string `yaml:"name" mapstructure:"name"`

	// Server log directory.
	LogDir string `yaml:"logDir" mapstructure:"logDir"`

	// Maximum size in megabytes of log files before rotation (default: 1024)
	LogMaxSize int `yaml:"logMaxSize" mapstructure:"logMaxSize"`

	// Maximum number of days to retain old log files (default: 7)
	LogMaxAge int `yaml:"logMaxAge" mapstructure:"logMaxAge"`

	// Maximum number of old log files to keep (default: 20)
	LogMaxBackups int `yaml:"logMaxBackups" mapstructure:"logMaxBackups"`

	// Server storage data directory.
	DataDir string `yaml:"dataDir" mapstructure:"dataDir"`

	// REST server configuration.
	REST RESTConfig `yaml:"rest" mapstructure:"rest"`
}

type RESTConfig struct {
	// REST server address.
	Addr string `yaml:"addr" mapstructure:"addr"`

	// AllowOrigins restricts cross origin requests, every origin is reflected when empty.
	AllowOrigins []string `yaml:"allowOrigins" mapstructure:"allowOrigins"`
}

type AuthConfig struct {
	// JWT configuration.
	JWT JWTConfig `yaml:"jwt" mapstructure:"jwt"`
}

type JWTConfig struct {
	// Realm name to display to the user, default value is MAGSOLUTION.
	Realm string `yaml:"realm" mapstructure:"realm"`

	// Key is secret key used for signing. Please change the key in production.
	Key string `yaml:"key" mapstructure:"key"`

	// Timeout is duration that a jwt token is valid, default duration is two days.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// MaxRefresh field allows clients to refresh their token until MaxRefresh has passed, default duration is two days.
	MaxRefresh time.Duration `yaml:"maxRefresh" mapstructure:"maxRefresh"`
}

type DatabaseConfig struct {
	// Database type.
	Type string `yaml:"type" mapstructure:"type"`

	// Mysql configuration.
	Mysql MysqlConfig `yaml:"mysql" mapstructure:"mysql"`

	// Postgres configuration.
	Postgres PostgresConfig `yaml:"postgres" mapstructure:"postgres"`

	// Redis configuration, redis is optional.
	Redis RedisConfig `yaml:"redis" mapstructure:"redis"`
}

type MysqlConfig struct {
	// Server username.
	User string `yaml:"user" mapstructure:"user"`

	// Server password.
	Password string `yaml:"password" mapstructure:"password"`

	// Server host.
	Host string `yaml:"host" mapstructure:"host"`

	// Server port.
	Port int `yaml:"port" mapstructure:"port"`

	// Server DB name.
	DBName string `yaml:"dbname" mapstructure:"dbname"`

	// TLS mode (can be one of "true", "false", "skip-verify",  or "preferred").
	TLSConfig string `yaml:"tlsConfig" mapstructure:"tlsConfig"`

	// Custom TLS client configuration (overrides "TLSConfig" setting above).
	TLS *MysqlTLSClientConfig `yaml:"tls" mapstructure:"tls"`

	// Enable migration.
	Migrate bool `yaml:"migrate" mapstructure:"migrate"`
}

type MysqlTLSClientConfig struct {
	// Client certificate file path.
	Cert string `yaml:"cert" mapstructure:"cert"`

	// Client key file path.
	Key string `yaml:"key" mapstructure:"key"`

	// CA file path.
	CA string `yaml:"ca" mapstructure:"ca"`

	// InsecureSkipVerify controls whether a client verifies the
	// server's certificate chain and host name.
	InsecureSkipVerify bool `yaml:"insecureSkipVerify" mapstructure:"insecureSkipVerify"`
}

type PostgresConfig struct {
	// Server username.
	User string `yaml:"user" mapstructure:"user"`

	// Server password.
	Password string `yaml:"password" mapstructure:"password"`

	// Server host.
	Host string `yaml:"host" mapstructure:"host"`

	// Server port.
	Port int `yaml:"port" mapstructure:"port"`

	// Server DB name.
	DBName string `yaml:"dbname" mapstructure:"dbname"`

	// SSL mode.
	SSLMode string `yaml:"sslMode" mapstructure:"sslMode"`

	// Disable prepared statement.
	PreferSimpleProtocol bool `yaml:"preferSimpleProtocol" mapstructure:"preferSimpleProtocol"`

	// Server timezone.
	Timezone string `yaml:"timezone" mapstructure:"timezone"`

	// Enable migration.
	Migrate bool `yaml:"migrate" mapstructure:"migrate"`
}

type RedisConfig struct {
	// Addrs is server addresses, redis is disabled when empty.
	Addrs []string `yaml:"addrs" mapstructure:"addrs"`

	// MasterName is the sentinel master name.
	MasterName string `yaml:"masterName" mapstructure:"masterName"`

	// Username is server username.
	Username string `yaml:"username" mapstructure:"username"`

	// Password is server password.
	Password string `yaml:"password" mapstructure:"password"`

	// DB is server cache DB name.
	DB int `yaml:"db" mapstructure:"db"`
}

// Enable reports whether redis is configured.
func (cfg RedisConfig) Enable() bool {
	return len(cfg.Addrs) > 0
}

type CacheConfig struct {
	// Redis cache configuration.
	Redis RedisCacheConfig `yaml:"redis" mapstructure:"redis"`

	// Local lfu cache configuration.
	Local LocalCacheConfig `yaml:"local" mapstructure:"local"`
}

type RedisCacheConfig struct {
	// Cache TTL.
	TTL time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

type LocalCacheConfig struct {
	// Size of LFU cache.
	Size int `yaml:"size" mapstructure:"size"`

	// Cache TTL.
	TTL time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

type PredictionConfig struct {
	// Threshold splits classifier scores, a score strictly above it is high risk.
	Threshold float64 `yaml:"threshold" mapstructure:"threshold"`
}

type ModelConfig struct {
	// Bucket stores model artifacts.
	Bucket string `yaml:"bucket" mapstructure:"bucket"`

	// BootstrapArtifact is loaded at startup when no model version is active.
	BootstrapArtifact string `yaml:"bootstrapArtifact" mapstructure:"bootstrapArtifact"`

	// BootstrapType is the classifier type of BootstrapArtifact.
	BootstrapType string `yaml:"bootstrapType" mapstructure:"bootstrapType"`

	// Training configuration of retrain requests.
	Training training.Options `yaml:"training" mapstructure:"training"`
}

type EventsConfig struct {
	// Redis pub/sub fan-out across manager instances, requires database.redis.
	Redis RedisEventsConfig `yaml:"redis" mapstructure:"redis"`

	// MQTT publisher configuration.
	MQTT MQTTConfig `yaml:"mqtt" mapstructure:"mqtt"`

	// Websocket configuration.
	Websocket WebsocketConfig `yaml:"websocket" mapstructure:"websocket"`
}

type RedisEventsConfig struct {
	// Enable redis pub/sub.
	Enable bool `yaml:"enable" mapstructure:"enable"`

	// Channel name.
	Channel string `yaml:"channel" mapstructure:"channel"`
}

type MQTTConfig struct {
	// Enable mqtt publisher.
	Enable bool `yaml:"enable" mapstructure:"enable"`

	// Broker address, like tcp://127.0.0.1:1883.
	Broker string `yaml:"broker" mapstructure:"broker"`

	// ClientID of the publisher.
	ClientID string `yaml:"clientID" mapstructure:"clientID"`

	// Username of the broker.
	Username string `yaml:"username" mapstructure:"username"`

	// Password of the broker.
	Password string `yaml:"password" mapstructure:"password"`

	// Topic prefix, events go to <topic>/<resource>.
	Topic string `yaml:"topic" mapstructure:"topic"`

	// QoS of published messages.
	QoS byte `yaml:"qos" mapstructure:"qos"`
}

type WebsocketConfig struct {
	// WriteTimeout of a single frame.
	WriteTimeout time.Duration `yaml:"writeTimeout" mapstructure:"writeTimeout"`

	// PingInterval of keepalive pings.
	PingInterval time.Duration `yaml:"pingInterval" mapstructure:"pingInterval"`

	// BufferSize is the number of pending events per client, slow clients are dropped.
	BufferSize int `yaml:"bufferSize" mapstructure:"bufferSize"`
}

type MetricsConfig struct {
	// Enable metrics service.
	Enable bool `yaml:"enable" mapstructure:"enable"`

	// Metrics service address.
	Addr string `yaml:"addr" mapstructure:"addr"`
}

type GCConfig struct {
	// Interval between two runs of the gc tasks.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// Timeout of one gc task run, less than interval.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// New config instance.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Name:          DefaultServerName,
			LogMaxSize:    DefaultLogRotateMaxSize,
			LogMaxAge:     DefaultLogRotateMaxAge,
			LogMaxBackups: DefaultLogRotateMaxBackups,
			REST: RESTConfig{
				Addr: DefaultRESTAddr,
			},
		},
		Auth: AuthConfig{
			JWT: JWTConfig{
				Realm:      DefaultJWTRealm,
				Timeout:    DefaultJWTTimeout,
				MaxRefresh: DefaultJWTMaxRefresh,
			},
		},
		Database: DatabaseConfig{
			Type: DatabaseTypeMysql,
			Mysql: MysqlConfig{
				Port:    DefaultMysqlPort,
				DBName:  DefaultMysqlDBName,
				Migrate: true,
			},
			Postgres: PostgresConfig{
				Port:                 DefaultPostgresPort,
				DBName:               DefaultPostgresDBName,
				SSLMode:              DefaultPostgresSSLMode,
				PreferSimpleProtocol: DefaultPostgresPreferSimpleProtocol,
				Timezone:             DefaultPostgresTimezone,
				Migrate:              true,
			},
			Redis: RedisConfig{
				DB: DefaultRedisDB,
			},
		},
		Cache: CacheConfig{
			Redis: RedisCacheConfig{
				TTL: DefaultRedisCacheTTL,
			},
			Local: LocalCacheConfig{
				Size: DefaultLFUCacheSize,
				TTL:  DefaultLFUCacheTTL,
			},
		},
		Prediction: PredictionConfig{
			Threshold: DefaultPredictionThreshold,
		},
		Model: ModelConfig{
			Bucket:        DefaultModelBucket,
			BootstrapType: classifier.TypeRandomForest,
			Training:      training.DefaultOptions(),
		},
		ObjectStorage: objectstorage.Config{
			Name:             DefaultObjectStorageName,
			S3ForcePathStyle: objectstorage.DefaultS3ForcePathStyle,
		},
		Events: EventsConfig{
			Redis: RedisEventsConfig{
				Enable:  false,
				Channel: DefaultEventsRedisChannel,
			},
			MQTT: MQTTConfig{
				Enable:   false,
				ClientID: DefaultEventsMQTTClientID,
				Topic:    DefaultEventsMQTTTopic,
			},
			Websocket: WebsocketConfig{
				WriteTimeout: DefaultWebsocketWriteTimeout,
				PingInterval: DefaultWebsocketPingInterval,
				BufferSize:   DefaultWebsocketBufferSize,
			},
		},
		Metrics: MetricsConfig{
			Enable: false,
			Addr:   DefaultMetricsAddr,
		},
		GC: GCConfig{
			Interval: DefaultGCInterval,
			Timeout:  DefaultGCTimeout,
		},
	}
}

// Validate config parameters.
func (cfg *Config) Validate() error {
	if cfg.Server.Name == "" {
		return errors.New("server requires parameter name")
	}

	if cfg.Server.REST.Addr == "" {
		return errors.New("rest requires parameter addr")
	}

	if cfg.Auth.JWT.Realm == "" {
		return errors.New("jwt requires parameter realm")
	}

	if cfg.Auth.JWT.Key == "" {
		return errors.New("jwt requires parameter key")
	}

	if cfg.Auth.JWT.Timeout == 0 {
		return errors.New("jwt requires parameter timeout")
	}

	if cfg.Auth.JWT.MaxRefresh == 0 {
		return errors.New("jwt requires parameter maxRefresh")
	}

	switch cfg.Database.Type {
	case DatabaseTypeMysql, DatabaseTypeMariaDB:
		if cfg.Database.Mysql.User == "" {
			return errors.New("mysql requires parameter user")
		}

		if cfg.Database.Mysql.Password == "" {
			return errors.New("mysql requires parameter password")
		}

		if cfg.Database.Mysql.Host == "" {
			return errors.New("mysql requires parameter host")
		}

		if cfg.Database.Mysql.Port <= 0 {
			return errors.New("mysql requires parameter port")
		}

		if cfg.Database.Mysql.DBName == "" {
			return errors.New("mysql requires parameter dbname")
		}

		if cfg.Database.Mysql.TLS != nil {
			if cfg.Database.Mysql.TLS.Cert == "" {
				return errors.New("tls requires parameter cert")
			}

			if cfg.Database.Mysql.TLS.Key == "" {
				return errors.New("tls requires parameter key")
			}

			if cfg.Database.Mysql.TLS.CA == "" {
				return errors.New("tls requires parameter ca")
			}
		}
	case DatabaseTypePostgres:
		if cfg.Database.Postgres.User == "" {
			return errors.New("postgres requires parameter user")
		}

		if cfg.Database.Postgres.Password == "" {
			return errors.New("postgres requires parameter password")
		}

		if cfg.Database.Postgres.Host == "" {
			return errors.New("postgres requires parameter host")
		}

		if cfg.Database.Postgres.Port <= 0 {
			return errors.New("postgres requires parameter port")
		}

		if cfg.Database.Postgres.DBName == "" {
			return errors.New("postgres requires parameter dbname")
		}

		if cfg.Database.Postgres.SSLMode == "" {
			return errors.New("postgres requires parameter sslMode")
		}

		if cfg.Database.Postgres.Timezone == "" {
			return errors.New("postgres requires parameter timezone")
		}
	default:
		return errors.New("database requires parameter type")
	}

	if cfg.Cache.Redis.TTL == 0 {
		return errors.New("redis requires parameter ttl")
	}

	if cfg.Cache.Local.Size == 0 {
		return errors.New("local requires parameter size")
	}

	if cfg.Cache.Local.TTL == 0 {
		return errors.New("local requires parameter ttl")
	}

	if cfg.Prediction.Threshold < 0 || cfg.Prediction.Threshold > 1 {
		return errors.New("prediction requires parameter threshold in [0, 1]")
	}

	if cfg.Model.Bucket == "" {
		return errors.New("model requires parameter bucket")
	}

	if cfg.Model.BootstrapArtifact != "" {
		if cfg.Model.BootstrapType != classifier.TypeRandomForest && cfg.Model.BootstrapType != classifier.TypeLogisticRegression {
			return errors.New("model requires parameter bootstrapType")
		}
	}

	if _, err := training.NewModel(cfg.Model.Training); err != nil {
		return errors.New("training requires parameter type")
	}

	if cfg.ObjectStorage.Name == objectstorage.ServiceNameS3 || cfg.ObjectStorage.Name == objectstorage.ServiceNameOSS {
		if cfg.ObjectStorage.Endpoint == "" {
			return errors.New("objectStorage requires parameter endpoint")
		}

		if cfg.ObjectStorage.AccessKey == "" {
			return errors.New("objectStorage requires parameter accessKey")
		}

		if cfg.ObjectStorage.SecretKey == "" {
			return errors.New("objectStorage requires parameter secretKey")
		}
	}

	if cfg.Events.Redis.Enable {
		if !cfg.Database.Redis.Enable() {
			return errors.New("events redis requires parameter database.redis.addrs")
		}

		if cfg.Events.Redis.Channel == "" {
			return errors.New("events redis requires parameter channel")
		}
	}

	if cfg.Events.MQTT.Enable {
		if cfg.Events.MQTT.Broker == "" {
			return errors.New("mqtt requires parameter broker")
		}

		if cfg.Events.MQTT.Topic == "" {
			return errors.New("mqtt requires parameter topic")
		}

		if cfg.Events.MQTT.QoS > 2 {
			return errors.New("mqtt requires parameter qos in [0, 2]")
		}
	}

	if cfg.Events.Websocket.BufferSize <= 0 {
		return errors.New("websocket requires parameter bufferSize")
	}

	if cfg.Metrics.Enable {
		if cfg.Metrics.Addr == "" {
			return errors.New("metrics requires parameter addr")
		}
	}

	if cfg.GC.Interval <= 0 {
		return errors.New("gc requires parameter interval")
	}

	if cfg.GC.Timeout <= 0 || cfg.GC.Timeout >= cfg.GC.Interval {
		return errors.New("gc requires parameter timeout less than interval")
	}

	return nil
}

// Convert fills parameters derived from other parameters.
func (cfg *Config) Convert() error {
	if cfg.ObjectStorage.Name == objectstorage.ServiceNameFilesystem && cfg.ObjectStorage.BaseDir == "" && cfg.Server.DataDir != "" {
		cfg.ObjectStorage.BaseDir = filepath.Join(cfg.Server.DataDir, "objects")
	}

	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = cfg.Server.Name
	}

	return nil
}
