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


package database

import (
	"net"
	"net/url"
	"strconv"

	"github.com/jackc/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/magsolution/sat/manager/config"
)

func newPostgres(cfg *config.Config) (*gorm.DB, error) {
	postgresCfg := &cfg.Database.Postgres
	dsn, err := formatPostgresDSN(postgresCfg)
	if err != nil {
		return nil, err
	}

	return open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: postgresCfg.PreferSimpleProtocol,
	}), postgresCfg.Migrate, cfg.Verbose)
}

// formatPostgresDSN builds a url dsn so that credentials may hold spaces or
// quotes, it is parsed once here to fail before connecting.
func formatPostgresDSN(cfg *config.PostgresConfig) (string, error) {
	query := url.Values{}
	query.Set("sslmode", cfg.SSLMode)
	if cfg.Timezone != "" {
		query.Set("TimeZone", cfg.Timezone)
	}

	dsn := (&url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     "/" + cfg.DBName,
		RawQuery: query.Encode(),
	}).String()

	if _, err := pgconn.ParseConfig(dsn); err != nil {
		return "", err
	}

	return dsn, nil
}
