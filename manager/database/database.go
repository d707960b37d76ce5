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
	"context"
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
	"moul.io/zapgorm2"

	logger "github.com/magsolution/sat/internal/satlog"
	"github.com/magsolution/sat/manager/config"
	"github.com/magsolution/sat/manager/models"
	"github.com/magsolution/sat/manager/permission/rbac"
)

const (
	// AdminUserName is the name of the seeded admin user.
	AdminUserName = "admin"

	// defaultAdminPassword is the initial password of the seeded admin user.
	defaultAdminPassword = "MAGSOLUTION"
)

type Database struct {
	DB  *gorm.DB
	RDB redis.UniversalClient
}

func New(cfg *config.Config) (*Database, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Database.Type {
	case config.DatabaseTypeMysql, config.DatabaseTypeMariaDB:
		db, err = newMyqsl(cfg)
		if err != nil {
			logger.Errorf("mysql: %s", err.Error())
			return nil, err
		}
	case config.DatabaseTypePostgres:
		db, err = newPostgres(cfg)
		if err != nil {
			logger.Errorf("postgres: %s", err.Error())
			return nil, err
		}
	default:
		return nil, fmt.Errorf("invalid database type %s", cfg.Database.Type)
	}

	// Redis is optional, the cache stays local and events stay in process without it.
	var rdb redis.UniversalClient
	if cfg.Database.Redis.Enable() {
		rdb, err = NewRedis(&cfg.Database.Redis)
		if err != nil {
			logger.Errorf("redis: %s", err.Error())
			return nil, err
		}
	}

	return &Database{
		DB:  db,
		RDB: rdb,
	}, nil
}

func (d *Database) Close() error {
	if d.RDB != nil {
		if err := d.RDB.Close(); err != nil {
			return err
		}
	}

	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// open connects with dialector, then migrates and seeds the schema.
func open(dialector gorm.Dialector, migrateSchema, verbose bool) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   newGormLogger(verbose),
	})
	if err != nil {
		return nil, err
	}

	if migrateSchema {
		if err := migrate(db); err != nil {
			return nil, err
		}
	}

	if err := seed(db); err != nil {
		return nil, err
	}

	return db, nil
}

func newGormLogger(verbose bool) gormlogger.Interface {
	logLevel := gormlogger.Info
	if !verbose {
		logLevel = gormlogger.Warn
	}

	return zapgorm2.New(logger.CoreLogger.Desugar()).LogMode(logLevel)
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.PersonalAccessToken{},
		&models.Equipment{},
		&models.CarbonSaving{},
		&models.SparePart{},
		&models.Model{},
	)
}

func seed(db *gorm.DB) error {
	var adminUserCount int64
	if err := db.Model(models.User{}).Where("name = ?", AdminUserName).Count(&adminUserCount).Error; err != nil {
		return err
	}

	if adminUserCount <= 0 {
		encryptedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		if err := db.Create(&models.User{
			BaseModel: models.BaseModel{
				ID: uint(1),
			},
			EncryptedPassword: string(encryptedPasswordBytes),
			Name:              AdminUserName,
			Email:             fmt.Sprintf("%s@magsolution.com", AdminUserName),
			State:             models.UserStateEnabled,
		}).Error; err != nil {
			return err
		}
	}

	return nil
}

// SeedAdminRole grants the seeded admin user the admin role.
func SeedAdminRole(ctx context.Context, db *gorm.DB, e *casbin.Enforcer) error {
	admin := models.User{}
	if err := db.WithContext(ctx).Where("name = ?", AdminUserName).First(&admin).Error; err != nil {
		return err
	}

	if _, err := e.AddRoleForUser(rbac.Subject(admin.ID), rbac.RoleAdmin); err != nil {
		return err
	}

	return nil
}
