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
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
	"gorm.io/plugin/soft_delete"
)

type BaseModel struct {
	ID        uint                  `gorm:"primarykey;comment:id" json:"id"`
	CreatedAt time.Time             `gorm:"column:created_at;type:timestamp;default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time             `gorm:"column:updated_at;type:timestamp;default:current_timestamp" json:"updated_at"`
	IsDel     soft_delete.DeletedAt `gorm:"softDelete:flag;comment:soft delete flag" json:"is_del"`
}

// Paginate returns the gorm scope of the given page, pages start at 1.
func Paginate(page, perPage int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}

		return db.Offset((page - 1) * perPage).Limit(perPage)
	}
}

// JSONMap is a json object stored as text.
type JSONMap map[string]any

func (m JSONMap) Value() (driver.Value, error) {
	return jsonValue(m, m == nil)
}

func (m *JSONMap) Scan(val any) error {
	t := map[string]any{}
	if err := jsonScan(val, &t); err != nil {
		return err
	}

	*m = JSONMap(t)
	return nil
}

func (JSONMap) GormDataType() string {
	return "jsonmap"
}

func (JSONMap) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return "text"
}

// Array is a json string array stored as text.
type Array []string

func (a Array) Value() (driver.Value, error) {
	return jsonValue(a, a == nil)
}

func (a *Array) Scan(val any) error {
	t := []string{}
	if err := jsonScan(val, &t); err != nil {
		return err
	}

	*a = Array(t)
	return nil
}

func (Array) GormDataType() string {
	return "array"
}

func (Array) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return "text"
}

func jsonValue(v any, isNil bool) (driver.Value, error) {
	if isNil {
		return nil, nil
	}

	b, err := json.Marshal(v)
	return string(b), err
}

func jsonScan(val any, dst any) error {
	switch v := val.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("failed to unmarshal json value: %v", val)
	}
}
