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

const (
	// ModelStateActive is the model version serving predictions, at most one is active.
	ModelStateActive = "active"

	// ModelStateInactive is a stored model version not serving predictions.
	ModelStateInactive = "inactive"
)

type Model struct {
	BaseModel
	Name       string  `gorm:"column:name;type:varchar(256);not null;comment:name" json:"name"`
	Type       string  `gorm:"column:type;type:varchar(256);index:uk_model,unique;not null;comment:classifier type" json:"type"`
	BIO        string  `gorm:"column:bio;type:varchar(1024);comment:biography" json:"bio"`
	Version    string  `gorm:"column:version;type:varchar(256);index:uk_model,unique;not null;comment:model version" json:"version"`
	State      string  `gorm:"column:state;type:varchar(256);default:'inactive';comment:model state" json:"state"`
	Evaluation JSONMap `gorm:"column:evaluation;comment:evaluation metrics" json:"evaluation"`
	ObjectKey  string  `gorm:"column:object_key;type:varchar(1024);not null;comment:artifact object key" json:"object_key"`
	Digest     string  `gorm:"column:digest;type:varchar(256);comment:artifact digest" json:"digest"`
	UserID     uint    `gorm:"column:user_id;comment:user id" json:"user_id"`
}
