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

type CarbonSaving struct {
	BaseModel
	Period      string    `gorm:"column:period;type:varchar(64);not null;comment:reporting period" json:"period"`
	KgCO2       float64   `gorm:"column:kg_co2;not null;comment:kilograms of co2 saved" json:"kg_co2"`
	Description string    `gorm:"column:description;type:varchar(1024);comment:description" json:"description"`
	EquipmentID uint      `gorm:"column:equipment_id;index;comment:equipment id" json:"equipment_id"`
	Equipment   Equipment `json:"equipment"`
}
