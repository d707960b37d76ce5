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

import "time"

const (
	// EquipmentStateOperational is equipment in service.
	EquipmentStateOperational = "operational"

	// EquipmentStateMaintenance is equipment under maintenance.
	EquipmentStateMaintenance = "maintenance"

	// EquipmentStateRetired is equipment out of service.
	EquipmentStateRetired = "retired"
)

type Equipment struct {
	BaseModel
	Name            string     `gorm:"column:name;type:varchar(256);not null;comment:name" json:"name"`
	Serial          string     `gorm:"column:serial;type:varchar(256);index:uk_equipment_serial,unique;not null;comment:serial number" json:"serial"`
	Type            string     `gorm:"column:type;type:varchar(256);comment:equipment type" json:"type"`
	Location        string     `gorm:"column:location;type:varchar(256);comment:location" json:"location"`
	State           string     `gorm:"column:state;type:varchar(256);default:'operational';comment:equipment state" json:"state"`
	BIO             string     `gorm:"column:bio;type:varchar(1024);comment:biography" json:"bio"`
	LastRisk        string     `gorm:"column:last_risk;type:varchar(32);comment:last predicted risk label" json:"last_risk"`
	LastPredictedAt *time.Time `gorm:"column:last_predicted_at;type:timestamp;comment:last prediction time" json:"last_predicted_at"`
}
