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

package types

type CarbonSavingParams struct {
	ID uint `uri:"id" binding:"required"`
}

type CreateCarbonSavingRequest struct {
	EquipmentID uint    `json:"equipment_id" binding:"required"`
	Period      string  `json:"period" binding:"required"`
	KgCO2       float64 `json:"kg_co2" binding:"gte=0"`
	Description string  `json:"description" binding:"omitempty"`
}

type UpdateCarbonSavingRequest struct {
	Period      string   `json:"period" binding:"omitempty"`
	KgCO2       *float64 `json:"kg_co2" binding:"omitempty,gte=0"`
	Description string   `json:"description" binding:"omitempty"`
}

type GetCarbonSavingsQuery struct {
	EquipmentID uint   `form:"equipment_id" binding:"omitempty"`
	Period      string `form:"period" binding:"omitempty"`
	Page        int    `form:"page" binding:"omitempty,gte=1"`
	PerPage     int    `form:"per_page" binding:"omitempty,gte=1,lte=1000"`
}
