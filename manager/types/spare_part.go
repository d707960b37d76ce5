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

type SparePartParams struct {
	ID uint `uri:"id" binding:"required"`
}

type CreateSparePartRequest struct {
	Name        string `json:"name" binding:"required"`
	Quantity    int    `json:"quantity" binding:"gte=0"`
	BIO         string `json:"bio" binding:"omitempty"`
	EquipmentID *uint  `json:"equipment_id" binding:"omitempty"`
}

type UpdateSparePartRequest struct {
	Name        string `json:"name" binding:"omitempty"`
	Quantity    *int   `json:"quantity" binding:"omitempty,gte=0"`
	BIO         string `json:"bio" binding:"omitempty"`
	EquipmentID *uint  `json:"equipment_id" binding:"omitempty"`
}

type GetSparePartsQuery struct {
	Name        string `form:"name" binding:"omitempty"`
	EquipmentID uint   `form:"equipment_id" binding:"omitempty"`
	Page        int    `form:"page" binding:"omitempty,gte=1"`
	PerPage     int    `form:"per_page" binding:"omitempty,gte=1,lte=1000"`
}
