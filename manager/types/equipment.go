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

type EquipmentParams struct {
	ID uint `uri:"id" binding:"required"`
}

type CreateEquipmentRequest struct {
	Name     string `json:"name" binding:"required"`
	Serial   string `json:"serial" binding:"required"`
	Type     string `json:"type" binding:"omitempty"`
	Location string `json:"location" binding:"omitempty"`
	State    string `json:"state" binding:"omitempty,oneof=operational maintenance retired"`
	BIO      string `json:"bio" binding:"omitempty"`
}

type UpdateEquipmentRequest struct {
	Name     string `json:"name" binding:"omitempty"`
	Type     string `json:"type" binding:"omitempty"`
	Location string `json:"location" binding:"omitempty"`
	State    string `json:"state" binding:"omitempty,oneof=operational maintenance retired"`
	BIO      string `json:"bio" binding:"omitempty"`
}

type GetEquipmentsQuery struct {
	Name     string `form:"name" binding:"omitempty"`
	Type     string `form:"type" binding:"omitempty"`
	Location string `form:"location" binding:"omitempty"`
	State    string `form:"state" binding:"omitempty,oneof=operational maintenance retired"`
	Page     int    `form:"page" binding:"omitempty,gte=1"`
	PerPage  int    `form:"per_page" binding:"omitempty,gte=1,lte=1000"`
}
