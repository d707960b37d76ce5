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

import "fmt"

type ModelParams struct {
	ID uint `uri:"id" binding:"required"`
}

type CreateModelRequest struct {
	Name        string  `json:"name" binding:"omitempty"`
	BIO         string  `json:"bio" binding:"omitempty"`
	Type        string  `json:"type" binding:"omitempty,oneof=random_forest logistic_regression"`
	Samples     int     `json:"samples" binding:"omitempty,gte=10,lte=1000000"`
	Seed        int64   `json:"seed" binding:"omitempty"`
	FailureRate float64 `json:"failure_rate" binding:"omitempty,gt=0,lt=1"`
}

type UpdateModelRequest struct {
	BIO   string `json:"bio" binding:"omitempty"`
	State string `json:"state" binding:"omitempty,oneof=active inactive"`
}

type GetModelsQuery struct {
	Name    string `form:"name" binding:"omitempty"`
	Type    string `form:"type" binding:"omitempty"`
	Version string `form:"version" binding:"omitempty"`
	State   string `form:"state" binding:"omitempty,oneof=active inactive"`
	Page    int    `form:"page" binding:"omitempty,gte=1"`
	PerPage int    `form:"per_page" binding:"omitempty,gte=1,lte=1000"`
}

// MakeObjectKeyOfModelArtifact returns the object key of a model artifact.
func MakeObjectKeyOfModelArtifact(modelType, version string) string {
	return fmt.Sprintf("%s/%s/model.cls", modelType, version)
}
