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

// CreatePredictionRequest is the documented body of a prediction, handlers
// bind the raw json object so that field validation stays in one place.
type CreatePredictionRequest struct {
	Temperatura     float64 `json:"temperatura"`
	Vibracion       float64 `json:"vibracion"`
	TiempoOperacion float64 `json:"tiempo_operacion"`
	Presion         float64 `json:"presion"`
	EquipmentID     uint    `json:"equipment_id,omitempty"`
}

type PredictionResponse struct {
	Riesgo      string   `json:"riesgo"`
	Probability *float64 `json:"probability,omitempty"`
}
