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

package satcodes

import "strconv"

// Code is the machine readable error code returned to api callers.
type Code int32

const (
	// success code 200-299
	Success Code = 200

	// common response error 1000-1999
	BadRequest   Code = 1400
	Unauthorized Code = 1401
	Forbidden    Code = 1403
	NotFound     Code = 1404
	Conflict     Code = 1409
	UnknownError Code = 1500

	// prediction response error 2000-2999
	InvalidInput     Code = 2400
	PredictionFailed Code = 2500
	ModelUnavailable Code = 2503

	// training response error 3000-3999
	TrainingInProgress Code = 3409
	TrainingFailed     Code = 3500
	ModelArtifactError Code = 3501
)

var messages = map[Code]string{
	Success:            "success",
	BadRequest:         "bad request",
	Unauthorized:       "unauthorized",
	Forbidden:          "forbidden",
	NotFound:           "resource not found",
	Conflict:           "resource conflict",
	UnknownError:       "internal server error",
	InvalidInput:       "invalid input",
	PredictionFailed:   "prediction failed",
	ModelUnavailable:   "model unavailable",
	TrainingInProgress: "training already in progress",
	TrainingFailed:     "training failed",
	ModelArtifactError: "model artifact error",
}

// Message returns the generic text for a code, safe to expose to callers.
func (c Code) Message() string {
	if m, ok := messages[c]; ok {
		return m
	}

	return messages[UnknownError]
}

func (c Code) String() string {
	return strconv.Itoa(int(c))
}
