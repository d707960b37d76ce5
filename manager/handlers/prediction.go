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

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	logger "github.com/magsolution/sat/internal/satlog"
	"github.com/magsolution/sat/manager/middlewares"
	// nolint
	_ "github.com/magsolution/sat/manager/types"
)

// @Summary Create Prediction
// @Description Predict the failure risk of an equipment from its sensor readings
// @Tags Prediction
// @Accept json
// @Produce json
// @Param Prediction body types.CreatePredictionRequest true "Prediction"
// @Success 200 {object} types.PredictionResponse
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 503
// @Failure 500
// @Router /predictions [post]
func (h *Handlers) CreatePrediction(ctx *gin.Context) {
	principal, err := h.service.GetPrincipal(ctx.Request.Context(), ctx.GetUint(middlewares.IdentityKey))
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	// A body that is not a json object carries no fields, the pipeline still
	// authorizes and checks the model before rejecting it.
	var payload map[string]any
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		logger.WithUser(principal.ID, principal.Role).Debugf("bind prediction body failed: %s", err.Error())
		payload = nil
	}

	result, err := h.service.CreatePrediction(ctx.Request.Context(), principal, payload)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, result)
}
