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

	// nolint
	_ "github.com/magsolution/sat/manager/models"
	"github.com/magsolution/sat/manager/types"
)

// @Summary Create CarbonSaving
// @Description Create by json config
// @Tags CarbonSaving
// @Accept json
// @Produce json
// @Param CarbonSaving body types.CreateCarbonSavingRequest true "CarbonSaving"
// @Success 200 {object} models.CarbonSaving
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /carbon-savings [post]
func (h *Handlers) CreateCarbonSaving(ctx *gin.Context) {
	var json types.CreateCarbonSavingRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	carbonSaving, err := h.service.CreateCarbonSaving(ctx.Request.Context(), json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, carbonSaving)
}

// @Summary Destroy CarbonSaving
// @Description Destroy by id
// @Tags CarbonSaving
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /carbon-savings/{id} [delete]
func (h *Handlers) DestroyCarbonSaving(ctx *gin.Context) {
	var params types.CarbonSavingParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	if err := h.service.DestroyCarbonSaving(ctx.Request.Context(), params.ID); err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.Status(http.StatusOK)
}

// @Summary Update CarbonSaving
// @Description Update by json config
// @Tags CarbonSaving
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param CarbonSaving body types.UpdateCarbonSavingRequest true "CarbonSaving"
// @Success 200 {object} models.CarbonSaving
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /carbon-savings/{id} [patch]
func (h *Handlers) UpdateCarbonSaving(ctx *gin.Context) {
	var params types.CarbonSavingParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.UpdateCarbonSavingRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	carbonSaving, err := h.service.UpdateCarbonSaving(ctx.Request.Context(), params.ID, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, carbonSaving)
}

// @Summary Get CarbonSaving
// @Description Get CarbonSaving by id
// @Tags CarbonSaving
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200 {object} models.CarbonSaving
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /carbon-savings/{id} [get]
func (h *Handlers) GetCarbonSaving(ctx *gin.Context) {
	var params types.CarbonSavingParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	carbonSaving, err := h.service.GetCarbonSaving(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, carbonSaving)
}

// @Summary Get CarbonSavings
// @Description Get CarbonSavings
// @Tags CarbonSaving
// @Accept json
// @Produce json
// @Param page query int true "current page" default(0)
// @Param per_page query int true "return max item count, default 10, max 50" default(10) minimum(2) maximum(50)
// @Success 200 {object} []models.CarbonSaving
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /carbon-savings [get]
func (h *Handlers) GetCarbonSavings(ctx *gin.Context) {
	var query types.GetCarbonSavingsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	h.setPaginationDefault(&query.Page, &query.PerPage)
	carbonSavings, count, err := h.service.GetCarbonSavings(ctx.Request.Context(), query)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	h.setPaginationLinkHeader(ctx, query.Page, query.PerPage, int(count))
	ctx.JSON(http.StatusOK, carbonSavings)
}
