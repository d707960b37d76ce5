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

// @Summary Create SparePart
// @Description Create by json config
// @Tags SparePart
// @Accept json
// @Produce json
// @Param SparePart body types.CreateSparePartRequest true "SparePart"
// @Success 200 {object} models.SparePart
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /spare-parts [post]
func (h *Handlers) CreateSparePart(ctx *gin.Context) {
	var json types.CreateSparePartRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	sparePart, err := h.service.CreateSparePart(ctx.Request.Context(), json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, sparePart)
}

// @Summary Destroy SparePart
// @Description Destroy by id
// @Tags SparePart
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /spare-parts/{id} [delete]
func (h *Handlers) DestroySparePart(ctx *gin.Context) {
	var params types.SparePartParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	if err := h.service.DestroySparePart(ctx.Request.Context(), params.ID); err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.Status(http.StatusOK)
}

// @Summary Update SparePart
// @Description Update by json config
// @Tags SparePart
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param SparePart body types.UpdateSparePartRequest true "SparePart"
// @Success 200 {object} models.SparePart
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /spare-parts/{id} [patch]
func (h *Handlers) UpdateSparePart(ctx *gin.Context) {
	var params types.SparePartParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.UpdateSparePartRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	sparePart, err := h.service.UpdateSparePart(ctx.Request.Context(), params.ID, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, sparePart)
}

// @Summary Get SparePart
// @Description Get SparePart by id
// @Tags SparePart
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200 {object} models.SparePart
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /spare-parts/{id} [get]
func (h *Handlers) GetSparePart(ctx *gin.Context) {
	var params types.SparePartParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	sparePart, err := h.service.GetSparePart(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, sparePart)
}

// @Summary Get SpareParts
// @Description Get SpareParts
// @Tags SparePart
// @Accept json
// @Produce json
// @Param page query int true "current page" default(0)
// @Param per_page query int true "return max item count, default 10, max 50" default(10) minimum(2) maximum(50)
// @Success 200 {object} []models.SparePart
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /spare-parts [get]
func (h *Handlers) GetSpareParts(ctx *gin.Context) {
	var query types.GetSparePartsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	h.setPaginationDefault(&query.Page, &query.PerPage)
	spareParts, count, err := h.service.GetSpareParts(ctx.Request.Context(), query)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	h.setPaginationLinkHeader(ctx, query.Page, query.PerPage, int(count))
	ctx.JSON(http.StatusOK, spareParts)
}
