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

// @Summary Create Equipment
// @Description Create by json config
// @Tags Equipment
// @Accept json
// @Produce json
// @Param Equipment body types.CreateEquipmentRequest true "Equipment"
// @Success 200 {object} models.Equipment
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /equipments [post]
func (h *Handlers) CreateEquipment(ctx *gin.Context) {
	var json types.CreateEquipmentRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	equipment, err := h.service.CreateEquipment(ctx.Request.Context(), json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, equipment)
}

// @Summary Destroy Equipment
// @Description Destroy by id
// @Tags Equipment
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /equipments/{id} [delete]
func (h *Handlers) DestroyEquipment(ctx *gin.Context) {
	var params types.EquipmentParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	if err := h.service.DestroyEquipment(ctx.Request.Context(), params.ID); err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.Status(http.StatusOK)
}

// @Summary Update Equipment
// @Description Update by json config
// @Tags Equipment
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param Equipment body types.UpdateEquipmentRequest true "Equipment"
// @Success 200 {object} models.Equipment
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /equipments/{id} [patch]
func (h *Handlers) UpdateEquipment(ctx *gin.Context) {
	var params types.EquipmentParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.UpdateEquipmentRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	equipment, err := h.service.UpdateEquipment(ctx.Request.Context(), params.ID, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, equipment)
}

// @Summary Get Equipment
// @Description Get Equipment by id
// @Tags Equipment
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200 {object} models.Equipment
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /equipments/{id} [get]
func (h *Handlers) GetEquipment(ctx *gin.Context) {
	var params types.EquipmentParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	equipment, err := h.service.GetEquipment(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, equipment)
}

// @Summary Get Equipments
// @Description Get Equipments
// @Tags Equipment
// @Accept json
// @Produce json
// @Param page query int true "current page" default(0)
// @Param per_page query int true "return max item count, default 10, max 50" default(10) minimum(2) maximum(50)
// @Success 200 {object} []models.Equipment
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /equipments [get]
func (h *Handlers) GetEquipments(ctx *gin.Context) {
	var query types.GetEquipmentsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	h.setPaginationDefault(&query.Page, &query.PerPage)
	equipments, count, err := h.service.GetEquipments(ctx.Request.Context(), query)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	h.setPaginationLinkHeader(ctx, query.Page, query.PerPage, int(count))
	ctx.JSON(http.StatusOK, equipments)
}
