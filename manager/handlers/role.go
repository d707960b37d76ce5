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

	"github.com/magsolution/sat/manager/types"
)

// @Summary Get Roles
// @Description Get roles with their permissions
// @Tags Role
// @Produce json
// @Success 200 {object} []types.Role
// @Failure 400
// @Failure 500
// @Router /roles [get]
func (h *Handlers) GetRoles(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.service.GetRoles(ctx.Request.Context()))
}

// @Summary Get Role
// @Description Get Role
// @Tags Role
// @Produce json
// @Param role path string true "role"
// @Success 200 {object} types.Role
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /roles/{role} [get]
func (h *Handlers) GetRole(ctx *gin.Context) {
	var params types.RoleParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	role, err := h.service.GetRole(ctx.Request.Context(), params.Role)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, role)
}
