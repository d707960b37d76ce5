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
)

// @Summary Get Events
// @Description Upgrade to a websocket streaming update events
// @Tags Event
// @Success 101
// @Failure 400
// @Failure 503
// @Router /events [get]
func (h *Handlers) GetEvents(ctx *gin.Context) {
	if h.hub == nil {
		ctx.Status(http.StatusServiceUnavailable)
		return
	}

	// The upgrader has already replied when it fails.
	if err := h.hub.ServeWS(ctx.Writer, ctx.Request); err != nil {
		logger.GinLogger.Warnw("serve websocket failed", "remote", ctx.ClientIP(), "error", err.Error())
	}
}
