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

package middlewares

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-http-utils/headers"

	"github.com/magsolution/sat/internal/satcodes"
	logger "github.com/magsolution/sat/internal/satlog"
	"github.com/magsolution/sat/manager/models"
	"github.com/magsolution/sat/manager/permission/rbac"
	"github.com/magsolution/sat/manager/service"
)

// PersonalAccessToken authenticates the open api. The token must be active,
// unexpired, owned by an enabled user and scoped to the requested object.
func PersonalAccessToken(service service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenFields := strings.Fields(c.GetHeader(headers.Authorization))
		if len(tokenFields) != 2 || tokenFields[0] != "Bearer" {
			abortUnauthorized(c)
			return
		}

		personalAccessToken, err := service.GetActivePersonalAccessToken(c.Request.Context(), tokenFields[1])
		if err != nil {
			abortUnauthorized(c)
			return
		}

		if time.Now().After(personalAccessToken.ExpiredAt) || personalAccessToken.User.State == models.UserStateDisabled {
			abortUnauthorized(c)
			return
		}

		object, err := rbac.GetAPIGroupName(c.Request.URL.Path)
		if err != nil || !rbac.ScopeAllowed(personalAccessToken.Scopes, object) {
			logger.GinLogger.Infow("personal access token out of scope", "tokenID", personalAccessToken.ID, "object", object)
			c.JSON(http.StatusForbidden, ErrorResponse{
				Code:    satcodes.Forbidden,
				Message: http.StatusText(http.StatusForbidden),
			})
			c.Abort()
			return
		}

		c.Set(IdentityKey, personalAccessToken.UserID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    satcodes.Unauthorized,
		Message: http.StatusText(http.StatusUnauthorized),
	})
	c.Abort()
}
