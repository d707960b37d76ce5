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

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"

	"github.com/magsolution/sat/internal/satcodes"
	logger "github.com/magsolution/sat/internal/satlog"
	"github.com/magsolution/sat/manager/permission/rbac"
)

func RBAC(e *casbin.Enforcer) gin.HandlerFunc {
	return func(c *gin.Context) {
		permissionGroupName, err := rbac.GetAPIGroupName(c.Request.URL.Path)
		if err != nil {
			c.Next()
			return
		}

		value, ok := c.Get(IdentityKey)
		if !ok {
			abortUnauthorized(c)
			return
		}

		id, ok := value.(uint)
		if !ok {
			abortUnauthorized(c)
			return
		}

		subject := rbac.Subject(id)
		action := rbac.HTTPMethodToAction(c.Request.Method)
		allowed, err := e.Enforce(subject, permissionGroupName, action)
		if err != nil {
			logger.GinLogger.Errorw("permission validate failed", "subject", subject, "object", permissionGroupName, "error", err.Error())
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Code:    satcodes.UnknownError,
				Message: "permission validate error",
			})
			c.Abort()
			return
		}

		if !allowed {
			c.JSON(http.StatusForbidden, ErrorResponse{
				Code:    satcodes.Forbidden,
				Message: http.StatusText(http.StatusForbidden),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
