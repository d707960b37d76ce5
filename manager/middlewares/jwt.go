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
	"time"

	jwt "github.com/appleboy/gin-jwt/v2"
	"github.com/gin-gonic/gin"

	"github.com/magsolution/sat/internal/satcodes"
	"github.com/magsolution/sat/manager/config"
	"github.com/magsolution/sat/manager/models"
	"github.com/magsolution/sat/manager/service"
	"github.com/magsolution/sat/manager/types"
)

// IdentityKey is the context key of the authenticated user id.
const IdentityKey = "id"

func Jwt(cfg config.JWTConfig, service service.Service) (*jwt.GinJWTMiddleware, error) {
	authMiddleware, err := jwt.New(&jwt.GinJWTMiddleware{
		Realm:       cfg.Realm,
		Key:         []byte(cfg.Key),
		Timeout:     cfg.Timeout,
		MaxRefresh:  cfg.MaxRefresh,
		IdentityKey: IdentityKey,

		IdentityHandler: func(c *gin.Context) any {
			claims := jwt.ExtractClaims(c)

			// Numeric claims decode as float64, the identity must be the uint user id
			// because gin-jwt stores the returned value under IdentityKey.
			id, ok := claims[IdentityKey].(float64)
			if !ok || id <= 0 {
				c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    satcodes.Unauthorized,
					Message: "Unavailable token: require user id",
				})
				c.Abort()
				return nil
			}

			return uint(id)
		},

		Authenticator: func(c *gin.Context) (any, error) {
			var json types.SignInRequest
			if err := c.ShouldBindJSON(&json); err != nil {
				return "", jwt.ErrMissingLoginValues
			}

			user, err := service.SignIn(c.Request.Context(), json)
			if err != nil {
				return "", jwt.ErrFailedAuthentication
			}

			return user, nil
		},

		PayloadFunc: func(data any) jwt.MapClaims {
			if user, ok := data.(*models.User); ok {
				return jwt.MapClaims{
					IdentityKey: user.ID,
				}
			}

			return jwt.MapClaims{}
		},

		Unauthorized: func(c *gin.Context, code int, message string) {
			c.JSON(code, ErrorResponse{
				Message: message,
			})
		},

		LoginResponse: func(c *gin.Context, code int, token string, expire time.Time) {
			c.JSON(code, gin.H{
				"token":  token,
				"expire": expire.Format(time.RFC3339),
			})
		},

		LogoutResponse: func(c *gin.Context, code int) {
			c.Status(code)
		},

		RefreshResponse: func(c *gin.Context, code int, token string, expire time.Time) {
			c.JSON(code, gin.H{
				"token":  token,
				"expire": expire.Format(time.RFC3339),
			})
		},

		TokenLookup:    "header: Authorization, query: token, cookie: jwt",
		TokenHeadName:  "Bearer",
		TimeFunc:       time.Now,
		SendCookie:     true,
		CookieHTTPOnly: true,
	})
	if err != nil {
		return nil, err
	}

	return authMiddleware, nil
}
