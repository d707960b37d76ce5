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

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-http-utils/headers"
)

// corsMaxAge is how long browsers may cache a preflight response.
const corsMaxAge = 10 * time.Minute

var (
	// CORSAllowMethods are the methods allowed in cross origin requests.
	CORSAllowMethods = []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPost, http.MethodDelete, http.MethodPatch}

	// CORSExposeHeaders are the response headers readable by cross origin
	// callers, pagination links and the refreshed token.
	CORSExposeHeaders = []string{headers.Link, headers.Location, headers.Authorization}
)

// CORS serves the dashboard from other origins. Only allowOrigins may call
// the api, every origin is reflected when it is empty.
func CORS(allowOrigins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = CORSAllowMethods
	cfg.AddAllowHeaders(headers.Authorization)
	cfg.ExposeHeaders = CORSExposeHeaders
	cfg.AllowCredentials = true
	cfg.MaxAge = corsMaxAge

	if len(allowOrigins) > 0 {
		cfg.AllowOrigins = allowOrigins
	} else {
		cfg.AllowOriginFunc = func(string) bool { return true }
	}

	return cors.New(cfg)
}
