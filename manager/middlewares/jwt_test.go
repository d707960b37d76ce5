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
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jwt "github.com/appleboy/gin-jwt/v2"
	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-http-utils/headers"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/magsolution/sat/manager/config"
	"github.com/magsolution/sat/manager/models"
	"github.com/magsolution/sat/manager/permission/rbac"
	"github.com/magsolution/sat/manager/service/mocks"
	"github.com/magsolution/sat/manager/types"
)

var mockJWTConfig = config.JWTConfig{
	Realm:      "MAGSOLUTION",
	Key:        "foo",
	Timeout:    time.Hour,
	MaxRefresh: time.Hour,
}

func newEnforcer(t *testing.T, id uint, role string) *casbin.Enforcer {
	m, err := rbac.NewModel()
	if err != nil {
		t.Fatal(err)
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		t.Fatal(err)
	}

	if err := rbac.SeedPolicies(e); err != nil {
		t.Fatal(err)
	}

	if _, err := e.AddRoleForUser(rbac.Subject(id), role); err != nil {
		t.Fatal(err)
	}

	return e
}

func newJwtRouter(mw *jwt.GinJWTMiddleware, e *casbin.Enforcer) *gin.Engine {
	r := gin.New()
	r.GET("/identity", mw.MiddlewareFunc(), func(c *gin.Context) {
		value, _ := c.Get(IdentityKey)
		c.String(http.StatusOK, "%T:%d", value, c.GetUint(IdentityKey))
	})

	eq := r.Group("/api/v1/equipments", mw.MiddlewareFunc(), RBAC(e))
	eq.GET("", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	eq.POST("", func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	return r
}

func bearer(token string) string {
	return fmt.Sprintf("Bearer %s", token)
}

func TestJwt(t *testing.T) {
	tests := []struct {
		name   string
		data   any
		method string
		path   string
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name:   "identity is the uint user id",
			data:   &models.User{BaseModel: models.BaseModel{ID: 7}},
			method: http.MethodGet,
			path:   "/identity",
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				assert.Equal("uint:7", w.Body.String())
			},
		},
		{
			name:   "rbac allows operator reads",
			data:   &models.User{BaseModel: models.BaseModel{ID: 7}},
			method: http.MethodGet,
			path:   "/api/v1/equipments",
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, w.Code)
			},
		},
		{
			name:   "rbac forbids operator writes",
			data:   &models.User{BaseModel: models.BaseModel{ID: 7}},
			method: http.MethodPost,
			path:   "/api/v1/equipments",
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusForbidden, w.Code)
			},
		},
		{
			name:   "rbac forbids other users",
			data:   &models.User{BaseModel: models.BaseModel{ID: 8}},
			method: http.MethodGet,
			path:   "/api/v1/equipments",
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusForbidden, w.Code)
			},
		},
		{
			name:   "token without user id",
			data:   "foo",
			method: http.MethodGet,
			path:   "/identity",
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, w.Code)
			},
		},
		{
			name:   "missing token",
			method: http.MethodGet,
			path:   "/api/v1/equipments",
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, w.Code)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()

			mw, err := Jwt(mockJWTConfig, mocks.NewMockService(ctl))
			if err != nil {
				t.Fatal(err)
			}

			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.data != nil {
				token, _, err := mw.TokenGenerator(tc.data)
				if err != nil {
					t.Fatal(err)
				}
				req.Header.Set(headers.Authorization, bearer(token))
			}

			w := httptest.NewRecorder()
			newJwtRouter(mw, newEnforcer(t, 7, rbac.RoleOperator)).ServeHTTP(w, req)
			tc.expect(t, w)
		})
	}
}

func TestJwt_SignIn(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	svc := mocks.NewMockService(ctl)
	svc.EXPECT().SignIn(gomock.Any(), types.SignInRequest{Name: "foo", Password: "12345678"}).
		Return(&models.User{BaseModel: models.BaseModel{ID: 7}, Name: "foo"}, nil).Times(1)

	mw, err := Jwt(mockJWTConfig, svc)
	if err != nil {
		t.Fatal(err)
	}

	r := newJwtRouter(mw, newEnforcer(t, 7, rbac.RoleOperator))
	r.POST("/signin", mw.LoginHandler)

	assert := assert.New(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/signin", strings.NewReader(`{"name": "foo", "password": "12345678"}`))
	req.Header.Set(headers.ContentType, "application/json")
	r.ServeHTTP(w, req)
	if !assert.Equal(http.StatusOK, w.Code) {
		t.FailNow()
	}

	var resp struct {
		Token string `json:"token"`
	}
	if !assert.NoError(json.Unmarshal(w.Body.Bytes(), &resp)) {
		t.FailNow()
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/identity", nil)
	req.Header.Set(headers.Authorization, bearer(resp.Token))
	r.ServeHTTP(w, req)
	assert.Equal(http.StatusOK, w.Code)
	assert.Equal("uint:7", w.Body.String())
}
