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
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/VividCortex/mysqlerr"
	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-http-utils/headers"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"github.com/magsolution/sat/internal/satcodes"
	"github.com/magsolution/sat/internal/saterrors"
	"github.com/magsolution/sat/manager/models"
	"github.com/magsolution/sat/manager/permission/rbac"
	"github.com/magsolution/sat/manager/service/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "invalid input",
			err:  saterrors.InvalidFields("presion"),
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusBadRequest, w.Code)

				var resp ErrorResponse
				assert.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(satcodes.InvalidInput, resp.Code)
				assert.Equal([]string{"presion"}, resp.Fields)
			},
		},
		{
			name: "model unavailable",
			err:  saterrors.New(satcodes.ModelUnavailable, "no classifier loaded"),
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusServiceUnavailable, w.Code)

				var resp ErrorResponse
				assert.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(satcodes.ModelUnavailable.Message(), resp.Message)
			},
		},
		{
			name: "internal cause is hidden",
			err:  saterrors.Wrap(satcodes.PredictionFailed, errors.New("secret"), "inference failed"),
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusInternalServerError, w.Code)
				assert.NotContains(w.Body.String(), "secret")
			},
		},
		{
			name: "record not found",
			err:  gorm.ErrRecordNotFound,
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, w.Code)
			},
		},
		{
			name: "mysql duplicate entry",
			err:  &mysql.MySQLError{Number: mysqlerr.ER_DUP_ENTRY, Message: "Duplicate entry"},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusConflict, w.Code)
			},
		},
		{
			name: "postgres unique violation",
			err:  &pgconn.PgError{Code: pgUniqueViolation},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusConflict, w.Code)
			},
		},
		{
			name: "unknown error",
			err:  errors.New("foo"),
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusInternalServerError, w.Code)
				assert.NotContains(w.Body.String(), "foo")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(Error())
			r.GET("/", func(c *gin.Context) {
				c.Error(tc.err) // nolint: errcheck
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			tc.expect(t, w)
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(http.StatusConflict, HTTPStatus(satcodes.TrainingInProgress))
	assert.Equal(http.StatusInternalServerError, HTTPStatus(satcodes.Code(42)))
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name         string
		allowOrigins []string
		method       string
		origin       string
		expect       func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name:   "preflight reflects any origin",
			method: http.MethodOptions,
			origin: "http://dashboard.local",
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusNoContent, w.Code)
				assert.Equal("http://dashboard.local", w.Header().Get(headers.AccessControlAllowOrigin))
				assert.Equal("true", w.Header().Get(headers.AccessControlAllowCredentials))
				assert.Contains(w.Header().Get(headers.AccessControlAllowHeaders), headers.Authorization)
				assert.Equal("600", w.Header().Get(headers.AccessControlMaxAge))
			},
		},
		{
			name:   "request without origin",
			method: http.MethodGet,
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				assert.Empty(w.Header().Get(headers.AccessControlAllowOrigin))
			},
		},
		{
			name:         "allowed origin",
			allowOrigins: []string{"http://dashboard.local"},
			method:       http.MethodGet,
			origin:       "http://dashboard.local",
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				assert.Equal("http://dashboard.local", w.Header().Get(headers.AccessControlAllowOrigin))
				assert.Contains(w.Header().Get(headers.AccessControlExposeHeaders), headers.Link)
			},
		},
		{
			name:         "origin outside the allow list",
			allowOrigins: []string{"http://dashboard.local"},
			method:       http.MethodGet,
			origin:       "http://evil.local",
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusForbidden, w.Code)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(CORS(tc.allowOrigins))
			r.GET("/", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(tc.method, "/", nil)
			if tc.origin != "" {
				req.Header.Set(headers.Origin, tc.origin)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			tc.expect(t, w)
		})
	}
}

func TestRBAC(t *testing.T) {
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

	if _, err := e.AddRoleForUser(rbac.Subject(1), rbac.RoleOperator); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		id     any
		method string
		path   string
		code   int
	}{
		{
			name:   "operator reads equipments",
			id:     uint(1),
			method: http.MethodGet,
			path:   "/api/v1/equipments",
			code:   http.StatusOK,
		},
		{
			name:   "operator cannot create equipments",
			id:     uint(1),
			method: http.MethodPost,
			path:   "/api/v1/equipments",
			code:   http.StatusForbidden,
		},
		{
			name:   "user without roles",
			id:     uint(2),
			method: http.MethodGet,
			path:   "/api/v1/equipments",
			code:   http.StatusForbidden,
		},
		{
			name:   "missing identity",
			method: http.MethodGet,
			path:   "/api/v1/equipments",
			code:   http.StatusUnauthorized,
		},
		{
			name:   "path outside api groups",
			method: http.MethodGet,
			path:   "/healthy",
			code:   http.StatusOK,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(func(c *gin.Context) {
				if tc.id != nil {
					c.Set(IdentityKey, tc.id)
				}
			}, RBAC(e))
			r.Handle(tc.method, tc.path, func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestPersonalAccessToken(t *testing.T) {
	mockToken := func(scopes []string, expiredAt time.Time, userState string) *models.PersonalAccessToken {
		return &models.PersonalAccessToken{
			BaseModel: models.BaseModel{ID: 1},
			Token:     "foo",
			Scopes:    scopes,
			State:     models.PersonalAccessTokenStateActive,
			ExpiredAt: expiredAt,
			UserID:    4,
			User:      models.User{BaseModel: models.BaseModel{ID: 4}, State: userState},
		}
	}

	tests := []struct {
		name          string
		authorization string
		path          string
		mock          func(ms *mocks.MockServiceMockRecorder)
		expect        func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name:          "missing bearer",
			authorization: "Basic foo",
			path:          "/oapi/v1/predictions",
			mock:          func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, w.Code)
			},
		},
		{
			name:          "unknown token",
			authorization: "Bearer foo",
			path:          "/oapi/v1/predictions",
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.GetActivePersonalAccessToken(gomock.Any(), "foo").Return(nil, gorm.ErrRecordNotFound).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, w.Code)
			},
		},
		{
			name:          "expired token",
			authorization: "Bearer foo",
			path:          "/oapi/v1/predictions",
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.GetActivePersonalAccessToken(gomock.Any(), "foo").
					Return(mockToken(nil, time.Now().Add(-time.Minute), models.UserStateEnabled), nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, w.Code)
			},
		},
		{
			name:          "disabled owner",
			authorization: "Bearer foo",
			path:          "/oapi/v1/predictions",
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.GetActivePersonalAccessToken(gomock.Any(), "foo").
					Return(mockToken(nil, time.Now().Add(time.Hour), models.UserStateDisabled), nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, w.Code)
			},
		},
		{
			name:          "out of scope",
			authorization: "Bearer foo",
			path:          "/oapi/v1/predictions",
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.GetActivePersonalAccessToken(gomock.Any(), "foo").
					Return(mockToken([]string{rbac.EquipmentsObject}, time.Now().Add(time.Hour), models.UserStateEnabled), nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusForbidden, w.Code)
			},
		},
		{
			name:          "scoped token",
			authorization: "Bearer foo",
			path:          "/oapi/v1/predictions",
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.GetActivePersonalAccessToken(gomock.Any(), "foo").
					Return(mockToken([]string{rbac.PredictionsObject}, time.Now().Add(time.Hour), models.UserStateEnabled), nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				assert.Equal("uint:4", w.Body.String())
			},
		},
		{
			name:          "unscoped token",
			authorization: "Bearer foo",
			path:          "/oapi/v1/equipments",
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.GetActivePersonalAccessToken(gomock.Any(), "foo").
					Return(mockToken(nil, time.Now().Add(time.Hour), models.UserStateEnabled), nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, w.Code)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			tc.mock(svc.EXPECT())

			r := gin.New()
			r.Use(PersonalAccessToken(svc))
			r.Any("/oapi/v1/*path", func(c *gin.Context) {
				value, _ := c.Get(IdentityKey)
				c.String(http.StatusOK, "%T:%d", value, c.GetUint(IdentityKey))
			})

			req := httptest.NewRequest(http.MethodPost, tc.path, nil)
			req.Header.Set(headers.Authorization, tc.authorization)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			tc.expect(t, w)
		})
	}
}
