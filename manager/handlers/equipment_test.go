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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"github.com/magsolution/sat/manager/middlewares"
	"github.com/magsolution/sat/manager/models"
	"github.com/magsolution/sat/manager/service/mocks"
	"github.com/magsolution/sat/manager/types"
)

var (
	mockEquipmentReqBody = `
		{
			"name": "horno-1",
			"serial": "HX-100",
			"type": "furnace",
			"location": "plant a"
		}`
	mockCreateEquipmentRequest = types.CreateEquipmentRequest{
		Name:     "horno-1",
		Serial:   "HX-100",
		Type:     "furnace",
		Location: "plant a",
	}
	mockEquipmentModel = &models.Equipment{
		BaseModel: models.BaseModel{ID: 1},
		Name:      "horno-1",
		Serial:    "HX-100",
		Type:      "furnace",
		Location:  "plant a",
		State:     models.EquipmentStateOperational,
	}
)

func mockEquipmentRouter(h *Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.Error())
	apiv1 := r.Group("/api/v1")
	equipment := apiv1.Group("/equipments")
	equipment.POST("", h.CreateEquipment)
	equipment.DELETE(":id", h.DestroyEquipment)
	equipment.PATCH(":id", h.UpdateEquipment)
	equipment.GET(":id", h.GetEquipment)
	equipment.GET("", h.GetEquipments)
	return r
}

func TestHandlers_CreateEquipment(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "unprocessable entity",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/equipments", strings.NewReader(`{"name": "horno-1"}`)),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/equipments", strings.NewReader(mockEquipmentReqBody)),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.CreateEquipment(gomock.Any(), gomock.Eq(mockCreateEquipmentRequest)).Return(mockEquipmentModel, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				equipment := models.Equipment{}
				assert.NoError(json.Unmarshal(w.Body.Bytes(), &equipment))
				assert.Equal(mockEquipmentModel.Serial, equipment.Serial)
				assert.Equal(mockEquipmentModel.State, equipment.State)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			w := httptest.NewRecorder()
			h := New(svc, nil)
			mockRouter := mockEquipmentRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_GetEquipment(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "unprocessable entity",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/equipments/test", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "not found",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/equipments/2", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.GetEquipment(gomock.Any(), gomock.Eq(uint(2))).Return(nil, gorm.ErrRecordNotFound).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, w.Code)
			},
		},
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/equipments/1", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.GetEquipment(gomock.Any(), gomock.Eq(uint(1))).Return(mockEquipmentModel, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				equipment := models.Equipment{}
				assert.NoError(json.Unmarshal(w.Body.Bytes(), &equipment))
				assert.Equal(uint(1), equipment.ID)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			w := httptest.NewRecorder()
			h := New(svc, nil)
			mockRouter := mockEquipmentRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_GetEquipments(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	svc := mocks.NewMockService(ctl)
	mockRouter := mockEquipmentRouter(New(svc, nil))

	svc.EXPECT().GetEquipments(gomock.Any(), gomock.Eq(types.GetEquipmentsQuery{
		Page:    2,
		PerPage: 10,
	})).Return([]models.Equipment{*mockEquipmentModel}, int64(25), nil).Times(1)

	w := httptest.NewRecorder()
	mockRouter.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/equipments?page=2", nil))

	assert := assert.New(t)
	assert.Equal(http.StatusOK, w.Code)
	link := w.Header().Get("Link")
	assert.Contains(link, "page=1")
	assert.Contains(link, "page=3")
	assert.Contains(link, "rel=last")
}
