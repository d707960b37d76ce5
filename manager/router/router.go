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

package router

import (
	"time"

	"github.com/casbin/casbin/v2"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/mcuadros/go-gin-prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	// manager swagger docs
	_ "github.com/magsolution/sat/api/manager"
	logger "github.com/magsolution/sat/internal/satlog"
	"github.com/magsolution/sat/manager/config"
	"github.com/magsolution/sat/manager/events"
	"github.com/magsolution/sat/manager/handlers"
	"github.com/magsolution/sat/manager/middlewares"
	"github.com/magsolution/sat/manager/service"
)

const (
	PrometheusSubsystemName = "magsolution_manager"
	OtelServiceName         = "magsolution-manager"
)

func Init(cfg *config.Config, service service.Service, enforcer *casbin.Enforcer, hub *events.Hub) (*gin.Engine, error) {
	// Set mode.
	if !cfg.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	h := handlers.New(service, hub)

	// Prometheus metrics.
	p := ginprometheus.NewPrometheus(PrometheusSubsystemName)
	// URL removes query string.
	// Prometheus metrics need to reduce label,
	// refer to https://prometheus.io/docs/practices/instrumentation/#do-not-overuse-labels.
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		return c.FullPath()
	}
	p.Use(r)

	// Opentelemetry
	if cfg.Telemetry.Jaeger != "" {
		r.Use(otelgin.Middleware(OtelServiceName))
	}

	// Middleware
	r.Use(ginzap.Ginzap(logger.GinLogger.Desugar(), time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger.GinLogger.Desugar(), true))
	r.Use(middlewares.Error())

	// CORS
	r.Use(middlewares.CORS(cfg.Server.REST.AllowOrigins))

	rbac := middlewares.RBAC(enforcer)
	jwt, err := middlewares.Jwt(cfg.Auth.JWT, service)
	if err != nil {
		return nil, err
	}

	// Router
	apiv1 := r.Group("/api/v1")

	// User
	u := apiv1.Group("/users")
	u.PATCH(":id", jwt.MiddlewareFunc(), rbac, h.UpdateUser)
	u.GET(":id", jwt.MiddlewareFunc(), rbac, h.GetUser)
	u.GET("", jwt.MiddlewareFunc(), rbac, h.GetUsers)
	u.POST("signin", jwt.LoginHandler)
	u.POST("signout", jwt.LogoutHandler)
	u.POST("signup", h.SignUp)
	u.POST("refresh_token", jwt.RefreshHandler)
	u.POST(":id/reset_password", jwt.MiddlewareFunc(), rbac, h.ResetPassword)
	u.GET(":id/roles", jwt.MiddlewareFunc(), rbac, h.GetRolesForUser)
	u.PUT(":id/roles/:role", jwt.MiddlewareFunc(), rbac, h.AddRoleToUser)
	u.DELETE(":id/roles/:role", jwt.MiddlewareFunc(), rbac, h.DeleteRoleForUser)

	// Role
	re := apiv1.Group("/roles", jwt.MiddlewareFunc(), rbac)
	re.GET(":role", h.GetRole)
	re.GET("", h.GetRoles)

	// Equipment
	eq := apiv1.Group("/equipments", jwt.MiddlewareFunc(), rbac)
	eq.POST("", h.CreateEquipment)
	eq.DELETE(":id", h.DestroyEquipment)
	eq.PATCH(":id", h.UpdateEquipment)
	eq.GET(":id", h.GetEquipment)
	eq.GET("", h.GetEquipments)

	// Carbon Saving
	cs := apiv1.Group("/carbon-savings", jwt.MiddlewareFunc(), rbac)
	cs.POST("", h.CreateCarbonSaving)
	cs.DELETE(":id", h.DestroyCarbonSaving)
	cs.PATCH(":id", h.UpdateCarbonSaving)
	cs.GET(":id", h.GetCarbonSaving)
	cs.GET("", h.GetCarbonSavings)

	// Spare Part
	sp := apiv1.Group("/spare-parts", jwt.MiddlewareFunc(), rbac)
	sp.POST("", h.CreateSparePart)
	sp.DELETE(":id", h.DestroySparePart)
	sp.PATCH(":id", h.UpdateSparePart)
	sp.GET(":id", h.GetSparePart)
	sp.GET("", h.GetSpareParts)

	// Model
	m := apiv1.Group("/models", jwt.MiddlewareFunc(), rbac)
	m.POST("", h.CreateModel)
	m.DELETE(":id", h.DestroyModel)
	m.PATCH(":id", h.UpdateModel)
	m.GET(":id", h.GetModel)
	m.GET("", h.GetModels)

	// Prediction, authorized by the prediction pipeline itself.
	apiv1.POST("/predictions", jwt.MiddlewareFunc(), h.CreatePrediction)

	// Event
	apiv1.GET("/events", jwt.MiddlewareFunc(), rbac, h.GetEvents)

	// Personal Access Token
	pat := apiv1.Group("/personal-access-tokens", jwt.MiddlewareFunc(), rbac)
	pat.POST("", h.CreatePersonalAccessToken)
	pat.DELETE(":id", h.DestroyPersonalAccessToken)
	pat.PATCH(":id", h.UpdatePersonalAccessToken)
	pat.GET(":id", h.GetPersonalAccessToken)
	pat.GET("", h.GetPersonalAccessTokens)

	// Open API router.
	oapiv1 := r.Group("/oapi/v1", middlewares.PersonalAccessToken(service))
	oapiv1.POST("/predictions", h.CreatePrediction)

	oeq := oapiv1.Group("/equipments", rbac)
	oeq.GET(":id", h.GetEquipment)
	oeq.GET("", h.GetEquipments)

	// Root and Health Check
	r.GET("/", h.GetRoot)
	r.GET("/healthy", h.GetHealth)

	// Swagger
	apiSeagger := ginSwagger.URL("/swagger/doc.json")
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, apiSeagger))

	return r, nil
}
