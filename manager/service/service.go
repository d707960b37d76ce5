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

//go:generate mockgen -destination mocks/service_mock.go -source service.go -package mocks

package service

import (
	"context"

	"github.com/casbin/casbin/v2"
	"go.uber.org/atomic"
	"gorm.io/gorm"

	logger "github.com/magsolution/sat/internal/satlog"
	"github.com/magsolution/sat/manager/cache"
	"github.com/magsolution/sat/manager/config"
	"github.com/magsolution/sat/manager/database"
	"github.com/magsolution/sat/manager/events"
	"github.com/magsolution/sat/manager/models"
	"github.com/magsolution/sat/manager/permission/rbac"
	"github.com/magsolution/sat/manager/types"
	"github.com/magsolution/sat/pkg/classifier"
	"github.com/magsolution/sat/pkg/objectstorage"
	"github.com/magsolution/sat/pkg/prediction"
)

type Service interface {
	SignIn(context.Context, types.SignInRequest) (*models.User, error)
	SignUp(context.Context, types.SignUpRequest) (*models.User, error)
	ResetPassword(context.Context, uint, types.ResetPasswordRequest) error
	UpdateUser(context.Context, uint, types.UpdateUserRequest) (*models.User, error)
	GetUser(context.Context, uint) (*models.User, error)
	GetUsers(context.Context, types.GetUsersQuery) ([]models.User, int64, error)
	GetRolesForUser(context.Context, uint) ([]string, error)
	AddRoleForUser(context.Context, types.AddRoleForUserParams) (bool, error)
	DeleteRoleForUser(context.Context, types.DeleteRoleForUserParams) (bool, error)
	GetPrincipal(context.Context, uint) (*prediction.Principal, error)

	GetRoles(context.Context) []types.Role
	GetRole(context.Context, string) (*types.Role, error)

	CreateEquipment(context.Context, types.CreateEquipmentRequest) (*models.Equipment, error)
	DestroyEquipment(context.Context, uint) error
	UpdateEquipment(context.Context, uint, types.UpdateEquipmentRequest) (*models.Equipment, error)
	GetEquipment(context.Context, uint) (*models.Equipment, error)
	GetEquipments(context.Context, types.GetEquipmentsQuery) ([]models.Equipment, int64, error)

	CreateCarbonSaving(context.Context, types.CreateCarbonSavingRequest) (*models.CarbonSaving, error)
	DestroyCarbonSaving(context.Context, uint) error
	UpdateCarbonSaving(context.Context, uint, types.UpdateCarbonSavingRequest) (*models.CarbonSaving, error)
	GetCarbonSaving(context.Context, uint) (*models.CarbonSaving, error)
	GetCarbonSavings(context.Context, types.GetCarbonSavingsQuery) ([]models.CarbonSaving, int64, error)

	CreateSparePart(context.Context, types.CreateSparePartRequest) (*models.SparePart, error)
	DestroySparePart(context.Context, uint) error
	UpdateSparePart(context.Context, uint, types.UpdateSparePartRequest) (*models.SparePart, error)
	GetSparePart(context.Context, uint) (*models.SparePart, error)
	GetSpareParts(context.Context, types.GetSparePartsQuery) ([]models.SparePart, int64, error)

	CreatePersonalAccessToken(context.Context, types.CreatePersonalAccessTokenRequest) (*models.PersonalAccessToken, error)
	DestroyPersonalAccessToken(context.Context, uint) error
	UpdatePersonalAccessToken(context.Context, uint, types.UpdatePersonalAccessTokenRequest) (*models.PersonalAccessToken, error)
	GetPersonalAccessToken(context.Context, uint) (*models.PersonalAccessToken, error)
	GetPersonalAccessTokens(context.Context, types.GetPersonalAccessTokensQuery) ([]models.PersonalAccessToken, int64, error)
	ExpirePersonalAccessTokens(context.Context) (int64, error)
	GetActivePersonalAccessToken(context.Context, string) (*models.PersonalAccessToken, error)

	CreateModel(context.Context, uint, types.CreateModelRequest) (*models.Model, error)
	DestroyModel(context.Context, uint) error
	UpdateModel(context.Context, uint, types.UpdateModelRequest) (*models.Model, error)
	GetModel(context.Context, uint) (*models.Model, error)
	GetModels(context.Context, types.GetModelsQuery) ([]models.Model, int64, error)
	LoadActiveModel(context.Context) error

	CreatePrediction(context.Context, *prediction.Principal, map[string]any) (*prediction.Result, error)
}

type service struct {
	config        *config.Config
	db            *gorm.DB
	cache         *cache.Cache
	enforcer      *casbin.Enforcer
	objectStorage objectstorage.ObjectStorage
	classifiers   *classifier.Holder
	pipeline      *prediction.Pipeline
	events        events.Publisher

	// training is set while a retrain runs, retrains never overlap.
	training *atomic.Bool
}

// New returns the rest service.
func New(cfg *config.Config, database *database.Database, cache *cache.Cache, enforcer *casbin.Enforcer, objectStorage objectstorage.ObjectStorage, classifiers *classifier.Holder, publisher events.Publisher) Service {
	return &service{
		config:        cfg,
		db:            database.DB,
		cache:         cache,
		enforcer:      enforcer,
		objectStorage: objectStorage,
		classifiers:   classifiers,
		pipeline: prediction.New(classifiers, prediction.AuthorizerFunc(rbac.Allowed),
			prediction.WithThreshold(cfg.Prediction.Threshold)),
		events:   publisher,
		training: atomic.NewBool(false),
	}
}

// publish sends an update event, failures are logged and never fail the request.
func (s *service) publish(ctx context.Context, resource, action string, id uint, data any) {
	event, err := events.New(resource, action, id, data)
	if err != nil {
		logger.WithEvent(resource+"."+action, resource, id).Errorf("create event failed: %s", err.Error())
		return
	}

	if err := s.events.Publish(context.WithoutCancel(ctx), event); err != nil {
		logger.WithEvent(event.Type, resource, id).Warnf("publish event failed: %s", err.Error())
	}
}
