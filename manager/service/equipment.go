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

package service

import (
	"context"

	"github.com/go-redis/cache/v8"

	logger "github.com/magsolution/sat/internal/satlog"
	managercache "github.com/magsolution/sat/manager/cache"
	"github.com/magsolution/sat/manager/events"
	"github.com/magsolution/sat/manager/models"
	"github.com/magsolution/sat/manager/permission/rbac"
	"github.com/magsolution/sat/manager/types"
)

func (s *service) CreateEquipment(ctx context.Context, json types.CreateEquipmentRequest) (*models.Equipment, error) {
	equipment := models.Equipment{
		Name:     json.Name,
		Serial:   json.Serial,
		Type:     json.Type,
		Location: json.Location,
		State:    json.State,
		BIO:      json.BIO,
	}

	if equipment.State == "" {
		equipment.State = models.EquipmentStateOperational
	}

	if err := s.db.WithContext(ctx).Create(&equipment).Error; err != nil {
		return nil, err
	}

	s.publish(ctx, rbac.EquipmentsObject, events.ActionCreated, equipment.ID, equipment)
	return &equipment, nil
}

func (s *service) DestroyEquipment(ctx context.Context, id uint) error {
	equipment := models.Equipment{}
	if err := s.db.WithContext(ctx).First(&equipment, id).Error; err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Unscoped().Delete(&models.Equipment{}, id).Error; err != nil {
		return err
	}

	s.invalidateEquipment(ctx, id)
	s.publish(ctx, rbac.EquipmentsObject, events.ActionDeleted, id, nil)
	return nil
}

func (s *service) UpdateEquipment(ctx context.Context, id uint, json types.UpdateEquipmentRequest) (*models.Equipment, error) {
	equipment := models.Equipment{}
	if err := s.db.WithContext(ctx).First(&equipment, id).Updates(models.Equipment{
		Name:     json.Name,
		Type:     json.Type,
		Location: json.Location,
		State:    json.State,
		BIO:      json.BIO,
	}).Error; err != nil {
		return nil, err
	}

	s.invalidateEquipment(ctx, id)
	s.publish(ctx, rbac.EquipmentsObject, events.ActionUpdated, equipment.ID, equipment)
	return &equipment, nil
}

func (s *service) GetEquipment(ctx context.Context, id uint) (*models.Equipment, error) {
	equipment := models.Equipment{}
	if err := s.cache.Once(&cache.Item{
		Ctx:   ctx,
		Key:   managercache.MakeEquipmentCacheKey(id),
		Value: &equipment,
		TTL:   s.cache.TTL,
		Do: func(*cache.Item) (any, error) {
			e := models.Equipment{}
			if err := s.db.WithContext(ctx).First(&e, id).Error; err != nil {
				return nil, err
			}

			return &e, nil
		},
	}); err != nil {
		return nil, err
	}

	return &equipment, nil
}

func (s *service) GetEquipments(ctx context.Context, q types.GetEquipmentsQuery) ([]models.Equipment, int64, error) {
	var count int64
	equipments := []models.Equipment{}
	if err := s.db.WithContext(ctx).Scopes(models.Paginate(q.Page, q.PerPage)).Where(&models.Equipment{
		Name:     q.Name,
		Type:     q.Type,
		Location: q.Location,
		State:    q.State,
	}).Find(&equipments).Limit(-1).Offset(-1).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	return equipments, count, nil
}

func (s *service) invalidateEquipment(ctx context.Context, id uint) {
	if err := s.cache.Delete(ctx, managercache.MakeEquipmentCacheKey(id)); err != nil && err != cache.ErrCacheMiss {
		logger.Warnf("delete equipment %d cache failed: %s", id, err.Error())
	}
}
