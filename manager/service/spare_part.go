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

	"github.com/magsolution/sat/manager/events"
	"github.com/magsolution/sat/manager/models"
	"github.com/magsolution/sat/manager/permission/rbac"
	"github.com/magsolution/sat/manager/types"
)

func (s *service) CreateSparePart(ctx context.Context, json types.CreateSparePartRequest) (*models.SparePart, error) {
	if json.EquipmentID != nil {
		if _, err := s.GetEquipment(ctx, *json.EquipmentID); err != nil {
			return nil, err
		}
	}

	sparePart := models.SparePart{
		Name:        json.Name,
		Quantity:    json.Quantity,
		BIO:         json.BIO,
		EquipmentID: json.EquipmentID,
	}

	if err := s.db.WithContext(ctx).Create(&sparePart).Error; err != nil {
		return nil, err
	}

	s.publish(ctx, rbac.SparePartsObject, events.ActionCreated, sparePart.ID, sparePart)
	return &sparePart, nil
}

func (s *service) DestroySparePart(ctx context.Context, id uint) error {
	sparePart := models.SparePart{}
	if err := s.db.WithContext(ctx).First(&sparePart, id).Error; err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Unscoped().Delete(&models.SparePart{}, id).Error; err != nil {
		return err
	}

	s.publish(ctx, rbac.SparePartsObject, events.ActionDeleted, id, nil)
	return nil
}

func (s *service) UpdateSparePart(ctx context.Context, id uint, json types.UpdateSparePartRequest) (*models.SparePart, error) {
	sparePart := models.SparePart{}
	if err := s.db.WithContext(ctx).First(&sparePart, id).Error; err != nil {
		return nil, err
	}

	// A stock of zero is valid, so the quantity is written explicitly.
	values := map[string]any{}
	if json.Name != "" {
		values["name"] = json.Name
	}

	if json.Quantity != nil {
		values["quantity"] = *json.Quantity
	}

	if json.BIO != "" {
		values["bio"] = json.BIO
	}

	if json.EquipmentID != nil {
		if _, err := s.GetEquipment(ctx, *json.EquipmentID); err != nil {
			return nil, err
		}

		values["equipment_id"] = *json.EquipmentID
	}

	if err := s.db.WithContext(ctx).Model(&sparePart).Updates(values).Error; err != nil {
		return nil, err
	}

	s.publish(ctx, rbac.SparePartsObject, events.ActionUpdated, sparePart.ID, sparePart)
	return &sparePart, nil
}

func (s *service) GetSparePart(ctx context.Context, id uint) (*models.SparePart, error) {
	sparePart := models.SparePart{}
	if err := s.db.WithContext(ctx).First(&sparePart, id).Error; err != nil {
		return nil, err
	}

	return &sparePart, nil
}

func (s *service) GetSpareParts(ctx context.Context, q types.GetSparePartsQuery) ([]models.SparePart, int64, error) {
	var count int64
	query := s.db.WithContext(ctx).Model(&models.SparePart{}).Where(&models.SparePart{
		Name: q.Name,
	})

	if q.EquipmentID != 0 {
		query = query.Where("equipment_id = ?", q.EquipmentID)
	}

	spareParts := []models.SparePart{}
	if err := query.Scopes(models.Paginate(q.Page, q.PerPage)).Find(&spareParts).Limit(-1).Offset(-1).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	return spareParts, count, nil
}
