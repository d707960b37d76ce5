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

func (s *service) CreateCarbonSaving(ctx context.Context, json types.CreateCarbonSavingRequest) (*models.CarbonSaving, error) {
	if _, err := s.GetEquipment(ctx, json.EquipmentID); err != nil {
		return nil, err
	}

	carbonSaving := models.CarbonSaving{
		EquipmentID: json.EquipmentID,
		Period:      json.Period,
		KgCO2:       json.KgCO2,
		Description: json.Description,
	}

	if err := s.db.WithContext(ctx).Create(&carbonSaving).Error; err != nil {
		return nil, err
	}

	s.publish(ctx, rbac.CarbonSavingsObject, events.ActionCreated, carbonSaving.ID, carbonSaving)
	return &carbonSaving, nil
}

func (s *service) DestroyCarbonSaving(ctx context.Context, id uint) error {
	carbonSaving := models.CarbonSaving{}
	if err := s.db.WithContext(ctx).First(&carbonSaving, id).Error; err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Unscoped().Delete(&models.CarbonSaving{}, id).Error; err != nil {
		return err
	}

	s.publish(ctx, rbac.CarbonSavingsObject, events.ActionDeleted, id, nil)
	return nil
}

func (s *service) UpdateCarbonSaving(ctx context.Context, id uint, json types.UpdateCarbonSavingRequest) (*models.CarbonSaving, error) {
	carbonSaving := models.CarbonSaving{}
	if err := s.db.WithContext(ctx).First(&carbonSaving, id).Error; err != nil {
		return nil, err
	}

	// Zero is a valid amount, so the amount is written explicitly.
	values := map[string]any{}
	if json.Period != "" {
		values["period"] = json.Period
	}

	if json.KgCO2 != nil {
		values["kg_co2"] = *json.KgCO2
	}

	if json.Description != "" {
		values["description"] = json.Description
	}

	if err := s.db.WithContext(ctx).Model(&carbonSaving).Updates(values).Error; err != nil {
		return nil, err
	}

	s.publish(ctx, rbac.CarbonSavingsObject, events.ActionUpdated, carbonSaving.ID, carbonSaving)
	return &carbonSaving, nil
}

func (s *service) GetCarbonSaving(ctx context.Context, id uint) (*models.CarbonSaving, error) {
	carbonSaving := models.CarbonSaving{}
	if err := s.db.WithContext(ctx).Preload("Equipment").First(&carbonSaving, id).Error; err != nil {
		return nil, err
	}

	return &carbonSaving, nil
}

func (s *service) GetCarbonSavings(ctx context.Context, q types.GetCarbonSavingsQuery) ([]models.CarbonSaving, int64, error) {
	var count int64
	carbonSavings := []models.CarbonSaving{}
	if err := s.db.WithContext(ctx).Scopes(models.Paginate(q.Page, q.PerPage)).Where(&models.CarbonSaving{
		EquipmentID: q.EquipmentID,
		Period:      q.Period,
	}).Find(&carbonSavings).Limit(-1).Offset(-1).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	return carbonSavings, count, nil
}
