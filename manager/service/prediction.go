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
	"time"

	"github.com/spf13/cast"

	"github.com/magsolution/sat/internal/satcodes"
	"github.com/magsolution/sat/internal/saterrors"
	logger "github.com/magsolution/sat/internal/satlog"
	"github.com/magsolution/sat/manager/events"
	"github.com/magsolution/sat/manager/metrics"
	"github.com/magsolution/sat/manager/models"
	"github.com/magsolution/sat/manager/permission/rbac"
	"github.com/magsolution/sat/pkg/prediction"
)

// equipmentIDField optionally links a prediction to an equipment.
const equipmentIDField = "equipment_id"

func (s *service) CreatePrediction(ctx context.Context, principal *prediction.Principal, payload map[string]any) (*prediction.Result, error) {
	result, err := s.pipeline.Predict(ctx, principal, payload)
	if err != nil {
		code := satcodes.UnknownError
		if serr, ok := saterrors.As(err); ok {
			code = serr.Code
		}

		metrics.PredictionFailureCount.WithLabelValues(code.String()).Inc()
		return nil, err
	}

	modelType := ""
	if meta, ok := s.classifiers.Meta(); ok {
		modelType = meta.Type
	}
	metrics.PredictionCount.WithLabelValues(string(result.Risk), modelType).Inc()

	if v, ok := payload[equipmentIDField]; ok && v != nil {
		id, err := cast.ToUintE(v)
		if err != nil || id == 0 {
			logger.WithUser(principal.ID, principal.Role).Warnf("ignore invalid %s %v", equipmentIDField, v)
			return result, nil
		}

		s.recordEquipmentRisk(ctx, id, result)
	}

	return result, nil
}

// recordEquipmentRisk stores the latest risk on the equipment, a missing
// equipment does not fail the prediction.
func (s *service) recordEquipmentRisk(ctx context.Context, id uint, result *prediction.Result) {
	now := time.Now()
	tx := s.db.WithContext(ctx).Model(&models.Equipment{}).Where("id = ?", id).Updates(map[string]any{
		"last_risk":         string(result.Risk),
		"last_predicted_at": now,
	})
	if tx.Error != nil {
		logger.Warnf("record risk of equipment %d failed: %s", id, tx.Error.Error())
		return
	}

	if tx.RowsAffected == 0 {
		logger.Warnf("equipment %d not found, risk not recorded", id)
		return
	}

	s.invalidateEquipment(ctx, id)
	s.publish(ctx, rbac.EquipmentsObject, events.ActionUpdated, id, map[string]any{
		"last_risk":         result.Risk,
		"last_predicted_at": now,
		"probability":       result.Probability,
	})
}
