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
	"bytes"
	"context"
	"errors"
	"os"
	"time"

	"gorm.io/gorm"

	"github.com/magsolution/sat/internal/satcodes"
	"github.com/magsolution/sat/internal/saterrors"
	logger "github.com/magsolution/sat/internal/satlog"
	"github.com/magsolution/sat/manager/events"
	"github.com/magsolution/sat/manager/metrics"
	"github.com/magsolution/sat/manager/models"
	"github.com/magsolution/sat/manager/permission/rbac"
	"github.com/magsolution/sat/manager/types"
	"github.com/magsolution/sat/pkg/classifier"
	"github.com/magsolution/sat/pkg/digest"
	"github.com/magsolution/sat/pkg/objectstorage"
	"github.com/magsolution/sat/pkg/training"
)

// modelVersionLayout formats the version of a retrained model.
const modelVersionLayout = "20060102150405.000000"

// CreateModel retrains a classifier, stores its artifact and activates it.
func (s *service) CreateModel(ctx context.Context, userID uint, json types.CreateModelRequest) (*models.Model, error) {
	if !s.training.CAS(false, true) {
		return nil, saterrors.New(satcodes.TrainingInProgress, "a model is already being trained")
	}
	defer s.training.Store(false)

	opts := s.config.Model.Training
	if json.Type != "" {
		opts.Type = json.Type
	}

	if json.Samples != 0 {
		opts.Samples = json.Samples
	}

	if json.Seed != 0 {
		opts.Seed = json.Seed
	}

	if json.FailureRate != 0 {
		opts.FailureRate = json.FailureRate
	}

	log := logger.WithUser(userID, "").With("modelType", opts.Type)
	records := training.Generate(opts.Samples, opts.Seed, opts.FailureRate)
	c, report, err := training.Train(ctx, records, opts)
	if err != nil {
		metrics.TrainingFailureCount.WithLabelValues(opts.Type).Inc()
		log.Errorf("train model failed: %s", err.Error())
		return nil, saterrors.Wrap(satcodes.TrainingFailed, err, "train model")
	}

	artifact, err := classifier.Encode(c)
	if err != nil {
		metrics.TrainingFailureCount.WithLabelValues(opts.Type).Inc()
		return nil, saterrors.Wrap(satcodes.ModelArtifactError, err, "encode model artifact")
	}

	version := time.Now().UTC().Format(modelVersionLayout)
	model := models.Model{
		Name:       json.Name,
		Type:       c.Type(),
		BIO:        json.BIO,
		Version:    version,
		State:      models.ModelStateInactive,
		Evaluation: report.Evaluation(),
		ObjectKey:  types.MakeObjectKeyOfModelArtifact(c.Type(), version),
		Digest:     digest.FromBytes(artifact),
		UserID:     userID,
	}

	if model.Name == "" {
		model.Name = c.Type()
	}

	if err := s.putModelArtifact(ctx, model.ObjectKey, model.Digest, artifact); err != nil {
		metrics.TrainingFailureCount.WithLabelValues(opts.Type).Inc()
		return nil, err
	}

	if err := s.db.WithContext(ctx).Create(&model).Error; err != nil {
		metrics.TrainingFailureCount.WithLabelValues(opts.Type).Inc()
		s.deleteModelArtifact(ctx, &model)
		return nil, err
	}

	if err := s.activateModel(ctx, &model, c); err != nil {
		metrics.TrainingFailureCount.WithLabelValues(opts.Type).Inc()

		// The artifact is only dropped with its row, a kept row must stay loadable.
		if derr := s.db.WithContext(ctx).Unscoped().Delete(&models.Model{}, model.ID).Error; derr != nil {
			log.Errorf("delete model %d failed: %s", model.ID, derr.Error())
			return nil, err
		}

		s.deleteModelArtifact(ctx, &model)
		return nil, err
	}

	metrics.TrainingCount.WithLabelValues(model.Type).Inc()
	logger.WithModel(model.ID, model.Type, model.Version).Infof("model retrained with accuracy %.4f", report.Accuracy)
	s.publish(ctx, rbac.ModelsObject, events.ActionRetrained, model.ID, model)
	return &model, nil
}

func (s *service) DestroyModel(ctx context.Context, id uint) error {
	model := models.Model{}
	if err := s.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return err
	}

	if model.State == models.ModelStateActive {
		return saterrors.Newf(satcodes.Conflict, "model %d is active", id)
	}

	if err := s.db.WithContext(ctx).Unscoped().Delete(&models.Model{}, id).Error; err != nil {
		return err
	}

	s.deleteModelArtifact(ctx, &model)
	s.publish(ctx, rbac.ModelsObject, events.ActionDeleted, id, nil)
	return nil
}

// UpdateModel updates the biography, setting state to active swaps the serving classifier.
func (s *service) UpdateModel(ctx context.Context, id uint, json types.UpdateModelRequest) (*models.Model, error) {
	model := models.Model{}
	if err := s.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return nil, err
	}

	if json.BIO != "" {
		if err := s.db.WithContext(ctx).Model(&model).Update("bio", json.BIO).Error; err != nil {
			return nil, err
		}
	}

	switch json.State {
	case models.ModelStateActive:
		if model.State == models.ModelStateActive {
			break
		}

		c, err := s.getModelArtifact(ctx, &model)
		if err != nil {
			return nil, err
		}

		if err := s.activateModel(ctx, &model, c); err != nil {
			return nil, err
		}

		s.publish(ctx, rbac.ModelsObject, events.ActionActivated, model.ID, model)
		return &model, nil
	case models.ModelStateInactive:
		if model.State != models.ModelStateInactive {
			if err := s.db.WithContext(ctx).Model(&model).Update("state", models.ModelStateInactive).Error; err != nil {
				return nil, err
			}

			if meta, ok := s.classifiers.Meta(); ok && meta.ModelID == model.ID {
				s.classifiers.Clear()
				metrics.ActiveModelAccuracyGauge.Reset()
				logger.WithModel(model.ID, model.Type, model.Version).Warnf("active model deactivated, predictions are unavailable")
			}
		}
	}

	s.publish(ctx, rbac.ModelsObject, events.ActionUpdated, model.ID, model)
	return &model, nil
}

func (s *service) GetModel(ctx context.Context, id uint) (*models.Model, error) {
	model := models.Model{}
	if err := s.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return nil, err
	}

	return &model, nil
}

func (s *service) GetModels(ctx context.Context, q types.GetModelsQuery) ([]models.Model, int64, error) {
	var count int64
	ms := []models.Model{}
	if err := s.db.WithContext(ctx).Scopes(models.Paginate(q.Page, q.PerPage)).Where(&models.Model{
		Name:    q.Name,
		Type:    q.Type,
		Version: q.Version,
		State:   q.State,
	}).Order("id DESC").Find(&ms).Limit(-1).Offset(-1).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	return ms, count, nil
}

// LoadActiveModel loads the active model version, then the bootstrap artifact.
// Starting without a classifier is not an error, predictions answer
// ModelUnavailable until a model is trained or activated.
func (s *service) LoadActiveModel(ctx context.Context) error {
	model := models.Model{}
	err := s.db.WithContext(ctx).Where(&models.Model{State: models.ModelStateActive}).Order("id DESC").First(&model).Error
	switch {
	case err == nil:
		c, err := s.getModelArtifact(ctx, &model)
		if err != nil {
			return err
		}

		s.storeClassifier(&model, c)
		logger.WithModel(model.ID, model.Type, model.Version).Info("active model loaded")
		return nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}

	if s.config.Model.BootstrapArtifact == "" {
		logger.Warn("no active model and no bootstrap artifact, predictions are unavailable")
		return nil
	}

	f, err := os.Open(s.config.Model.BootstrapArtifact)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warnf("bootstrap artifact %s not found, predictions are unavailable", s.config.Model.BootstrapArtifact)
			return nil
		}

		return saterrors.Wrap(satcodes.ModelArtifactError, err, "open bootstrap artifact")
	}
	defer f.Close()

	c, err := classifier.Load(s.config.Model.BootstrapType, f)
	if err != nil {
		return saterrors.Wrap(satcodes.ModelArtifactError, err, "load bootstrap artifact")
	}

	s.classifiers.Store(c, classifier.Meta{Type: c.Type(), Version: "bootstrap"})
	logger.Infof("bootstrap model %s loaded from %s", c.Type(), s.config.Model.BootstrapArtifact)
	return nil
}

// activateModel marks model active, deactivates every other version and swaps the classifier.
func (s *service) activateModel(ctx context.Context, model *models.Model, c classifier.Classifier) error {
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Model{}).Where("id <> ? AND state = ?", model.ID, models.ModelStateActive).
			Update("state", models.ModelStateInactive).Error; err != nil {
			return err
		}

		return tx.Model(model).Update("state", models.ModelStateActive).Error
	}); err != nil {
		return err
	}

	s.storeClassifier(model, c)
	return nil
}

func (s *service) storeClassifier(model *models.Model, c classifier.Classifier) {
	s.classifiers.Store(c, classifier.Meta{
		ModelID: model.ID,
		Version: model.Version,
		Type:    model.Type,
	})

	if accuracy, ok := model.Evaluation["accuracy"].(float64); ok {
		metrics.SetActiveModel(model.Type, model.Version, accuracy)
	}
}

func (s *service) putModelArtifact(ctx context.Context, objectKey, objectDigest string, artifact []byte) error {
	if err := objectstorage.PutArtifact(ctx, s.objectStorage, s.config.Model.Bucket, objectKey, objectDigest, artifact); err != nil {
		return saterrors.Wrap(satcodes.ModelArtifactError, err, "put model artifact")
	}

	return nil
}

// deleteModelArtifact removes the artifact of model, failures are only logged.
func (s *service) deleteModelArtifact(ctx context.Context, model *models.Model) {
	if err := s.objectStorage.DeleteObject(context.WithoutCancel(ctx), s.config.Model.Bucket, model.ObjectKey); err != nil {
		logger.WithModel(model.ID, model.Type, model.Version).Warnf("delete model artifact %s failed: %s", model.ObjectKey, err.Error())
	}
}

func (s *service) getModelArtifact(ctx context.Context, model *models.Model) (classifier.Classifier, error) {
	artifact, err := objectstorage.GetArtifact(ctx, s.objectStorage, s.config.Model.Bucket, model.ObjectKey, model.Digest)
	if errors.Is(err, objectstorage.ErrObjectNotFound) {
		return nil, saterrors.Wrap(satcodes.ModelArtifactError, err, "model artifact missing")
	}
	if err != nil {
		return nil, saterrors.Wrap(satcodes.ModelArtifactError, err, "get model artifact")
	}

	c, err := classifier.Load(model.Type, bytes.NewReader(artifact))
	if err != nil {
		return nil, saterrors.Wrap(satcodes.ModelArtifactError, err, "load model artifact")
	}

	return c, nil
}
