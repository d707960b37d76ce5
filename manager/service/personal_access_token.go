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
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/magsolution/sat/manager/models"
	"github.com/magsolution/sat/manager/types"
)

func (s *service) CreatePersonalAccessToken(ctx context.Context, json types.CreatePersonalAccessTokenRequest) (*models.PersonalAccessToken, error) {
	if _, err := s.GetUser(ctx, json.UserID); err != nil {
		return nil, err
	}

	token, err := generatePersonalAccessToken()
	if err != nil {
		return nil, err
	}

	personalAccessToken := models.PersonalAccessToken{
		Name:      json.Name,
		BIO:       json.BIO,
		Token:     token,
		Scopes:    json.Scopes,
		State:     models.PersonalAccessTokenStateActive,
		ExpiredAt: json.ExpiredAt,
		UserID:    json.UserID,
	}

	if personalAccessToken.Scopes == nil {
		personalAccessToken.Scopes = models.Array{}
	}

	if err := s.db.WithContext(ctx).Create(&personalAccessToken).Error; err != nil {
		return nil, err
	}

	return &personalAccessToken, nil
}

func (s *service) DestroyPersonalAccessToken(ctx context.Context, id uint) error {
	personalAccessToken := models.PersonalAccessToken{}
	if err := s.db.WithContext(ctx).First(&personalAccessToken, id).Error; err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Unscoped().Delete(&models.PersonalAccessToken{}, id).Error; err != nil {
		return err
	}

	return nil
}

func (s *service) UpdatePersonalAccessToken(ctx context.Context, id uint, json types.UpdatePersonalAccessTokenRequest) (*models.PersonalAccessToken, error) {
	personalAccessToken := models.PersonalAccessToken{}
	if err := s.db.WithContext(ctx).First(&personalAccessToken, id).Updates(models.PersonalAccessToken{
		BIO:       json.BIO,
		Scopes:    json.Scopes,
		State:     json.State,
		ExpiredAt: json.ExpiredAt,
		UserID:    json.UserID,
	}).Error; err != nil {
		return nil, err
	}

	return &personalAccessToken, nil
}

func (s *service) GetPersonalAccessToken(ctx context.Context, id uint) (*models.PersonalAccessToken, error) {
	personalAccessToken := models.PersonalAccessToken{}
	if err := s.db.WithContext(ctx).Preload("User").First(&personalAccessToken, id).Error; err != nil {
		return nil, err
	}

	return &personalAccessToken, nil
}

func (s *service) GetPersonalAccessTokens(ctx context.Context, q types.GetPersonalAccessTokensQuery) ([]models.PersonalAccessToken, int64, error) {
	var count int64
	personalAccessTokens := []models.PersonalAccessToken{}
	if err := s.db.WithContext(ctx).Scopes(models.Paginate(q.Page, q.PerPage)).Where(&models.PersonalAccessToken{
		State:  q.State,
		UserID: q.UserID,
	}).Preload("User").Find(&personalAccessTokens).Limit(-1).Offset(-1).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	return personalAccessTokens, count, nil
}

// GetActivePersonalAccessToken returns the active token with the given secret
// and its owner, expiry is left to the caller.
func (s *service) GetActivePersonalAccessToken(ctx context.Context, token string) (*models.PersonalAccessToken, error) {
	personalAccessToken := models.PersonalAccessToken{}
	if err := s.db.WithContext(ctx).Preload("User").Where("token = ? AND state = ?", token, models.PersonalAccessTokenStateActive).
		First(&personalAccessToken).Error; err != nil {
		return nil, err
	}

	return &personalAccessToken, nil
}

// generatePersonalAccessToken returns a random uuid followed by 16 random bytes in hex.
func generatePersonalAccessToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return strings.ReplaceAll(uuid.NewString(), "-", "") + hex.EncodeToString(b), nil
}

// ExpirePersonalAccessTokens marks active tokens past their expiry inactive.
func (s *service) ExpirePersonalAccessTokens(ctx context.Context) (int64, error) {
	tx := s.db.WithContext(ctx).Model(&models.PersonalAccessToken{}).
		Where("state = ? AND expired_at < ?", models.PersonalAccessTokenStateActive, time.Now()).
		Update("state", models.PersonalAccessTokenStateInactive)
	if tx.Error != nil {
		return 0, tx.Error
	}

	return tx.RowsAffected, nil
}
