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

	"golang.org/x/crypto/bcrypt"

	"github.com/magsolution/sat/internal/satcodes"
	"github.com/magsolution/sat/internal/saterrors"
	"github.com/magsolution/sat/manager/models"
	"github.com/magsolution/sat/manager/permission/rbac"
	"github.com/magsolution/sat/manager/types"
	"github.com/magsolution/sat/pkg/prediction"
)

func (s *service) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user := models.User{}
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *service) GetUsers(ctx context.Context, q types.GetUsersQuery) ([]models.User, int64, error) {
	var count int64
	users := []models.User{}
	if err := s.db.WithContext(ctx).Scopes(models.Paginate(q.Page, q.PerPage)).Where(&models.User{
		Name:  q.Name,
		Email: q.Email,
		State: q.State,
	}).Find(&users).Limit(-1).Offset(-1).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	return users, count, nil
}

func (s *service) UpdateUser(ctx context.Context, id uint, json types.UpdateUserRequest) (*models.User, error) {
	user := models.User{}
	if err := s.db.WithContext(ctx).First(&user, id).Updates(models.User{
		Email:    json.Email,
		Phone:    json.Phone,
		Avatar:   json.Avatar,
		Location: json.Location,
		BIO:      json.BIO,
		State:    json.State,
	}).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *service) SignIn(ctx context.Context, json types.SignInRequest) (*models.User, error) {
	user := models.User{}
	if err := s.db.WithContext(ctx).First(&user, models.User{
		Name: json.Name,
	}).Error; err != nil {
		return nil, err
	}

	if user.State != models.UserStateEnabled {
		return nil, saterrors.Newf(satcodes.Unauthorized, "user %s is disabled", user.Name)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.EncryptedPassword), []byte(json.Password)); err != nil {
		return nil, saterrors.Wrap(satcodes.Unauthorized, err, "invalid password")
	}

	return &user, nil
}

func (s *service) ResetPassword(ctx context.Context, id uint, json types.ResetPasswordRequest) error {
	user := models.User{}
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.EncryptedPassword), []byte(json.OldPassword)); err != nil {
		return saterrors.Wrap(satcodes.Unauthorized, err, "invalid password")
	}

	encryptedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(json.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).First(&user, id).Updates(models.User{
		EncryptedPassword: string(encryptedPasswordBytes),
	}).Error; err != nil {
		return err
	}

	return nil
}

func (s *service) SignUp(ctx context.Context, json types.SignUpRequest) (*models.User, error) {
	encryptedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(json.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		EncryptedPassword: string(encryptedPasswordBytes),
		Name:              json.Name,
		Email:             json.Email,
		Phone:             json.Phone,
		Avatar:            json.Avatar,
		Location:          json.Location,
		BIO:               json.BIO,
		State:             models.UserStateEnabled,
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}

	if _, err := s.enforcer.AddRoleForUser(rbac.Subject(user.ID), rbac.RoleGuest); err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *service) GetRolesForUser(ctx context.Context, id uint) ([]string, error) {
	return s.enforcer.GetRolesForUser(rbac.Subject(id))
}

func (s *service) AddRoleForUser(ctx context.Context, json types.AddRoleForUserParams) (bool, error) {
	if !rbac.IsRole(json.Role) {
		return false, saterrors.Newf(satcodes.BadRequest, "unknown role %s", json.Role)
	}

	if _, err := s.GetUser(ctx, json.ID); err != nil {
		return false, err
	}

	return s.enforcer.AddRoleForUser(rbac.Subject(json.ID), json.Role)
}

func (s *service) DeleteRoleForUser(ctx context.Context, json types.DeleteRoleForUserParams) (bool, error) {
	return s.enforcer.DeleteRoleForUser(rbac.Subject(json.ID), json.Role)
}

// GetPrincipal resolves an authenticated user id to the caller of a prediction.
func (s *service) GetPrincipal(ctx context.Context, id uint) (*prediction.Principal, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, saterrors.Wrap(satcodes.Unauthorized, err, "unknown user")
	}

	if user.State != models.UserStateEnabled {
		return nil, saterrors.Newf(satcodes.Unauthorized, "user %s is disabled", user.Name)
	}

	roles, err := s.enforcer.GetRolesForUser(rbac.Subject(id))
	if err != nil {
		return nil, err
	}

	return &prediction.Principal{
		ID:   user.ID,
		Name: user.Name,
		Role: rbac.PrimaryRole(roles),
	}, nil
}
