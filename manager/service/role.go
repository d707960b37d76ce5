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

	"github.com/magsolution/sat/internal/satcodes"
	"github.com/magsolution/sat/internal/saterrors"
	"github.com/magsolution/sat/manager/permission/rbac"
	"github.com/magsolution/sat/manager/types"
)

func (s *service) GetRoles(ctx context.Context) []types.Role {
	var roles []types.Role
	for _, role := range rbac.Roles() {
		roles = append(roles, makeRole(role))
	}

	return roles
}

func (s *service) GetRole(ctx context.Context, role string) (*types.Role, error) {
	if !rbac.IsRole(role) {
		return nil, saterrors.Newf(satcodes.NotFound, "role %s not found", role)
	}

	r := makeRole(role)
	return &r, nil
}

func makeRole(role string) types.Role {
	r := types.Role{Name: role}
	for _, permission := range rbac.GetPermissions(role) {
		r.Permissions = append(r.Permissions, types.Permission{
			Object: permission.Object,
			Action: permission.Action,
		})
	}

	return r
}
