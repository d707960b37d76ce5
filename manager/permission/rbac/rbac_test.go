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

package rbac

import (
	"testing"

	"github.com/casbin/casbin/v2"
	"github.com/stretchr/testify/assert"
)

func TestGetAPIGroupName(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		expect func(t *testing.T, data string, err error)
	}{
		{
			name: "path is /api/v1/users",
			path: "/api/v1/users",
			expect: func(t *testing.T, data string, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal("users", data)
			},
		},
		{
			name: "path is /api/v1/carbon-savings/1",
			path: "/api/v1/carbon-savings/1",
			expect: func(t *testing.T, data string, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal("carbon-savings", data)
			},
		},
		{
			name: "path is /oapi/v1/predictions",
			path: "/oapi/v1/predictions",
			expect: func(t *testing.T, data string, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal("predictions", data)
			},
		},
		{
			name: "path is /api/user",
			path: "/api/user",
			expect: func(t *testing.T, data string, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "cannot find group name")
			},
		},
		{
			name: "path is empty",
			path: "",
			expect: func(t *testing.T, data string, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "cannot find group name")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			name, err := GetAPIGroupName(tc.path)
			tc.expect(t, name, err)
		})
	}
}

func TestHTTPMethodToAction(t *testing.T) {
	tests := []struct {
		method         string
		expectedAction string
	}{
		{method: "GET", expectedAction: ReadAction},
		{method: "POST", expectedAction: CreateAction},
		{method: "PATCH", expectedAction: UpdateAction},
		{method: "PUT", expectedAction: UpdateAction},
		{method: "DELETE", expectedAction: DeleteAction},
		{method: "UNKNOWN", expectedAction: ReadAction},
	}

	for _, tt := range tests {
		action := HTTPMethodToAction(tt.method)
		if action != tt.expectedAction {
			t.Errorf("HTTPMethodToAction(%v) = %v, want %v", tt.method, action, tt.expectedAction)
		}
	}
}

func TestAllowed(t *testing.T) {
	tests := []struct {
		role    string
		object  string
		action  string
		allowed bool
	}{
		{role: RoleAdmin, object: PredictionsObject, action: CreateAction, allowed: true},
		{role: RoleAdmin, object: UsersObject, action: DeleteAction, allowed: true},
		{role: RoleTechnician, object: PredictionsObject, action: CreateAction, allowed: true},
		{role: RoleTechnician, object: EquipmentsObject, action: DeleteAction, allowed: true},
		{role: RoleTechnician, object: CarbonSavingsObject, action: UpdateAction, allowed: false},
		{role: RoleOperator, object: PredictionsObject, action: CreateAction, allowed: false},
		{role: RoleOperator, object: CarbonSavingsObject, action: CreateAction, allowed: true},
		{role: RoleGuest, object: PredictionsObject, action: CreateAction, allowed: false},
		{role: RoleGuest, object: EquipmentsObject, action: ReadAction, allowed: true},
		{role: "", object: EquipmentsObject, action: ReadAction, allowed: false},
		{role: "root", object: PredictionsObject, action: CreateAction, allowed: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, Allowed(tt.role, tt.object, tt.action), "%s %s %s", tt.role, tt.object, tt.action)
	}
}

func TestPrimaryRole(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(RoleAdmin, PrimaryRole([]string{RoleGuest, RoleAdmin}))
	assert.Equal(RoleTechnician, PrimaryRole([]string{RoleOperator, RoleTechnician}))
	assert.Equal("", PrimaryRole([]string{"root"}))
	assert.Equal("", PrimaryRole(nil))
}

func TestSeedPolicies(t *testing.T) {
	assert := assert.New(t)
	m, err := NewModel()
	assert.NoError(err)

	e, err := casbin.NewEnforcer(m)
	assert.NoError(err)
	assert.NoError(SeedPolicies(e))
	assert.NoError(SeedPolicies(e))

	_, err = e.AddRoleForUser(Subject(1), RoleTechnician)
	assert.NoError(err)
	_, err = e.AddRoleForUser(Subject(2), RoleAdmin)
	assert.NoError(err)

	ok, err := e.Enforce(Subject(1), PredictionsObject, CreateAction)
	assert.NoError(err)
	assert.True(ok)

	ok, err = e.Enforce(Subject(1), UsersObject, ReadAction)
	assert.NoError(err)
	assert.False(ok)

	ok, err = e.Enforce(Subject(2), UsersObject, DeleteAction)
	assert.NoError(err)
	assert.True(ok)

	ok, err = e.Enforce(Subject(3), EquipmentsObject, ReadAction)
	assert.NoError(err)
	assert.False(ok)

	assert.Len(e.GetFilteredPolicy(0, RoleTechnician), len(GetPermissions(RoleTechnician)))
}

func TestScopeAllowed(t *testing.T) {
	tests := []struct {
		name   string
		scopes []string
		object string
		expect bool
	}{
		{name: "empty scopes grant predictions", scopes: nil, object: PredictionsObject, expect: true},
		{name: "empty scopes grant equipments", scopes: []string{}, object: EquipmentsObject, expect: true},
		{name: "matching scope", scopes: []string{PredictionsObject}, object: PredictionsObject, expect: true},
		{name: "other scope", scopes: []string{EquipmentsObject}, object: PredictionsObject, expect: false},
		{name: "non open api object", scopes: nil, object: UsersObject, expect: false},
		{name: "scoped to non open api object", scopes: []string{UsersObject}, object: UsersObject, expect: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, ScopeAllowed(tc.scopes, tc.object))
		})
	}
}
