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
	"errors"
	"net/http"
	"regexp"
	"strconv"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

// Syntax for models see https://casbin.org/docs/en/syntax-for-models
const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

const (
	// RoleAdmin manages every resource.
	RoleAdmin = "admin"

	// RoleTechnician maintains equipment and requests predictions.
	RoleTechnician = "technician"

	// RoleOperator is the operations staff, it records carbon savings.
	RoleOperator = "operator"

	// RoleGuest only reads records, signup assigns it by default.
	RoleGuest = "guest"
)

const (
	ReadAction   = "read"
	CreateAction = "create"
	UpdateAction = "update"
	DeleteAction = "delete"
	AllAction    = "*"
)

const (
	AllObjects                 = "*"
	UsersObject                = "users"
	RolesObject                = "roles"
	EquipmentsObject           = "equipments"
	CarbonSavingsObject        = "carbon-savings"
	SparePartsObject           = "spare-parts"
	PredictionsObject          = "predictions"
	ModelsObject               = "models"
	PersonalAccessTokensObject = "personal-access-tokens"
	EventsObject               = "events"
)

var apiGroupRegexp = regexp.MustCompile(`^/o?api/v[0-9]+/([-_a-zA-Z]+)`)

// OpenAPIObjects are the objects a personal access token can be scoped to.
var OpenAPIObjects = []string{PredictionsObject, EquipmentsObject}

// ScopeAllowed reports whether a token with scopes may reach object. An empty
// scope list grants every open api object.
func ScopeAllowed(scopes []string, object string) bool {
	if !isOpenAPIObject(object) {
		return false
	}

	if len(scopes) == 0 {
		return true
	}

	for _, scope := range scopes {
		if scope == object {
			return true
		}
	}

	return false
}

func isOpenAPIObject(object string) bool {
	for _, o := range OpenAPIObjects {
		if o == object {
			return true
		}
	}

	return false
}

type Permission struct {
	Object string `json:"object"`
	Action string `json:"action"`
}

// policies is the static policy table, roles are listed from the most to the least privileged.
var policies = []struct {
	role        string
	permissions []Permission
}{
	{
		role: RoleAdmin,
		permissions: []Permission{
			{Object: AllObjects, Action: AllAction},
		},
	},
	{
		role: RoleTechnician,
		permissions: []Permission{
			{Object: EquipmentsObject, Action: AllAction},
			{Object: SparePartsObject, Action: AllAction},
			{Object: CarbonSavingsObject, Action: ReadAction},
			{Object: PredictionsObject, Action: CreateAction},
			{Object: ModelsObject, Action: ReadAction},
			{Object: EventsObject, Action: ReadAction},
		},
	},
	{
		role: RoleOperator,
		permissions: []Permission{
			{Object: EquipmentsObject, Action: ReadAction},
			{Object: SparePartsObject, Action: ReadAction},
			{Object: CarbonSavingsObject, Action: AllAction},
			{Object: ModelsObject, Action: ReadAction},
			{Object: EventsObject, Action: ReadAction},
		},
	},
	{
		role: RoleGuest,
		permissions: []Permission{
			{Object: EquipmentsObject, Action: ReadAction},
			{Object: SparePartsObject, Action: ReadAction},
			{Object: CarbonSavingsObject, Action: ReadAction},
		},
	},
}

// NewEnforcer returns an enforcer whose role assignments persist in the database
// and whose policies are reset to the static policy table.
func NewEnforcer(gdb *gorm.DB) (*casbin.Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(gdb)
	if err != nil {
		return nil, err
	}

	m, err := NewModel()
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, err
	}

	if err := SeedPolicies(enforcer); err != nil {
		return nil, err
	}

	return enforcer, nil
}

// NewModel returns the casbin model of role based access control.
func NewModel() (model.Model, error) {
	return model.NewModelFromString(modelText)
}

// SeedPolicies replaces the policies of every known role with the static policy table.
func SeedPolicies(e *casbin.Enforcer) error {
	for _, policy := range policies {
		if _, err := e.RemoveFilteredPolicy(0, policy.role); err != nil {
			return err
		}

		var rules [][]string
		for _, permission := range policy.permissions {
			rules = append(rules, []string{policy.role, permission.Object, permission.Action})
		}

		if _, err := e.AddPolicies(rules); err != nil {
			return err
		}
	}

	return nil
}

// Allowed answers from the static policy table without touching the enforcer.
func Allowed(role, object, action string) bool {
	for _, policy := range policies {
		if policy.role != role {
			continue
		}

		for _, permission := range policy.permissions {
			if permission.Object != AllObjects && permission.Object != object {
				continue
			}

			if permission.Action == AllAction || permission.Action == action {
				return true
			}
		}
	}

	return false
}

// Roles returns the known roles.
func Roles() []string {
	var roles []string
	for _, policy := range policies {
		roles = append(roles, policy.role)
	}

	return roles
}

// IsRole reports whether the role is known.
func IsRole(role string) bool {
	for _, policy := range policies {
		if policy.role == role {
			return true
		}
	}

	return false
}

// GetPermissions returns the permissions of a role.
func GetPermissions(role string) []Permission {
	for _, policy := range policies {
		if policy.role == role {
			return append([]Permission(nil), policy.permissions...)
		}
	}

	return nil
}

// PrimaryRole returns the most privileged known role, empty when there is none.
func PrimaryRole(roles []string) string {
	for _, policy := range policies {
		for _, role := range roles {
			if role == policy.role {
				return role
			}
		}
	}

	return ""
}

// Subject returns the casbin subject of a user.
func Subject(userID uint) string {
	return strconv.FormatUint(uint64(userID), 10)
}

func GetAPIGroupName(path string) (string, error) {
	matches := apiGroupRegexp.FindStringSubmatch(path)
	if len(matches) != 2 {
		return "", errors.New("cannot find group name")
	}

	return matches[1], nil
}

func HTTPMethodToAction(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return ReadAction
	case http.MethodPost:
		return CreateAction
	case http.MethodPut, http.MethodPatch:
		return UpdateAction
	case http.MethodDelete:
		return DeleteAction
	default:
		return ReadAction
	}
}
