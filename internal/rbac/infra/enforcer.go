package infra

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// RoleModel grants a role everything granted to the roles it inherits
// through g.
const RoleModel = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// NewEnforcer builds an enforcer from RoleModel, or from a model file when
// modelPath is set.
func NewEnforcer(modelPath string) (*casbin.Enforcer, error) {
	if modelPath != "" {
		return casbin.NewEnforcer(modelPath)
	}
	m, err := model.NewModelFromString(RoleModel)
	if err != nil {
		return nil, err
	}
	return casbin.NewEnforcer(m)
}
