package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Gestor-Tareas/internal/domain/access"
)

// expected reproduce la tabla a mano para no comparar la tabla consigo misma.
var expected = map[string]map[access.Permission]bool{
	"Administrador": {"create": true, "read": true, "update": true, "delete": true, "assign": true, "admin": true},
	"Gerente":       {"create": true, "read": true, "update": true, "assign": true, "manage": true},
	"Empleado":      {"read": true, "update": true, "create": true},
	"Cajero":        {"read": true, "update": true},
}

func TestResolve_TodosLosSubconjuntos(t *testing.T) {
	roles := append(access.Roles(), "Auditor")
	for mask := 0; mask < 1<<len(roles); mask++ {
		var held []string
		for i, r := range roles {
			if mask&(1<<i) != 0 {
				held = append(held, r)
			}
		}
		for _, verb := range access.Permissions() {
			want := false
			for _, r := range held {
				if expected[r][verb] {
					want = true
				}
			}
			assert.Equal(t, want, access.Resolve(held, verb), "roles=%v verb=%s", held, verb)
		}
	}
}

func TestResolve_RolDesconocidoNoConcede(t *testing.T) {
	for _, verb := range access.Permissions() {
		assert.False(t, access.Resolve([]string{"Auditor", "administrador", ""}, verb))
	}
	assert.False(t, access.Resolve(nil, access.PermRead))
}

func TestResolve_Cajero(t *testing.T) {
	roles := []string{access.RoleCajero}
	assert.False(t, access.Resolve(roles, access.PermDelete))
	assert.True(t, access.Resolve(roles, access.PermRead))
}

func TestPermissionsFor_DevuelveCopia(t *testing.T) {
	perms := access.PermissionsFor(access.RoleCajero)
	perms[0] = access.PermAdmin

	assert.False(t, access.Resolve([]string{access.RoleCajero}, access.PermAdmin),
		"modificar la copia no debe alterar la tabla")
	assert.Nil(t, access.PermissionsFor("Auditor"))
}

func TestParsePermission(t *testing.T) {
	p, ok := access.ParsePermission("assign")
	assert.True(t, ok)
	assert.Equal(t, access.PermAssign, p)

	_, ok = access.ParsePermission("borrar")
	assert.False(t, ok)
}

type fakeAuthorizer struct{ roles []string }

func (f fakeAuthorizer) HasPermission(p access.Permission) bool { return access.Resolve(f.roles, p) }
func (f fakeAuthorizer) HasRole(r string) bool                  { return access.HasRole(f.roles, r) }

func TestCapability_SatisfiedBy(t *testing.T) {
	admin := fakeAuthorizer{roles: []string{access.RoleAdministrador}}
	gerente := fakeAuthorizer{roles: []string{access.RoleGerente}}

	tests := []struct {
		name string
		cap  access.Capability
		auth access.Authorizer
		want bool
	}{
		{"vacía siempre se cumple", access.Capability{}, gerente, true},
		{"vacía sin sesión", access.Capability{}, nil, true},
		{"permiso concedido", access.RequirePermission(access.PermManage), gerente, true},
		{"permiso denegado", access.RequirePermission(access.PermDelete), gerente, false},
		{"rol exacto", access.RequireRole(access.RoleAdministrador), admin, true},
		{"rol ausente", access.RequireRole(access.RoleAdministrador), gerente, false},
		{"permiso ok pero rol no", access.Capability{Permission: access.PermCreate, Role: access.RoleAdministrador}, gerente, false},
		{"sin sesión con requisito", access.RequirePermission(access.PermRead), nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cap.SatisfiedBy(tt.auth))
		})
	}
}

func TestCapabilities_Flags(t *testing.T) {
	flags := access.Capabilities(fakeAuthorizer{roles: []string{access.RoleEmpleado}})
	assert.Equal(t, access.Flags{CanCreate: true, CanUpdate: true, IsEmployee: true}, flags)

	assert.Equal(t, access.Flags{}, access.Capabilities(nil))
}
