// Package access resuelve roles a permisos y evalúa los requisitos de las
// guardas. No tiene estado ni dependencias: todo se calcula a partir de la
// lista de roles de la sesión.
package access

import "slices"

// Permission verbo de acción derivado de los roles; nunca se persiste.
type Permission string

const (
	PermCreate Permission = "create"
	PermRead   Permission = "read"
	PermUpdate Permission = "update"
	PermDelete Permission = "delete"
	PermAssign Permission = "assign"
	PermManage Permission = "manage"
	PermAdmin  Permission = "admin"
)

// Roles del backend. Un usuario tiene como máximo uno asignado desde la consola.
const (
	RoleAdministrador = "Administrador"
	RoleGerente       = "Gerente"
	RoleEmpleado      = "Empleado"
	RoleCajero        = "Cajero"
)

var allRoles = []string{RoleAdministrador, RoleGerente, RoleEmpleado, RoleCajero}

var allPermissions = []Permission{PermCreate, PermRead, PermUpdate, PermDelete, PermAssign, PermManage, PermAdmin}

// rolePermissions tabla fija. Solo se expone a través de copias.
var rolePermissions = map[string][]Permission{
	RoleAdministrador: {PermCreate, PermRead, PermUpdate, PermDelete, PermAssign, PermAdmin},
	RoleGerente:       {PermCreate, PermRead, PermUpdate, PermAssign, PermManage},
	RoleEmpleado:      {PermRead, PermUpdate, PermCreate},
	RoleCajero:        {PermRead, PermUpdate},
}

// Roles devuelve el vocabulario de roles en orden fijo.
func Roles() []string {
	return slices.Clone(allRoles)
}

// Permissions devuelve todos los verbos conocidos.
func Permissions() []Permission {
	return slices.Clone(allPermissions)
}

// IsKnownRole indica si role pertenece al vocabulario.
func IsKnownRole(role string) bool {
	_, ok := rolePermissions[role]
	return ok
}

// ParsePermission convierte un verbo textual; ok=false si no es conocido.
func ParsePermission(s string) (Permission, bool) {
	p := Permission(s)
	return p, slices.Contains(allPermissions, p)
}

// PermissionsFor devuelve una copia de los permisos de role (nil si es desconocido).
func PermissionsFor(role string) []Permission {
	perms, ok := rolePermissions[role]
	if !ok {
		return nil
	}
	return slices.Clone(perms)
}

// Resolve es true si algún rol de roles concede verb. Roles desconocidos no conceden nada.
func Resolve(roles []string, verb Permission) bool {
	for _, r := range roles {
		if slices.Contains(rolePermissions[r], verb) {
			return true
		}
	}
	return false
}

// HasRole coincidencia exacta de nombre.
func HasRole(roles []string, role string) bool {
	return slices.Contains(roles, role)
}
