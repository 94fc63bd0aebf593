package access

// Authorizer lo implementa la sesión (y los fakes de tests).
type Authorizer interface {
	HasPermission(p Permission) bool
	HasRole(role string) bool
}

// Capability requisito de una guarda: un permiso, un rol, o ambos.
// La capacidad vacía siempre se cumple.
type Capability struct {
	Permission Permission
	Role       string
}

// RequirePermission capacidad que exige un permiso.
func RequirePermission(p Permission) Capability { return Capability{Permission: p} }

// RequireRole capacidad que exige un rol.
func RequireRole(role string) Capability { return Capability{Role: role} }

// SatisfiedBy evalúa primero el permiso y después el rol.
func (c Capability) SatisfiedBy(a Authorizer) bool {
	if a == nil {
		return c.Permission == "" && c.Role == ""
	}
	if c.Permission != "" && !a.HasPermission(c.Permission) {
		return false
	}
	if c.Role != "" && !a.HasRole(c.Role) {
		return false
	}
	return true
}

// Flags banderas que consumen las vistas para mostrar u ocultar acciones.
type Flags struct {
	CanCreate  bool `json:"can_create"`
	CanUpdate  bool `json:"can_update"`
	CanDelete  bool `json:"can_delete"`
	CanAssign  bool `json:"can_assign"`
	CanManage  bool `json:"can_manage"`
	IsAdmin    bool `json:"is_admin"`
	IsManager  bool `json:"is_manager"`
	IsEmployee bool `json:"is_employee"`
	IsCashier  bool `json:"is_cashier"`
}

// Capabilities calcula las banderas de la sesión actual.
func Capabilities(a Authorizer) Flags {
	if a == nil {
		return Flags{}
	}
	return Flags{
		CanCreate:  a.HasPermission(PermCreate),
		CanUpdate:  a.HasPermission(PermUpdate),
		CanDelete:  a.HasPermission(PermDelete),
		CanAssign:  a.HasPermission(PermAssign),
		CanManage:  a.HasPermission(PermManage),
		IsAdmin:    a.HasRole(RoleAdministrador),
		IsManager:  a.HasRole(RoleGerente),
		IsEmployee: a.HasRole(RoleEmpleado),
		IsCashier:  a.HasRole(RoleCajero),
	}
}
