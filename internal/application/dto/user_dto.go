package dto

import (
	"time"

	"github.com/jhoicas/Gestor-Tareas/internal/domain/access"
	"github.com/jhoicas/Gestor-Tareas/internal/domain/entity"
)

// LoginRequest formulario de login. El backend nombra el correo "emails".
type LoginRequest struct {
	Email    string `json:"emails"`
	Password string `json:"password"`
}

// LoginResponse respuesta de POST /users/login del backend.
type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	UserID      string   `json:"user_id"`
	Email       string   `json:"user_emails"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Roles       []string `json:"roles"`
}

// Profile perfil de sesión derivado de la respuesta de login.
func (r *LoginResponse) Profile() entity.Profile {
	roles := r.Roles
	if roles == nil {
		roles = []string{}
	}
	return entity.Profile{
		ID:        r.UserID,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Roles:     roles,
	}
}

// ProfileView perfil de la sesión actual para la vista.
type ProfileView struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	DisplayName  string       `json:"display_name"`
	Roles        []string     `json:"roles"`
	Capabilities access.Flags `json:"capabilities"`
}

// LoginResult respuesta del login del BFF: a dónde navegar y quién entró.
type LoginResult struct {
	Redirect string      `json:"redirect"`
	Profile  ProfileView `json:"profile"`
}

// TaskSummaryView tarea resumida dentro de un usuario.
type TaskSummaryView struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	State       entity.TaskState `json:"state"`
	StateLabel  string           `json:"state_label"`
}

// AdminUserView usuario tal como lo lista la consola de administración.
type AdminUserView struct {
	ID        string            `json:"id"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	FullName  string            `json:"full_name"`
	Email     string            `json:"email"`
	Age       int               `json:"age"`
	Roles     []string          `json:"roles"`
	Role      string            `json:"role"`
	Tasks     []TaskSummaryView `json:"tasks"`
	Active    bool              `json:"is_active"`
	CreatedAt *time.Time        `json:"created_at,omitempty"`
	UpdatedAt *time.Time        `json:"updated_at,omitempty"`
}

// NewAdminUserView construye la vista de un usuario con sus tareas.
func NewAdminUserView(u entity.User, tasks []TaskSummaryView) AdminUserView {
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}
	if tasks == nil {
		tasks = []TaskSummaryView{}
	}
	return AdminUserView{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		Email:     u.Email,
		Age:       u.Age,
		Roles:     roles,
		Role:      u.PrimaryRole(),
		Tasks:     tasks,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// HasRole indica si el usuario tiene el rol.
func (v AdminUserView) HasRole(role string) bool {
	return access.HasRole(v.Roles, role)
}

// UserForm formulario de alta/edición de usuario. Los nombres de campo
// coinciden con los del backend.
type UserForm struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"emails"`
	Age       int    `json:"ages"`
	Password  string `json:"password,omitempty"`
	Role      string `json:"role,omitempty"`
}

// CreateUserRequest cuerpo de POST /users.
type CreateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"emails"`
	Password  string `json:"password"`
	Age       int    `json:"ages"`
}

// UpdateUserRequest cuerpo de PUT /users/{id}; los campos nil no se envían.
type UpdateUserRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"emails,omitempty"`
	Age       *int    `json:"ages,omitempty"`
	Password  *string `json:"password,omitempty"`
}

// RoleRequest cuerpo de POST /users/{id}/roles.
type RoleRequest struct {
	Role string `json:"role_name"`
}

// RoleView rol del catálogo del backend.
type RoleView struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Permissions string `json:"permissions,omitempty"`
}

// UserStats métricas de la consola de usuarios.
type UserStats struct {
	TotalUsers          int            `json:"total_users"`
	ActiveUsers         int            `json:"active_users"`
	InactiveUsers       int            `json:"inactive_users"`
	UsersByRole         map[string]int `json:"users_by_role"`
	RecentRegistrations int            `json:"recent_registrations"`
}

// RoleChange resultado de un cambio de rol; Changed=false si ya tenía ese rol.
// Stale=true si el rol se asignó pero el usuario no pudo recargarse.
type RoleChange struct {
	User         *AdminUserView `json:"user,omitempty"`
	Changed      bool           `json:"changed"`
	Notification *Notification  `json:"notification"`
	Stale        bool           `json:"stale,omitempty"`
}
