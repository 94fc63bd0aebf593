package ports

//go:generate mockgen -source=gateways.go -destination=mock_ports/mock_ports.go -package=mock_ports

import (
	"context"

	"github.com/jhoicas/Gestor-Tareas/internal/application/dto"
	"github.com/jhoicas/Gestor-Tareas/internal/domain/access"
	"github.com/jhoicas/Gestor-Tareas/internal/domain/entity"
)

// TokenSource entrega el token bearer de la sesión actual y permite expirarla.
// Los clientes remotos llaman a Expire cuando el backend responde 401.
type TokenSource interface {
	Token() string
	Expire(ctx context.Context)
}

// Principal identidad autenticada que consumen los casos de uso:
// token para el backend más roles y permisos para las comprobaciones.
type Principal interface {
	TokenSource
	access.Authorizer
	UserID() string
	Username() string
	Roles() []string
	Profile() *entity.Profile
}

// AuthGateway puerto de salida hacia el endpoint público de login.
type AuthGateway interface {
	Login(ctx context.Context, creds entity.Credentials) (*dto.LoginResponse, error)
}

// TaskGateway puerto de salida hacia el recurso /tasks del backend.
// Todas las tareas devueltas ya vienen normalizadas a la forma canónica.
type TaskGateway interface {
	ListTasks(ctx context.Context, ts TokenSource) ([]dto.TaskView, error)
	GetTask(ctx context.Context, ts TokenSource, id string) (*dto.TaskView, error)
	CreateTask(ctx context.Context, ts TokenSource, in dto.CreateTaskRequest) (*dto.TaskView, error)
	UpdateTask(ctx context.Context, ts TokenSource, id string, in dto.UpdateTaskRequest) (*dto.TaskView, error)
	AssignUser(ctx context.Context, ts TokenSource, taskID, userID string) (*dto.TaskView, error)
	UnassignUser(ctx context.Context, ts TokenSource, taskID, userID string) (*dto.TaskView, error)
}

// UserGateway puerto de salida hacia /users y /roles (operaciones de administración).
type UserGateway interface {
	ListUsers(ctx context.Context, ts TokenSource) ([]dto.AdminUserView, error)
	ListDeletedUsers(ctx context.Context, ts TokenSource) ([]dto.AdminUserView, error)
	ListUserSummaries(ctx context.Context, ts TokenSource) ([]dto.UserSummaryView, error)
	CreateUser(ctx context.Context, ts TokenSource, in dto.CreateUserRequest) (*dto.AdminUserView, error)
	UpdateUser(ctx context.Context, ts TokenSource, id string, in dto.UpdateUserRequest) (*dto.AdminUserView, error)
	DeleteUser(ctx context.Context, ts TokenSource, id string) error
	RestoreUser(ctx context.Context, ts TokenSource, id string) (*dto.AdminUserView, error)
	AssignRole(ctx context.Context, ts TokenSource, userID, role string) (*dto.AdminUserView, error)
	RemoveRole(ctx context.Context, ts TokenSource, userID, role string) (*dto.AdminUserView, error)
	ListRoles(ctx context.Context, ts TokenSource) ([]dto.RoleView, error)
}

// TaskReportRenderer genera el informe PDF del tablero de tareas.
type TaskReportRenderer interface {
	RenderTaskReport(title string, tasks []dto.TaskView, counts dto.TaskCounts) ([]byte, error)
}
