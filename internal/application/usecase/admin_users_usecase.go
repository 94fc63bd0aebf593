package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Gestor-Tareas/internal/application/dto"
	"github.com/jhoicas/Gestor-Tareas/internal/application/ports"
	"github.com/jhoicas/Gestor-Tareas/internal/domain"
	"github.com/jhoicas/Gestor-Tareas/internal/domain/access"
	"github.com/jhoicas/Gestor-Tareas/pkg/logger"
)

const (
	recentWindow = 7 * 24 * time.Hour
	noRole       = "Sin rol"
)

// AdminUsersUseCase consola de administración de usuarios y roles.
type AdminUsersUseCase struct {
	users ports.UserGateway
	log   *logger.Logger
	now   func() time.Time
}

// NewAdminUsersUseCase construye el caso de uso.
func NewAdminUsersUseCase(users ports.UserGateway, log *logger.Logger) *AdminUsersUseCase {
	return &AdminUsersUseCase{users: users, log: log.Named("admin_users"), now: time.Now}
}

// Directory usuarios activos (filtrados por search) y eliminados, con el
// vocabulario de roles para el selector.
func (uc *AdminUsersUseCase) Directory(ctx context.Context, p ports.Principal, search string) (*dto.UserDirectory, error) {
	if err := authorize(p, access.RequirePermission(access.PermAdmin)); err != nil {
		return nil, err
	}
	active, deleted, err := uc.fetchAll(ctx, p)
	if err != nil {
		return nil, err
	}
	return &dto.UserDirectory{
		Search:       search,
		Active:       FilterUsers(active, search),
		Deleted:      deleted,
		Roles:        access.Roles(),
		Stats:        computeUserStats(active, deleted, uc.now()),
		Capabilities: access.Capabilities(p),
	}, nil
}

// Stats métricas de usuarios.
func (uc *AdminUsersUseCase) Stats(ctx context.Context, p ports.Principal) (*dto.UserStats, error) {
	if err := authorize(p, access.RequirePermission(access.PermAdmin)); err != nil {
		return nil, err
	}
	active, deleted, err := uc.fetchAll(ctx, p)
	if err != nil {
		return nil, err
	}
	stats := computeUserStats(active, deleted, uc.now())
	return &stats, nil
}

// CreateUser alta de usuario. Si el formulario trae un rol distinto del que
// asigna el backend por defecto, se asigna a continuación.
func (uc *AdminUsersUseCase) CreateUser(ctx context.Context, p ports.Principal, form dto.UserForm) (*dto.MutationResult[dto.UserDirectory], error) {
	if err := authorize(p, access.RequirePermission(access.PermAdmin)); err != nil {
		return nil, err
	}
	form = trimUserForm(form)
	if err := validateUserForm(form); err != nil {
		return nil, err
	}
	if form.Password == "" {
		return nil, domain.Invalid(msgPasswordRequired)
	}
	if form.Role != "" && !access.IsKnownRole(form.Role) {
		return nil, domain.Invalid(msgUnknownRole)
	}
	created, err := uc.users.CreateUser(ctx, p, dto.CreateUserRequest{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  form.Password,
		Age:       form.Age,
	})
	if err != nil {
		return nil, fmt.Errorf("admin: crear usuario: %w", err)
	}
	notification := dto.Success(titleUserCreated, "El usuario ha sido creado exitosamente")
	if created != nil && form.Role != "" && !created.HasRole(form.Role) {
		if _, err := uc.users.AssignRole(ctx, p, created.ID, form.Role); err != nil {
			uc.log.Warn().Err(err).Str("user_id", created.ID).Str("role", form.Role).Msg("usuario creado sin el rol inicial")
			notification = dto.Success(titleUserCreated,
				fmt.Sprintf("El usuario ha sido creado, pero no se pudo asignar el rol %q", form.Role))
		}
	}
	return uc.refresh(ctx, p, notification)
}

// UpdateUser edita datos personales; la contraseña solo se envía si viene informada.
func (uc *AdminUsersUseCase) UpdateUser(ctx context.Context, p ports.Principal, id string, form dto.UserForm) (*dto.MutationResult[dto.UserDirectory], error) {
	if err := authorize(p, access.RequirePermission(access.PermAdmin)); err != nil {
		return nil, err
	}
	form = trimUserForm(form)
	if err := validateUserForm(form); err != nil {
		return nil, err
	}
	req := dto.UpdateUserRequest{
		FirstName: &form.FirstName,
		LastName:  &form.LastName,
		Email:     &form.Email,
		Age:       &form.Age,
	}
	if form.Password != "" {
		req.Password = &form.Password
	}
	if _, err := uc.users.UpdateUser(ctx, p, id, req); err != nil {
		return nil, fmt.Errorf("admin: actualizar usuario %s: %w", id, err)
	}
	return uc.refresh(ctx, p, dto.Success(titleUserUpdated, "El usuario ha sido actualizado exitosamente"))
}

// DeleteUser borrado lógico.
func (uc *AdminUsersUseCase) DeleteUser(ctx context.Context, p ports.Principal, id string) (*dto.MutationResult[dto.UserDirectory], error) {
	if err := authorize(p, access.RequirePermission(access.PermDelete)); err != nil {
		return nil, err
	}
	if id == p.UserID() {
		return nil, domain.Invalid("No puedes eliminar tu propio usuario")
	}
	if err := uc.users.DeleteUser(ctx, p, id); err != nil {
		return nil, fmt.Errorf("admin: eliminar usuario %s: %w", id, err)
	}
	uc.log.Info().Str("user_id", id).Msg("usuario eliminado")
	return uc.refresh(ctx, p, dto.Success(titleUserDeleted, "El usuario ha sido eliminado exitosamente"))
}

// RestoreUser deshace el borrado lógico.
func (uc *AdminUsersUseCase) RestoreUser(ctx context.Context, p ports.Principal, id string) (*dto.MutationResult[dto.UserDirectory], error) {
	if err := authorize(p, access.RequirePermission(access.PermAdmin)); err != nil {
		return nil, err
	}
	if _, err := uc.users.RestoreUser(ctx, p, id); err != nil {
		return nil, fmt.Errorf("admin: restaurar usuario %s: %w", id, err)
	}
	return uc.refresh(ctx, p, dto.Success(titleUserRestored, "El usuario ha sido restaurado exitosamente"))
}

// AssignRole deja al usuario con un único rol. Elegir el rol que ya tiene es
// un "Sin cambios" que no llama al backend.
func (uc *AdminUsersUseCase) AssignRole(ctx context.Context, p ports.Principal, userID, role string) (*dto.RoleChange, error) {
	if err := authorize(p, access.RequirePermission(access.PermAdmin)); err != nil {
		return nil, err
	}
	role = strings.TrimSpace(role)
	active, err := uc.users.ListUsers(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("admin: listar usuarios: %w", err)
	}
	current := findUser(active, userID)
	if current == nil {
		return nil, fmt.Errorf("admin: usuario %s: %w", userID, domain.ErrNotFound)
	}
	if current.Role == role {
		return &dto.RoleChange{
			User:         current,
			Changed:      false,
			Notification: dto.Success(titleNoChanges, "No se detectaron cambios en el rol"),
		}, nil
	}
	if role == "" {
		return nil, domain.Invalid(msgRoleRequired)
	}
	if !access.IsKnownRole(role) {
		return nil, domain.Invalid(msgUnknownRole)
	}
	if _, err := uc.users.AssignRole(ctx, p, userID, role); err != nil {
		return nil, fmt.Errorf("admin: asignar rol %s a %s: %w", role, userID, err)
	}
	uc.log.Info().Str("user_id", userID).Str("from", current.Role).Str("to", role).Msg("rol actualizado")

	change := &dto.RoleChange{
		Changed: true,
		Notification: dto.Success(titleRoleUpdated,
			fmt.Sprintf("Se asignó el rol %q a %s", role, current.FullName)),
	}
	refreshed, err := uc.users.ListUsers(ctx, p)
	if err != nil {
		uc.log.Warn().Err(err).Str("user_id", userID).Msg("no se pudo recargar el usuario tras el cambio de rol")
		change.Stale = true
		return change, nil
	}
	change.User = findUser(refreshed, userID)
	return change, nil
}

// RemoveRole quita un rol concreto del usuario.
func (uc *AdminUsersUseCase) RemoveRole(ctx context.Context, p ports.Principal, userID, role string) (*dto.MutationResult[dto.UserDirectory], error) {
	if err := authorize(p, access.RequirePermission(access.PermAdmin)); err != nil {
		return nil, err
	}
	role = strings.TrimSpace(role)
	if role == "" {
		return nil, domain.Invalid(msgRoleRequired)
	}
	if _, err := uc.users.RemoveRole(ctx, p, userID, role); err != nil {
		return nil, fmt.Errorf("admin: quitar rol %s a %s: %w", role, userID, err)
	}
	return uc.refresh(ctx, p, dto.Success(titleRoleRemoved, fmt.Sprintf("Se quitó el rol %q", role)))
}

// Roles catálogo de roles del backend.
func (uc *AdminUsersUseCase) Roles(ctx context.Context, p ports.Principal) ([]dto.RoleView, error) {
	if err := authorize(p, access.RequirePermission(access.PermAdmin)); err != nil {
		return nil, err
	}
	roles, err := uc.users.ListRoles(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("admin: listar roles: %w", err)
	}
	return roles, nil
}

// fetchAll activos y eliminados en paralelo.
func (uc *AdminUsersUseCase) fetchAll(ctx context.Context, p ports.Principal) (active, deleted []dto.AdminUserView, err error) {
	ts := shareToken(p)
	activeCh := async(func() ([]dto.AdminUserView, error) { return uc.users.ListUsers(ctx, ts) })
	deletedCh := async(func() ([]dto.AdminUserView, error) { return uc.users.ListDeletedUsers(ctx, ts) })

	activeRes, deletedRes := <-activeCh, <-deletedCh
	ts.settle(ctx, p)
	if activeRes.err != nil {
		return nil, nil, fmt.Errorf("admin: listar usuarios: %w", activeRes.err)
	}
	if deletedRes.err != nil {
		return nil, nil, fmt.Errorf("admin: listar usuarios eliminados: %w", deletedRes.err)
	}
	return activeRes.val, deletedRes.val, nil
}

// refresh recarga el directorio tras una mutación ya aplicada. Si la recarga
// falla se responde el aviso con Stale y sin datos.
func (uc *AdminUsersUseCase) refresh(ctx context.Context, p ports.Principal, n *dto.Notification) (*dto.MutationResult[dto.UserDirectory], error) {
	dir, err := uc.Directory(ctx, p, "")
	if err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo recargar el directorio tras la acción")
		return &dto.MutationResult[dto.UserDirectory]{
			Data: dto.UserDirectory{
				Active:       []dto.AdminUserView{},
				Deleted:      []dto.AdminUserView{},
				Roles:        access.Roles(),
				Capabilities: access.Capabilities(p),
			},
			Notification: n,
			Stale:        true,
		}, nil
	}
	return &dto.MutationResult[dto.UserDirectory]{Data: *dir, Notification: n}, nil
}

// computeUserStats totales, reparto por rol y altas de los últimos 7 días, ambos
// sobre los activos.
func computeUserStats(active, deleted []dto.AdminUserView, now time.Time) dto.UserStats {
	stats := dto.UserStats{
		TotalUsers:  len(active) + len(deleted),
		UsersByRole: map[string]int{},
	}
	since := now.Add(-recentWindow)
	count := func(u dto.AdminUserView) {
		if u.Active {
			stats.ActiveUsers++
		} else {
			stats.InactiveUsers++
		}
	}
	for _, u := range active {
		count(u)
		// Las altas recientes solo cuentan usuarios activos.
		if u.CreatedAt != nil && u.CreatedAt.After(since) {
			stats.RecentRegistrations++
		}
		if len(u.Roles) == 0 {
			stats.UsersByRole[noRole]++
		}
		for _, r := range u.Roles {
			stats.UsersByRole[r]++
		}
	}
	for _, u := range deleted {
		count(u)
	}
	return stats
}

func findUser(users []dto.AdminUserView, id string) *dto.AdminUserView {
	for i := range users {
		if users[i].ID == id {
			u := users[i]
			return &u
		}
	}
	return nil
}

func trimUserForm(f dto.UserForm) dto.UserForm {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.TrimSpace(f.Email)
	f.Role = strings.TrimSpace(f.Role)
	return f
}

func validateUserForm(f dto.UserForm) error {
	if f.FirstName == "" || f.LastName == "" || f.Email == "" || f.Age <= 0 {
		return domain.Invalid(msgAllFields)
	}
	return nil
}
