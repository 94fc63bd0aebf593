package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Gestor-Tareas/internal/application/dto"
	"github.com/jhoicas/Gestor-Tareas/internal/application/ports"
	"github.com/jhoicas/Gestor-Tareas/internal/domain"
	"github.com/jhoicas/Gestor-Tareas/internal/domain/access"
	"github.com/jhoicas/Gestor-Tareas/pkg/logger"
)

// DashboardUseCase "Mis Tareas": las tareas asignadas al usuario de la sesión.
type DashboardUseCase struct {
	tasks ports.TaskGateway
	log   *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(tasks ports.TaskGateway, log *logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{tasks: tasks, log: log.Named("dashboard")}
}

// View tareas asignadas al usuario actual filtradas por search. Los contadores
// se calculan sobre todas sus tareas, no solo las filtradas.
func (uc *DashboardUseCase) View(ctx context.Context, p ports.Principal, search string) (*dto.DashboardView, error) {
	all, err := uc.tasks.ListTasks(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar tareas: %w", err)
	}
	userID := p.UserID()
	mine := make([]dto.TaskView, 0, len(all))
	for _, t := range all {
		if t.IsAssignedTo(userID) {
			mine = append(mine, t)
		}
	}
	return &dto.DashboardView{
		Username:     p.Username(),
		Search:       search,
		Tasks:        FilterTasks(mine, search),
		Counts:       dto.CountTasks(mine),
		Capabilities: access.Capabilities(p),
	}, nil
}

// CreateTask crea una tarea personal asignada al usuario actual.
func (uc *DashboardUseCase) CreateTask(ctx context.Context, p ports.Principal, form dto.TaskForm) (*dto.DashboardView, error) {
	if err := authorize(p, access.RequirePermission(access.PermCreate)); err != nil {
		return nil, err
	}
	title, description, state, err := taskFields(form)
	if err != nil {
		return nil, err
	}
	userID := p.UserID()
	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	created, err := uc.tasks.CreateTask(ctx, p, dto.CreateTaskRequest{
		Title:       title,
		Description: description,
		State:       state,
		UserID:      userID,
	})
	if err != nil {
		return nil, fmt.Errorf("dashboard: crear tarea: %w", err)
	}
	if created != nil {
		uc.log.Info().Str("task_id", created.ID).Str("user_id", userID).Msg("tarea personal creada")
	}
	return uc.refresh(ctx, p, dto.Success(titleTaskCreated, "Tu tarea personal ha sido creada exitosamente"))
}

// UpdateTask edita título, descripción y estado.
func (uc *DashboardUseCase) UpdateTask(ctx context.Context, p ports.Principal, id string, form dto.TaskForm) (*dto.DashboardView, error) {
	if err := authorize(p, access.RequirePermission(access.PermUpdate)); err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" {
		return nil, domain.Invalid("Tarea inválida")
	}
	title, description, state, err := taskFields(form)
	if err != nil {
		return nil, err
	}
	if _, err := uc.tasks.UpdateTask(ctx, p, id, dto.UpdateTaskRequest{
		Title:       &title,
		Description: &description,
		State:       &state,
	}); err != nil {
		return nil, fmt.Errorf("dashboard: actualizar tarea %s: %w", id, err)
	}
	return uc.refresh(ctx, p, dto.Success(titleTaskUpdated, "La tarea ha sido actualizada exitosamente"))
}

// ChangeState solo cambia el estado; cualquier transición es válida.
func (uc *DashboardUseCase) ChangeState(ctx context.Context, p ports.Principal, id, rawState string) (*dto.DashboardView, error) {
	if err := authorize(p, access.RequirePermission(access.PermUpdate)); err != nil {
		return nil, err
	}
	if strings.TrimSpace(rawState) == "" {
		return nil, domain.Invalid(msgInvalidState)
	}
	state, err := parseState(rawState)
	if err != nil {
		return nil, err
	}
	if _, err := uc.tasks.UpdateTask(ctx, p, id, dto.UpdateTaskRequest{State: &state}); err != nil {
		return nil, fmt.Errorf("dashboard: cambiar estado %s: %w", id, err)
	}
	return uc.refresh(ctx, p, dto.Success(titleStateUpdated, "La tarea se cambió a "+state.Label()))
}

// refresh recarga la vista después de una mutación. La mutación ya se aplicó:
// si la recarga falla se devuelve el aviso con la vista marcada como Stale.
func (uc *DashboardUseCase) refresh(ctx context.Context, p ports.Principal, n *dto.Notification) (*dto.DashboardView, error) {
	view, err := uc.View(ctx, p, "")
	if err != nil {
		uc.log.Warn().Err(err).Str("user_id", p.UserID()).Msg("no se pudo recargar la vista tras la acción")
		return &dto.DashboardView{
			Username:     p.Username(),
			Tasks:        []dto.TaskView{},
			Capabilities: access.Capabilities(p),
			Notification: n,
			Stale:        true,
		}, nil
	}
	view.Notification = n
	return view, nil
}
