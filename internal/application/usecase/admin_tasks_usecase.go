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

const reportTitle = "Informe de tareas"

// AdminTasksUseCase consola de administración de tareas.
type AdminTasksUseCase struct {
	tasks    ports.TaskGateway
	users    ports.UserGateway
	renderer ports.TaskReportRenderer
	log      *logger.Logger
	now      func() time.Time
}

// NewAdminTasksUseCase construye el caso de uso. renderer puede ser nil si no
// se expone el informe PDF.
func NewAdminTasksUseCase(tasks ports.TaskGateway, users ports.UserGateway, renderer ports.TaskReportRenderer, log *logger.Logger) *AdminTasksUseCase {
	return &AdminTasksUseCase{
		tasks:    tasks,
		users:    users,
		renderer: renderer,
		log:      log.Named("admin_tasks"),
		now:      time.Now,
	}
}

// Overview panel principal: contadores con porcentajes, métricas de usuarios y
// el perfil del administrador. Las tres consultas van en paralelo.
func (uc *AdminTasksUseCase) Overview(ctx context.Context, p ports.Principal) (*dto.AdminOverview, error) {
	if err := authorize(p, access.RequirePermission(access.PermRead)); err != nil {
		return nil, err
	}
	ts := shareToken(p)
	tasksCh := async(func() ([]dto.TaskView, error) { return uc.tasks.ListTasks(ctx, ts) })
	activeCh := async(func() ([]dto.AdminUserView, error) { return uc.users.ListUsers(ctx, ts) })
	deletedCh := async(func() ([]dto.AdminUserView, error) { return uc.users.ListDeletedUsers(ctx, ts) })

	tasksRes, activeRes, deletedRes := <-tasksCh, <-activeCh, <-deletedCh
	ts.settle(ctx, p)
	if tasksRes.err != nil {
		return nil, fmt.Errorf("admin: listar tareas: %w", tasksRes.err)
	}
	if activeRes.err != nil {
		return nil, fmt.Errorf("admin: listar usuarios: %w", activeRes.err)
	}
	if deletedRes.err != nil {
		return nil, fmt.Errorf("admin: listar usuarios eliminados: %w", deletedRes.err)
	}
	return &dto.AdminOverview{
		Profile: ProfileOf(p),
		Stats:   dto.NewTaskStats(dto.CountTasks(tasksRes.val)),
		Users:   computeUserStats(activeRes.val, deletedRes.val, uc.now()),
	}, nil
}

// Board todas las tareas (filtradas por search) y todos los usuarios para los
// selectores de asignación. selectedID, si no es vacío, marca la tarea abierta.
func (uc *AdminTasksUseCase) Board(ctx context.Context, p ports.Principal, search, selectedID string) (*dto.AdminTaskBoard, error) {
	if err := authorize(p, access.RequirePermission(access.PermRead)); err != nil {
		return nil, err
	}
	ts := shareToken(p)
	tasksCh := async(func() ([]dto.TaskView, error) { return uc.tasks.ListTasks(ctx, ts) })
	usersCh := async(func() ([]dto.AdminUserView, error) { return uc.users.ListUsers(ctx, ts) })

	tasksRes, usersRes := <-tasksCh, <-usersCh
	ts.settle(ctx, p)
	if tasksRes.err != nil {
		return nil, fmt.Errorf("admin: listar tareas: %w", tasksRes.err)
	}
	if usersRes.err != nil {
		return nil, fmt.Errorf("admin: listar usuarios: %w", usersRes.err)
	}

	board := &dto.AdminTaskBoard{
		Search:       search,
		Tasks:        FilterTasks(tasksRes.val, search),
		Users:        usersRes.val,
		Capabilities: access.Capabilities(p),
	}
	if selectedID != "" {
		for i := range tasksRes.val {
			if tasksRes.val[i].ID == selectedID {
				t := tasksRes.val[i]
				board.SelectedTask = &t
				break
			}
		}
	}
	return board, nil
}

// CreateTask crea la tarea; el primer usuario seleccionado viaja como user_id y
// el resto se asigna a continuación, en orden.
func (uc *AdminTasksUseCase) CreateTask(ctx context.Context, p ports.Principal, form dto.TaskForm) (*dto.AdminTaskBoard, error) {
	if err := authorize(p, access.RequirePermission(access.PermCreate)); err != nil {
		return nil, err
	}
	title, description, state, err := taskFields(form)
	if err != nil {
		return nil, err
	}
	selected := uniqueNonEmpty(form.AssignedUsers)
	req := dto.CreateTaskRequest{Title: title, Description: description, State: state}
	if len(selected) > 0 {
		req.UserID = selected[0]
	}
	created, err := uc.tasks.CreateTask(ctx, p, req)
	if err != nil {
		return nil, fmt.Errorf("admin: crear tarea: %w", err)
	}
	notification := dto.Success(titleTaskCreated, "La tarea ha sido creada exitosamente")
	selectedID := ""
	if created != nil {
		selectedID = created.ID
		var failed []string
		for _, userID := range selected[min(1, len(selected)):] {
			if created.IsAssignedTo(userID) {
				continue
			}
			if _, err := uc.tasks.AssignUser(ctx, p, created.ID, userID); err != nil {
				uc.log.Warn().Err(err).Str("task_id", created.ID).Str("user_id", userID).Msg("tarea creada sin la asignación")
				failed = append(failed, userID)
			}
		}
		if len(failed) > 0 {
			notification = dto.Success(titleTaskCreated,
				"La tarea ha sido creada, pero no se pudo asignar a: "+strings.Join(failed, ", "))
		}
		uc.log.Info().Str("task_id", created.ID).Int("assigned", len(selected)-len(failed)).Msg("tarea creada")
	}
	return uc.refresh(ctx, p, selectedID, notification)
}

// UpdateTask edita título, descripción y estado.
func (uc *AdminTasksUseCase) UpdateTask(ctx context.Context, p ports.Principal, id string, form dto.TaskForm) (*dto.AdminTaskBoard, error) {
	if err := authorize(p, access.RequirePermission(access.PermUpdate)); err != nil {
		return nil, err
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
		return nil, fmt.Errorf("admin: actualizar tarea %s: %w", id, err)
	}
	return uc.refresh(ctx, p, id, dto.Success(titleTaskUpdated, "La tarea ha sido actualizada exitosamente"))
}

// AssignUser asigna un usuario. Si ya estaba asignado no se llama al backend
// y el aviso es "Sin cambios": la lista nunca tiene duplicados.
func (uc *AdminTasksUseCase) AssignUser(ctx context.Context, p ports.Principal, taskID, userID string) (*dto.AdminTaskBoard, error) {
	if err := authorize(p, access.RequirePermission(access.PermAssign)); err != nil {
		return nil, err
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, domain.Invalid(msgUserRequired)
	}
	current, err := uc.tasks.GetTask(ctx, p, taskID)
	if err != nil {
		return nil, fmt.Errorf("admin: obtener tarea %s: %w", taskID, err)
	}
	if current != nil && current.IsAssignedTo(userID) {
		return uc.refresh(ctx, p, taskID, dto.Success(titleNoChanges, "El usuario ya está asignado a esta tarea"))
	}
	if _, err := uc.tasks.AssignUser(ctx, p, taskID, userID); err != nil {
		return nil, fmt.Errorf("admin: asignar usuario %s a %s: %w", userID, taskID, err)
	}
	return uc.refresh(ctx, p, taskID, dto.Success(titleUserAssigned, "El usuario ha sido asignado a la tarea exitosamente"))
}

// UnassignUser quita un usuario de la tarea.
func (uc *AdminTasksUseCase) UnassignUser(ctx context.Context, p ports.Principal, taskID, userID string) (*dto.AdminTaskBoard, error) {
	if err := authorize(p, access.RequirePermission(access.PermAssign)); err != nil {
		return nil, err
	}
	if strings.TrimSpace(userID) == "" {
		return nil, domain.Invalid(msgUserRequired)
	}
	if _, err := uc.tasks.UnassignUser(ctx, p, taskID, userID); err != nil {
		return nil, fmt.Errorf("admin: quitar usuario %s de %s: %w", userID, taskID, err)
	}
	return uc.refresh(ctx, p, taskID, dto.Success(titleUserRemoved, "El usuario ha sido removido de la tarea exitosamente"))
}

// Report informe PDF con todas las tareas y sus contadores.
func (uc *AdminTasksUseCase) Report(ctx context.Context, p ports.Principal) ([]byte, error) {
	if err := authorize(p, access.RequirePermission(access.PermRead)); err != nil {
		return nil, err
	}
	if uc.renderer == nil {
		return nil, fmt.Errorf("admin: informe PDF no configurado")
	}
	tasks, err := uc.tasks.ListTasks(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("admin: listar tareas: %w", err)
	}
	pdf, err := uc.renderer.RenderTaskReport(reportTitle, tasks, dto.CountTasks(tasks))
	if err != nil {
		return nil, fmt.Errorf("admin: generar informe: %w", err)
	}
	return pdf, nil
}

// refresh recarga el tablero tras una mutación ya aplicada; si la recarga
// falla el tablero vuelve vacío y marcado como Stale.
func (uc *AdminTasksUseCase) refresh(ctx context.Context, p ports.Principal, selectedID string, n *dto.Notification) (*dto.AdminTaskBoard, error) {
	board, err := uc.Board(ctx, p, "", selectedID)
	if err != nil {
		uc.log.Warn().Err(err).Str("task_id", selectedID).Msg("no se pudo recargar el tablero tras la acción")
		return &dto.AdminTaskBoard{
			Tasks:        []dto.TaskView{},
			Users:        []dto.AdminUserView{},
			Capabilities: access.Capabilities(p),
			Notification: n,
			Stale:        true,
		}, nil
	}
	board.Notification = n
	return board, nil
}

// uniqueNonEmpty ids sin vacíos ni repetidos, en el orden original.
func uniqueNonEmpty(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
