package dto

import (
	"time"

	"github.com/jhoicas/Gestor-Tareas/internal/domain/entity"
)

// UserSummaryView usuario asignado tal como lo muestra la vista.
type UserSummaryView struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
}

// LegacyTask duplicado de campos con la convención antigua (titulo/estado).
// Solo existe en el borde; el modelo canónico es entity.Task.
type LegacyTask struct {
	Titulo            string   `json:"titulo"`
	Descripcion       string   `json:"descripcion"`
	Estado            string   `json:"estado"`
	UsuariosAsignados []string `json:"usuariosAsignados"`
	FechaCreacion     string   `json:"fechaCreacion,omitempty"`
}

// TaskView registro de tarea normalizado para la vista.
type TaskView struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	State         entity.TaskState  `json:"state"`
	StateLabel    string            `json:"state_label"`
	AssignedUsers []UserSummaryView `json:"users"`
	CreatedAt     *time.Time        `json:"created_at,omitempty"`
	LegacyTask
}

// NewTaskView construye la vista a partir de la tarea canónica, rellenando
// la etiqueta de estado y los campos antiguos.
func NewTaskView(t entity.Task) TaskView {
	users := make([]UserSummaryView, 0, len(t.AssignedUsers))
	ids := make([]string, 0, len(t.AssignedUsers))
	for _, u := range t.AssignedUsers {
		users = append(users, UserSummaryView{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			FullName:  u.FullName(),
		})
		ids = append(ids, u.ID)
	}
	v := TaskView{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		State:         t.State,
		StateLabel:    t.State.Label(),
		AssignedUsers: users,
		CreatedAt:     t.CreatedAt,
		LegacyTask: LegacyTask{
			Titulo:            t.Title,
			Descripcion:       t.Description,
			Estado:            t.State.Legacy(),
			UsuariosAsignados: ids,
		},
	}
	if t.CreatedAt != nil {
		v.FechaCreacion = t.CreatedAt.Format("2006-01-02")
	}
	return v
}

// Task devuelve la forma canónica de la vista.
func (v TaskView) Task() entity.Task {
	users := make([]entity.UserSummary, 0, len(v.AssignedUsers))
	for _, u := range v.AssignedUsers {
		users = append(users, entity.UserSummary{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email})
	}
	return entity.Task{
		ID:            v.ID,
		Title:         v.Title,
		Description:   v.Description,
		State:         v.State,
		AssignedUsers: users,
		CreatedAt:     v.CreatedAt,
	}
}

// IsAssignedTo indica si userID figura entre los asignados.
func (v TaskView) IsAssignedTo(userID string) bool {
	for _, u := range v.AssignedUsers {
		if u.ID == userID {
			return true
		}
	}
	return false
}

// TaskForm formulario de creación/edición de tareas de las vistas.
type TaskForm struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	State         string   `json:"state"`
	AssignedUsers []string `json:"assigned_users"`
}

// StateChangeRequest formulario de cambio de estado.
type StateChangeRequest struct {
	State string `json:"state"`
}

// AssignUserRequest cuerpo de POST /tasks/{id}/assign.
type AssignUserRequest struct {
	UserID string `json:"user_id"`
}

// CreateTaskRequest cuerpo de POST /tasks en el backend.
type CreateTaskRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	State       entity.TaskState `json:"state"`
	UserID      string           `json:"user_id"`
}

// UpdateTaskRequest cuerpo de PUT /tasks/{id}; los campos nil no se envían.
type UpdateTaskRequest struct {
	Title       *string           `json:"title,omitempty"`
	Description *string           `json:"description,omitempty"`
	State       *entity.TaskState `json:"state,omitempty"`
}

// TaskCounts contadores por estado.
type TaskCounts struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
}

// CountTasks cuenta las tareas por estado.
func CountTasks(tasks []TaskView) TaskCounts {
	c := TaskCounts{Total: len(tasks)}
	for _, t := range tasks {
		switch t.State {
		case entity.TaskInProgress:
			c.InProgress++
		case entity.TaskCompleted:
			c.Completed++
		default:
			c.Pending++
		}
	}
	return c
}
