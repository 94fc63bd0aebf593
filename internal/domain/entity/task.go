package entity

import (
	"strings"
	"time"
)

// TaskState estado de una tarea. Las transiciones son libres entre los tres valores.
type TaskState string

const (
	TaskPending    TaskState = "pending"
	TaskInProgress TaskState = "in-progress"
	TaskCompleted  TaskState = "completed"
)

// TaskStates devuelve los estados en el orden del flujo natural.
func TaskStates() []TaskState {
	return []TaskState{TaskPending, TaskInProgress, TaskCompleted}
}

// Valid indica si s es uno de los tres estados canónicos.
func (s TaskState) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

// Label etiqueta en español para la vista.
func (s TaskState) Label() string {
	switch s {
	case TaskInProgress:
		return "En Progreso"
	case TaskCompleted:
		return "Completada"
	default:
		return "Pendiente"
	}
}

// Legacy nombre del estado en la convención antigua (estado).
func (s TaskState) Legacy() string {
	switch s {
	case TaskInProgress:
		return "en-progreso"
	case TaskCompleted:
		return "completada"
	default:
		return "pendiente"
	}
}

// ParseTaskState acepta la convención canónica y la antigua; ok=false si no reconoce el valor.
func ParseTaskState(s string) (TaskState, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending", "pendiente":
		return TaskPending, true
	case "in-progress", "in_progress", "en-progreso", "en_progreso":
		return TaskInProgress, true
	case "completed", "completada":
		return TaskCompleted, true
	}
	return TaskPending, false
}

// UserSummary usuario asignado a una tarea.
type UserSummary struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
}

// FullName nombre y apellido.
func (u UserSummary) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Task forma canónica de una tarea. La copia en el cliente es transitoria:
// el dueño es el backend.
type Task struct {
	ID            string
	Title         string
	Description   string
	State         TaskState
	AssignedUsers []UserSummary
	CreatedAt     *time.Time
}

// IsAssignedTo indica si userID ya figura entre los asignados.
func (t *Task) IsAssignedTo(userID string) bool {
	for _, u := range t.AssignedUsers {
		if u.ID == userID {
			return true
		}
	}
	return false
}
