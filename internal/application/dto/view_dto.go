package dto

import (
	"math"

	"github.com/jhoicas/Gestor-Tareas/internal/domain/access"
)

// DashboardView vista de "Mis Tareas". Stale indica que la acción se aplicó
// pero la lista no pudo recargarse.
type DashboardView struct {
	Username     string        `json:"username"`
	Search       string        `json:"search"`
	Tasks        []TaskView    `json:"tasks"`
	Counts       TaskCounts    `json:"counts"`
	Capabilities access.Flags  `json:"capabilities"`
	Notification *Notification `json:"notification,omitempty"`
	Stale        bool          `json:"stale,omitempty"`
}

// TaskStats resumen del panel de administración. Los porcentajes son enteros
// redondeados sobre el total (0 sin tareas).
type TaskStats struct {
	TaskCounts
	PendingPct     int     `json:"pending_pct"`
	InProgressPct  int     `json:"in_progress_pct"`
	CompletedPct   int     `json:"completed_pct"`
	CompletionRate float64 `json:"completion_rate"`
}

// NewTaskStats calcula los porcentajes a partir de los contadores.
func NewTaskStats(c TaskCounts) TaskStats {
	s := TaskStats{TaskCounts: c}
	if c.Total == 0 {
		return s
	}
	s.PendingPct = percent(c.Pending, c.Total)
	s.InProgressPct = percent(c.InProgress, c.Total)
	s.CompletedPct = percent(c.Completed, c.Total)
	s.CompletionRate = float64(c.Completed) / float64(c.Total)
	return s
}

func percent(n, total int) int {
	return int(math.Round(float64(n) * 100 / float64(total)))
}

// AdminOverview panel principal de administración.
type AdminOverview struct {
	Profile ProfileView `json:"profile"`
	Stats   TaskStats   `json:"stats"`
	Users   UserStats   `json:"users"`
}

// AdminTaskBoard tablero de tareas de administración. Stale como en DashboardView.
type AdminTaskBoard struct {
	Search       string          `json:"search"`
	Tasks        []TaskView      `json:"tasks"`
	Users        []AdminUserView `json:"users"`
	SelectedTask *TaskView       `json:"selected_task,omitempty"`
	Capabilities access.Flags    `json:"capabilities"`
	Notification *Notification   `json:"notification,omitempty"`
	Stale        bool            `json:"stale,omitempty"`
}

// UserDirectory consola de usuarios: activos, eliminados y catálogo de roles.
type UserDirectory struct {
	Search       string          `json:"search"`
	Active       []AdminUserView `json:"active"`
	Deleted      []AdminUserView `json:"deleted"`
	Roles        []string        `json:"roles"`
	Stats        UserStats       `json:"stats"`
	Capabilities access.Flags    `json:"capabilities"`
}

// MutationResult respuesta de una acción de las vistas: aviso más el registro
// afectado. Stale indica que la acción se aplicó pero Data no pudo recargarse.
type MutationResult[T any] struct {
	Data         T             `json:"data"`
	Notification *Notification `json:"notification"`
	Stale        bool          `json:"stale,omitempty"`
}
