package backend

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/jhoicas/Gestor-Tareas/internal/application/dto"
	"github.com/jhoicas/Gestor-Tareas/internal/domain/entity"
)

// ── Formas del backend ───────────────────────────────────────────────────────

// flexID acepta ids numéricos o string.
type flexID string

func (id *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = flexID(n.String())
	return nil
}

// flexTime acepta RFC3339 y las fechas sin zona que devuelve el backend.
type flexTime struct {
	t *time.Time
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999",
	"2006-01-02",
}

func (ft *flexTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil || s == "" {
		ft.t = nil
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			ft.t = &t
			return nil
		}
	}
	// Fecha ilegible: se ignora antes que romper el listado.
	ft.t = nil
	return nil
}

type wireUser struct {
	ID        flexID     `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Emails    string     `json:"emails"`
	Email     string     `json:"email"`
	Ages      *int       `json:"ages"`
	Roles     []string   `json:"roles"`
	Tasks     []wireTask `json:"tasks"`
	CreateAt  flexTime   `json:"create_at"`
	UpdateAt  flexTime   `json:"update_at"`
	DeleteAt  flexTime   `json:"delete_at"`
}

type wireTask struct {
	ID                flexID          `json:"id"`
	Title             string          `json:"title"`
	Titulo            string          `json:"titulo"`
	Description       string          `json:"description"`
	Descripcion       string          `json:"descripcion"`
	State             string          `json:"state"`
	Estado            string          `json:"estado"`
	Users             []wireUser      `json:"users"`
	UsuariosAsignados json.RawMessage `json:"usuariosAsignados"`
	CreatedAt         flexTime        `json:"created_at"`
	FechaCreacion     flexTime        `json:"fechaCreacion"`
}

type wireRole struct {
	ID          int    `json:"id"`
	Name        string `json:"rol_nombre"`
	Permissions string `json:"rol_permisos"`
}

// ── Normalización ────────────────────────────────────────────────────────────

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func (w wireUser) summary() entity.UserSummary {
	return entity.UserSummary{
		ID:        string(w.ID),
		FirstName: w.FirstName,
		LastName:  w.LastName,
		Email:     firstNonEmpty(w.Emails, w.Email),
	}
}

// assigned usuarios asignados en cualquiera de las dos convenciones, sin repetidos.
func (w wireTask) assigned() []entity.UserSummary {
	users := make([]entity.UserSummary, 0, len(w.Users))
	for _, u := range w.Users {
		users = append(users, u.summary())
	}
	if len(users) == 0 && len(w.UsuariosAsignados) > 0 {
		var objs []wireUser
		if err := json.Unmarshal(w.UsuariosAsignados, &objs); err == nil {
			for _, u := range objs {
				users = append(users, u.summary())
			}
		} else {
			var ids []flexID
			if err := json.Unmarshal(w.UsuariosAsignados, &ids); err == nil {
				for _, id := range ids {
					users = append(users, entity.UserSummary{ID: string(id)})
				}
			}
		}
	}
	return dedupeUsers(users)
}

func dedupeUsers(users []entity.UserSummary) []entity.UserSummary {
	seen := make(map[string]struct{}, len(users))
	out := users[:0]
	for _, u := range users {
		if u.ID == "" {
			continue
		}
		if _, ok := seen[u.ID]; ok {
			continue
		}
		seen[u.ID] = struct{}{}
		out = append(out, u)
	}
	return out
}

// task convierte la forma del backend (canónica o antigua) a entity.Task.
// Un estado desconocido queda como pending.
func (w wireTask) task() entity.Task {
	state, _ := entity.ParseTaskState(firstNonEmpty(w.State, w.Estado))
	created := w.CreatedAt.t
	if created == nil {
		created = w.FechaCreacion.t
	}
	return entity.Task{
		ID:            string(w.ID),
		Title:         firstNonEmpty(w.Title, w.Titulo),
		Description:   firstNonEmpty(w.Description, w.Descripcion),
		State:         state,
		AssignedUsers: w.assigned(),
		CreatedAt:     created,
	}
}

func (w wireTask) view() dto.TaskView {
	return dto.NewTaskView(w.task())
}

func (w wireTask) summaryView() dto.TaskSummaryView {
	t := w.task()
	return dto.TaskSummaryView{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		State:       t.State,
		StateLabel:  t.State.Label(),
	}
}

func taskViews(ws []wireTask) []dto.TaskView {
	out := make([]dto.TaskView, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.view())
	}
	return out
}

// user convierte la forma del backend; activo mientras no tenga delete_at.
func (w wireUser) user() entity.User {
	age := 0
	if w.Ages != nil {
		age = *w.Ages
	}
	return entity.User{
		ID:        string(w.ID),
		FirstName: w.FirstName,
		LastName:  w.LastName,
		Email:     firstNonEmpty(w.Emails, w.Email),
		Age:       age,
		Roles:     w.Roles,
		Active:    w.DeleteAt.t == nil,
		CreatedAt: w.CreateAt.t,
		UpdatedAt: w.UpdateAt.t,
	}
}

func (w wireUser) adminView() dto.AdminUserView {
	tasks := make([]dto.TaskSummaryView, 0, len(w.Tasks))
	for _, t := range w.Tasks {
		tasks = append(tasks, t.summaryView())
	}
	return dto.NewAdminUserView(w.user(), tasks)
}

func userViews(ws []wireUser, deleted bool) []dto.AdminUserView {
	out := make([]dto.AdminUserView, 0, len(ws))
	for _, w := range ws {
		v := w.adminView()
		if deleted {
			v.Active = false
		}
		out = append(out, v)
	}
	return out
}

func (w wireUser) summaryView() dto.UserSummaryView {
	s := w.summary()
	return dto.UserSummaryView{
		ID:        s.ID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Email:     s.Email,
		FullName:  s.FullName(),
	}
}

func (w wireRole) view() dto.RoleView {
	return dto.RoleView{ID: w.ID, Name: w.Name, Permissions: w.Permissions}
}
