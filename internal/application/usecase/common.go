package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Gestor-Tareas/internal/application/dto"
	"github.com/jhoicas/Gestor-Tareas/internal/application/ports"
	"github.com/jhoicas/Gestor-Tareas/internal/domain"
	"github.com/jhoicas/Gestor-Tareas/internal/domain/access"
	"github.com/jhoicas/Gestor-Tareas/internal/domain/entity"
)

// Títulos de los avisos de las vistas.
const (
	titleTaskCreated    = "Tarea creada"
	titleTaskUpdated    = "Tarea actualizada"
	titleStateUpdated   = "Estado actualizado"
	titleUserAssigned   = "Usuario asignado"
	titleUserRemoved    = "Usuario removido"
	titleUserCreated    = "Usuario creado"
	titleUserUpdated    = "Usuario actualizado"
	titleUserDeleted    = "Usuario eliminado"
	titleUserRestored   = "Usuario restaurado"
	titleRoleUpdated    = "Rol actualizado"
	titleRoleRemoved    = "Rol removido"
	titleNoChanges      = "Sin cambios"
	msgTitleRequired    = "El título es obligatorio"
	msgInvalidState     = "Estado de tarea inválido"
	msgUserRequired     = "Debe seleccionar un usuario"
	msgAllFields        = "Todos los campos son obligatorios"
	msgPasswordRequired = "La contraseña es obligatoria para nuevos usuarios"
	msgRoleRequired     = "Debe seleccionar un rol"
	msgUnknownRole      = "Rol inexistente"
)

// authorize ErrForbidden si el principal no cumple la capacidad. Se evalúa
// antes de cualquier llamada al backend. Un principal nil, o un *session.Store
// nil dentro de la interfaz, resuelve sin roles y no cumple ninguna.
func authorize(p ports.Principal, c access.Capability) error {
	if p == nil || !c.SatisfiedBy(p) {
		return fmt.Errorf("%w: se requiere %s", domain.ErrForbidden, describe(c))
	}
	return nil
}

func describe(c access.Capability) string {
	switch {
	case c.Permission != "" && c.Role != "":
		return fmt.Sprintf("permiso %s y rol %s", c.Permission, c.Role)
	case c.Role != "":
		return "rol " + c.Role
	default:
		return "permiso " + string(c.Permission)
	}
}

// ProfileOf perfil de la sesión con sus banderas.
func ProfileOf(p ports.Principal) dto.ProfileView {
	v := dto.ProfileView{
		ID:           p.UserID(),
		DisplayName:  p.Username(),
		Roles:        p.Roles(),
		Capabilities: access.Capabilities(p),
	}
	if prof := p.Profile(); prof != nil {
		v.Email = prof.Email
		v.FirstName = prof.FirstName
		v.LastName = prof.LastName
	}
	return v
}

// fold normaliza para comparar sin mayúsculas ni acentos ("Configuración" ~ "configuracion").
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return cases.Fold().String(out)
}

func containsFolded(haystack, needle string) bool {
	return strings.Contains(fold(haystack), needle)
}

// FilterTasks filtra por título o descripción; una búsqueda vacía devuelve todo.
func FilterTasks(tasks []dto.TaskView, search string) []dto.TaskView {
	q := fold(strings.TrimSpace(search))
	out := make([]dto.TaskView, 0, len(tasks))
	for _, t := range tasks {
		if q == "" || containsFolded(t.Title, q) || containsFolded(t.Description, q) {
			out = append(out, t)
		}
	}
	return out
}

// FilterUsers filtra por nombre, apellido o correo.
func FilterUsers(users []dto.AdminUserView, search string) []dto.AdminUserView {
	q := fold(strings.TrimSpace(search))
	out := make([]dto.AdminUserView, 0, len(users))
	for _, u := range users {
		if q == "" || containsFolded(u.FirstName, q) || containsFolded(u.LastName, q) || containsFolded(u.Email, q) {
			out = append(out, u)
		}
	}
	return out
}

// parseState estado del formulario; vacío equivale a pending.
func parseState(raw string) (entity.TaskState, error) {
	if strings.TrimSpace(raw) == "" {
		return entity.TaskPending, nil
	}
	st, ok := entity.ParseTaskState(raw)
	if !ok {
		return "", domain.Invalid(msgInvalidState)
	}
	return st, nil
}

// taskFields valida título y estado del formulario de tareas.
func taskFields(form dto.TaskForm) (title, description string, state entity.TaskState, err error) {
	title = strings.TrimSpace(form.Title)
	if title == "" {
		return "", "", "", domain.Invalid(msgTitleRequired)
	}
	state, err = parseState(form.State)
	if err != nil {
		return "", "", "", err
	}
	return title, strings.TrimSpace(form.Description), state, nil
}

// sharedToken token de la sesión para las consultas en paralelo de una vista.
// Las goroutines solo leen la copia; un 401 queda marcado y la sesión se
// expira después, en la goroutine de la petición.
type sharedToken struct {
	token   string
	expired atomic.Bool
}

func shareToken(p ports.TokenSource) *sharedToken {
	return &sharedToken{token: p.Token()}
}

func (t *sharedToken) Token() string { return t.token }

func (t *sharedToken) Expire(context.Context) { t.expired.Store(true) }

// settle expira la sesión si alguna consulta recibió un 401. Llamar cuando
// todas las goroutines hayan terminado.
func (t *sharedToken) settle(ctx context.Context, p ports.TokenSource) {
	if t.expired.Load() {
		p.Expire(ctx)
	}
}

type result[T any] struct {
	val T
	err error
}

// async lanza fn en una goroutine; el canal tiene buffer para que la goroutine
// termine aunque nadie lea el resultado.
func async[T any](fn func() (T, error)) <-chan result[T] {
	ch := make(chan result[T], 1)
	go func() {
		v, err := fn()
		ch <- result[T]{val: v, err: err}
	}()
	return ch
}
