// Package devbackend es una implementación en memoria de la API REST de tareas
// y usuarios, para desarrollo local y pruebas de extremo a extremo de los clientes.
package devbackend

import (
	"errors"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Gestor-Tareas/internal/domain/access"
	"github.com/jhoicas/Gestor-Tareas/internal/domain/entity"
)

var (
	errNotFound         = errors.New("no encontrado")
	errEmailTaken       = errors.New("el correo ya está registrado")
	errAlreadyAssigned  = errors.New("el usuario ya está asignado a esta tarea")
	errNotAssigned      = errors.New("el usuario no está asignado a esta tarea")
	errBadCredentials   = errors.New("credenciales incorrectas")
	errUnknownRole      = errors.New("rol inexistente")
	errInvalidTaskState = errors.New("estado inválido")
)

type userRecord struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Age          int
	PasswordHash []byte
	Roles        []string
	CreateAt     time.Time
	UpdateAt     time.Time
	DeleteAt     *time.Time
}

type taskRecord struct {
	ID          int
	Title       string
	Description string
	State       entity.TaskState
	UserIDs     []string
	CreatedAt   time.Time
}

type roleRecord struct {
	ID          int
	Name        string
	Permissions string
}

// store estado en memoria protegido por un RWMutex.
type store struct {
	mu         sync.RWMutex
	users      map[string]*userRecord
	tasks      map[int]*taskRecord
	nextTaskID int
	roles      []roleRecord
	bcryptCost int
	now        func() time.Time
}

func newStore(bcryptCost int) *store {
	s := &store{
		users:      map[string]*userRecord{},
		tasks:      map[int]*taskRecord{},
		nextTaskID: 1,
		bcryptCost: bcryptCost,
		now:        time.Now,
	}
	for i, r := range access.Roles() {
		perms := make([]string, 0)
		for _, p := range access.PermissionsFor(r) {
			perms = append(perms, string(p))
		}
		s.roles = append(s.roles, roleRecord{ID: i + 1, Name: r, Permissions: strings.Join(perms, ",")})
	}
	return s
}

// ── Usuarios ─────────────────────────────────────────────────────────────────

type newUser struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Age       int
	Roles     []string
}

func (s *store) createUser(in newUser) (*userRecord, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findByEmailLocked(in.Email) != nil {
		return nil, errEmailTaken
	}
	now := s.now()
	u := &userRecord{
		ID:           uuid.NewString(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Age:          in.Age,
		PasswordHash: hash,
		Roles:        slices.Clone(in.Roles),
		CreateAt:     now,
		UpdateAt:     now,
	}
	if u.Roles == nil {
		u.Roles = []string{}
	}
	s.users[u.ID] = u
	return u.clone(), nil
}

func (s *store) findByEmailLocked(email string) *userRecord {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

// authenticate compara la contraseña con bcrypt; los usuarios eliminados no entran.
func (s *store) authenticate(email, password string) (*userRecord, error) {
	s.mu.RLock()
	u := s.findByEmailLocked(email)
	var snapshot *userRecord
	if u != nil && u.DeleteAt == nil {
		snapshot = u.clone()
	}
	s.mu.RUnlock()
	if snapshot == nil {
		return nil, errBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword(snapshot.PasswordHash, []byte(password)); err != nil {
		return nil, errBadCredentials
	}
	return snapshot, nil
}

func (s *store) activeUser(id string) (*userRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok || u.DeleteAt != nil {
		return nil, false
	}
	return u.clone(), true
}

func (s *store) listUsers(deleted bool) []*userRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*userRecord, 0, len(s.users))
	for _, u := range s.users {
		if (u.DeleteAt != nil) == deleted {
			out = append(out, u.clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreateAt.Equal(out[j].CreateAt) {
			return out[i].Email < out[j].Email
		}
		return out[i].CreateAt.Before(out[j].CreateAt)
	})
	return out
}

type userPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Age       *int
	Password  *string
}

func (s *store) updateUser(id string, p userPatch) (*userRecord, error) {
	var hash []byte
	if p.Password != nil && *p.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(*p.Password), s.bcryptCost)
		if err != nil {
			return nil, err
		}
		hash = h
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, errNotFound
	}
	if p.Email != nil {
		if other := s.findByEmailLocked(*p.Email); other != nil && other.ID != id {
			return nil, errEmailTaken
		}
		u.Email = strings.ToLower(strings.TrimSpace(*p.Email))
	}
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Age != nil {
		u.Age = *p.Age
	}
	if hash != nil {
		u.PasswordHash = hash
	}
	u.UpdateAt = s.now()
	return u.clone(), nil
}

func (s *store) setDeleted(id string, deleted bool) (*userRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, errNotFound
	}
	now := s.now()
	if deleted {
		u.DeleteAt = &now
	} else {
		u.DeleteAt = nil
	}
	u.UpdateAt = now
	return u.clone(), nil
}

// assignRole reemplaza los roles del usuario por uno solo.
func (s *store) assignRole(id, role string) (*userRecord, error) {
	if !access.IsKnownRole(role) {
		return nil, errUnknownRole
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, errNotFound
	}
	u.Roles = []string{role}
	u.UpdateAt = s.now()
	return u.clone(), nil
}

func (s *store) removeRole(id, role string) (*userRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, errNotFound
	}
	idx := slices.Index(u.Roles, role)
	if idx < 0 {
		return nil, errNotFound
	}
	u.Roles = slices.Delete(u.Roles, idx, idx+1)
	u.UpdateAt = s.now()
	return u.clone(), nil
}

func (s *store) listRoles() []roleRecord {
	return slices.Clone(s.roles)
}

func (u *userRecord) clone() *userRecord {
	c := *u
	c.Roles = slices.Clone(u.Roles)
	if u.DeleteAt != nil {
		t := *u.DeleteAt
		c.DeleteAt = &t
	}
	return &c
}

// ── Tareas ───────────────────────────────────────────────────────────────────

func (s *store) createTask(title, description string, state entity.TaskState, userID string) (*taskRecord, error) {
	if !state.Valid() {
		return nil, errInvalidTaskState
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &taskRecord{
		ID:          s.nextTaskID,
		Title:       title,
		Description: description,
		State:       state,
		UserIDs:     []string{},
		CreatedAt:   s.now(),
	}
	if userID != "" {
		if _, ok := s.users[userID]; !ok {
			return nil, errNotFound
		}
		t.UserIDs = append(t.UserIDs, userID)
	}
	s.nextTaskID++
	s.tasks[t.ID] = t
	return t.clone(), nil
}

func (s *store) getTask(id int) (*taskRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, false
	}
	return t.clone(), true
}

func (s *store) listTasks() []*taskRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*taskRecord, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type taskPatch struct {
	Title       *string
	Description *string
	State       *entity.TaskState
}

func (s *store) updateTask(id int, p taskPatch) (*taskRecord, error) {
	if p.State != nil && !p.State.Valid() {
		return nil, errInvalidTaskState
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, errNotFound
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.State != nil {
		t.State = *p.State
	}
	return t.clone(), nil
}

func (s *store) assign(taskID int, userID string) (*taskRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[taskID]
	if !ok {
		return nil, errNotFound
	}
	if u, ok := s.users[userID]; !ok || u.DeleteAt != nil {
		return nil, errNotFound
	}
	if slices.Contains(t.UserIDs, userID) {
		return nil, errAlreadyAssigned
	}
	t.UserIDs = append(t.UserIDs, userID)
	return t.clone(), nil
}

func (s *store) unassign(taskID int, userID string) (*taskRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[taskID]
	if !ok {
		return nil, errNotFound
	}
	idx := slices.Index(t.UserIDs, userID)
	if idx < 0 {
		return nil, errNotAssigned
	}
	t.UserIDs = slices.Delete(t.UserIDs, idx, idx+1)
	return t.clone(), nil
}

// tasksOf tareas asignadas a un usuario.
func (s *store) tasksOf(userID string) []*taskRecord {
	all := s.listTasks()
	out := make([]*taskRecord, 0)
	for _, t := range all {
		if slices.Contains(t.UserIDs, userID) {
			out = append(out, t)
		}
	}
	return out
}

// userSummaries usuarios de una tarea; los ids sin usuario se omiten.
func (s *store) userSummaries(ids []string) []*userRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*userRecord, 0, len(ids))
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out = append(out, u.clone())
		}
	}
	return out
}

func (t *taskRecord) clone() *taskRecord {
	c := *t
	c.UserIDs = slices.Clone(t.UserIDs)
	return &c
}
