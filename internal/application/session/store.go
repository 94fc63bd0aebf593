// Package session mantiene la identidad autenticada del navegador: token,
// id de usuario y perfil, persistidos a través de un driver intercambiable.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/jhoicas/Gestor-Tareas/internal/application/ports"
	"github.com/jhoicas/Gestor-Tareas/internal/domain"
	"github.com/jhoicas/Gestor-Tareas/internal/domain/access"
	"github.com/jhoicas/Gestor-Tareas/internal/domain/entity"
	"github.com/jhoicas/Gestor-Tareas/pkg/logger"
)

// Claves lógicas de la sesión.
const (
	KeyAccessToken = "access_token"
	KeyUserID      = "user_id"
	KeyUserProfile = "user_profile"
)

// Mensajes de login que ve el usuario.
const (
	msgAuthFailed  = "Error de autenticación"
	msgUnreachable = "Error de conexión con el servidor"
)

// Values contenido persistido de una sesión.
type Values map[string]string

// CookieJar acceso a las cookies de la petición/respuesta actual.
// maxAge 0 significa cookie de sesión del navegador (sin Expires).
type CookieJar interface {
	Cookie(name string) string
	SetCookie(name, value string, maxAge time.Duration)
	ExpireCookie(name string)
}

// Persistence driver de almacenamiento de la sesión (cookie, redis, postgres).
// Save siempre crea una sesión nueva; Clear borra la referenciada por la petición.
type Persistence interface {
	Load(ctx context.Context, jar CookieJar) (Values, error)
	Save(ctx context.Context, jar CookieJar, values Values) error
	Clear(ctx context.Context, jar CookieJar) error
}

// Manager abre un Store por petición sobre el driver configurado.
type Manager struct {
	persistence Persistence
	auth        ports.AuthGateway
	log         *logger.Logger
}

// NewManager crea el gestor de sesiones.
func NewManager(persistence Persistence, auth ports.AuthGateway, log *logger.Logger) *Manager {
	return &Manager{persistence: persistence, auth: auth, log: log}
}

// Open carga la sesión de la petición. Una sesión ilegible se trata como anónima.
func (m *Manager) Open(ctx context.Context, jar CookieJar) *Store {
	s := &Store{m: m, jar: jar}
	values, err := m.persistence.Load(ctx, jar)
	if err != nil {
		m.log.Warn().Err(err).Msg("sesión ilegible, se continúa como anónimo")
		return s
	}
	s.restore(values)
	return s
}

// Store sesión de una petición. Es seguro para uso concurrente: las consultas
// en paralelo de una vista comparten el mismo Store. Los métodos de lectura
// aceptan un receptor nil y lo tratan como sesión anónima.
type Store struct {
	m   *Manager
	jar CookieJar

	mu      sync.Mutex
	values  Values
	profile *entity.Profile
}

var _ ports.Principal = (*Store)(nil)

func (s *Store) restore(values Values) {
	if values[KeyAccessToken] == "" {
		return
	}
	s.values = values
	raw := values[KeyUserProfile]
	if raw == "" {
		return
	}
	var p entity.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		s.m.log.Warn().Err(err).Msg("perfil de sesión ilegible")
		return
	}
	s.profile = &p
}

// Login autentica contra el backend y persiste token y perfil.
// Cualquier fallo se devuelve como *domain.AuthenticationError.
func (s *Store) Login(ctx context.Context, creds entity.Credentials) (*entity.Session, error) {
	if s == nil {
		return nil, &domain.AuthenticationError{Message: msgAuthFailed, Err: domain.ErrNotAuthenticated}
	}
	resp, err := s.m.auth.Login(ctx, creds)
	if err != nil {
		return nil, authenticationError(err)
	}

	profile := resp.Profile()
	raw, err := json.Marshal(profile)
	if err != nil {
		return nil, &domain.AuthenticationError{Message: msgAuthFailed, Err: err}
	}
	values := Values{
		KeyAccessToken: resp.AccessToken,
		KeyUserID:      resp.UserID,
		KeyUserProfile: string(raw),
	}

	s.mu.Lock()
	if err := s.m.persistence.Clear(ctx, s.jar); err != nil {
		s.m.log.Warn().Err(err).Msg("no se pudo limpiar la sesión anterior")
	}
	if err := s.m.persistence.Save(ctx, s.jar, values); err != nil {
		s.mu.Unlock()
		return nil, &domain.AuthenticationError{Message: msgAuthFailed, Err: err}
	}
	s.values = values
	s.profile = &profile
	s.mu.Unlock()

	s.m.log.Info().Str("user_id", profile.ID).Strs("roles", profile.Roles).Msg("login")
	return s.Session(), nil
}

func authenticationError(err error) error {
	var authErr *domain.AuthenticationError
	if errors.As(err, &authErr) {
		return authErr
	}
	var netErr *domain.NetworkError
	if errors.As(err, &netErr) {
		return &domain.AuthenticationError{Message: msgUnreachable, Err: err}
	}
	var reqErr *domain.RequestFailedError
	if errors.As(err, &reqErr) && reqErr.Detail != "" {
		return &domain.AuthenticationError{Message: reqErr.Detail, Err: err}
	}
	return &domain.AuthenticationError{Message: msgAuthFailed, Err: err}
}

// Logout borra los tres campos sin condiciones. Es idempotente.
func (s *Store) Logout(ctx context.Context) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked(ctx)
}

// Expire cierra la sesión tras un 401 del backend. Si varias llamadas
// reciben el 401, solo la primera borra la sesión persistida.
func (s *Store) Expire(ctx context.Context) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tokenLocked() == "" {
		return
	}
	s.m.log.Warn().Str("user_id", s.userIDLocked()).Msg("token rechazado por el backend, sesión cerrada")
	s.clearLocked(ctx)
}

// clearLocked requiere s.mu.
func (s *Store) clearLocked(ctx context.Context) {
	if err := s.m.persistence.Clear(ctx, s.jar); err != nil {
		s.m.log.Warn().Err(err).Msg("logout: no se pudo borrar la sesión persistida")
	}
	s.values = nil
	s.profile = nil
}

func (s *Store) tokenLocked() string {
	return s.values[KeyAccessToken]
}

func (s *Store) userIDLocked() string {
	if id := s.values[KeyUserID]; id != "" {
		return id
	}
	if s.profile != nil {
		return s.profile.ID
	}
	return ""
}

func (s *Store) rolesLocked() []string {
	if s.profile == nil || len(s.profile.Roles) == 0 {
		return []string{}
	}
	return slices.Clone(s.profile.Roles)
}

// IsAuthenticated true si hay token.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// Token token bearer actual ("" sin sesión).
func (s *Store) Token() string {
	if s == nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokenLocked()
}

// UserID id del usuario ("" sin sesión).
func (s *Store) UserID() string {
	if s == nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userIDLocked()
}

// Username nombre para mostrar.
func (s *Store) Username() string {
	if s == nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.DisplayName()
}

// Roles copia de los roles de la sesión; nunca nil.
func (s *Store) Roles() []string {
	if s == nil {
		return []string{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rolesLocked()
}

// Profile copia del perfil, nil sin sesión.
func (s *Store) Profile() *entity.Profile {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil || s.tokenLocked() == "" {
		return nil
	}
	p := *s.profile
	p.Roles = s.rolesLocked()
	return &p
}

// Session instantánea de la identidad autenticada, nil si es anónima.
func (s *Store) Session() *entity.Session {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tokenLocked() == "" {
		return nil
	}
	sess := &entity.Session{
		SubjectID:   s.userIDLocked(),
		DisplayName: s.profile.DisplayName(),
		Roles:       s.rolesLocked(),
		Token:       s.tokenLocked(),
	}
	if s.profile != nil {
		sess.Email = s.profile.Email
	}
	return sess
}

// HasRole indica si la sesión tiene el rol.
func (s *Store) HasRole(role string) bool {
	return access.HasRole(s.Roles(), role)
}

// HasPermission resuelve el permiso con la tabla de roles.
func (s *Store) HasPermission(p access.Permission) bool {
	return access.Resolve(s.Roles(), p)
}
