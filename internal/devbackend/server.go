package devbackend

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Gestor-Tareas/internal/domain/access"
	"github.com/jhoicas/Gestor-Tareas/internal/domain/entity"
	"github.com/jhoicas/Gestor-Tareas/pkg/jwt"
	"github.com/jhoicas/Gestor-Tareas/pkg/logger"
)

const (
	localUser = "dev_user"
	issuer    = "gestor-devbackend"
)

// Config parámetros del backend de desarrollo.
type Config struct {
	JWTSecret     string
	JWTExpiration int // minutos
	AdminEmail    string
	AdminPassword string
	// BcryptCost 0 usa bcrypt.DefaultCost.
	BcryptCost int
	// SkipSamples no siembra las tareas de ejemplo.
	SkipSamples bool
}

// Server backend en memoria.
type Server struct {
	cfg   Config
	store *store
	log   *logger.Logger
	admin string
}

// New crea el backend y siembra el administrador y las tareas de ejemplo.
func New(cfg Config, log *logger.Logger) (*Server, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("devbackend: JWTSecret vacío")
	}
	if cfg.JWTExpiration <= 0 {
		cfg.JWTExpiration = 60
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	s := &Server{cfg: cfg, store: newStore(cfg.BcryptCost), log: log}
	if err := s.seed(); err != nil {
		return nil, err
	}
	return s, nil
}

// AdminID id del administrador sembrado.
func (s *Server) AdminID() string { return s.admin }

// CreateUser alta directa (semillas de tests y de la CLI), sin pasar por HTTP.
func (s *Server) CreateUser(firstName, lastName, email, password string, roles ...string) (string, error) {
	u, err := s.store.createUser(newUser{
		FirstName: firstName, LastName: lastName, Email: email, Password: password, Roles: roles,
	})
	if err != nil {
		return "", err
	}
	return u.ID, nil
}

// IssueToken firma un token para el usuario (tests).
func (s *Server) IssueToken(userID string) (string, error) {
	u, ok := s.store.activeUser(userID)
	if !ok {
		return "", errNotFound
	}
	return jwt.Generate(s.cfg.JWTSecret, u.ID, u.Roles, issuer, s.cfg.JWTExpiration)
}

func (s *Server) seed() error {
	id, err := s.CreateUser("Admin", "Sistema", s.cfg.AdminEmail, s.cfg.AdminPassword, access.RoleAdministrador)
	if err != nil {
		return err
	}
	s.admin = id
	if s.cfg.SkipSamples {
		return nil
	}
	samples := []struct {
		title, description string
		state              entity.TaskState
		assigned           bool
	}{
		{"Implementar autenticación", "Desarrollar sistema de login y registro de usuarios", entity.TaskCompleted, true},
		{"Diseñar interfaz de usuario", "Crear mockups y prototipos para la aplicación", entity.TaskInProgress, true},
		{"Configurar base de datos", "Establecer conexión y esquemas de la base de datos", entity.TaskPending, true},
		{"Implementar API REST", "Desarrollar endpoints para operaciones CRUD", entity.TaskInProgress, true},
		{"Testing y QA", "Realizar pruebas unitarias e integración", entity.TaskPending, false},
	}
	for _, t := range samples {
		userID := ""
		if t.assigned {
			userID = id
		}
		if _, err := s.store.createTask(t.title, t.description, t.state, userID); err != nil {
			return err
		}
	}
	return nil
}

// App construye la aplicación Fiber con la superficie REST.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "gestor-devbackend",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return detail(c, code, err.Error())
		},
	})

	app.Post("/users/login", s.login)

	authed := app.Group("", s.requireToken)
	authed.Get("/tasks", s.listTasks)
	authed.Get("/tasks/:id", s.getTask)
	authed.Post("/tasks", s.createTask)
	authed.Put("/tasks/:id", s.updateTask)
	authed.Post("/tasks/:id/assign", s.assignUser)
	authed.Delete("/tasks/:id/assign/:userId", s.unassignUser)
	authed.Get("/users/simple", s.listUserSummaries)

	admin := authed.Group("", s.requireAdmin)
	admin.Get("/users", s.listUsers(false))
	admin.Get("/users/deleted", s.listUsers(true))
	admin.Post("/users", s.createUser)
	admin.Put("/users/:id", s.updateUser)
	admin.Delete("/users/:id", s.deleteUser)
	admin.Post("/users/:id/restore", s.restoreUser)
	admin.Post("/users/:id/roles", s.assignRole)
	admin.Delete("/users/:id/roles/:role", s.removeRole)
	admin.Get("/roles", s.listRoles)

	return app
}

// detail responde con la forma de error de FastAPI.
func detail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"detail": msg})
}

func storeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errNotFound):
		return detail(c, fiber.StatusNotFound, "Recurso no encontrado")
	case errors.Is(err, errEmailTaken):
		return detail(c, fiber.StatusBadRequest, "El correo ya está registrado")
	case errors.Is(err, errAlreadyAssigned):
		return detail(c, fiber.StatusBadRequest, "El usuario ya está asignado a esta tarea")
	case errors.Is(err, errNotAssigned):
		return detail(c, fiber.StatusNotFound, "El usuario no está asignado a esta tarea")
	case errors.Is(err, errUnknownRole):
		return detail(c, fiber.StatusBadRequest, "Rol inexistente")
	case errors.Is(err, errInvalidTaskState):
		return detail(c, fiber.StatusUnprocessableEntity, "Estado inválido")
	}
	return detail(c, fiber.StatusInternalServerError, err.Error())
}

// ── Middlewares ──────────────────────────────────────────────────────────────

func (s *Server) requireToken(c *fiber.Ctx) error {
	h := c.Get(fiber.HeaderAuthorization)
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return detail(c, fiber.StatusUnauthorized, "Not authenticated")
	}
	userID, _, err := jwt.Parse(s.cfg.JWTSecret, strings.TrimSpace(parts[1]))
	if err != nil {
		return detail(c, fiber.StatusUnauthorized, "Token inválido o expirado")
	}
	u, ok := s.store.activeUser(userID)
	if !ok {
		return detail(c, fiber.StatusUnauthorized, "Token inválido o expirado")
	}
	c.Locals(localUser, u)
	return c.Next()
}

// requireAdmin usa los roles actuales del usuario, no los del token.
func (s *Server) requireAdmin(c *fiber.Ctx) error {
	u, _ := c.Locals(localUser).(*userRecord)
	if u == nil || !access.HasRole(u.Roles, access.RoleAdministrador) {
		return detail(c, fiber.StatusForbidden, "Se requiere rol de administrador")
	}
	return c.Next()
}

// ── Forma JSON ───────────────────────────────────────────────────────────────

type userJSON struct {
	ID        string          `json:"id"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Emails    string          `json:"emails"`
	Ages      int             `json:"ages"`
	Roles     []string        `json:"roles"`
	Tasks     []taskBriefJSON `json:"tasks,omitempty"`
	CreateAt  time.Time       `json:"create_at"`
	UpdateAt  time.Time       `json:"update_at"`
	DeleteAt  *time.Time      `json:"delete_at"`
}

type userRefJSON struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Emails    string `json:"emails"`
}

type taskBriefJSON struct {
	ID          int              `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	State       entity.TaskState `json:"state"`
	CreatedAt   time.Time        `json:"created_at"`
}

type taskJSON struct {
	taskBriefJSON
	Users []userRefJSON `json:"users"`
}

func (s *Server) userJSON(u *userRecord, withTasks bool) userJSON {
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}
	out := userJSON{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Emails:    u.Email,
		Ages:      u.Age,
		Roles:     roles,
		CreateAt:  u.CreateAt,
		UpdateAt:  u.UpdateAt,
		DeleteAt:  u.DeleteAt,
	}
	if withTasks {
		out.Tasks = []taskBriefJSON{}
		for _, t := range s.store.tasksOf(u.ID) {
			out.Tasks = append(out.Tasks, brief(t))
		}
	}
	return out
}

func brief(t *taskRecord) taskBriefJSON {
	return taskBriefJSON{ID: t.ID, Title: t.Title, Description: t.Description, State: t.State, CreatedAt: t.CreatedAt}
}

func (s *Server) taskJSON(t *taskRecord) taskJSON {
	users := make([]userRefJSON, 0, len(t.UserIDs))
	for _, u := range s.store.userSummaries(t.UserIDs) {
		users = append(users, userRefJSON{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Emails: u.Email})
	}
	return taskJSON{taskBriefJSON: brief(t), Users: users}
}

// ── Handlers: auth ───────────────────────────────────────────────────────────

func (s *Server) login(c *fiber.Ctx) error {
	var in struct {
		Emails   string `json:"emails"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&in); err != nil || in.Emails == "" || in.Password == "" {
		return detail(c, fiber.StatusUnprocessableEntity, "emails y password son requeridos")
	}
	u, err := s.store.authenticate(in.Emails, in.Password)
	if err != nil {
		return detail(c, fiber.StatusUnauthorized, "Credenciales incorrectas")
	}
	token, err := jwt.Generate(s.cfg.JWTSecret, u.ID, u.Roles, issuer, s.cfg.JWTExpiration)
	if err != nil {
		return detail(c, fiber.StatusInternalServerError, err.Error())
	}
	s.log.Debug().Str("user_id", u.ID).Msg("devbackend: login")
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}
	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
		"user_id":      u.ID,
		"user_emails":  u.Email,
		"first_name":   u.FirstName,
		"last_name":    u.LastName,
		"roles":        roles,
	})
}

// ── Handlers: tareas ─────────────────────────────────────────────────────────

func taskID(c *fiber.Ctx) (int, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	return id, err == nil
}

func (s *Server) listTasks(c *fiber.Ctx) error {
	tasks := s.store.listTasks()
	out := make([]taskJSON, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, s.taskJSON(t))
	}
	return c.JSON(out)
}

func (s *Server) getTask(c *fiber.Ctx) error {
	id, ok := taskID(c)
	if !ok {
		return detail(c, fiber.StatusNotFound, "Tarea no encontrada")
	}
	t, ok := s.store.getTask(id)
	if !ok {
		return detail(c, fiber.StatusNotFound, "Tarea no encontrada")
	}
	return c.JSON(s.taskJSON(t))
}

func (s *Server) createTask(c *fiber.Ctx) error {
	var in struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		State       string `json:"state"`
		UserID      string `json:"user_id"`
	}
	if err := c.BodyParser(&in); err != nil {
		return detail(c, fiber.StatusUnprocessableEntity, "cuerpo inválido")
	}
	if strings.TrimSpace(in.Title) == "" {
		return detail(c, fiber.StatusUnprocessableEntity, "title es requerido")
	}
	state := entity.TaskPending
	if in.State != "" {
		state = entity.TaskState(in.State)
	}
	t, err := s.store.createTask(in.Title, in.Description, state, in.UserID)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(s.taskJSON(t))
}

func (s *Server) updateTask(c *fiber.Ctx) error {
	id, ok := taskID(c)
	if !ok {
		return detail(c, fiber.StatusNotFound, "Tarea no encontrada")
	}
	var in struct {
		Title       *string           `json:"title"`
		Description *string           `json:"description"`
		State       *entity.TaskState `json:"state"`
	}
	if err := c.BodyParser(&in); err != nil {
		return detail(c, fiber.StatusUnprocessableEntity, "cuerpo inválido")
	}
	t, err := s.store.updateTask(id, taskPatch{Title: in.Title, Description: in.Description, State: in.State})
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(s.taskJSON(t))
}

func (s *Server) assignUser(c *fiber.Ctx) error {
	id, ok := taskID(c)
	if !ok {
		return detail(c, fiber.StatusNotFound, "Tarea no encontrada")
	}
	var in struct {
		UserID string `json:"user_id"`
	}
	if err := c.BodyParser(&in); err != nil || in.UserID == "" {
		return detail(c, fiber.StatusUnprocessableEntity, "user_id es requerido")
	}
	t, err := s.store.assign(id, in.UserID)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(s.taskJSON(t))
}

func (s *Server) unassignUser(c *fiber.Ctx) error {
	id, ok := taskID(c)
	if !ok {
		return detail(c, fiber.StatusNotFound, "Tarea no encontrada")
	}
	t, err := s.store.unassign(id, c.Params("userId"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(s.taskJSON(t))
}

// ── Handlers: usuarios ───────────────────────────────────────────────────────

func (s *Server) listUsers(deleted bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users := s.store.listUsers(deleted)
		out := make([]userJSON, 0, len(users))
		for _, u := range users {
			out = append(out, s.userJSON(u, true))
		}
		return c.JSON(out)
	}
}

func (s *Server) listUserSummaries(c *fiber.Ctx) error {
	users := s.store.listUsers(false)
	out := make([]fiber.Map, 0, len(users))
	for _, u := range users {
		roles := u.Roles
		if roles == nil {
			roles = []string{}
		}
		out = append(out, fiber.Map{
			"id": u.ID, "emails": u.Email, "firstName": u.FirstName, "lastName": u.LastName, "roles": roles,
		})
	}
	return c.JSON(out)
}

func (s *Server) createUser(c *fiber.Ctx) error {
	var in struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Emails    string `json:"emails"`
		Password  string `json:"password"`
		Ages      int    `json:"ages"`
	}
	if err := c.BodyParser(&in); err != nil {
		return detail(c, fiber.StatusUnprocessableEntity, "cuerpo inválido")
	}
	if in.FirstName == "" || in.LastName == "" || in.Emails == "" || in.Password == "" {
		return detail(c, fiber.StatusUnprocessableEntity, "firstName, lastName, emails y password son requeridos")
	}
	u, err := s.store.createUser(newUser{
		FirstName: in.FirstName, LastName: in.LastName, Email: in.Emails, Password: in.Password, Age: in.Ages,
		Roles: []string{access.RoleEmpleado},
	})
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(s.userJSON(u, true))
}

func (s *Server) updateUser(c *fiber.Ctx) error {
	var in struct {
		FirstName *string `json:"firstName"`
		LastName  *string `json:"lastName"`
		Emails    *string `json:"emails"`
		Ages      *int    `json:"ages"`
		Password  *string `json:"password"`
	}
	if err := c.BodyParser(&in); err != nil {
		return detail(c, fiber.StatusUnprocessableEntity, "cuerpo inválido")
	}
	u, err := s.store.updateUser(c.Params("id"), userPatch{
		FirstName: in.FirstName, LastName: in.LastName, Email: in.Emails, Age: in.Ages, Password: in.Password,
	})
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(s.userJSON(u, true))
}

func (s *Server) deleteUser(c *fiber.Ctx) error {
	if _, err := s.store.setDeleted(c.Params("id"), true); err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Usuario eliminado"})
}

func (s *Server) restoreUser(c *fiber.Ctx) error {
	u, err := s.store.setDeleted(c.Params("id"), false)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(s.userJSON(u, true))
}

func (s *Server) assignRole(c *fiber.Ctx) error {
	var in struct {
		RoleName string `json:"role_name"`
	}
	if err := c.BodyParser(&in); err != nil || in.RoleName == "" {
		return detail(c, fiber.StatusUnprocessableEntity, "role_name es requerido")
	}
	u, err := s.store.assignRole(c.Params("id"), in.RoleName)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(s.userJSON(u, true))
}

func (s *Server) removeRole(c *fiber.Ctx) error {
	u, err := s.store.removeRole(c.Params("id"), c.Params("role"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(s.userJSON(u, true))
}

func (s *Server) listRoles(c *fiber.Ctx) error {
	roles := s.store.listRoles()
	out := make([]fiber.Map, 0, len(roles))
	for _, r := range roles {
		out = append(out, fiber.Map{"id": r.ID, "rol_nombre": r.Name, "rol_permisos": r.Permissions})
	}
	return c.JSON(out)
}
