package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gorilla/securecookie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Gestor-Tareas/internal/application/session"
	"github.com/jhoicas/Gestor-Tareas/internal/application/usecase"
	"github.com/jhoicas/Gestor-Tareas/internal/devbackend"
	"github.com/jhoicas/Gestor-Tareas/internal/domain/access"
	"github.com/jhoicas/Gestor-Tareas/internal/infrastructure/backend"
	"github.com/jhoicas/Gestor-Tareas/internal/infrastructure/pdf"
	"github.com/jhoicas/Gestor-Tareas/internal/infrastructure/sessionstore"
	apphttp "github.com/jhoicas/Gestor-Tareas/internal/interfaces/http"
	"github.com/jhoicas/Gestor-Tareas/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: BFF completo contra el backend en memoria
// ──────────────────────────────────────────────────────────────────────────────

const (
	adminEmail    = "admin@gestor.local"
	adminPassword = "admin12345"
	cookieName    = "gestor_session"
)

type env struct {
	app *fiber.App
	dev *devbackend.Server
}

func newEnv(t *testing.T) *env {
	t.Helper()
	log := logger.Nop()
	dev, err := devbackend.New(devbackend.Config{
		JWTSecret:     "secreto-de-pruebas",
		AdminEmail:    adminEmail,
		AdminPassword: adminPassword,
		BcryptCost:    bcrypt.MinCost,
	}, log)
	require.NoError(t, err)

	srv := httptest.NewServer(adaptor.FiberApp(dev.App()))
	t.Cleanup(srv.Close)
	client := backend.NewClientWithHTTP(srv.URL, srv.Client(), log)

	codec := securecookie.New(securecookie.GenerateRandomKey(64), securecookie.GenerateRandomKey(32))
	codec.SetSerializer(securecookie.JSONEncoder{})
	codec.MaxAge(0)
	sessions := session.NewManager(sessionstore.NewCookieStore(codec, cookieName), client, log)

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	apphttp.Router(app, apphttp.RouterDeps{
		Sessions:   sessions,
		Dashboard:  usecase.NewDashboardUseCase(client, log),
		AdminTasks: usecase.NewAdminTasksUseCase(client, client, pdf.NewTaskReport("Pruebas"), log),
		AdminUsers: usecase.NewAdminUsersUseCase(client, log),
	})
	return &env{app: app, dev: dev}
}

// browser guarda las cookies entre peticiones como lo haría el navegador.
type browser struct {
	t       *testing.T
	app     *fiber.App
	cookies map[string]string
}

func (e *env) browser(t *testing.T) *browser {
	return &browser{t: t, app: e.app, cookies: map[string]string{}}
}

func (b *browser) do(method, path, body string) *http.Response {
	b.t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for name, value := range b.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	resp, err := b.app.Test(req, -1)
	require.NoError(b.t, err)
	for _, ck := range resp.Cookies() {
		if ck.Value == "" || ck.MaxAge < 0 {
			delete(b.cookies, ck.Name)
			continue
		}
		b.cookies[ck.Name] = ck.Value
	}
	return resp
}

func (b *browser) login(email, password string) *http.Response {
	b.t.Helper()
	return b.do(http.MethodPost, "/login", `{"emails":"`+email+`","password":"`+password+`"}`)
}

func (b *browser) mustLogin(email, password string) {
	b.t.Helper()
	resp := b.login(email, password)
	resp.Body.Close()
	require.Equal(b.t, http.StatusOK, resp.StatusCode)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func notification(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	n, ok := body["notification"].(map[string]any)
	require.True(t, ok, "la respuesta debe incluir notification")
	return n
}

// ──────────────────────────────────────────────────────────────────────────────
// Login / logout
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_AnonimoRedirigeAlLogin(t *testing.T) {
	b := newEnv(t).browser(t)
	for _, path := range []string{"/", "/dashboard", "/admin", "/admin/users", "/me"} {
		resp := b.do(http.MethodGet, path, "")
		resp.Body.Close()
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode, path)
		assert.Equal(t, "/login", resp.Header.Get("Location"), path)
	}
}

func TestRouter_LoginPaginaAnonima(t *testing.T) {
	b := newEnv(t).browser(t)
	resp := b.do(http.MethodGet, "/login", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, decode(t, resp)["authenticated"])
}

func TestRouter_LoginCredencialesIncorrectas(t *testing.T) {
	b := newEnv(t).browser(t)
	resp := b.login(adminEmail, "mala")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "AUTHENTICATION", body["code"])
	assert.Equal(t, "Credenciales incorrectas", notification(t, body)["description"])
	assert.Empty(t, b.cookies)
}

func TestRouter_LoginCamposVacios(t *testing.T) {
	b := newEnv(t).browser(t)
	resp := b.login("  ", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode(t, resp)["code"])
}

func TestRouter_LoginYLogout(t *testing.T) {
	b := newEnv(t).browser(t)

	resp := b.login(adminEmail, adminPassword)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	resp.Body.Close()
	assert.Equal(t, "/dashboard", body["redirect"])
	profile := body["profile"].(map[string]any)
	assert.Equal(t, adminEmail, profile["email"])
	assert.Equal(t, []any{access.RoleAdministrador}, profile["roles"])
	assert.Contains(t, b.cookies, cookieName)

	// autenticado: /login y / van al tablero
	for _, path := range []string{"/", "/login"} {
		resp = b.do(http.MethodGet, path, "")
		resp.Body.Close()
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
	}

	resp = b.do(http.MethodGet, "/me", "")
	me := decode(t, resp)
	resp.Body.Close()
	assert.Equal(t, "Admin Sistema", me["display_name"])
	caps := me["capabilities"].(map[string]any)
	assert.Equal(t, true, caps["is_admin"])

	resp = b.do(http.MethodPost, "/logout", "")
	resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	assert.NotContains(t, b.cookies, cookieName)

	resp = b.do(http.MethodGet, "/dashboard", "")
	resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
}

func TestRouter_LogoutAnonimoEsIdempotente(t *testing.T) {
	b := newEnv(t).browser(t)
	for range 2 {
		resp := b.do(http.MethodPost, "/logout", "")
		resp.Body.Close()
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Mis tareas
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_DashboardDelAdministrador(t *testing.T) {
	b := newEnv(t).browser(t)
	b.mustLogin(adminEmail, adminPassword)

	resp := b.do(http.MethodGet, "/dashboard", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode(t, resp)
	tasks := body["tasks"].([]any)
	assert.Len(t, tasks, 4, "las tareas de ejemplo asignadas al administrador")
	counts := body["counts"].(map[string]any)
	assert.EqualValues(t, 4, counts["total"])
	assert.EqualValues(t, 1, counts["completed"])
	assert.EqualValues(t, 2, counts["in_progress"])
	assert.EqualValues(t, 1, counts["pending"])
}

func TestRouter_DashboardBusquedaSinAcentos(t *testing.T) {
	b := newEnv(t).browser(t)
	b.mustLogin(adminEmail, adminPassword)

	resp := b.do(http.MethodGet, "/dashboard?search=AUTENTICACION", "")
	defer resp.Body.Close()
	body := decode(t, resp)
	tasks := body["tasks"].([]any)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Implementar autenticación", tasks[0].(map[string]any)["title"])
	assert.EqualValues(t, 4, body["counts"].(map[string]any)["total"])
}

func TestRouter_DashboardCrearYCambiarEstado(t *testing.T) {
	e := newEnv(t)
	_, err := e.dev.CreateUser("Eva", "Empleada", "eva@gestor.local", "clave-123", access.RoleEmpleado)
	require.NoError(t, err)
	b := e.browser(t)
	b.mustLogin("eva@gestor.local", "clave-123")

	resp := b.do(http.MethodPost, "/dashboard/tasks", `{"title":"  Preparar demo ","description":"para el viernes"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode(t, resp)
	resp.Body.Close()
	assert.Equal(t, "Tarea creada", notification(t, body)["title"])
	tasks := body["tasks"].([]any)
	require.Len(t, tasks, 1)
	created := tasks[0].(map[string]any)
	assert.Equal(t, "Preparar demo", created["title"])
	assert.Equal(t, "pending", created["state"])
	id := created["id"].(string)

	resp = b.do(http.MethodPut, "/dashboard/tasks/"+id+"/state", `{"state":"completada"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decode(t, resp)
	resp.Body.Close()
	assert.Equal(t, "Estado actualizado", notification(t, body)["title"])
	assert.EqualValues(t, 1, body["counts"].(map[string]any)["completed"])

	resp = b.do(http.MethodPut, "/dashboard/tasks/"+id+"/state", `{"state":"archivada"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Estado de tarea inválido", notification(t, decode(t, resp))["description"])
}

func TestRouter_DashboardTituloObligatorio(t *testing.T) {
	b := newEnv(t).browser(t)
	b.mustLogin(adminEmail, adminPassword)

	resp := b.do(http.MethodPost, "/dashboard/tasks", `{"title":"   "}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode(t, resp)["code"])
}

func TestRouter_DashboardCuerpoInvalido(t *testing.T) {
	b := newEnv(t).browser(t)
	b.mustLogin(adminEmail, adminPassword)

	resp := b.do(http.MethodPost, "/dashboard/tasks", `{"title":`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_CajeroNoPuedeCrear(t *testing.T) {
	e := newEnv(t)
	_, err := e.dev.CreateUser("Carlos", "Caja", "caja@gestor.local", "clave-123", access.RoleCajero)
	require.NoError(t, err)
	b := e.browser(t)
	b.mustLogin("caja@gestor.local", "clave-123")

	resp := b.do(http.MethodGet, "/dashboard", "")
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = b.do(http.MethodPost, "/dashboard/tasks", `{"title":"No debería"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Empty(t, readBody(t, resp))
}

// ──────────────────────────────────────────────────────────────────────────────
// Administración
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_AdminRechazaNoAdministrador(t *testing.T) {
	e := newEnv(t)
	_, err := e.dev.CreateUser("Gema", "Gerente", "gema@gestor.local", "clave-123", access.RoleGerente)
	require.NoError(t, err)
	b := e.browser(t)
	b.mustLogin("gema@gestor.local", "clave-123")

	for _, path := range []string{"/admin", "/admin/tasks", "/admin/users", "/admin/tasks/report.pdf"} {
		resp := b.do(http.MethodGet, path, "")
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, path)
		assert.Equal(t, "Acceso Denegado", notification(t, decode(t, resp))["title"], path)
		resp.Body.Close()
	}
}

func TestRouter_AdminOverview(t *testing.T) {
	b := newEnv(t).browser(t)
	b.mustLogin(adminEmail, adminPassword)

	resp := b.do(http.MethodGet, "/admin", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	stats := body["stats"].(map[string]any)
	assert.EqualValues(t, 5, stats["total"])
	assert.EqualValues(t, 20, stats["completed_pct"])
	users := body["users"].(map[string]any)
	assert.EqualValues(t, 1, users["active_users"])
}

func TestRouter_AdminTableroAsignacion(t *testing.T) {
	e := newEnv(t)
	evaID, err := e.dev.CreateUser("Eva", "Empleada", "eva@gestor.local", "clave-123", access.RoleEmpleado)
	require.NoError(t, err)
	b := e.browser(t)
	b.mustLogin(adminEmail, adminPassword)

	resp := b.do(http.MethodPost, "/admin/tasks", `{"title":"Revisar métricas","assigned_users":["`+evaID+`"]}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode(t, resp)
	resp.Body.Close()
	selected := body["selected_task"].(map[string]any)
	taskID := selected["id"].(string)
	assert.Len(t, selected["users"], 1)

	// asignar dos veces no duplica
	resp = b.do(http.MethodPost, "/admin/tasks/"+taskID+"/assign", `{"user_id":"`+evaID+`"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decode(t, resp)
	resp.Body.Close()
	assert.Equal(t, "Sin cambios", notification(t, body)["title"])

	resp = b.do(http.MethodPost, "/admin/tasks/"+taskID+"/assign", `{"user_id":"`+e.dev.AdminID()+`"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decode(t, resp)
	resp.Body.Close()
	assert.Equal(t, "Usuario asignado", notification(t, body)["title"])
	assert.Len(t, body["selected_task"].(map[string]any)["users"], 2)

	resp = b.do(http.MethodDelete, "/admin/tasks/"+taskID+"/assign/"+evaID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decode(t, resp)
	resp.Body.Close()
	assert.Equal(t, "Usuario removido", notification(t, body)["title"])
	assert.Len(t, body["selected_task"].(map[string]any)["users"], 1)

	resp = b.do(http.MethodPost, "/admin/tasks/"+taskID+"/assign", `{}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Debe seleccionar un usuario", notification(t, decode(t, resp))["description"])
}

func TestRouter_AdminInformePDF(t *testing.T) {
	b := newEnv(t).browser(t)
	b.mustLogin(adminEmail, adminPassword)

	resp := b.do(http.MethodGet, "/admin/tasks/report.pdf", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "attachment")
	assert.True(t, strings.HasPrefix(readBody(t, resp), "%PDF"))
}

func TestRouter_AdminUsuariosCicloDeVida(t *testing.T) {
	b := newEnv(t).browser(t)
	b.mustLogin(adminEmail, adminPassword)

	resp := b.do(http.MethodPost, "/admin/users",
		`{"firstName":"Nora","lastName":"Núñez","emails":"nora@gestor.local","ages":31,"password":"clave-123","role":"Gerente"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode(t, resp)
	resp.Body.Close()
	assert.Equal(t, "Usuario creado", notification(t, body)["title"])
	active := body["data"].(map[string]any)["active"].([]any)
	require.Len(t, active, 2)

	var noraID string
	for _, u := range active {
		u := u.(map[string]any)
		if u["email"] == "nora@gestor.local" {
			noraID = u["id"].(string)
			assert.Equal(t, []any{access.RoleGerente}, u["roles"])
		}
	}
	require.NotEmpty(t, noraID)

	resp = b.do(http.MethodGet, "/admin/users?search=nunez", "")
	body = decode(t, resp)
	resp.Body.Close()
	assert.Len(t, body["active"], 1)

	resp = b.do(http.MethodPut, "/admin/users/"+noraID+"/role", `{"role_name":"Cajero"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decode(t, resp)
	resp.Body.Close()
	assert.Equal(t, true, body["changed"])
	assert.Equal(t, []any{access.RoleCajero}, body["user"].(map[string]any)["roles"])

	resp = b.do(http.MethodDelete, "/admin/users/"+noraID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decode(t, resp)
	resp.Body.Close()
	assert.Len(t, body["data"].(map[string]any)["deleted"], 1)

	resp = b.do(http.MethodPost, "/admin/users/"+noraID+"/restore", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decode(t, resp)
	resp.Body.Close()
	assert.Empty(t, body["data"].(map[string]any)["deleted"])

	resp = b.do(http.MethodGet, "/admin/users/stats", "")
	body = decode(t, resp)
	resp.Body.Close()
	assert.EqualValues(t, 2, body["active_users"])
	assert.EqualValues(t, 2, body["recent_registrations"])
}

func TestRouter_AdminNoPuedeEliminarseASiMismo(t *testing.T) {
	e := newEnv(t)
	b := e.browser(t)
	b.mustLogin(adminEmail, adminPassword)

	resp := b.do(http.MethodDelete, "/admin/users/"+e.dev.AdminID(), "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No puedes eliminar tu propio usuario", notification(t, decode(t, resp))["description"])
}

func TestRouter_AdminCatalogoDeRoles(t *testing.T) {
	b := newEnv(t).browser(t)
	b.mustLogin(adminEmail, adminPassword)

	resp := b.do(http.MethodGet, "/admin/roles", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var roles []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&roles))
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r["name"].(string))
	}
	assert.ElementsMatch(t, access.Roles(), names)
}
