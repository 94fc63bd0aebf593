package devbackend_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Gestor-Tareas/internal/devbackend"
	"github.com/jhoicas/Gestor-Tareas/internal/domain/access"
	"github.com/jhoicas/Gestor-Tareas/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newServer(t *testing.T, skipSamples bool) (*devbackend.Server, *fiber.App) {
	t.Helper()
	srv, err := devbackend.New(devbackend.Config{
		JWTSecret:     "secreto",
		AdminEmail:    "admin@gestor.local",
		AdminPassword: "admin12345",
		BcryptCost:    bcrypt.MinCost,
		SkipSamples:   skipSamples,
	}, logger.Nop())
	require.NoError(t, err)
	return srv, srv.App()
}

func call(t *testing.T, app *fiber.App, method, path, token, body string) (int, map[string]any, []any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var obj map[string]any
	var list []any
	if len(raw) > 0 && raw[0] == '[' {
		require.NoError(t, json.Unmarshal(raw, &list))
	} else if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &obj))
	}
	return resp.StatusCode, obj, list
}

func adminToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	status, body, _ := call(t, app, http.MethodPost, "/users/login", "", `{"emails":"admin@gestor.local","password":"admin12345"}`)
	require.Equal(t, http.StatusOK, status)
	return body["access_token"].(string)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestNew_SinSecretoFalla(t *testing.T) {
	_, err := devbackend.New(devbackend.Config{}, logger.Nop())
	assert.Error(t, err)
}

func TestLogin_Administrador(t *testing.T) {
	srv, app := newServer(t, true)
	status, body, _ := call(t, app, http.MethodPost, "/users/login", "", `{"emails":"ADMIN@gestor.local","password":"admin12345"}`)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "bearer", body["token_type"])
	assert.Equal(t, srv.AdminID(), body["user_id"])
	assert.Equal(t, []any{access.RoleAdministrador}, body["roles"])
}

func TestLogin_ClaveIncorrecta(t *testing.T) {
	_, app := newServer(t, true)
	status, body, _ := call(t, app, http.MethodPost, "/users/login", "", `{"emails":"admin@gestor.local","password":"otra"}`)

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Credenciales incorrectas", body["detail"])
}

func TestTokenInvalido401(t *testing.T) {
	_, app := newServer(t, true)
	status, body, _ := call(t, app, http.MethodGet, "/tasks", "no-es-un-jwt", "")

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.NotEmpty(t, body["detail"])
}

func TestSemillas_CincoTareas(t *testing.T) {
	_, app := newServer(t, false)
	status, _, list := call(t, app, http.MethodGet, "/tasks", adminToken(t, app), "")

	require.Equal(t, http.StatusOK, status)
	require.Len(t, list, 5)
	first := list[0].(map[string]any)
	assert.Equal(t, "Implementar autenticación", first["title"])
	assert.Equal(t, "completed", first["state"])
}

func TestNoAdmin403(t *testing.T) {
	srv, app := newServer(t, true)
	id, err := srv.CreateUser("Caja", "Uno", "caja@example.com", "clave", access.RoleCajero)
	require.NoError(t, err)
	token, err := srv.IssueToken(id)
	require.NoError(t, err)

	status, body, _ := call(t, app, http.MethodGet, "/users", token, "")
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Se requiere rol de administrador", body["detail"])

	// Las rutas de tareas no exigen rol
	status, _, _ = call(t, app, http.MethodGet, "/tasks", token, "")
	assert.Equal(t, http.StatusOK, status)
}

func TestAsignacionDuplicada400(t *testing.T) {
	srv, app := newServer(t, true)
	token := adminToken(t, app)

	status, task, _ := call(t, app, http.MethodPost, "/tasks", token, `{"title":"T","state":"pending"}`)
	require.Equal(t, http.StatusCreated, status)
	path := "/tasks/" + jsonNumber(task["id"]) + "/assign"
	body := `{"user_id":"` + srv.AdminID() + `"}`

	status, _, _ = call(t, app, http.MethodPost, path, token, body)
	require.Equal(t, http.StatusOK, status)
	status, resp, _ := call(t, app, http.MethodPost, path, token, body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "El usuario ya está asignado a esta tarea", resp["detail"])
}

func TestEstadoInvalido422(t *testing.T) {
	_, app := newServer(t, true)
	status, _, _ := call(t, app, http.MethodPost, "/tasks", adminToken(t, app), `{"title":"T","state":"archivada"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestBorradoLogico_ImpideLoginYRestaura(t *testing.T) {
	srv, app := newServer(t, true)
	token := adminToken(t, app)
	id, err := srv.CreateUser("Eva", "Ruiz", "eva@example.com", "clave-eva", access.RoleEmpleado)
	require.NoError(t, err)

	status, _, _ := call(t, app, http.MethodDelete, "/users/"+id, token, "")
	require.Equal(t, http.StatusOK, status)

	status, _, _ = call(t, app, http.MethodPost, "/users/login", "", `{"emails":"eva@example.com","password":"clave-eva"}`)
	assert.Equal(t, http.StatusUnauthorized, status)

	_, _, deleted := call(t, app, http.MethodGet, "/users/deleted", token, "")
	require.Len(t, deleted, 1)
	assert.NotNil(t, deleted[0].(map[string]any)["delete_at"])

	status, restored, _ := call(t, app, http.MethodPost, "/users/"+id+"/restore", token, "")
	require.Equal(t, http.StatusOK, status)
	assert.Nil(t, restored["delete_at"])
}

func TestAsignarRolReemplaza(t *testing.T) {
	srv, app := newServer(t, true)
	token := adminToken(t, app)
	id, err := srv.CreateUser("Eva", "Ruiz", "eva@example.com", "clave", access.RoleEmpleado)
	require.NoError(t, err)

	status, body, _ := call(t, app, http.MethodPost, "/users/"+id+"/roles", token, `{"role_name":"Gerente"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{"Gerente"}, body["roles"])

	status, _, _ = call(t, app, http.MethodPost, "/users/"+id+"/roles", token, `{"role_name":"Auditor"}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func jsonNumber(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}
