package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestor-Tareas/internal/domain/access"
	apphttp "github.com/jhoicas/Gestor-Tareas/internal/interfaces/http"
	"github.com/jhoicas/Gestor-Tareas/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Guards sin sesión (la petición no pasó por SessionMiddleware)
// ──────────────────────────────────────────────────────────────────────────────

func protectedApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("contenido protegido")
	})
	app.Get("/protected", handlers...)
	return app
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	return resp
}

func TestRequireAuth_SinSesionRedirigeAlLogin(t *testing.T) {
	app := protectedApp(apphttp.RequireAuth(apphttp.LoginPath))
	resp := get(t, app, "/protected")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, apphttp.LoginPath, resp.Header.Get("Location"))
}

func TestRequireCapability_FallbackPorDefectoEs403Vacio(t *testing.T) {
	app := protectedApp(apphttp.RequireCapability(access.RequirePermission(access.PermRead), nil))
	resp := get(t, app, "/protected")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Empty(t, readBody(t, resp))
}

func TestRequireCapability_RenderizaElFallbackExacto(t *testing.T) {
	calls := 0
	fallback := func(c *fiber.Ctx) error {
		calls++
		return c.Status(fiber.StatusTeapot).SendString("sin acceso")
	}
	app := protectedApp(apphttp.RequireCapability(access.RequireRole(access.RoleAdministrador), fallback))
	resp := get(t, app, "/protected")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.Equal(t, "sin acceso", readBody(t, resp))
	assert.Equal(t, 1, calls)
}

func TestRequireCapability_SinRequisitosPermite(t *testing.T) {
	app := protectedApp(apphttp.RequireCapability(access.Capability{}, nil))
	resp := get(t, app, "/protected")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "contenido protegido", readBody(t, resp))
}

func TestAccessDenied_Notificacion(t *testing.T) {
	app := protectedApp(apphttp.RequireCapability(access.RequireRole(access.RoleAdministrador), apphttp.AccessDenied))
	resp := get(t, app, "/protected")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "FORBIDDEN", body["code"])
	n := body["notification"].(map[string]any)
	assert.Equal(t, "Acceso Denegado", n["title"])
	assert.Equal(t, "destructive", n["variant"])
}

// ──────────────────────────────────────────────────────────────────────────────
// RequestLogger y ErrorHandler
// ──────────────────────────────────────────────────────────────────────────────

func TestRequestLogger_GeneraYPropagaRequestID(t *testing.T) {
	app := protectedApp(apphttp.RequestLogger(logger.Nop()))

	resp := get(t, app, "/protected")
	resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("X-Request-ID", "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "req-123", resp.Header.Get("X-Request-ID"))
}

func TestErrorHandler_RutaInexistente404(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(logger.Nop())})
	resp := get(t, app, "/no-existe")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "HTTP", body["code"])
	assert.NotNil(t, body["notification"])
}

func TestErrorHandler_ErrorDesconocido500(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(logger.Nop())})
	app.Get("/boom", func(*fiber.Ctx) error { return assert.AnError })
	resp := get(t, app, "/boom")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL", decode(t, resp)["code"])
}
