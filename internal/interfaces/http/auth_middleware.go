package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/Gestor-Tareas/internal/application/dto"
	"github.com/jhoicas/Gestor-Tareas/internal/application/session"
	"github.com/jhoicas/Gestor-Tareas/internal/domain/access"
	"github.com/jhoicas/Gestor-Tareas/pkg/logger"
)

// Locals keys.
const (
	LocalSession   = "session"
	LocalRequestID = "request_id"
)

const (
	// LoginPath entrada de login; destino de RequireAuth.
	LoginPath = "/login"
	// HomePath destino después del login.
	HomePath = "/dashboard"

	headerRequestID = "X-Request-ID"
	msgAccessDenied = "No tienes permisos para acceder a esta página. Se requiere rol de administrador."
)

// fiberJar implementa session.CookieJar sobre la petición Fiber.
type fiberJar struct {
	c      *fiber.Ctx
	secure bool
}

func (j fiberJar) Cookie(name string) string {
	return j.c.Cookies(name)
}

func (j fiberJar) SetCookie(name, value string, maxAge time.Duration) {
	ck := j.base(name, value)
	if maxAge > 0 {
		ck.MaxAge = int(maxAge.Seconds())
		ck.Expires = time.Now().Add(maxAge)
	}
	j.c.Cookie(ck)
}

func (j fiberJar) ExpireCookie(name string) {
	ck := j.base(name, "")
	ck.MaxAge = -1
	ck.Expires = time.Unix(0, 0)
	j.c.Cookie(ck)
}

func (j fiberJar) base(name, value string) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HTTPOnly: true,
		Secure:   j.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

// SessionMiddleware abre la sesión de la petición y la deja en c.Locals.
func SessionMiddleware(m *session.Manager, secureCookies bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		store := m.Open(c.UserContext(), fiberJar{c: c, secure: secureCookies})
		c.Locals(LocalSession, store)
		return c.Next()
	}
}

// CurrentSession sesión de la petición (nil fuera de SessionMiddleware).
func CurrentSession(c *fiber.Ctx) *session.Store {
	s, _ := c.Locals(LocalSession).(*session.Store)
	return s
}

// RequireAuth redirige a loginPath si la sesión no está autenticada; en ese
// caso no se ejecuta nada más de la cadena.
func RequireAuth(loginPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := CurrentSession(c)
		if s == nil || !s.IsAuthenticated() {
			return c.Redirect(loginPath, fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// RequireCapability ejecuta el resto de la cadena solo si la sesión cumple el
// permiso y/o rol; si no, responde con fallback (nil: 403 sin cuerpo).
// Se evalúa en cada petición con la sesión recién cargada.
func RequireCapability(need access.Capability, fallback fiber.Handler) fiber.Handler {
	if fallback == nil {
		fallback = func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusForbidden) }
	}
	return func(c *fiber.Ctx) error {
		var a access.Authorizer
		if s := CurrentSession(c); s != nil {
			a = s
		}
		if !need.SatisfiedBy(a) {
			return fallback(c)
		}
		return c.Next()
	}
}

// AccessDenied respuesta de las páginas de administración para quien no es administrador.
func AccessDenied(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
		Code:    "FORBIDDEN",
		Message: msgAccessDenied,
		Notification: &dto.Notification{
			Title:       "Acceso Denegado",
			Description: msgAccessDenied,
			Variant:     dto.VariantDestructive,
		},
	})
}

// RequestLogger registra método, ruta, estado y latencia de cada petición con
// un id de correlación (X-Request-ID entrante o uno nuevo).
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		id := c.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalRequestID, id)
		c.Set(headerRequestID, id)

		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev.Str("request_id", id).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http")
		return err
	}
}
