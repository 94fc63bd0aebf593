package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestor-Tareas/internal/application/dto"
	"github.com/jhoicas/Gestor-Tareas/internal/application/usecase"
	"github.com/jhoicas/Gestor-Tareas/internal/domain"
	"github.com/jhoicas/Gestor-Tareas/internal/domain/entity"
)

// AuthHandler login, logout y perfil de la sesión.
type AuthHandler struct{}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Root redirige al tablero o al login según la sesión.
func (h *AuthHandler) Root(c *fiber.Ctx) error {
	if s := CurrentSession(c); s != nil && s.IsAuthenticated() {
		return c.Redirect(HomePath, fiber.StatusSeeOther)
	}
	return c.Redirect(LoginPath, fiber.StatusSeeOther)
}

// LoginPage godoc
// @Summary      Estado de la página de login
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Success      303  {string}  string  "ya autenticado: redirige a /dashboard"
// @Router       /login [get]
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	if s := CurrentSession(c); s != nil && s.IsAuthenticated() {
		return c.Redirect(HomePath, fiber.StatusSeeOther)
	}
	return c.JSON(fiber.Map{"authenticated": false})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "emails, password"
// @Success      200   {object}  dto.LoginResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" || in.Password == "" {
		return respondError(c, domain.Invalid("Correo y contraseña son obligatorios"), "")
	}
	s := CurrentSession(c)
	if _, err := s.Login(c.UserContext(), entity.Credentials{Email: in.Email, Password: in.Password}); err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(dto.LoginResult{Redirect: HomePath, Profile: usecase.ProfileOf(s)})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Success      303  {string}  string  "redirige a /login"
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if s := CurrentSession(c); s != nil {
		s.Logout(c.UserContext())
	}
	return c.Redirect(LoginPath, fiber.StatusSeeOther)
}

// Me godoc
// @Summary      Perfil de la sesión actual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.ProfileView
// @Router       /me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(usecase.ProfileOf(CurrentSession(c)))
}
