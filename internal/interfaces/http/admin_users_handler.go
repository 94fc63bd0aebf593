package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestor-Tareas/internal/application/dto"
	"github.com/jhoicas/Gestor-Tareas/internal/application/usecase"
)

// AdminUsersHandler consola de usuarios y roles.
type AdminUsersHandler struct {
	uc *usecase.AdminUsersUseCase
}

// NewAdminUsersHandler construye el handler.
func NewAdminUsersHandler(uc *usecase.AdminUsersUseCase) *AdminUsersHandler {
	return &AdminUsersHandler{uc: uc}
}

// Directory godoc
// @Summary      Usuarios activos y eliminados
// @Tags         admin-users
// @Produce      json
// @Param        search  query  string  false  "nombre, apellido o correo"
// @Success      200  {object}  dto.UserDirectory
// @Router       /admin/users [get]
func (h *AdminUsersHandler) Directory(c *fiber.Ctx) error {
	out, err := h.uc.Directory(c.UserContext(), CurrentSession(c), c.Query("search"))
	if err != nil {
		return respondError(c, err, "Error al cargar los datos de usuarios")
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Métricas de usuarios
// @Tags         admin-users
// @Produce      json
// @Success      200  {object}  dto.UserStats
// @Router       /admin/users/stats [get]
func (h *AdminUsersHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext(), CurrentSession(c))
	if err != nil {
		return respondError(c, err, "Error al cargar las estadísticas de usuarios")
	}
	return c.JSON(out)
}

// CreateUser godoc
// @Summary      Crear usuario
// @Tags         admin-users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UserForm  true  "firstName, lastName, emails, ages, password, role"
// @Success      201  {object}  dto.MutationResult[dto.UserDirectory]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /admin/users [post]
func (h *AdminUsersHandler) CreateUser(c *fiber.Ctx) error {
	var in dto.UserForm
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateUser(c.UserContext(), CurrentSession(c), in)
	if err != nil {
		return respondError(c, err, "Error al guardar el usuario")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateUser godoc
// @Summary      Editar usuario
// @Tags         admin-users
// @Accept       json
// @Produce      json
// @Param        id    path  string        true  "ID del usuario"
// @Param        body  body  dto.UserForm  true  "firstName, lastName, emails, ages, password"
// @Success      200  {object}  dto.MutationResult[dto.UserDirectory]
// @Router       /admin/users/{id} [put]
func (h *AdminUsersHandler) UpdateUser(c *fiber.Ctx) error {
	var in dto.UserForm
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateUser(c.UserContext(), CurrentSession(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "Error al guardar el usuario")
	}
	return c.JSON(out)
}

// DeleteUser godoc
// @Summary      Eliminar usuario (borrado lógico)
// @Tags         admin-users
// @Produce      json
// @Param        id  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.MutationResult[dto.UserDirectory]
// @Router       /admin/users/{id} [delete]
func (h *AdminUsersHandler) DeleteUser(c *fiber.Ctx) error {
	out, err := h.uc.DeleteUser(c.UserContext(), CurrentSession(c), c.Params("id"))
	if err != nil {
		return respondError(c, err, "Error al eliminar el usuario")
	}
	return c.JSON(out)
}

// RestoreUser godoc
// @Summary      Restaurar usuario eliminado
// @Tags         admin-users
// @Produce      json
// @Param        id  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.MutationResult[dto.UserDirectory]
// @Router       /admin/users/{id}/restore [post]
func (h *AdminUsersHandler) RestoreUser(c *fiber.Ctx) error {
	out, err := h.uc.RestoreUser(c.UserContext(), CurrentSession(c), c.Params("id"))
	if err != nil {
		return respondError(c, err, "Error al restaurar el usuario")
	}
	return c.JSON(out)
}

// AssignRole godoc
// @Summary      Asignar rol (reemplaza el anterior)
// @Tags         admin-users
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "ID del usuario"
// @Param        body  body  dto.RoleRequest  true  "role_name"
// @Success      200  {object}  dto.RoleChange
// @Router       /admin/users/{id}/role [put]
func (h *AdminUsersHandler) AssignRole(c *fiber.Ctx) error {
	var in dto.RoleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AssignRole(c.UserContext(), CurrentSession(c), c.Params("id"), in.Role)
	if err != nil {
		return respondError(c, err, "Error al actualizar roles")
	}
	return c.JSON(out)
}

// RemoveRole godoc
// @Summary      Quitar un rol
// @Tags         admin-users
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        role  path  string  true  "nombre del rol"
// @Success      200  {object}  dto.MutationResult[dto.UserDirectory]
// @Router       /admin/users/{id}/roles/{role} [delete]
func (h *AdminUsersHandler) RemoveRole(c *fiber.Ctx) error {
	out, err := h.uc.RemoveRole(c.UserContext(), CurrentSession(c), c.Params("id"), c.Params("role"))
	if err != nil {
		return respondError(c, err, "Error al actualizar roles")
	}
	return c.JSON(out)
}

// Roles godoc
// @Summary      Catálogo de roles
// @Tags         admin-users
// @Produce      json
// @Success      200  {array}  dto.RoleView
// @Router       /admin/roles [get]
func (h *AdminUsersHandler) Roles(c *fiber.Ctx) error {
	out, err := h.uc.Roles(c.UserContext(), CurrentSession(c))
	if err != nil {
		return respondError(c, err, "Error al cargar los roles")
	}
	return c.JSON(out)
}
