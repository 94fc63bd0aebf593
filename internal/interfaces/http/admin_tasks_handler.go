package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestor-Tareas/internal/application/dto"
	"github.com/jhoicas/Gestor-Tareas/internal/application/usecase"
)

// AdminTasksHandler panel de administración y tablero de tareas.
type AdminTasksHandler struct {
	uc *usecase.AdminTasksUseCase
}

// NewAdminTasksHandler construye el handler.
func NewAdminTasksHandler(uc *usecase.AdminTasksUseCase) *AdminTasksHandler {
	return &AdminTasksHandler{uc: uc}
}

// Overview godoc
// @Summary      Panel de administración
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.AdminOverview
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /admin [get]
func (h *AdminTasksHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.Overview(c.UserContext(), CurrentSession(c))
	if err != nil {
		return respondError(c, err, "Error al cargar las estadísticas")
	}
	return c.JSON(out)
}

// Board godoc
// @Summary      Tablero de tareas
// @Tags         admin
// @Produce      json
// @Param        search    query  string  false  "búsqueda en título o descripción"
// @Param        selected  query  string  false  "ID de la tarea abierta"
// @Success      200  {object}  dto.AdminTaskBoard
// @Router       /admin/tasks [get]
func (h *AdminTasksHandler) Board(c *fiber.Ctx) error {
	out, err := h.uc.Board(c.UserContext(), CurrentSession(c), c.Query("search"), c.Query("selected"))
	if err != nil {
		return respondError(c, err, "Error al cargar los datos")
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Informe PDF de tareas
// @Tags         admin
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /admin/tasks/report.pdf [get]
func (h *AdminTasksHandler) Report(c *fiber.Ctx) error {
	pdf, err := h.uc.Report(c.UserContext(), CurrentSession(c))
	if err != nil {
		return respondError(c, err, "Error al generar el informe")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="tareas-%s.pdf"`, time.Now().Format("20060102")))
	return c.Send(pdf)
}

// CreateTask godoc
// @Summary      Crear tarea
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TaskForm  true  "title, description, state, assigned_users"
// @Success      201  {object}  dto.AdminTaskBoard
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /admin/tasks [post]
func (h *AdminTasksHandler) CreateTask(c *fiber.Ctx) error {
	var in dto.TaskForm
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateTask(c.UserContext(), CurrentSession(c), in)
	if err != nil {
		return respondError(c, err, "Error al guardar la tarea")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateTask godoc
// @Summary      Editar tarea
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string        true  "ID de la tarea"
// @Param        body  body  dto.TaskForm  true  "title, description, state"
// @Success      200  {object}  dto.AdminTaskBoard
// @Router       /admin/tasks/{id} [put]
func (h *AdminTasksHandler) UpdateTask(c *fiber.Ctx) error {
	var in dto.TaskForm
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateTask(c.UserContext(), CurrentSession(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "Error al guardar la tarea")
	}
	return c.JSON(out)
}

// AssignUser godoc
// @Summary      Asignar usuario a una tarea
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la tarea"
// @Param        body  body  dto.AssignUserRequest  true  "user_id"
// @Success      200  {object}  dto.AdminTaskBoard
// @Router       /admin/tasks/{id}/assign [post]
func (h *AdminTasksHandler) AssignUser(c *fiber.Ctx) error {
	var in dto.AssignUserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AssignUser(c.UserContext(), CurrentSession(c), c.Params("id"), in.UserID)
	if err != nil {
		return respondError(c, err, "Error al asignar el usuario a la tarea")
	}
	return c.JSON(out)
}

// UnassignUser godoc
// @Summary      Quitar usuario de una tarea
// @Tags         admin
// @Produce      json
// @Param        id      path  string  true  "ID de la tarea"
// @Param        userId  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.AdminTaskBoard
// @Router       /admin/tasks/{id}/assign/{userId} [delete]
func (h *AdminTasksHandler) UnassignUser(c *fiber.Ctx) error {
	out, err := h.uc.UnassignUser(c.UserContext(), CurrentSession(c), c.Params("id"), c.Params("userId"))
	if err != nil {
		return respondError(c, err, "Error al remover el usuario de la tarea")
	}
	return c.JSON(out)
}
