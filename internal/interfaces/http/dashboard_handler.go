package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestor-Tareas/internal/application/dto"
	"github.com/jhoicas/Gestor-Tareas/internal/application/usecase"
)

// DashboardHandler "Mis Tareas" del usuario autenticado.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// View godoc
// @Summary      Tareas asignadas al usuario actual
// @Tags         dashboard
// @Produce      json
// @Param        search  query  string  false  "búsqueda en título o descripción"
// @Success      200  {object}  dto.DashboardView
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) View(c *fiber.Ctx) error {
	out, err := h.uc.View(c.UserContext(), CurrentSession(c), c.Query("search"))
	if err != nil {
		return respondError(c, err, "Error al cargar las tareas")
	}
	return c.JSON(out)
}

// CreateTask godoc
// @Summary      Crear tarea personal
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TaskForm  true  "title, description, state"
// @Success      201  {object}  dto.DashboardView
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /dashboard/tasks [post]
func (h *DashboardHandler) CreateTask(c *fiber.Ctx) error {
	var in dto.TaskForm
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateTask(c.UserContext(), CurrentSession(c), in)
	if err != nil {
		return respondError(c, err, "Error al crear la tarea")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateTask godoc
// @Summary      Editar tarea
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        id    path  string        true  "ID de la tarea"
// @Param        body  body  dto.TaskForm  true  "title, description, state"
// @Success      200  {object}  dto.DashboardView
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /dashboard/tasks/{id} [put]
func (h *DashboardHandler) UpdateTask(c *fiber.Ctx) error {
	var in dto.TaskForm
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateTask(c.UserContext(), CurrentSession(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "Error al actualizar la tarea")
	}
	return c.JSON(out)
}

// ChangeState godoc
// @Summary      Cambiar estado de una tarea
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la tarea"
// @Param        body  body  dto.StateChangeRequest  true  "state"
// @Success      200  {object}  dto.DashboardView
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /dashboard/tasks/{id}/state [put]
func (h *DashboardHandler) ChangeState(c *fiber.Ctx) error {
	var in dto.StateChangeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.ChangeState(c.UserContext(), CurrentSession(c), c.Params("id"), in.State)
	if err != nil {
		return respondError(c, err, "Error al actualizar el estado")
	}
	return c.JSON(out)
}
