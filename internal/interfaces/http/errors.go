package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestor-Tareas/internal/application/dto"
	"github.com/jhoicas/Gestor-Tareas/internal/domain"
	"github.com/jhoicas/Gestor-Tareas/pkg/logger"
)

const (
	msgSessionExpired = "Tu sesión ha expirado, inicia sesión de nuevo"
	msgForbidden      = "No tienes permisos para realizar esta acción"
	msgUnreachable    = "Error de conexión con el servidor"
	msgInvalidBody    = "Cuerpo de la petición inválido"
)

// respondError traduce el error a HTTP. action es el aviso genérico de la
// acción ("Error al guardar la tarea") para los fallos sin mensaje propio.
func respondError(c *fiber.Ctx, err error, action string) error {
	status, code, message, description := classify(err, action)
	return c.Status(status).JSON(dto.ErrorResponse{
		Code:         code,
		Message:      message,
		Notification: dto.Failure(description),
	})
}

func classify(err error, action string) (status int, code, message, description string) {
	var (
		authErr   *domain.AuthenticationError
		valErr    *domain.ValidationError
		reqErr    *domain.RequestFailedError
		netErr    *domain.NetworkError
		fiberErr  *fiber.Error
		orDefault = func(s string) string {
			if action != "" {
				return action
			}
			return s
		}
	)
	switch {
	case errors.As(err, &authErr):
		return fiber.StatusUnauthorized, "AUTHENTICATION", authErr.Message, authErr.Message
	case errors.Is(err, domain.ErrNotAuthenticated), errors.Is(err, domain.ErrSessionExpired):
		return fiber.StatusUnauthorized, "SESSION_EXPIRED", msgSessionExpired, msgSessionExpired
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN", msgForbidden, msgForbidden
	case errors.As(err, &valErr):
		return fiber.StatusBadRequest, "VALIDATION", valErr.Message, valErr.Message
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND", err.Error(), orDefault("Recurso no encontrado")
	case errors.As(err, &reqErr):
		if reqErr.Status >= 400 && reqErr.Status < 500 {
			return reqErr.Status, "REQUEST_FAILED", reqErr.Detail, reqErr.Detail
		}
		return fiber.StatusBadGateway, "REQUEST_FAILED", reqErr.Detail, orDefault(reqErr.Detail)
	case errors.As(err, &netErr):
		return fiber.StatusServiceUnavailable, "NETWORK", msgUnreachable, msgUnreachable
	case errors.As(err, &fiberErr):
		return fiberErr.Code, "HTTP", fiberErr.Message, orDefault(fiberErr.Message)
	}
	return fiber.StatusInternalServerError, "INTERNAL", "error interno", orDefault("Error inesperado")
}

// ErrorHandler manejador de errores de la aplicación Fiber: misma forma de
// cuerpo que respondError para los errores que escapan de los handlers.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, code, message, description := classify(err, "")
		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		}
		return c.Status(status).JSON(dto.ErrorResponse{
			Code:         code,
			Message:      message,
			Notification: dto.Failure(description),
		})
	}
}

func invalidBody(c *fiber.Ctx) error {
	return respondError(c, domain.Invalid(msgInvalidBody), "")
}
