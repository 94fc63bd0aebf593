package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrForbidden    = errors.New("acceso denegado")

	// ErrNotAuthenticated no hay token local: la llamada ni siquiera se envía.
	ErrNotAuthenticated = errors.New("no autenticado")
	// ErrSessionExpired el backend rechazó el token (401); la sesión ya fue cerrada.
	ErrSessionExpired = errors.New("sesión expirada")
)

// AuthenticationError el login falló: credenciales rechazadas o backend inalcanzable.
// Message se muestra tal cual al usuario.
type AuthenticationError struct {
	Message string
	Err     error
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// RequestFailedError respuesta no exitosa (distinta de 401) del backend.
type RequestFailedError struct {
	Status int
	Detail string
}

// NewRequestFailed construye el error; un detail vacío se reemplaza por "Error {status}".
func NewRequestFailed(status int, detail string) *RequestFailedError {
	if detail == "" {
		detail = fmt.Sprintf("Error %d", status)
	}
	return &RequestFailedError{Status: status, Detail: detail}
}

func (e *RequestFailedError) Error() string {
	return e.Detail
}

// NetworkError fallo de transporte; se propaga sin alterar la causa.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ValidationError entrada de formulario rechazada antes de llamar al backend.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// Invalid construye un ValidationError.
func Invalid(message string) error {
	return &ValidationError{Message: message}
}
