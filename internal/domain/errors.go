package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// Taxonomía del lado cliente.
	ErrTransport = errors.New("sin respuesta del servidor")
	ErrRemote    = errors.New("error del servidor")
	// ErrCanceled no es un fallo: la vista que pidió el dato ya no está activa.
	ErrCanceled = errors.New("operación cancelada")
)

// ValidationError describe un campo rechazado. Se compara como ErrInvalidInput.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid construye un ValidationError.
func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// RemoteError es la respuesta de error del servicio de datos tal como la ve el cliente.
// Kind es uno de los sentinelas de este paquete y gobierna errors.Is.
type RemoteError struct {
	Status  int
	Code    string
	Message string
	Field   string
	Kind    error
	Cause   error
}

func (e *RemoteError) Error() string {
	msg := e.Message
	if msg == "" && e.Cause != nil {
		msg = e.Cause.Error()
	}
	if e.Status == 0 {
		return fmt.Sprintf("%v: %s", e.Kind, msg)
	}
	return fmt.Sprintf("%v (HTTP %d %s): %s", e.Kind, e.Status, e.Code, msg)
}

func (e *RemoteError) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// KindForStatus clasifica un código HTTP de error.
func KindForStatus(status int) error {
	switch status {
	case 400, 422:
		return ErrInvalidInput
	case 401:
		return ErrUnauthorized
	case 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	case 409:
		return ErrConflict
	default:
		return ErrRemote
	}
}
