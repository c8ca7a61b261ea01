package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio del panel. Todos los fallos del backend se normalizan
// a uno de estos valores o a los tipos ValidationError / APIError.
var (
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUnavailable        = errors.New("servicio no disponible")
	ErrInvalidCredentials = errors.New("credenciales incorrectas")
)

// ValidationError fallo 422 del backend: errores de validación por campo.
// La forma campo -> lista de mensajes se conserva tal cual para que cada
// formulario pueda anotar su campo ofensor.
type ValidationError struct {
	Message string
	Errors  map[string][]string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "los datos enviados no son válidos"
}

// Field devuelve el primer mensaje asociado al campo, o "" si no hay.
func (e *ValidationError) Field(name string) string {
	if msgs, ok := e.Errors[name]; ok && len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// APIError cualquier otro fallo del backend (5xx, rechazo de regla de negocio,
// respuesta inesperada). Message conserva el mensaje del backend textualmente.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("error del backend (HTTP %d)", e.Status)
}

// UserMessage traduce un error a un mensaje presentable en pantalla.
// Los mensajes del backend se muestran textualmente; los fallos de transporte
// se reducen a un mensaje genérico.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidCredentials):
		return "Credenciales incorrectas. Intenta de nuevo."
	case errors.Is(err, ErrUnauthorized):
		return "La sesión ha expirado. Inicia sesión de nuevo."
	case errors.Is(err, ErrForbidden):
		return "No tienes permisos para realizar esta acción."
	case errors.Is(err, ErrNotFound):
		return "El recurso solicitado no existe."
	case errors.Is(err, ErrUnavailable):
		return "No se pudo contactar el servidor. Intenta más tarde."
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Error()
	}
	var aErr *APIError
	if errors.As(err, &aErr) {
		return aErr.Error()
	}
	return strings.TrimSpace(err.Error())
}
